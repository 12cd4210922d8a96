package documents_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/idgen"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
	"github.com/laasilva/dracolich-library-api-sub000/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	repo    documents.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	repo, err := documents.NewRedis(&documents.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewSequential(),
	})
	s.Require().NoError(err)

	s.mr = mr
	s.repo = repo
	s.cleanup = cleanup
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) TestConfigValidation() {
	_, err := documents.NewRedis(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = documents.NewRedis(&documents.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestKeyLayout() {
	_, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{
		Kind: dnd5e.KindSpell,
		Records: []dnd5e.Record{
			&dnd5e.Spell{Name: "Fire Bolt", Level: 0, School: "evocation"},
		},
	})
	s.Require().NoError(err)

	s.True(s.mr.Exists("catalog:{spell}:spell_1"))
	s.True(s.mr.Exists("catalog:{spell}:ids"))

	id := s.mr.HGet("catalog:{spell}:names", "Fire Bolt")
	s.Equal("spell_1", id)

	members, err := s.mr.ZMembers("catalog:{spell}:idx:school:evocation")
	s.Require().NoError(err)
	s.Equal([]string{"spell_1"}, members)

	members, err = s.mr.ZMembers("catalog:{spell}:idx:level:0")
	s.Require().NoError(err)
	s.Equal([]string{"spell_1"}, members)
}

func (s *RedisRepositoryTestSuite) TestDanglingIndexIsDataLoss() {
	_, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{
		Kind:    dnd5e.KindSubrace,
		Records: []dnd5e.Record{&dnd5e.Subrace{Name: "Hill Dwarf", RaceID: "race_1"}},
	})
	s.Require().NoError(err)

	s.mr.Del("catalog:{subrace}:subrace_1")

	_, err = s.repo.FindByField(s.ctx, documents.FindByFieldInput{
		Kind: dnd5e.KindSubrace, Field: dnd5e.FieldRaceID, Value: "race_1",
	})
	s.True(errors.IsDataLoss(err))

	_, err = s.repo.FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindSubrace})
	s.True(errors.IsDataLoss(err))
}

func (s *RedisRepositoryTestSuite) TestUnavailableAfterOutage() {
	s.mr.Close()

	err := s.repo.Ping(s.ctx)
	s.Error(err)
	s.True(errors.IsUnavailable(err))

	_, err = s.repo.Count(s.ctx, documents.CountInput{Kind: dnd5e.KindRace})
	s.Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *RedisRepositoryTestSuite) TestFailedInsertLeavesRecordIDs() {
	fresh := &dnd5e.Spell{Name: "Shield", Level: 1, School: "abjuration"}
	kept := &dnd5e.Spell{ID: "spell_legacy", Name: "Light", School: "evocation"}
	s.mr.Close()

	_, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{
		Kind:    dnd5e.KindSpell,
		Records: []dnd5e.Record{fresh, kept},
	})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))

	s.Empty(fresh.ID)
	s.Equal("spell_legacy", kept.ID)
}
