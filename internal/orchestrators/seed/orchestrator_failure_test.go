package seed_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/seed"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
	documentsmock "github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents/mock"
	"github.com/laasilva/dracolich-library-api-sub000/internal/testutils/mocks"
)

// SeedFailureTestSuite drives the orchestrator against a mocked repository
type SeedFailureTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *documentsmock.MockRepository
	svc      seed.Service
	ctx      context.Context
}

func TestSeedFailureTestSuite(t *testing.T) {
	suite.Run(t, new(SeedFailureTestSuite))
}

func (s *SeedFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = documentsmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	svc, err := seed.NewOrchestrator(&seed.Config{Repository: s.mockRepo})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *SeedFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SeedFailureTestSuite) expectUnseeded() {
	mocks.ExpectSeedGate(s.ctx, s.mockRepo, 0)
}

func (s *SeedFailureTestSuite) TestFirstFailingStageAbortsTheRun() {
	s.expectUnseeded()

	var kinds []dnd5e.Kind
	s.mockRepo.EXPECT().InsertMany(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input documents.InsertManyInput) (*documents.InsertManyOutput, error) {
			kinds = append(kinds, input.Kind)
			if input.Kind == dnd5e.KindRace {
				return nil, errors.Unavailable("redis is down")
			}
			return mocks.StoreRecords(nil)(ctx, input)
		}).
		Times(2)

	out, err := s.svc.SeedAll(s.ctx, nil)
	s.Equal([]dnd5e.Kind{dnd5e.KindAttribute, dnd5e.KindRace}, kinds)
	s.Nil(out)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
	s.Contains(err.Error(), "races: ")
	s.Equal("races", errors.GetMeta(err)["stage"])
}

func (s *SeedFailureTestSuite) TestGateFailureIsReported() {
	s.mockRepo.EXPECT().
		Count(s.ctx, documents.CountInput{Kind: dnd5e.KindAttribute}).
		Return(nil, errors.Unavailable("connection refused"))

	_, err := s.svc.SeedAll(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *SeedFailureTestSuite) TestDuplicatesAreCountedAndTheirIDsReused() {
	s.expectUnseeded()

	existing := map[string]string{
		"Darkvision": "attribute_existing",
		"barbarian":  "class_existing",
	}

	var races, subclasses []dnd5e.Record
	s.mockRepo.EXPECT().InsertMany(s.ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, input documents.InsertManyInput) (*documents.InsertManyOutput, error) {
			switch input.Kind {
			case dnd5e.KindRace:
				races = input.Records
			case dnd5e.KindSubclass:
				subclasses = input.Records
			}
			return mocks.StoreRecords(existing)(ctx, input)
		}).
		Times(len(seed.StageNames()))

	out, err := s.svc.SeedAll(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal(1, out.Stages[0].Duplicates)
	s.Equal(1, out.Stages[2].Duplicates)
	s.Equal(2, out.Duplicates())

	var sawDarkvision bool
	for _, record := range races {
		race := record.(*dnd5e.Race)
		for _, snapshot := range race.Attributes {
			if snapshot.Name == "Darkvision" {
				sawDarkvision = true
				s.Equal("attribute_existing", snapshot.ID)
			}
		}
	}
	s.True(sawDarkvision)

	for _, record := range subclasses {
		subclass := record.(*dnd5e.Subclass)
		if subclass.ClassName == "barbarian" {
			s.Equal("class_existing", subclass.ClassID)
		} else {
			s.NotEqual("class_existing", subclass.ClassID)
		}
	}
}

func (s *SeedFailureTestSuite) TestAlreadySeededStoreIsSkipped() {
	mocks.ExpectSeedGate(s.ctx, s.mockRepo, 21)

	out, err := s.svc.SeedAll(s.ctx, nil)
	s.Require().NoError(err)
	s.True(out.Skipped)
}
