package documents_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/laasilva/dracolich-library-api-sub000/internal/catalog"
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/idgen"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
	"github.com/laasilva/dracolich-library-api-sub000/internal/testutils"
)

// RepositoryContractSuite runs the same behavior checks against every store
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func(t *testing.T) (documents.Repository, func())
	repo    documents.Repository
	cleanup func()
	ctx     context.Context
}

func TestRedisRepositoryContract(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(t *testing.T) (documents.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := documents.NewRedis(&documents.RedisConfig{
				Client:      client,
				IDGenerator: idgen.NewSequential(),
			})
			require.NoError(t, err)
			return repo, cleanup
		},
	})
}

func TestSQLiteRepositoryContract(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func(t *testing.T) (documents.Repository, func()) {
			db, err := documents.OpenSQLite(context.Background(), testutils.TestSQLitePath(t))
			require.NoError(t, err)
			repo, err := documents.NewSQLite(&documents.SQLiteConfig{
				DB:          db,
				IDGenerator: idgen.NewSequential(),
			})
			require.NoError(t, err)
			return repo, func() { _ = db.Close() }
		},
	})
}

func (s *RepositoryContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo, s.cleanup = s.newRepo(s.T())
}

func (s *RepositoryContractSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepositoryContractSuite) insertClasses(names ...string) *documents.InsertManyOutput {
	records := make([]dnd5e.Record, len(names))
	for i, name := range names {
		records[i] = &dnd5e.Class{Name: name, HitDice: "1d8"}
	}
	out, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{Kind: dnd5e.KindClass, Records: records})
	s.Require().NoError(err)
	return out
}

func (s *RepositoryContractSuite) TestInsertManyAssignsIDsInCallOrder() {
	records := []dnd5e.Record{
		&dnd5e.Class{Name: "wizard"},
		&dnd5e.Class{Name: "bard"},
		&dnd5e.Class{Name: "monk"},
	}

	out, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{Kind: dnd5e.KindClass, Records: records})
	s.Require().NoError(err)
	s.Require().Len(out.Results, 3)

	s.Equal([]documents.InsertResult{
		{ID: "class_1", Name: "wizard"},
		{ID: "class_2", Name: "bard"},
		{ID: "class_3", Name: "monk"},
	}, out.Results)
	s.Equal(3, out.Inserted())
	s.Equal(0, out.Duplicates())

	for i, record := range records {
		s.Equal(out.Results[i].ID, record.GetID())
	}

	count, err := s.repo.Count(s.ctx, documents.CountInput{Kind: dnd5e.KindClass})
	s.Require().NoError(err)
	s.Equal(int64(3), count.Count)
}

func (s *RepositoryContractSuite) TestDuplicatesAreReportedNotWritten() {
	first := s.insertClasses("barbarian", "bard")

	s.Run("across batches", func() {
		again := s.insertClasses("bard", "fighter")
		s.Require().Len(again.Results, 2)

		s.True(again.Results[0].Duplicate)
		s.Equal(first.Results[1].ID, again.Results[0].ID)
		s.False(again.Results[1].Duplicate)
		s.Equal(1, again.Duplicates())
	})

	s.Run("within one batch", func() {
		out := s.insertClasses("rogue", "rogue")
		s.False(out.Results[0].Duplicate)
		s.True(out.Results[1].Duplicate)
		s.Equal(out.Results[0].ID, out.Results[1].ID)
	})

	count, err := s.repo.Count(s.ctx, documents.CountInput{Kind: dnd5e.KindClass})
	s.Require().NoError(err)
	s.Equal(int64(4), count.Count)
}

func (s *RepositoryContractSuite) TestFindAllPreservesOrderAndShape() {
	classes := catalog.Classes()
	records := make([]dnd5e.Record, len(classes))
	for i, class := range classes {
		records[i] = class
	}

	_, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{Kind: dnd5e.KindClass, Records: records})
	s.Require().NoError(err)

	out, err := s.repo.FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindClass})
	s.Require().NoError(err)

	decoded, err := documents.Decode[dnd5e.Class](out.Documents)
	s.Require().NoError(err)
	s.Require().Len(decoded, len(classes))

	for i := range classes {
		s.Equal(classes[i], decoded[i])
	}

	var bard *dnd5e.Class
	for _, class := range decoded {
		if class.Name == "bard" {
			bard = class
		}
	}
	s.Require().NotNil(bard)
	entry, ok := bard.Level(3)
	s.Require().True(ok)

	slots, err := entry.Scaling.Table("spellSlots")
	s.Require().NoError(err)
	s.Equal(map[int]int{1: 4, 2: 2}, slots)

	inspiration, err := entry.Scaling.Text("bardicInspiration")
	s.Require().NoError(err)
	s.Equal("1d6", inspiration)

	known, err := entry.Scaling.Int("spellsKnown")
	s.Require().NoError(err)
	s.Equal(6, known)
}

func (s *RepositoryContractSuite) TestFindByField() {
	classes := s.insertClasses("barbarian", "wizard")
	barbarianID := classes.Results[0].ID

	subclasses := []dnd5e.Record{
		&dnd5e.Subclass{Name: "Berserker", ClassID: barbarianID, ClassName: "barbarian"},
		&dnd5e.Subclass{Name: "School of Evocation", ClassID: classes.Results[1].ID, ClassName: "wizard"},
		&dnd5e.Subclass{Name: "Zealot", ClassID: barbarianID, ClassName: "barbarian"},
	}
	_, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{Kind: dnd5e.KindSubclass, Records: subclasses})
	s.Require().NoError(err)

	s.Run("by parent reference", func() {
		out, err := s.repo.FindByField(s.ctx, documents.FindByFieldInput{
			Kind: dnd5e.KindSubclass, Field: dnd5e.FieldClassID, Value: barbarianID,
		})
		s.Require().NoError(err)

		found, err := documents.Decode[dnd5e.Subclass](out.Documents)
		s.Require().NoError(err)
		s.Require().Len(found, 2)
		s.Equal("Berserker", found[0].Name)
		s.Equal("Zealot", found[1].Name)
	})

	s.Run("by name", func() {
		out, err := s.repo.FindByField(s.ctx, documents.FindByFieldInput{
			Kind: dnd5e.KindClass, Field: dnd5e.FieldName, Value: "wizard",
		})
		s.Require().NoError(err)
		s.Require().Len(out.Documents, 1)
		s.Equal(classes.Results[1].ID, out.Documents[0].ID)
	})

	s.Run("by id", func() {
		out, err := s.repo.FindByField(s.ctx, documents.FindByFieldInput{
			Kind: dnd5e.KindClass, Field: dnd5e.FieldID, Value: barbarianID,
		})
		s.Require().NoError(err)
		s.Require().Len(out.Documents, 1)

		class, err := documents.DecodeOne[dnd5e.Class](out.Documents[0])
		s.Require().NoError(err)
		s.Equal("barbarian", class.Name)
		s.Equal(barbarianID, class.ID)
	})

	s.Run("no match is empty", func() {
		for _, field := range []string{dnd5e.FieldID, dnd5e.FieldName, dnd5e.FieldClassID} {
			out, err := s.repo.FindByField(s.ctx, documents.FindByFieldInput{
				Kind: dnd5e.KindSubclass, Field: field, Value: "missing",
			})
			s.Require().NoError(err)
			s.NotNil(out.Documents)
			s.Empty(out.Documents)
		}
	})

	s.Run("field is required", func() {
		_, err := s.repo.FindByField(s.ctx, documents.FindByFieldInput{Kind: dnd5e.KindSubclass})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RepositoryContractSuite) TestEmptyKind() {
	out, err := s.repo.FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindSpell})
	s.Require().NoError(err)
	s.NotNil(out.Documents)
	s.Empty(out.Documents)

	count, err := s.repo.Count(s.ctx, documents.CountInput{Kind: dnd5e.KindSpell})
	s.Require().NoError(err)
	s.Zero(count.Count)

	inserted, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{Kind: dnd5e.KindSpell})
	s.Require().NoError(err)
	s.Empty(inserted.Results)
}

func (s *RepositoryContractSuite) TestInvalidInput() {
	testCases := []struct {
		name  string
		input documents.InsertManyInput
	}{
		{
			name:  "unknown kind",
			input: documents.InsertManyInput{Kind: "monster", Records: []dnd5e.Record{&dnd5e.Class{Name: "x"}}},
		},
		{
			name:  "record of another kind",
			input: documents.InsertManyInput{Kind: dnd5e.KindRace, Records: []dnd5e.Record{&dnd5e.Class{Name: "x"}}},
		},
		{
			name:  "record without name",
			input: documents.InsertManyInput{Kind: dnd5e.KindClass, Records: []dnd5e.Record{&dnd5e.Class{}}},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.InsertMany(s.ctx, tc.input)
			s.Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}

	_, err := s.repo.Count(s.ctx, documents.CountInput{Kind: "monster"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestUnsetScalingValueIsNotStored() {
	class := &dnd5e.Class{
		Name:    "warlock",
		HitDice: "1d8",
		Progression: []dnd5e.ProgressionEntry{
			{Level: 1, Scaling: dnd5e.Scaling{"invocations": dnd5e.ScalingValue{}}},
		},
	}

	_, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{
		Kind:    dnd5e.KindClass,
		Records: []dnd5e.Record{class},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	var shapeErr *dnd5e.ShapeError
	s.Require().True(stderrors.As(err, &shapeErr), "got %v", err)
	s.Equal("invocations", shapeErr.Key)
	s.Empty(class.ID)

	count, err := s.repo.Count(s.ctx, documents.CountInput{Kind: dnd5e.KindClass})
	s.Require().NoError(err)
	s.Zero(count.Count)
}

func (s *RepositoryContractSuite) TestPing() {
	s.NoError(s.repo.Ping(s.ctx))
}
