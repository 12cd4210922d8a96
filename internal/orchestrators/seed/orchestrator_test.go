package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/laasilva/dracolich-library-api-sub000/internal/catalog"
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/seed"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/clock"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/idgen"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/metrics"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
	"github.com/laasilva/dracolich-library-api-sub000/internal/testutils"
)

// SeedIntegrationTestSuite seeds a real Redis-backed repository
type SeedIntegrationTestSuite struct {
	suite.Suite
	repo    documents.Repository
	cleanup func()
	ctx     context.Context
}

func TestSeedIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SeedIntegrationTestSuite))
}

func (s *SeedIntegrationTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	repo, err := documents.NewRedis(&documents.RedisConfig{
		Client:      client,
		IDGenerator: idgen.NewSequential(),
	})
	s.Require().NoError(err)

	s.repo = repo
	s.cleanup = cleanup
	s.ctx = context.Background()
}

func (s *SeedIntegrationTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *SeedIntegrationTestSuite) newService(repair bool) seed.Service {
	m, err := metrics.New(nil)
	s.Require().NoError(err)

	svc, err := seed.NewOrchestrator(&seed.Config{
		Repository:    s.repo,
		Clock:         clock.NewStepped(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Second),
		Metrics:       m,
		RepairPartial: repair,
	})
	s.Require().NoError(err)
	return svc
}

func (s *SeedIntegrationTestSuite) count(kind dnd5e.Kind) int64 {
	out, err := s.repo.Count(s.ctx, documents.CountInput{Kind: kind})
	s.Require().NoError(err)
	return out.Count
}

func (s *SeedIntegrationTestSuite) assertFullySeeded() {
	for kind, want := range catalog.Load().Counts() {
		s.Equal(int64(want), s.count(kind), "kind %s", kind)
	}
}

func (s *SeedIntegrationTestSuite) TestNewOrchestratorRequiresRepository() {
	_, err := seed.NewOrchestrator(&seed.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = seed.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SeedIntegrationTestSuite) TestSeedAllPopulatesEveryKindInOrder() {
	out, err := s.newService(false).SeedAll(s.ctx, &seed.SeedAllInput{})
	s.Require().NoError(err)
	s.False(out.Skipped)

	names := make([]string, len(out.Stages))
	for i, stage := range out.Stages {
		names[i] = stage.Name
		s.Equal(stage.Planned, stage.Inserted, "stage %s", stage.Name)
		s.Zero(stage.Duplicates)
		s.False(stage.Skipped)
		s.Equal(time.Second, stage.Duration)
	}
	s.Equal([]string{
		"attributes", "races", "classes", "subclasses", "alignments",
		"backgrounds", "features", "subraces", "spells", "equipment",
	}, names)
	s.Equal(seed.StageNames(), names)

	s.assertFullySeeded()
}

func (s *SeedIntegrationTestSuite) TestSeedAllIsIdempotent() {
	svc := s.newService(false)

	_, err := svc.SeedAll(s.ctx, nil)
	s.Require().NoError(err)

	again, err := svc.SeedAll(s.ctx, nil)
	s.Require().NoError(err)
	s.True(again.Skipped)
	s.Empty(again.Stages)

	s.assertFullySeeded()
}

func (s *SeedIntegrationTestSuite) TestReferencesResolveToStoredRecords() {
	_, err := s.newService(false).SeedAll(s.ctx, nil)
	s.Require().NoError(err)

	s.Run("subclass class ids", func() {
		out, err := s.repo.FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindSubclass})
		s.Require().NoError(err)
		subclasses, err := documents.Decode[dnd5e.Subclass](out.Documents)
		s.Require().NoError(err)

		for _, subclass := range subclasses {
			parent := s.findByID(dnd5e.KindClass, subclass.ClassID)
			class, err := documents.DecodeOne[dnd5e.Class](parent)
			s.Require().NoError(err)
			s.Equal(subclass.ClassName, class.Name, "subclass %s", subclass.Name)
		}
	})

	s.Run("subrace race ids", func() {
		out, err := s.repo.FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindSubrace})
		s.Require().NoError(err)
		subraces, err := documents.Decode[dnd5e.Subrace](out.Documents)
		s.Require().NoError(err)

		for _, subrace := range subraces {
			parent := s.findByID(dnd5e.KindRace, subrace.RaceID)
			race, err := documents.DecodeOne[dnd5e.Race](parent)
			s.Require().NoError(err)
			s.Equal(subrace.RaceName, race.Name, "subrace %s", subrace.Name)
		}
	})

	s.Run("race attribute snapshots", func() {
		out, err := s.repo.FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindRace})
		s.Require().NoError(err)
		races, err := documents.Decode[dnd5e.Race](out.Documents)
		s.Require().NoError(err)

		for _, race := range races {
			s.Len(race.Attributes, len(race.AttributeNames), "race %s", race.Name)
			for i, snapshot := range race.Attributes {
				s.Equal(race.AttributeNames[i], snapshot.Name)
				stored, err := documents.DecodeOne[dnd5e.Attribute](s.findByID(dnd5e.KindAttribute, snapshot.ID))
				s.Require().NoError(err)
				s.Equal(snapshot, *stored)
			}
		}
	})
}

func (s *SeedIntegrationTestSuite) findByID(kind dnd5e.Kind, id string) *documents.Document {
	out, err := s.repo.FindByField(s.ctx, documents.FindByFieldInput{Kind: kind, Field: dnd5e.FieldID, Value: id})
	s.Require().NoError(err)
	s.Require().Len(out.Documents, 1, "%s %s", kind, id)
	return out.Documents[0]
}

// seedAttributesOnly simulates a run that stopped after its first stage
func (s *SeedIntegrationTestSuite) seedAttributesOnly() []string {
	attributes := catalog.Attributes()
	records := make([]dnd5e.Record, len(attributes))
	for i, attr := range attributes {
		records[i] = attr
	}
	out, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{Kind: dnd5e.KindAttribute, Records: records})
	s.Require().NoError(err)

	ids := make([]string, len(out.Results))
	for i, result := range out.Results {
		ids[i] = result.ID
	}
	return ids
}

func (s *SeedIntegrationTestSuite) TestPartialSeedIsNotRepairedByDefault() {
	s.seedAttributesOnly()

	out, err := s.newService(false).SeedAll(s.ctx, nil)
	s.Require().NoError(err)
	s.True(out.Skipped)

	s.Zero(s.count(dnd5e.KindRace))
	s.Zero(s.count(dnd5e.KindClass))
	s.Zero(s.count(dnd5e.KindEquipment))
}

func (s *SeedIntegrationTestSuite) TestRepairModeResumesPartialSeed() {
	attributeIDs := s.seedAttributesOnly()

	out, err := s.newService(true).SeedAll(s.ctx, nil)
	s.Require().NoError(err)
	s.False(out.Skipped)

	s.Require().NotEmpty(out.Stages)
	s.Equal("attributes", out.Stages[0].Name)
	s.True(out.Stages[0].Skipped)
	s.Zero(out.Stages[0].Inserted)
	for _, stage := range out.Stages[1:] {
		s.False(stage.Skipped, "stage %s", stage.Name)
		s.Equal(stage.Planned, stage.Inserted, "stage %s", stage.Name)
	}

	s.assertFullySeeded()

	known := make(map[string]bool, len(attributeIDs))
	for _, id := range attributeIDs {
		known[id] = true
	}
	races, err := s.repo.FindAll(s.ctx, documents.FindAllInput{Kind: dnd5e.KindRace})
	s.Require().NoError(err)
	decoded, err := documents.Decode[dnd5e.Race](races.Documents)
	s.Require().NoError(err)
	for _, race := range decoded {
		for _, snapshot := range race.Attributes {
			s.True(known[snapshot.ID], "race %s references %s", race.Name, snapshot.ID)
		}
	}

	again, err := s.newService(true).SeedAll(s.ctx, nil)
	s.Require().NoError(err)
	for _, stage := range again.Stages {
		s.True(stage.Skipped, "stage %s", stage.Name)
	}
	s.Zero(again.Inserted())
}

func (s *SeedIntegrationTestSuite) TestRepairModeFailsOnUnresolvableReference() {
	// a store whose classes were written by something else
	_, err := s.repo.InsertMany(s.ctx, documents.InsertManyInput{
		Kind:    dnd5e.KindClass,
		Records: []dnd5e.Record{&dnd5e.Class{Name: "wizard", HitDice: "1d6"}},
	})
	s.Require().NoError(err)

	_, err = s.newService(true).SeedAll(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "subclasses")

	meta := errors.GetMeta(err)
	s.Equal("subclasses", meta["stage"])
	s.Equal("class", meta["kind"])
	s.Equal("barbarian", meta["name"])

	// stages before the failure stay committed
	s.NotZero(s.count(dnd5e.KindAttribute))
	s.NotZero(s.count(dnd5e.KindRace))
	s.Zero(s.count(dnd5e.KindSubclass))
	s.Zero(s.count(dnd5e.KindFeature))
}

func (s *SeedIntegrationTestSuite) TestDryRunWritesNothing() {
	out, err := s.newService(false).SeedAll(s.ctx, &seed.SeedAllInput{DryRun: true})
	s.Require().NoError(err)
	s.True(out.DryRun)
	s.Len(out.Stages, len(seed.StageNames()))

	counts := catalog.Load().Counts()
	for _, stage := range out.Stages {
		s.Equal(counts[stage.Kind], stage.Planned)
		s.Zero(stage.Inserted)
		s.Zero(s.count(stage.Kind))
	}
}

func (s *SeedIntegrationTestSuite) TestInconsistentCatalogIsRejectedBeforeWriting() {
	svc, err := seed.NewOrchestrator(&seed.Config{
		Repository: s.repo,
		Catalog: func() *catalog.Set {
			set := catalog.Load()
			set.Subclasses[0].ClassName = "artificer"
			return set
		},
	})
	s.Require().NoError(err)

	_, err = svc.SeedAll(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Zero(s.count(dnd5e.KindAttribute))
}

func (s *SeedIntegrationTestSuite) TestCanceledContextStopsTheRun() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newService(true).SeedAll(ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
	s.Zero(s.count(dnd5e.KindAttribute))
}
