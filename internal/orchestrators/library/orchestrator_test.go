package library_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/laasilva/dracolich-library-api-sub000/internal/catalog"
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/library"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
	"github.com/laasilva/dracolich-library-api-sub000/internal/testutils"
)

// countingRepository records child-kind reads so tests can tell fan-out
// from batched loading
type countingRepository struct {
	documents.Repository
	mu    sync.Mutex
	reads map[dnd5e.Kind]int
}

func (r *countingRepository) FindAll(ctx context.Context, input documents.FindAllInput) (*documents.FindAllOutput, error) {
	r.count(input.Kind)
	return r.Repository.FindAll(ctx, input)
}

func (r *countingRepository) FindByField(ctx context.Context, input documents.FindByFieldInput) (*documents.FindByFieldOutput, error) {
	r.count(input.Kind)
	return r.Repository.FindByField(ctx, input)
}

func (r *countingRepository) count(kind dnd5e.Kind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads[kind]++
}

func (r *countingRepository) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads = make(map[dnd5e.Kind]int)
}

type LibraryIntegrationTestSuite struct {
	suite.Suite
	batch   bool
	repo    *countingRepository
	svc     library.Service
	cleanup func()
	ctx     context.Context
}

func TestLibraryFanOut(t *testing.T) {
	suite.Run(t, &LibraryIntegrationTestSuite{batch: false})
}

func TestLibraryBatched(t *testing.T) {
	suite.Run(t, &LibraryIntegrationTestSuite{batch: true})
}

func (s *LibraryIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()

	store, cleanup := testutils.NewSeededRedisRepository(s.T())
	s.cleanup = cleanup

	var err error
	s.repo = &countingRepository{Repository: store, reads: make(map[dnd5e.Kind]int)}
	s.svc, err = library.NewOrchestrator(&library.Config{Repository: s.repo, BatchChildren: s.batch})
	s.Require().NoError(err)
}

func (s *LibraryIntegrationTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *LibraryIntegrationTestSuite) TestBarbarianHasEverySubclass() {
	out, err := s.svc.GetClassDetails(s.ctx, &library.GetClassDetailsInput{NameOrID: "barbarian"})
	s.Require().NoError(err)

	s.Equal("barbarian", out.Details.Class.Name)
	s.Len(out.Details.Class.Progression, 20)

	names := make([]string, len(out.Details.Subclasses))
	for i, subclass := range out.Details.Subclasses {
		names[i] = subclass.Name
		s.Equal(out.Details.Class.ID, subclass.ClassID)
	}
	s.Equal([]string{
		"Berserker", "Totem Warrior", "Ancestral Guardian", "Storm Herald",
		"Zealot", "Beast", "Wild Magic", "Battlerager",
	}, names)
}

func (s *LibraryIntegrationTestSuite) TestLookupFallsBackToID() {
	byName, err := s.svc.GetClassDetails(s.ctx, &library.GetClassDetailsInput{NameOrID: "wizard"})
	s.Require().NoError(err)

	byID, err := s.svc.GetClassDetails(s.ctx, &library.GetClassDetailsInput{NameOrID: byName.Details.Class.ID})
	s.Require().NoError(err)
	s.Equal(byName.Details, byID.Details)
}

func (s *LibraryIntegrationTestSuite) TestRaceWithoutSubracesHasEmptyList() {
	out, err := s.svc.GetRaceDetails(s.ctx, &library.GetRaceDetailsInput{NameOrID: "human"})
	s.Require().NoError(err)

	s.Equal("human", out.Details.Race.Name)
	s.NotNil(out.Details.Subraces)
	s.Empty(out.Details.Subraces)
}

func (s *LibraryIntegrationTestSuite) TestRaceCarriesAttributeSnapshots() {
	out, err := s.svc.GetRaceDetails(s.ctx, &library.GetRaceDetailsInput{NameOrID: "elf"})
	s.Require().NoError(err)

	s.Require().NotEmpty(out.Details.Race.Attributes)
	s.Equal("Darkvision", out.Details.Race.Attributes[0].Name)
	s.NotEmpty(out.Details.Race.Attributes[0].ID)

	names := make([]string, len(out.Details.Subraces))
	for i, subrace := range out.Details.Subraces {
		names[i] = subrace.Name
	}
	s.Equal([]string{"High Elf", "Wood Elf", "Dark Elf"}, names)
}

func (s *LibraryIntegrationTestSuite) TestNotFound() {
	s.Run("with a suggestion", func() {
		_, err := s.svc.GetClassDetails(s.ctx, &library.GetClassDetailsInput{NameOrID: "barbarain"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))

		meta := errors.GetMeta(err)
		s.Equal("class", meta["kind"])
		s.Equal("barbarain", meta["name"])
		s.Equal("barbarian", meta["suggestion"])
	})

	s.Run("without a suggestion", func() {
		_, err := s.svc.GetRaceDetails(s.ctx, &library.GetRaceDetailsInput{NameOrID: "warforged"})
		s.Require().Error(err)
		s.True(errors.IsNotFound(err))
		s.NotContains(errors.GetMeta(err), "suggestion")
	})

	s.Run("blank key", func() {
		_, err := s.svc.GetClassDetails(s.ctx, &library.GetClassDetailsInput{NameOrID: "  "})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *LibraryIntegrationTestSuite) TestListClassDetails() {
	s.repo.reset()

	out, err := s.svc.ListClassDetails(s.ctx, &library.ListClassDetailsInput{})
	s.Require().NoError(err)

	want := make(map[string]int)
	for _, subclass := range catalog.Subclasses() {
		want[subclass.ClassName]++
	}

	s.Len(out.Details, len(catalog.Classes()))
	for _, details := range out.Details {
		s.NotNil(details.Subclasses)
		s.Len(details.Subclasses, want[details.Class.Name], "class %s", details.Class.Name)
	}

	if s.batch {
		s.Equal(1, s.repo.reads[dnd5e.KindSubclass])
	} else {
		s.Equal(len(out.Details), s.repo.reads[dnd5e.KindSubclass])
	}
}

func (s *LibraryIntegrationTestSuite) TestListRaceDetails() {
	out, err := s.svc.ListRaceDetails(s.ctx, &library.ListRaceDetailsInput{})
	s.Require().NoError(err)

	want := make(map[string]int)
	for _, subrace := range catalog.Subraces() {
		want[subrace.RaceName]++
	}

	s.Len(out.Details, len(catalog.Races()))
	for _, details := range out.Details {
		s.NotNil(details.Subraces)
		s.Len(details.Subraces, want[details.Race.Name], "race %s", details.Race.Name)
	}
}

func (s *LibraryIntegrationTestSuite) TestListFeaturesForClass() {
	out, err := s.svc.ListFeatures(s.ctx, &library.ListFeaturesInput{ClassName: "bard"})
	s.Require().NoError(err)
	s.Require().NotEmpty(out.Features)

	previous := 0
	for _, feature := range out.Features {
		level, ok := feature.Classes["bard"]
		s.True(ok, "feature %s", feature.Name)
		s.GreaterOrEqual(level, previous)
		previous = level
	}
	s.Equal(1, out.Features[0].Classes["bard"])

	_, err = s.svc.ListFeatures(s.ctx, &library.ListFeaturesInput{ClassName: "paladin"})
	s.True(errors.IsNotFound(err))

	all, err := s.svc.ListFeatures(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all.Features, len(catalog.Features()))
}

func (s *LibraryIntegrationTestSuite) TestSpells() {
	spell, err := s.svc.GetSpell(s.ctx, &library.GetSpellInput{Name: "Fireball"})
	s.Require().NoError(err)
	s.Equal(3, spell.Spell.Level)

	cantrip := 0
	cantrips, err := s.svc.ListSpells(s.ctx, &library.ListSpellsInput{Level: &cantrip})
	s.Require().NoError(err)
	s.Require().NotEmpty(cantrips.Spells)
	for _, sp := range cantrips.Spells {
		s.Zero(sp.Level)
	}

	bard, err := s.svc.ListSpells(s.ctx, &library.ListSpellsInput{ClassName: "Bard"})
	s.Require().NoError(err)
	s.Require().NotEmpty(bard.Spells)
	for _, sp := range bard.Spells {
		s.Contains(sp.Classes, "bard")
	}

	bad := 12
	_, err = s.svc.ListSpells(s.ctx, &library.ListSpellsInput{Level: &bad})
	s.True(errors.IsInvalidArgument(err))
}

func (s *LibraryIntegrationTestSuite) TestEquipment() {
	weapons, err := s.svc.ListEquipment(s.ctx, &library.ListEquipmentInput{Category: dnd5e.CategoryWeapon})
	s.Require().NoError(err)
	s.Require().NotEmpty(weapons.Equipment)
	for _, item := range weapons.Equipment {
		s.Equal(dnd5e.CategoryWeapon, item.Category)
		s.NotNil(item.Damage)
	}

	longsword, err := s.svc.GetEquipment(s.ctx, &library.GetEquipmentInput{Name: "Longsword"})
	s.Require().NoError(err)
	s.Equal("1d8", longsword.Equipment.Damage.Dice)

	all, err := s.svc.ListEquipment(s.ctx, nil)
	s.Require().NoError(err)
	s.Len(all.Equipment, len(catalog.Equipment()))
}

func (s *LibraryIntegrationTestSuite) TestSimpleLists() {
	attributes, err := s.svc.ListAttributes(s.ctx, &library.ListAttributesInput{})
	s.Require().NoError(err)
	s.Len(attributes.Attributes, len(catalog.Attributes()))

	alignments, err := s.svc.ListAlignments(s.ctx, &library.ListAlignmentsInput{})
	s.Require().NoError(err)
	s.Len(alignments.Alignments, len(catalog.Alignments()))

	backgrounds, err := s.svc.ListBackgrounds(s.ctx, &library.ListBackgroundsInput{})
	s.Require().NoError(err)
	s.Len(backgrounds.Backgrounds, len(catalog.Backgrounds()))
}
