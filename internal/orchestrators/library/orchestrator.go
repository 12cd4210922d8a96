// Package library serves read views over the seeded catalog, composing
// parents with their children since the store keeps them as separate
// documents.
package library

//go:generate mockgen -destination=mock/mock_service.go -package=librarymock github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/library Service

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/metrics"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
)

// Service defines the interface for catalog reads
type Service interface {
	// Composed views
	GetClassDetails(ctx context.Context, input *GetClassDetailsInput) (*GetClassDetailsOutput, error)
	ListClassDetails(ctx context.Context, input *ListClassDetailsInput) (*ListClassDetailsOutput, error)
	GetRaceDetails(ctx context.Context, input *GetRaceDetailsInput) (*GetRaceDetailsOutput, error)
	ListRaceDetails(ctx context.Context, input *ListRaceDetailsInput) (*ListRaceDetailsOutput, error)

	// Single-kind reads
	ListAttributes(ctx context.Context, input *ListAttributesInput) (*ListAttributesOutput, error)
	ListAlignments(ctx context.Context, input *ListAlignmentsInput) (*ListAlignmentsOutput, error)
	ListBackgrounds(ctx context.Context, input *ListBackgroundsInput) (*ListBackgroundsOutput, error)
	ListFeatures(ctx context.Context, input *ListFeaturesInput) (*ListFeaturesOutput, error)
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	ListEquipment(ctx context.Context, input *ListEquipmentInput) (*ListEquipmentOutput, error)
	GetEquipment(ctx context.Context, input *GetEquipmentInput) (*GetEquipmentOutput, error)
}

// Config holds the dependencies for the library orchestrator
type Config struct {
	Repository documents.Repository
	Metrics    *metrics.Metrics
	// BatchChildren reads each child kind once per list call instead of once
	// per parent
	BatchChildren bool
	// Children overrides the loader chosen by BatchChildren
	Children ChildLoader
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	return vb.Build()
}

type orchestrator struct {
	repo     documents.Repository
	children ChildLoader
}

// NewOrchestrator creates a new library orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	children := cfg.Children
	if children == nil {
		if cfg.BatchChildren {
			children = NewBatchLoader(cfg.Repository, cfg.Metrics)
		} else {
			children = NewFanOutLoader(cfg.Repository, cfg.Metrics)
		}
	}

	return &orchestrator{
		repo:     cfg.Repository,
		children: children,
	}, nil
}

func (o *orchestrator) GetClassDetails(ctx context.Context, input *GetClassDetailsInput) (*GetClassDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	class, err := findOne[dnd5e.Class](ctx, o.repo, dnd5e.KindClass, input.NameOrID)
	if err != nil {
		return nil, err
	}

	subclasses, err := o.children.Subclasses(ctx, []string{class.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compose class %s", class.Name)
	}

	return &GetClassDetailsOutput{
		Details: &ClassDetails{Class: class, Subclasses: nonNil(subclasses[class.ID])},
	}, nil
}

func (o *orchestrator) ListClassDetails(ctx context.Context, _ *ListClassDetailsInput) (*ListClassDetailsOutput, error) {
	classes, err := findAll[dnd5e.Class](ctx, o.repo, dnd5e.KindClass)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(classes))
	for i, class := range classes {
		ids[i] = class.ID
	}
	subclasses, err := o.children.Subclasses(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compose classes")
	}

	details := make([]*ClassDetails, len(classes))
	for i, class := range classes {
		details[i] = &ClassDetails{Class: class, Subclasses: nonNil(subclasses[class.ID])}
	}

	slog.DebugContext(ctx, "Composed class details", "classes", len(details))
	return &ListClassDetailsOutput{Details: details}, nil
}

func (o *orchestrator) GetRaceDetails(ctx context.Context, input *GetRaceDetailsInput) (*GetRaceDetailsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	race, err := findOne[dnd5e.Race](ctx, o.repo, dnd5e.KindRace, input.NameOrID)
	if err != nil {
		return nil, err
	}

	subraces, err := o.children.Subraces(ctx, []string{race.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to compose race %s", race.Name)
	}

	return &GetRaceDetailsOutput{
		Details: &RaceDetails{Race: race, Subraces: nonNil(subraces[race.ID])},
	}, nil
}

func (o *orchestrator) ListRaceDetails(ctx context.Context, _ *ListRaceDetailsInput) (*ListRaceDetailsOutput, error) {
	races, err := findAll[dnd5e.Race](ctx, o.repo, dnd5e.KindRace)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(races))
	for i, race := range races {
		ids[i] = race.ID
	}
	subraces, err := o.children.Subraces(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compose races")
	}

	details := make([]*RaceDetails, len(races))
	for i, race := range races {
		details[i] = &RaceDetails{Race: race, Subraces: nonNil(subraces[race.ID])}
	}

	slog.DebugContext(ctx, "Composed race details", "races", len(details))
	return &ListRaceDetailsOutput{Details: details}, nil
}

func (o *orchestrator) ListAttributes(ctx context.Context, _ *ListAttributesInput) (*ListAttributesOutput, error) {
	attributes, err := findAll[dnd5e.Attribute](ctx, o.repo, dnd5e.KindAttribute)
	if err != nil {
		return nil, err
	}
	return &ListAttributesOutput{Attributes: attributes}, nil
}

func (o *orchestrator) ListAlignments(ctx context.Context, _ *ListAlignmentsInput) (*ListAlignmentsOutput, error) {
	alignments, err := findAll[dnd5e.Alignment](ctx, o.repo, dnd5e.KindAlignment)
	if err != nil {
		return nil, err
	}
	return &ListAlignmentsOutput{Alignments: alignments}, nil
}

func (o *orchestrator) ListBackgrounds(ctx context.Context, _ *ListBackgroundsInput) (*ListBackgroundsOutput, error) {
	backgrounds, err := findAll[dnd5e.Background](ctx, o.repo, dnd5e.KindBackground)
	if err != nil {
		return nil, err
	}
	return &ListBackgroundsOutput{Backgrounds: backgrounds}, nil
}

func (o *orchestrator) ListFeatures(ctx context.Context, input *ListFeaturesInput) (*ListFeaturesOutput, error) {
	if input == nil {
		input = &ListFeaturesInput{}
	}

	features, err := findAll[dnd5e.Feature](ctx, o.repo, dnd5e.KindFeature)
	if err != nil {
		return nil, err
	}
	if input.ClassName == "" {
		return &ListFeaturesOutput{Features: features}, nil
	}

	class, err := findOne[dnd5e.Class](ctx, o.repo, dnd5e.KindClass, input.ClassName)
	if err != nil {
		return nil, err
	}

	filtered := make([]*dnd5e.Feature, 0)
	for _, feature := range features {
		if _, ok := feature.Classes[class.Name]; ok {
			filtered = append(filtered, feature)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Classes[class.Name] < filtered[j].Classes[class.Name]
	})

	return &ListFeaturesOutput{Features: filtered}, nil
}

func (o *orchestrator) GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	spell, err := findOne[dnd5e.Spell](ctx, o.repo, dnd5e.KindSpell, input.Name)
	if err != nil {
		return nil, err
	}
	return &GetSpellOutput{Spell: spell}, nil
}

func (o *orchestrator) ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error) {
	if input == nil {
		input = &ListSpellsInput{}
	}

	var (
		spells []*dnd5e.Spell
		err    error
	)
	if input.Level != nil {
		if *input.Level < 0 || *input.Level > 9 {
			return nil, errors.InvalidArgumentf("spell level must be between 0 and 9, got %d", *input.Level)
		}
		spells, err = findBy[dnd5e.Spell](ctx, o.repo, dnd5e.KindSpell, dnd5e.FieldLevel, strconv.Itoa(*input.Level))
	} else {
		spells, err = findAll[dnd5e.Spell](ctx, o.repo, dnd5e.KindSpell)
	}
	if err != nil {
		return nil, err
	}

	if input.ClassName != "" {
		filtered := make([]*dnd5e.Spell, 0, len(spells))
		for _, spell := range spells {
			for _, className := range spell.Classes {
				if strings.EqualFold(className, input.ClassName) {
					filtered = append(filtered, spell)
					break
				}
			}
		}
		spells = filtered
	}

	return &ListSpellsOutput{Spells: spells}, nil
}

func (o *orchestrator) ListEquipment(ctx context.Context, input *ListEquipmentInput) (*ListEquipmentOutput, error) {
	if input == nil {
		input = &ListEquipmentInput{}
	}

	var (
		equipment []*dnd5e.Equipment
		err       error
	)
	if input.Category != "" {
		equipment, err = findBy[dnd5e.Equipment](ctx, o.repo, dnd5e.KindEquipment, dnd5e.FieldCategory, input.Category)
	} else {
		equipment, err = findAll[dnd5e.Equipment](ctx, o.repo, dnd5e.KindEquipment)
	}
	if err != nil {
		return nil, err
	}
	return &ListEquipmentOutput{Equipment: equipment}, nil
}

func (o *orchestrator) GetEquipment(ctx context.Context, input *GetEquipmentInput) (*GetEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := findOne[dnd5e.Equipment](ctx, o.repo, dnd5e.KindEquipment, input.Name)
	if err != nil {
		return nil, err
	}
	return &GetEquipmentOutput{Equipment: item}, nil
}

func findAll[T any](ctx context.Context, repo documents.Repository, kind dnd5e.Kind) ([]*T, error) {
	out, err := repo.FindAll(ctx, documents.FindAllInput{Kind: kind})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %ss", kind)
	}
	return documents.Decode[T](out.Documents)
}

func findBy[T any](ctx context.Context, repo documents.Repository, kind dnd5e.Kind, field, value string) ([]*T, error) {
	out, err := repo.FindByField(ctx, documents.FindByFieldInput{Kind: kind, Field: field, Value: value})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %ss by %s", kind, field)
	}
	return documents.Decode[T](out.Documents)
}

// findOne looks key up as a name, then as an id
func findOne[T any](ctx context.Context, repo documents.Repository, kind dnd5e.Kind, key string) (*T, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, errors.InvalidArgumentf("%s name or id is required", kind)
	}

	for _, field := range []string{dnd5e.FieldName, dnd5e.FieldID} {
		found, err := findBy[T](ctx, repo, kind, field, key)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			return found[0], nil
		}
	}

	return nil, notFound(ctx, repo, kind, key)
}

type named struct {
	Name string `json:"name"`
}

// notFound builds the NotFound error, suggesting the closest stored name
// when one is near enough to be a likely typo
func notFound(ctx context.Context, repo documents.Repository, kind dnd5e.Kind, key string) error {
	err := errors.NotFoundf("%s %q not found", kind, key).
		WithMetaMap(map[string]interface{}{
			"kind": string(kind),
			"name": key,
		})

	candidates, lookupErr := findAll[named](ctx, repo, kind)
	if lookupErr != nil {
		slog.WarnContext(ctx, "Failed to load suggestions", "kind", kind, "error", lookupErr)
		return err
	}

	if suggestion := closest(key, candidates); suggestion != "" {
		err = err.WithMeta("suggestion", suggestion)
	}
	return err
}

func closest(key string, candidates []*named) string {
	target := strings.ToLower(key)
	best, bestDistance := "", -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(target, strings.ToLower(c.Name))
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = c.Name, d
		}
	}

	limit := len(target) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDistance < 0 || bestDistance > limit {
		return ""
	}
	return best
}

func nonNil[T any](in []*T) []*T {
	if in == nil {
		return []*T{}
	}
	return in
}
