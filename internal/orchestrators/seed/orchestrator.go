// Package seed loads the reference catalog into the document store in
// dependency order, translating name references into store ids as it goes.
package seed

//go:generate mockgen -destination=mock/mock_service.go -package=seedmock github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/seed Service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/laasilva/dracolich-library-api-sub000/internal/catalog"
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/clock"
	"github.com/laasilva/dracolich-library-api-sub000/internal/pkg/metrics"
	"github.com/laasilva/dracolich-library-api-sub000/internal/repositories/documents"
)

// Service defines the interface for seeding
type Service interface {
	SeedAll(ctx context.Context, input *SeedAllInput) (*SeedAllOutput, error)
}

// Config holds the dependencies for the seed orchestrator
type Config struct {
	Repository documents.Repository
	// Catalog returns a fresh catalog per run; defaults to catalog.Load
	Catalog func() *catalog.Set
	Clock   clock.Clock
	Metrics *metrics.Metrics
	// RepairPartial gates each stage on its own kind instead of skipping the
	// whole run when attributes exist, so an interrupted run can resume
	RepairPartial bool
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
	repo          documents.Repository
	catalog       func() *catalog.Set
	clock         clock.Clock
	metrics       *metrics.Metrics
	repairPartial bool
}

// NewOrchestrator creates a new seed orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		repo:          cfg.Repository,
		catalog:       cfg.Catalog,
		clock:         cfg.Clock,
		metrics:       cfg.Metrics,
		repairPartial: cfg.RepairPartial,
	}
	if o.catalog == nil {
		o.catalog = catalog.Load
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	return o, nil
}

// SeedAll runs every stage in order. The first failing stage aborts the run;
// stages that already committed stay committed.
func (o *orchestrator) SeedAll(ctx context.Context, input *SeedAllInput) (*SeedAllOutput, error) {
	if input == nil {
		input = &SeedAllInput{}
	}

	set := o.catalog()
	if err := set.Validate(); err != nil {
		o.metrics.SeedRun(metrics.OutcomeFailed)
		return nil, errors.Wrap(err, "catalog is inconsistent")
	}

	if input.DryRun {
		return o.dryRun(ctx, set), nil
	}

	if !o.repairPartial {
		seeded, err := o.alreadySeeded(ctx)
		if err != nil {
			o.metrics.SeedRun(metrics.OutcomeFailed)
			return nil, err
		}
		if seeded {
			slog.InfoContext(ctx, "Store already seeded, skipping")
			o.metrics.SeedRun(metrics.OutcomeSkipped)
			return &SeedAllOutput{Skipped: true, Stages: []StageReport{}}, nil
		}
	}

	res := NewResolver()
	output := &SeedAllOutput{Stages: make([]StageReport, 0, len(stages))}
	for _, st := range stages {
		report, err := o.runStage(ctx, set, res, st)
		if err != nil {
			slog.ErrorContext(ctx, "Seed stage failed",
				"stage", st.name,
				"completed_stages", len(output.Stages),
				"error", err)
			o.metrics.SeedRun(metrics.OutcomeFailed)
			return nil, errors.WrapWithCode(err, errors.GetCode(err), st.name).WithMeta("stage", st.name)
		}
		output.Stages = append(output.Stages, *report)
	}

	slog.InfoContext(ctx, "Seed completed",
		"inserted", output.Inserted(),
		"duplicates", output.Duplicates())
	o.metrics.SeedRun(metrics.OutcomeSeeded)
	return output, nil
}

// alreadySeeded is the all-or-nothing gate: attributes are the first stage,
// so any attribute means a previous run started
func (o *orchestrator) alreadySeeded(ctx context.Context) (bool, error) {
	out, err := o.repo.Count(ctx, documents.CountInput{Kind: dnd5e.KindAttribute})
	if err != nil {
		return false, errors.Wrap(err, "failed to check seed state")
	}
	return out.Count > 0, nil
}

func (o *orchestrator) runStage(ctx context.Context, set *catalog.Set, res *Resolver, st stage) (*StageReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "seed interrupted")
	}

	start := o.clock.Now()
	report := &StageReport{Name: st.name, Kind: st.kind, Planned: len(set.Records(st.kind))}

	if o.repairPartial {
		restored, err := o.restore(ctx, res, st.kind)
		if err != nil {
			return nil, err
		}
		if restored {
			report.Skipped = true
			report.Duration = o.clock.Now().Sub(start)
			slog.InfoContext(ctx, "Seed stage already present, skipping",
				"stage", st.name,
				"known", res.Len(st.kind))
			return report, nil
		}
	}

	records, err := st.build(set, res)
	if err != nil {
		return nil, err
	}

	out, err := o.repo.InsertMany(ctx, documents.InsertManyInput{Kind: st.kind, Records: records})
	if err != nil {
		return nil, err
	}

	for _, result := range out.Results {
		res.Remember(st.kind, result.Name, result.ID)
	}

	report.Inserted = out.Inserted()
	report.Duplicates = out.Duplicates()
	report.Duration = o.clock.Now().Sub(start)

	o.metrics.StageRecords(st.name, metrics.ResultInserted, report.Inserted)
	o.metrics.StageRecords(st.name, metrics.ResultDuplicate, report.Duplicates)
	o.metrics.StageDuration(st.name, report.Duration)

	slog.InfoContext(ctx, "Seed stage completed",
		"stage", st.name,
		"inserted", report.Inserted,
		"duplicates", report.Duplicates,
		"duration", report.Duration)

	return report, nil
}

type named struct {
	Name string `json:"name"`
}

// restore loads the ids of an already-seeded kind into the resolver and
// reports whether the kind had any records
func (o *orchestrator) restore(ctx context.Context, res *Resolver, kind dnd5e.Kind) (bool, error) {
	count, err := o.repo.Count(ctx, documents.CountInput{Kind: kind})
	if err != nil {
		return false, err
	}
	if count.Count == 0 {
		return false, nil
	}

	out, err := o.repo.FindAll(ctx, documents.FindAllInput{Kind: kind})
	if err != nil {
		return false, err
	}
	for _, doc := range out.Documents {
		record, err := documents.DecodeOne[named](doc)
		if err != nil {
			return false, err
		}
		res.Remember(kind, record.Name, doc.ID)
	}
	return true, nil
}

func (o *orchestrator) dryRun(ctx context.Context, set *catalog.Set) *SeedAllOutput {
	output := &SeedAllOutput{DryRun: true, Stages: make([]StageReport, 0, len(stages))}
	for _, st := range stages {
		output.Stages = append(output.Stages, StageReport{
			Name:    st.name,
			Kind:    st.kind,
			Planned: len(set.Records(st.kind)),
		})
	}

	slog.InfoContext(ctx, "Seed dry run completed", "stages", len(output.Stages))
	o.metrics.SeedRun(metrics.OutcomeDryRun)
	return output
}

func copyBonuses(in map[string]int) map[string]int {
	if in == nil {
		return nil
	}
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
