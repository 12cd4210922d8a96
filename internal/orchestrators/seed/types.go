package seed

import (
	"time"

	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
)

// SeedAllInput defines the request for seeding the store
type SeedAllInput struct {
	// DryRun validates the catalog and reports batch sizes without writing
	DryRun bool
}

// SeedAllOutput defines the response for seeding the store
type SeedAllOutput struct {
	// Skipped is set when the store was already seeded and nothing ran
	Skipped bool
	DryRun  bool
	Stages  []StageReport
}

// Inserted returns the number of new records across all stages
func (o *SeedAllOutput) Inserted() int {
	total := 0
	for _, stage := range o.Stages {
		total += stage.Inserted
	}
	return total
}

// Duplicates returns the number of duplicate records across all stages
func (o *SeedAllOutput) Duplicates() int {
	total := 0
	for _, stage := range o.Stages {
		total += stage.Duplicates
	}
	return total
}

// StageReport describes one stage of a seed run
type StageReport struct {
	Name       string
	Kind       dnd5e.Kind
	Planned    int
	Inserted   int
	Duplicates int
	// Skipped is set in repair mode when the kind already had records
	Skipped  bool
	Duration time.Duration
}
