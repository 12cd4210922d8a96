package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
	"github.com/laasilva/dracolich-library-api-sub000/internal/orchestrators/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the document store once and exit",
	Long:  `Run the ordered seed pipeline against the configured store. An already seeded store is left alone.`,
	RunE:  runSeedCommand,
}

func init() {
	seedCmd.Flags().Bool("dry-run", false, "validate the catalog and report batch sizes without writing")
	seedCmd.Flags().Bool("repair-partial", false, "resume a partially seeded store instead of skipping it")
}

func runSeedCommand(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read flags")
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	seeder, err := seed.NewOrchestrator(&seed.Config{
		Repository:    repo,
		RepairPartial: cfg.RepairPartial,
	})
	if err != nil {
		return err
	}

	return seedOnce(ctx, cmd.OutOrStdout(), seeder, dryRun)
}

// seedOnce runs the pipeline and prints its report as YAML
func seedOnce(ctx context.Context, w io.Writer, seeder seed.Service, dryRun bool) error {
	out, err := seeder.SeedAll(ctx, &seed.SeedAllInput{DryRun: dryRun})
	if err != nil {
		return err
	}
	return writeYAML(w, seedReport(out))
}

type stageLine struct {
	Stage      string `yaml:"stage"`
	Planned    int    `yaml:"planned"`
	Inserted   int    `yaml:"inserted"`
	Duplicates int    `yaml:"duplicates"`
	Skipped    bool   `yaml:"skipped,omitempty"`
	Duration   string `yaml:"duration,omitempty"`
}

type seedSummary struct {
	Skipped    bool        `yaml:"skipped"`
	DryRun     bool        `yaml:"dry_run"`
	Inserted   int         `yaml:"inserted"`
	Duplicates int         `yaml:"duplicates"`
	Stages     []stageLine `yaml:"stages"`
}

func seedReport(out *seed.SeedAllOutput) *seedSummary {
	summary := &seedSummary{
		Skipped:    out.Skipped,
		DryRun:     out.DryRun,
		Inserted:   out.Inserted(),
		Duplicates: out.Duplicates(),
		Stages:     make([]stageLine, 0, len(out.Stages)),
	}
	for _, st := range out.Stages {
		line := stageLine{
			Stage:      st.Name,
			Planned:    st.Planned,
			Inserted:   st.Inserted,
			Duplicates: st.Duplicates,
			Skipped:    st.Skipped,
		}
		if st.Duration > 0 {
			line.Duration = st.Duration.String()
		}
		summary.Stages = append(summary.Stages, line)
	}
	return summary
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to write yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "failed to write yaml")
	}
	return nil
}
