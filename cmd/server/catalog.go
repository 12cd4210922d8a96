package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/laasilva/dracolich-library-api-sub000/internal/catalog"
	"github.com/laasilva/dracolich-library-api-sub000/internal/clients/srd"
	"github.com/laasilva/dracolich-library-api-sub000/internal/entities/dnd5e"
	"github.com/laasilva/dracolich-library-api-sub000/internal/errors"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the built-in reference catalog",
}

var catalogDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the catalog as YAML",
	RunE: func(cmd *cobra.Command, _ []string) error {
		kind, err := cmd.Flags().GetString("kind")
		if err != nil {
			return err
		}
		return dumpCatalog(cmd.OutOrStdout(), catalog.Load(), kind)
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the catalog's cross references",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return validateCatalog(cmd.OutOrStdout(), catalog.Load())
	},
}

var catalogAuditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Compare catalog classes and races against the SRD API",
	RunE:  runAudit,
}

func init() {
	catalogDumpCmd.Flags().String("kind", "", "only dump one kind (race, class, spell, ...)")

	catalogAuditCmd.Flags().String("srd-url", "", "SRD API base URL")
	catalogAuditCmd.Flags().Duration("timeout", 2*time.Minute, "overall audit timeout")
	catalogAuditCmd.Flags().Bool("strict", false, "exit with an error when the audit finds differences")

	catalogCmd.AddCommand(catalogDumpCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogAuditCmd)
}

func dumpCatalog(w io.Writer, set *catalog.Set, kind string) error {
	if kind == "" {
		return writeYAML(w, set)
	}

	k := dnd5e.Kind(kind)
	if !k.Valid() {
		return errors.InvalidArgumentf("unknown kind %q", kind)
	}
	return writeYAML(w, set.Records(k))
}

func validateCatalog(w io.Writer, set *catalog.Set) error {
	if err := set.Validate(); err != nil {
		return err
	}

	total := 0
	for _, n := range set.Counts() {
		total += n
	}
	_, err := fmt.Fprintf(w, "catalog is consistent: %d records\n", total)
	return err
}

func runAudit(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}

	client, err := srd.New(&srd.Config{BaseURL: cfg.SRDBaseURL})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	return auditCatalog(ctx, cmd.OutOrStdout(), client, catalog.Load(), strict)
}

func auditCatalog(ctx context.Context, w io.Writer, client srd.Client, set *catalog.Set, strict bool) error {
	report, err := srd.Audit(ctx, client, set)
	if err != nil {
		return err
	}
	if err := writeYAML(w, report); err != nil {
		return err
	}
	if strict && !report.Clean() {
		return errors.FailedPreconditionf("audit found %d differences", len(report.Findings))
	}
	return nil
}
