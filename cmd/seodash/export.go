package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"seodash/internal/dataset"
	"seodash/internal/exporter"
	"seodash/internal/services"
	api "seodash/pkg/contracts/api/v1"
)

func exportCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export --table <name> --format <csv|pdf|xlsx>",
		Short: "Export a data set to CSV, PDF or XLSX",
		Long: `Export one of the dashboard's data sets to a file.

Without --out the file is written to the exports directory under its
default name, e.g. opportunities.csv or opportunities.pdf.

Examples:
  # Opportunities as a paginated PDF report
  seodash export --table opportunities --format pdf

  # Listings as a spreadsheet at a chosen path
  seodash export --table listings --format xlsx --out ./listings.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().String("table", "", "data set to export: opportunities, listings or queries (required)")
	cmd.Flags().String("format", "", "output format: csv, pdf or xlsx (required)")
	cmd.Flags().String("out", "", "output file path (default: exports directory)")
	cmd.Flags().String("title", "", "PDF report title (default: \"<Table> Report\")")

	cmd.MarkFlagRequired("table")
	cmd.MarkFlagRequired("format")

	return cmd
}

func runExport(cmd *cobra.Command, opts *globalOptions) error {
	table, _ := cmd.Flags().GetString("table")
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	title, _ := cmd.Flags().GetString("title")

	if _, err := exporter.ParseKind(format); err != nil {
		return err
	}

	env, err := opts.load(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if err := env.paths.EnsureDirectories(); err != nil {
		return err
	}

	ctx := cmd.Context()
	catalog, err := dataset.LoadCatalog(ctx, env.paths.DataDir, dataset.DefaultSchemas())
	if err != nil {
		return fmt.Errorf("failed to load data sets: %w", err)
	}

	exp, err := exporter.New(exporter.Options{
		Dir:      env.paths.ExportsDir,
		PageSize: env.cfg.Export.PageSize,
		MarginMM: env.cfg.Export.MarginMM,
		CSVBOM:   env.cfg.Export.CSVBOM,
	})
	if err != nil {
		return err
	}

	// --out is relative to the working directory, not the exports directory
	if out != "" {
		if out, err = filepath.Abs(out); err != nil {
			return err
		}
	}

	svc := services.NewExportService(catalog, exp, nil, env.logger)
	report, err := svc.ExportTo(ctx, api.ExportRequest{Table: table, Format: format, Title: title}, out)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %s (%d rows) to %s\n", report.Table, report.RowCount, report.FilePath)
	return nil
}
