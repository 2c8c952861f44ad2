package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"category-audit-backend/internal/services/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	var (
		outPath string
		label   string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Write the category summary as a PDF report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, outPath, label)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output path (default: Category_Summary_<timestamp>.pdf)")
	cmd.Flags().StringVar(&label, "label", "", "model file label shown on the report")

	return cmd
}

func runReport(cmd *cobra.Command, outPath, label string) error {
	groupID, err := requireElementGroup()
	if err != nil {
		return err
	}
	contract, err := loadContract()
	if err != nil {
		return err
	}
	svc, err := buildService()
	if err != nil {
		return err
	}

	summary, err := svc.Summarize(cmd.Context(), groupID, contract)
	if err != nil {
		return fmt.Errorf("failed to fetch categories from model: %w", err)
	}

	now := time.Now()
	pdf, err := report.Build(report.Params{
		ModelLabel:  label,
		Rows:        summary.Rows,
		GeneratedAt: now,
	})
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = report.Filename(now)
	}
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Report written to", outPath)
	return nil
}
