package cli

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"category-audit-backend/internal/output"
)

// NewSummaryCmd creates the summary command.
func NewSummaryCmd() *cobra.Command {
	var withStats bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Cross-check the master category list against contract and model",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd, withStats)
		},
	}

	cmd.Flags().BoolVar(&withStats, "stats", false, "append aggregate totals to the table")

	return cmd
}

func runSummary(cmd *cobra.Command, withStats bool) error {
	groupID, err := requireElementGroup()
	if err != nil {
		return err
	}
	format, err := resolveFormat()
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

	formatter := output.NewFormatter(format)
	if format != output.FormatTable {
		return formatter.Format(cmd.OutOrStdout(), summary)
	}

	rows := make([][]string, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		rows = append(rows, []string{
			row.Category,
			row.Symbol,
			strconv.Itoa(row.ElementCount),
			row.Description,
		})
	}

	err = formatter.Format(cmd.OutOrStdout(), output.Data{
		Headers:         []string{"Category", "Status", "Elements", "Description"},
		Rows:            rows,
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignCenter, tw.AlignRight, tw.AlignLeft},
	})
	if err != nil {
		return err
	}

	if withStats {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "\nTotal Categories: %d\n", summary.Stats.TotalCategories)
		fmt.Fprintf(w, "Categories in Model: %d\n", summary.Stats.CategoriesInModel)
		fmt.Fprintf(w, "Categories in Contract: %d\n", summary.Stats.CategoriesInContract)
		fmt.Fprintf(w, "Contract Categories Found: %d\n", summary.Stats.ContractCategoriesFound)
		fmt.Fprintf(w, "Status: %s\n", summary.Stats.Status)
	}

	return nil
}
