package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"category-audit-backend/internal/output"
)

// NewCategoriesCmd creates the categories command.
func NewCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the categories used in the model with element counts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCategories(cmd)
		},
	}
}

func runCategories(cmd *cobra.Command) error {
	groupID, err := requireElementGroup()
	if err != nil {
		return err
	}
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	svc, err := buildService()
	if err != nil {
		return err
	}

	counts, err := svc.CategoryCounts(cmd.Context(), groupID)
	if err != nil {
		return fmt.Errorf("failed to fetch categories from model: %w", err)
	}

	formatter := output.NewFormatter(format)
	if format != output.FormatTable {
		return formatter.Format(cmd.OutOrStdout(), counts)
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, []string{name, strconv.Itoa(counts[name])})
	}

	return formatter.Format(cmd.OutOrStdout(), output.Data{
		Headers:         []string{"Category", "Elements"},
		Rows:            rows,
		ColumnAlignment: []tw.Align{tw.AlignLeft, tw.AlignRight},
	})
}
