package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"category-audit-backend/internal/models"
	"category-audit-backend/internal/output"
)

// NewInstancesCmd creates the instances command.
func NewInstancesCmd() *cobra.Command {
	var categories []string

	cmd := &cobra.Command{
		Use:   "instances",
		Short: "List family instances of the selected categories",
		Long: `Lists the family instances of the given categories. Without
--category the default instance categories are queried: Structural Framing,
Structural Columns, Walls, Floors, Doors and Windows.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstances(cmd, categories)
		},
	}

	cmd.Flags().StringArrayVar(&categories, "category", nil, "category to query (repeatable)")

	return cmd
}

func runInstances(cmd *cobra.Command, categories []string) error {
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

	records, err := svc.FamilyInstances(cmd.Context(), groupID, categories)
	if err != nil {
		return fmt.Errorf("failed to fetch family instances: %w", err)
	}

	formatter := output.NewFormatter(format)
	if format != output.FormatTable {
		if records == nil {
			records = []models.ElementRecord{}
		}
		return formatter.Format(cmd.OutOrStdout(), records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No family instances found in the selected categories")
		return nil
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{rec.Category, rec.FamilyName, rec.TypeName, rec.ElementName})
	}

	return formatter.Format(cmd.OutOrStdout(), output.Data{
		Headers: []string{"Category", "Family Name", "Type Name", "Element Name"},
		Rows:    rows,
	})
}
