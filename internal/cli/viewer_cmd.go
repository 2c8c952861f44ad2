package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"category-audit-backend/internal/viewer"
)

// NewViewerCmd creates the viewer command.
func NewViewerCmd() *cobra.Command {
	var (
		versionURN string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "viewer",
		Short: "Write an APS viewer page with contract categories highlighted",
		Long: `Writes a standalone HTML page that loads the model in the APS
Viewer, isolates the elements of every contract category and colors them
with the contract colors.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runViewer(cmd, versionURN, outPath)
		},
	}

	cmd.Flags().StringVar(&versionURN, "urn", "", "version URN of the model to load (required)")
	cmd.Flags().StringVar(&outPath, "out", "viewer.html", "output path for the HTML page")
	_ = cmd.MarkFlagRequired("urn")

	return cmd
}

func runViewer(cmd *cobra.Command, versionURN, outPath string) error {
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

	token, err := svc.Client().AccessToken(cmd.Context())
	if err != nil {
		return err
	}

	colored := svc.ColoredCategories(cmd.Context(), groupID, contract)
	overlay := viewer.BuildOverlay(colored)

	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := viewer.RenderPage(file, token, versionURN, overlay); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Viewer page written to", outPath)
	return nil
}
