// Package cli implements the auditctl command tree.
package cli

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"category-audit-backend/internal/logging"
)

const envPrefix = "AECAUDIT"

// NewRootCmd creates the root command with every subcommand attached.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auditctl",
		Short: "Audit AEC model categories against a contract",
		Long: `auditctl cross-checks the categories used in an AEC Data Model
element group against a contract of required categories, straight from the
command line.

Credentials come from the environment: APS_ACCESS_TOKEN for a ready-made
token, or APS_CLIENT_ID plus APS_CLIENT_SECRET for two-legged OAuth.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env is optional
			_ = godotenv.Load()

			if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
				viper.SetConfigFile(cfgFile)
			} else {
				if home, err := os.UserHomeDir(); err == nil {
					viper.AddConfigPath(home)
				}
				viper.AddConfigPath(".")
				viper.SetConfigType("yaml")
				viper.SetConfigName(".auditctl")
			}
			// the config file is optional too
			_ = viper.ReadInConfig()

			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logging.Init("debug")
			} else {
				logging.Init("warn")
			}
			return nil
		},
	}

	cmd.PersistentFlags().String("config", "", "config file (default is $HOME/.auditctl.yaml)")
	cmd.PersistentFlags().StringP("element-group", "g", "", "element group ID of the model to audit")
	cmd.PersistentFlags().String("region", "", "APS region header override (US, EMEA, AUS)")
	cmd.PersistentFlags().String("contract", "", "path to a contract YAML file")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json or yaml (default: auto-detect)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	for _, flag := range []string{"element-group", "region", "contract", "output"} {
		_ = viper.BindPFlag(flag, cmd.PersistentFlags().Lookup(flag))
	}
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	cmd.AddCommand(
		NewCategoriesCmd(),
		NewInstancesCmd(),
		NewSummaryCmd(),
		NewReportCmd(),
		NewViewerCmd(),
	)

	return cmd
}
