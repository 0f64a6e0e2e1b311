package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/conneroisu/expressor/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the expressor configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after merging the config file, EXPRESSOR_*
environment variables, global flags and defaults. Validation warnings are
written to stderr.

Examples:
  expressor config show
  expressor config show --format json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().StringVarP(&configFormat, "format", "f", "yaml", "Output format (yaml, json)")
	AddFlagValidation(configShowCmd, "format", ValidateFormat("yaml", "json"))
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "# config file: %s\n", used)
	}
	if result := config.Validate(cfg); result.HasWarnings() {
		st := newStyles(cmd.ErrOrStderr())
		fmt.Fprint(cmd.ErrOrStderr(), renderLines(st.muted, result.String()))
	}

	return writeConfig(cmd, cfg, configFormat)
}

func writeConfig(cmd *cobra.Command, cfg *config.Config, format string) error {
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(cfg)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(cfg); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format: %s (supported: yaml, json)", format)
	}
}
