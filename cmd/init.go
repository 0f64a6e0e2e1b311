package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/conneroisu/expressor/internal/config"
	"github.com/conneroisu/expressor/internal/templates"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file init writes and the root command looks for.
const ConfigFileName = ".expressor.yml"

var initCmd = &cobra.Command{
	Use:     "init [dir]",
	Aliases: []string{"i"},
	Short:   "Scaffold an expressor project",
	Long: `Create .expressor.yml with the default settings and a template directory
holding the generic HelloWorld template. Existing files are never
overwritten.

Examples:
  expressor init          # Scaffold the current directory
  expressor init my-app   # Scaffold my-app, creating it when needed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	cfg := config.Default()
	configPath := filepath.Join(dir, ConfigFileName)
	templatePath := filepath.Join(dir, cfg.Template.Dir, cfg.Template.Fallback+cfg.Target.Extension)

	for _, path := range []string{configPath, templatePath} {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration: %w", err)
	}

	content, err := templates.Builtin().Read()
	if err != nil {
		return err
	}
	content = templates.Substitute(content, templates.BuiltinPlaceholder, cfg.Template.Placeholder)

	if err := os.MkdirAll(filepath.Dir(templatePath), 0755); err != nil {
		return fmt.Errorf("error creating template directory: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return err
	}
	if err := os.WriteFile(templatePath, []byte(content), 0644); err != nil {
		return err
	}

	st := newStyles(cmd.OutOrStdout())
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, st.success.Render("Created "+configPath))
	fmt.Fprintln(out, st.success.Render("Created "+templatePath))
	fmt.Fprintln(out, st.muted.Render("Next: expressor run <file>.expresso"))
	return nil
}
