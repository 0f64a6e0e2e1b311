// Package cmd provides the command-line interface for expressor.
//
// Configuration System:
//
//	Settings are resolved from several sources, highest priority first:
//	1. Command-line flags (--template-dir, --log-level, ...)
//	2. Individual environment variables (EXPRESSOR_TEMPLATE_DIR, ...)
//	3. The configuration file: --config, else EXPRESSOR_CONFIG_FILE, else
//	   .expressor.yml in the current directory
//	4. Built-in defaults
//
// Environment Variables:
//
//	EXPRESSOR_CONFIG_FILE: Path to custom configuration file
//	EXPRESSOR_TEMPLATE_DIR: Override template directory
//	EXPRESSOR_COMPILER_COMMAND: Override compiler executable
//	And the rest following the EXPRESSOR_<SECTION>_<OPTION> pattern
package cmd

import (
	"errors"
	"os"
	"strings"

	"github.com/conneroisu/expressor/internal/build"
	"github.com/conneroisu/expressor/internal/config"
	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// configErr holds the failure to read the configuration file, reported by
// commands that load the configuration.
var configErr error

// newRunner creates the process runner used by the compile and execute
// stages. Tests replace it with a fake.
var newRunner = func(cmd *cobra.Command) build.CommandRunner {
	return &build.ProcessRunner{
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "expressor",
	Short: "Build driver for Expresso programs",
	Long: `Expressor turns an Expresso source file into a running Java program.

Each command extends the previous one:
  expressor transpile <file>   Validate the source and write the Java file
  expressor build <file>       Transpile, then compile with javac
  expressor run <file>         Build, then execute with java

Supporting commands:
  expressor init               Scaffold .expressor.yml and the template directory
  expressor config show        Print the effective configuration
  expressor version            Show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .expressor.yml, can also use EXPRESSOR_CONFIG_FILE env var)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("template-dir", "", "directory holding target templates")
	flags.Bool("builtin-template", false, "fall back to the embedded template when none is found")

	AddPersistentFlagValidation(rootCmd, "log-level", ValidateLogLevel)
}

// initConfig initializes the configuration system.
//
// The configuration file is chosen by the --config flag, then the
// EXPRESSOR_CONFIG_FILE environment variable, then .expressor.yml in the
// current directory. A missing default file is not an error and defaults
// apply; a named file that is missing, or any file that cannot be parsed,
// fails every command that loads the configuration.
func initConfig() {
	explicit := cfgFile
	if explicit == "" {
		explicit = os.Getenv("EXPRESSOR_CONFIG_FILE")
	}

	if explicit != "" {
		viper.SetConfigFile(explicit)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".expressor")
	}

	// EXPRESSOR_TEMPLATE_DIR, EXPRESSOR_COMPILER_COMMAND, ...
	viper.SetEnvPrefix("EXPRESSOR")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	flags := rootCmd.PersistentFlags()
	viper.BindPFlag("log.level", flags.Lookup("log-level"))
	viper.BindPFlag("template.dir", flags.Lookup("template-dir"))
	viper.BindPFlag("template.builtin", flags.Lookup("builtin-template"))

	// Only a missing default file is fine; a named file must exist.
	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			configErr = experrors.NewConfigError(experrors.ErrCodeConfigInvalid, "error reading config file", err)
		}
	}
}

// loadConfig returns the effective configuration, or the error that kept
// the configuration file from being read.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	return config.Load()
}
