// Package config provides configuration management for expressor using
// Viper for loading from files, environment variables, and command-line
// flags.
//
// The configuration controls the source file extension, where templates are
// looked up and which placeholder they carry, the target and compiled file
// extensions, and the external compiler and runtime commands. Every value
// has a default matching the standard Expresso-to-Java toolchain, so an
// empty configuration is valid.
package config

import (
	experrors "github.com/conneroisu/expressor/internal/errors"
	"github.com/spf13/viper"
)

// Default values applied when a setting is absent.
const (
	DefaultSourceExtension   = ".expresso"
	DefaultTemplateDir       = "src/main/resources/template"
	DefaultTemplateFallback  = "HelloWorld"
	DefaultPlaceholder       = "HelloWorld"
	DefaultTargetExtension   = ".java"
	DefaultCompiledExtension = ".class"
	DefaultCompilerCommand   = "javac"
	DefaultRuntimeCommand    = "java"
	DefaultOutputDir         = "."
	DefaultLogLevel          = "error"
	DefaultLogFormat         = "text"
)

// Config is the resolved expressor configuration.
type Config struct {
	Source   SourceConfig   `mapstructure:"source" yaml:"source" json:"source"`
	Template TemplateConfig `mapstructure:"template" yaml:"template" json:"template"`
	Target   TargetConfig   `mapstructure:"target" yaml:"target" json:"target"`
	Compiler CommandConfig  `mapstructure:"compiler" yaml:"compiler" json:"compiler"`
	Runtime  CommandConfig  `mapstructure:"runtime" yaml:"runtime" json:"runtime"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output" json:"output"`
	Log      LogConfig      `mapstructure:"log" yaml:"log" json:"log"`
}

type SourceConfig struct {
	Extension string `mapstructure:"extension" yaml:"extension" json:"extension"`
}

// TemplateConfig controls template lookup and substitution.
type TemplateConfig struct {
	Dir         string `mapstructure:"dir" yaml:"dir" json:"dir"`
	Fallback    string `mapstructure:"fallback" yaml:"fallback" json:"fallback"`
	Placeholder string `mapstructure:"placeholder" yaml:"placeholder" json:"placeholder"`
	// Builtin enables the embedded default template as the last lookup
	// candidate.
	Builtin bool `mapstructure:"builtin" yaml:"builtin" json:"builtin"`
}

type TargetConfig struct {
	Extension         string `mapstructure:"extension" yaml:"extension" json:"extension"`
	CompiledExtension string `mapstructure:"compiled_extension" yaml:"compiled_extension" json:"compiled_extension"`
}

// CommandConfig names an external executable and the arguments placed
// before the artifact argument.
type CommandConfig struct {
	Command string   `mapstructure:"command" yaml:"command" json:"command"`
	Args    []string `mapstructure:"args" yaml:"args,omitempty" json:"args,omitempty"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir" json:"dir"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// envKeys are the settings that may come from EXPRESSOR_* variables.
var envKeys = []string{
	"source.extension",
	"template.dir",
	"template.fallback",
	"template.placeholder",
	"template.builtin",
	"target.extension",
	"target.compiled_extension",
	"compiler.command",
	"compiler.args",
	"runtime.command",
	"runtime.args",
	"output.dir",
	"log.level",
	"log.format",
}

// Load reads the configuration from the global viper instance, applies
// defaults and validates the result.
func Load() (*Config, error) {
	// AutomaticEnv only answers for keys viper already knows about.
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// viper.Unmarshal does not see values bound only through BindPFlag or
	// AutomaticEnv for nested keys, so read those explicitly.
	if viper.IsSet("template.dir") {
		config.Template.Dir = viper.GetString("template.dir")
	}
	if viper.IsSet("template.builtin") {
		config.Template.Builtin = viper.GetBool("template.builtin")
	}
	if viper.IsSet("log.level") {
		config.Log.Level = viper.GetString("log.level")
	}
	if viper.IsSet("compiler.args") && len(config.Compiler.Args) == 0 {
		config.Compiler.Args = viper.GetStringSlice("compiler.args")
	}
	if viper.IsSet("runtime.args") && len(config.Runtime.Args) == 0 {
		config.Runtime.Args = viper.GetStringSlice("runtime.args")
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, experrors.NewConfigError(experrors.ErrCodeConfigInvalid, "invalid configuration", err)
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Source.Extension == "" {
		config.Source.Extension = DefaultSourceExtension
	}

	if config.Template.Dir == "" {
		config.Template.Dir = DefaultTemplateDir
	}
	if config.Template.Fallback == "" {
		config.Template.Fallback = DefaultTemplateFallback
	}
	if config.Template.Placeholder == "" {
		config.Template.Placeholder = DefaultPlaceholder
	}

	if config.Target.Extension == "" {
		config.Target.Extension = DefaultTargetExtension
	}
	if config.Target.CompiledExtension == "" {
		config.Target.CompiledExtension = DefaultCompiledExtension
	}

	if config.Compiler.Command == "" {
		config.Compiler.Command = DefaultCompilerCommand
	}
	if config.Runtime.Command == "" {
		config.Runtime.Command = DefaultRuntimeCommand
	}

	if config.Output.Dir == "" {
		config.Output.Dir = DefaultOutputDir
	}

	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}
}
