// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. FECHAMENTO_LOG_LEVEL.
const EnvPrefix = "FECHAMENTO"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter       string `mapstructure:"delimiter" yaml:"delimiter"`
		OutputDelimiter string `mapstructure:"output_delimiter" yaml:"output_delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Categories struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"categories" yaml:"categories"`

	Accounts struct {
		Bank      string `mapstructure:"bank" yaml:"bank"`
		Processor string `mapstructure:"processor" yaml:"processor"`
		Cash      string `mapstructure:"cash" yaml:"cash"`
	} `mapstructure:"accounts" yaml:"accounts"`

	Amounts struct {
		Strict bool `mapstructure:"strict" yaml:"strict"`
	} `mapstructure:"amounts" yaml:"amounts"`

	Output struct {
		Dir    string `mapstructure:"dir" yaml:"dir"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"output" yaml:"output"`
}

// NewViper returns a viper instance with defaults, config search paths and
// environment overrides set up. CLI flags are bound to it before Load.
func NewViper() *viper.Viper {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("fechamento")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fechamento")
	v.AddConfigPath(".")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// InitializeConfig loads the configuration from the default locations.
func InitializeConfig() (*Config, error) {
	return Load(NewViper(), "")
}

// Load reads configFile (or searches the default locations when empty),
// applies environment overrides and validates the result. A missing config
// file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ";")
	v.SetDefault("csv.output_delimiter", ";")

	v.SetDefault("rules.file", "regras_categorias.yaml")
	v.SetDefault("categories.file", "categorias_personalizadas.yaml")

	v.SetDefault("accounts.bank", "Itau")
	v.SetDefault("accounts.processor", "PagSeguro")
	v.SetDefault("accounts.cash", "Dinheiro")

	v.SetDefault("amounts.strict", false)

	v.SetDefault("output.dir", ".")
	v.SetDefault("output.format", "text")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %q", config.CSV.Delimiter)
	}
	if utf8.RuneCountInString(config.CSV.OutputDelimiter) != 1 {
		return fmt.Errorf("CSV output delimiter must be a single character, got: %q", config.CSV.OutputDelimiter)
	}

	if strings.TrimSpace(config.Rules.File) == "" {
		return fmt.Errorf("rules.file must not be empty")
	}
	if strings.TrimSpace(config.Categories.File) == "" {
		return fmt.Errorf("categories.file must not be empty")
	}

	if config.Output.Format != "text" && config.Output.Format != "json" {
		return fmt.Errorf("invalid output format: %s (must be 'text' or 'json')", config.Output.Format)
	}

	return nil
}

// InputDelimiter returns the delimiter used to read CSV statements.
func (c *Config) InputDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// ExportDelimiter returns the delimiter used for the exported CSV files.
func (c *Config) ExportDelimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.OutputDelimiter)
	return r
}
