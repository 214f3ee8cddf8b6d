// Package config: Viper-based hierarchical configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/samvdst/camtconvert/internal/camtwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	// Placeholders overrides the synthetic values emitted for the
	// schema-mandatory fields the source never carries.
	Placeholders camtwriter.Placeholders `mapstructure:"placeholders" yaml:"placeholders"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional config file, then CAMTCONVERT_*
// environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.camtconvert")
	v.AddConfigPath(".camtconvert")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CAMTCONVERT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
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

// LoadPlaceholders reads an explicit YAML placeholders file and returns
// the default placeholders with the file's non-empty values applied.
func LoadPlaceholders(data []byte) (camtwriter.Placeholders, error) {
	placeholders := camtwriter.DefaultPlaceholders()

	var overrides camtwriter.Placeholders
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return placeholders, fmt.Errorf("failed to parse placeholders file: %w", err)
	}

	applyOverride(&placeholders.RecipientBIC, overrides.RecipientBIC)
	applyOverride(&placeholders.ServicerBIC, overrides.ServicerBIC)
	applyOverride(&placeholders.ServicerName, overrides.ServicerName)
	applyOverride(&placeholders.ServicerOtherID, overrides.ServicerOtherID)
	applyOverride(&placeholders.ServicerOtherIssuer, overrides.ServicerOtherIssuer)
	applyOverride(&placeholders.AdditionalInfo, overrides.AdditionalInfo)

	return placeholders, nil
}

func applyOverride(target *string, value string) {
	if value != "" {
		*target = value
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	defaults := camtwriter.DefaultPlaceholders()
	v.SetDefault("placeholders.recipient_bic", defaults.RecipientBIC)
	v.SetDefault("placeholders.servicer_bic", defaults.ServicerBIC)
	v.SetDefault("placeholders.servicer_name", defaults.ServicerName)
	v.SetDefault("placeholders.servicer_other_id", defaults.ServicerOtherID)
	v.SetDefault("placeholders.servicer_other_issuer", defaults.ServicerOtherIssuer)
	v.SetDefault("placeholders.additional_info", defaults.AdditionalInfo)
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	return nil
}
