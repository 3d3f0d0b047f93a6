// Package config provides configuration management for the localvec
// commands using Viper for loading from files, environment variables and
// command-line flags.
//
// Keys follow the section.option layout of the YAML file and map to
// LOCALVEC_SECTION_OPTION environment variables.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/conneroisu/localvec/internal/errors"
	"github.com/conneroisu/localvec/internal/logging"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LOCALVEC"

	// MaxInlineCapacity bounds vec.inline_capacity.
	MaxInlineCapacity = 4096
)

// EnvKeyReplacer maps nested keys such as vec.inline_capacity to
// LOCALVEC_VEC_INLINE_CAPACITY.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

type Config struct {
	Log LogConfig `mapstructure:"log" yaml:"log" json:"log"`
	Vec VecConfig `mapstructure:"vec" yaml:"vec" json:"vec"`
	WC  WCConfig  `mapstructure:"wc" yaml:"wc" json:"wc"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

type VecConfig struct {
	InlineCapacity int `mapstructure:"inline_capacity" yaml:"inline_capacity" json:"inline_capacity"`
}

type WCConfig struct {
	Locale string `mapstructure:"locale" yaml:"locale" json:"locale"`
}

// SetDefaults registers every key with its default so that environment
// overrides are picked up by Unmarshal even when no file sets the key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("vec.inline_capacity", 8)
	v.SetDefault("wc.locale", "en")
}

// Load reads the configuration from the global Viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "cannot decode configuration")
	}

	if err := validateConfig(&config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "invalid configuration")
	}

	return &config, nil
}

// validateConfig validates configuration values
func validateConfig(config *Config) error {
	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return errors.NewValidationError(errors.ErrCodeValidationFailed, err.Error()).
			WithContext("field", "log.level")
	}

	switch config.Log.Format {
	case "text", "json":
	default:
		return errors.NewValidationError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("log format %q is not one of text, json", config.Log.Format)).
			WithContext("field", "log.format")
	}

	if config.Vec.InlineCapacity < 0 || config.Vec.InlineCapacity > MaxInlineCapacity {
		return errors.NewValidationError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("inline capacity %d is not in valid range 0-%d", config.Vec.InlineCapacity, MaxInlineCapacity)).
			WithContext("field", "vec.inline_capacity")
	}

	if _, err := language.Parse(config.WC.Locale); err != nil {
		return errors.NewValidationError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("locale %q is not a valid language tag", config.WC.Locale)).
			WithContext("field", "wc.locale")
	}

	return nil
}

// LoggerConfig builds the logger settings for output.
func (c *Config) LoggerConfig(output io.Writer) *logging.LoggerConfig {
	level, _ := logging.ParseLevel(c.Log.Level)
	return &logging.LoggerConfig{
		Level:  level,
		Format: c.Log.Format,
		Output: output,
	}
}

// Language returns the parsed wc.locale tag, falling back to English.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.WC.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
