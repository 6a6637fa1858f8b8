// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/finchapp/finch/pkg/constants"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Configuration holds all configuration for finch.
type Configuration struct {
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
	Server   ServerConfig   `yaml:"server,omitempty"`
	Store    StoreConfig    `yaml:"store,omitempty"`
	Advisor  AdvisorConfig  `yaml:"advisor,omitempty"`
	Briefing BriefingConfig `yaml:"briefing,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// ServerConfig holds HTTP API configuration options
type ServerConfig struct {
	Address string `yaml:"address,omitempty"`
}

// StoreConfig holds persistence configuration options
type StoreConfig struct {
	Path string `yaml:"path,omitempty"`
}

// AdvisorConfig holds the advisory service connection options. An empty
// baseUrl disables the advisor.
type AdvisorConfig struct {
	BaseURL        string `yaml:"baseUrl,omitempty"`
	APIKey         string `yaml:"apiKey,omitempty"`
	Model          string `yaml:"model,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"`
}

// BriefingConfig holds the nightly briefing job options.
type BriefingConfig struct {
	Schedule string `yaml:"schedule,omitempty"` // cron expression
	Disabled bool   `yaml:"disabled,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from the
// given reader.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// ApplyDefaults fills unset fields with their default values.
func (c *Configuration) ApplyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	if c.Store.Path == "" {
		c.Store.Path = constants.DefaultStorePath
	}
	if c.Briefing.Schedule == "" {
		c.Briefing.Schedule = constants.DefaultBriefingSchedule
	}
	if c.Advisor.TimeoutSeconds <= 0 {
		c.Advisor.TimeoutSeconds = 30
	}
}

// AdvisorTimeout returns the advisor timeout as a duration.
func (c *Configuration) AdvisorTimeout() time.Duration {
	return time.Duration(c.Advisor.TimeoutSeconds) * time.Second
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unrecognized logging level %q, the logger will reject it", c.Logging.Level))
	}

	switch c.Logging.Format {
	case "", "json", "console":
	default:
		warnings = append(warnings, fmt.Sprintf("unrecognized logging format %q, the logger will reject it", c.Logging.Format))
	}

	if c.Advisor.BaseURL == "" {
		warnings = append(warnings, "no advisor baseUrl configured; advisory endpoints will return empty results")
	} else if c.Advisor.APIKey == "" {
		warnings = append(warnings, "advisor baseUrl is set but apiKey is empty")
	}

	return warnings
}

// MarshalYAMLBytes serializes the configuration for export.
func (c *Configuration) MarshalYAMLBytes() ([]byte, error) {
	return yaml.Marshal(c)
}
