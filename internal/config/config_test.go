package config

import (
	"strings"
	"testing"
	"time"

	"github.com/finchapp/finch/pkg/constants"
)

const sampleConfig = `
logging:
  level: debug
  format: console
server:
  address: ":9090"
store:
  path: /tmp/finch-test.db
advisor:
  baseUrl: http://localhost:4000
  apiKey: test-key
  model: advisor-small
  timeoutSeconds: 10
briefing:
  schedule: "30 5 * * *"
`

func TestLoadConfigurationFromReader(t *testing.T) {
	cfg, err := LoadConfigurationFromReader(strings.NewReader(sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader returned error: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
	if cfg.Server.Address != ":9090" {
		t.Errorf("Server.Address = %q, expected :9090", cfg.Server.Address)
	}
	if cfg.Store.Path != "/tmp/finch-test.db" {
		t.Errorf("Store.Path = %q", cfg.Store.Path)
	}
	if cfg.Advisor.BaseURL != "http://localhost:4000" {
		t.Errorf("Advisor.BaseURL = %q", cfg.Advisor.BaseURL)
	}
	if cfg.Advisor.Model != "advisor-small" {
		t.Errorf("Advisor.Model = %q", cfg.Advisor.Model)
	}
	if cfg.Briefing.Schedule != "30 5 * * *" {
		t.Errorf("Briefing.Schedule = %q", cfg.Briefing.Schedule)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg, err := LoadConfigurationFromReader(strings.NewReader("logging:\n  level: info\n"))
	if err != nil {
		t.Fatalf("LoadConfigurationFromReader returned error: %v", err)
	}

	if cfg.Server.Address != constants.DefaultServerAddress {
		t.Errorf("Server.Address = %q, expected default %q", cfg.Server.Address, constants.DefaultServerAddress)
	}
	if cfg.Store.Path != constants.DefaultStorePath {
		t.Errorf("Store.Path = %q, expected default %q", cfg.Store.Path, constants.DefaultStorePath)
	}
	if cfg.Briefing.Schedule != constants.DefaultBriefingSchedule {
		t.Errorf("Briefing.Schedule = %q, expected default %q", cfg.Briefing.Schedule, constants.DefaultBriefingSchedule)
	}
	if cfg.Advisor.TimeoutSeconds != 30 {
		t.Errorf("Advisor.TimeoutSeconds = %d, expected default 30", cfg.Advisor.TimeoutSeconds)
	}
}

func TestAdvisorTimeout(t *testing.T) {
	cfg := Configuration{Advisor: AdvisorConfig{TimeoutSeconds: 10}}
	if got := cfg.AdvisorTimeout(); got != 10*time.Second {
		t.Errorf("AdvisorTimeout = %v, expected 10s", got)
	}
}

func TestValidateConfiguration(t *testing.T) {
	tests := []struct {
		name             string
		config           Configuration
		expectedWarnings int
	}{
		{
			name: "Fully configured",
			config: Configuration{
				Logging: LoggingConfig{Level: "info", Format: "json"},
				Advisor: AdvisorConfig{BaseURL: "http://localhost:4000", APIKey: "k"},
			},
			expectedWarnings: 0,
		},
		{
			name: "No advisor",
			config: Configuration{
				Logging: LoggingConfig{Level: "info"},
			},
			expectedWarnings: 1,
		},
		{
			name: "Advisor without key",
			config: Configuration{
				Advisor: AdvisorConfig{BaseURL: "http://localhost:4000"},
			},
			expectedWarnings: 1,
		},
		{
			name: "Bad logging settings",
			config: Configuration{
				Logging: LoggingConfig{Level: "verbose", Format: "xml"},
				Advisor: AdvisorConfig{BaseURL: "http://localhost:4000", APIKey: "k"},
			},
			expectedWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := tt.config.ValidateConfiguration()
			if len(warnings) != tt.expectedWarnings {
				t.Errorf("got %d warnings %v, expected %d", len(warnings), warnings, tt.expectedWarnings)
			}
		})
	}
}

func TestMarshalYAMLBytesRoundTrip(t *testing.T) {
	cfg := Configuration{
		Server: ServerConfig{Address: ":8081"},
		Store:  StoreConfig{Path: "finch.db"},
	}

	data, err := cfg.MarshalYAMLBytes()
	if err != nil {
		t.Fatalf("MarshalYAMLBytes returned error: %v", err)
	}

	loaded, err := LoadConfigurationFromReader(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("reloading exported config returned error: %v", err)
	}
	if loaded.Server.Address != ":8081" {
		t.Errorf("round-tripped Server.Address = %q, expected :8081", loaded.Server.Address)
	}
}
