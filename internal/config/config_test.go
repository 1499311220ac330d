package config

import (
	"os"
	"testing"
)

const sampleConfig = `
api:
  type: azure
  base_url: https://example.openai.azure.com
  key: dummy
  version: "2023-05-15"
model: gpt-4o
temperature: 0.2
server:
  host: 0.0.0.0
  port: "8723"
actions:
  translate:
    enabled: true
    primary_language: French
  polish:
    enabled: false
`

// TestLoad verifies that Load unmarshals the full configuration surface and
// applies language defaults to partially configured actions.
func TestLoad(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "cfg-*.yaml")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	if _, err := tmp.WriteString(sampleConfig); err != nil {
		t.Fatalf("write: %v", err)
	}
	tmp.Close()

	t.Setenv("CONFIG_PATH", tmp.Name())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.Type != APITypeAzure {
		t.Fatalf("expected azure api type, got %s", cfg.API.Type)
	}
	if cfg.API.Version != "2023-05-15" {
		t.Fatalf("unexpected api version: %s", cfg.API.Version)
	}
	if cfg.Model != "gpt-4o" {
		t.Fatalf("unexpected model: %s", cfg.Model)
	}

	tr := cfg.Action("translate")
	if !tr.Enabled {
		t.Fatalf("translate should be enabled")
	}
	if tr.PrimaryLanguage != "French" {
		t.Fatalf("unexpected primary language: %s", tr.PrimaryLanguage)
	}
	if tr.SecondaryLanguage != DefaultSecondaryLanguage {
		t.Fatalf("secondary language default not applied: %s", tr.SecondaryLanguage)
	}

	if cfg.Action("polish").Enabled {
		t.Fatalf("polish should be disabled")
	}
	if cfg.Action("summarize").Enabled {
		t.Fatalf("unconfigured action should be disabled")
	}
}

// TestLoad_BadAPIType verifies that an unknown backend flavor is rejected.
func TestLoad_BadAPIType(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "cfg-*.yaml")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	if _, err := tmp.WriteString("api:\n  type: gemini\n  key: dummy\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	tmp.Close()

	t.Setenv("CONFIG_PATH", tmp.Name())

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported api type")
	}
}
