package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultEnablesHoverBehavior(t *testing.T) {
	cfg := Default()
	if cfg.Logging.Level != "info" {
		t.Fatalf("expected default log level info, got %q", cfg.Logging.Level)
	}
	if !cfg.Tooltip.ShowOnHover || !cfg.Tooltip.HideOnNoHover {
		t.Fatalf("expected hover behavior enabled by default, got %+v", cfg.Tooltip)
	}
	if cfg.Tooltip.Margin != 16 {
		t.Fatalf("expected default margin 16, got %g", cfg.Tooltip.Margin)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults for missing file, got %+v", cfg)
	}
}

func TestLoadFillsMissingTooltipMargin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{
  "logging": {
    "level": "debug"
  },
  "tooltip": {
    "show_on_hover": true,
    "hide_on_no_hover": false
  }
}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected log level debug, got %q", cfg.Logging.Level)
	}
	if cfg.Tooltip.Margin != 16 {
		t.Fatalf("expected margin to default to 16, got %g", cfg.Tooltip.Margin)
	}
	if cfg.Tooltip.HideOnNoHover {
		t.Fatal("expected hide_on_no_hover to stay false")
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "loud"

	err := Save(filepath.Join(t.TempDir(), "config.json"), cfg)
	if err == nil {
		t.Fatal("expected error for unknown log level")
	}
}

func TestSaveRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := Default()
	cfg.Tooltip.Margin = 24

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save config: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if loaded.Tooltip.Margin != 24 {
		t.Fatalf("expected margin 24 after round trip, got %g", loaded.Tooltip.Margin)
	}
}
