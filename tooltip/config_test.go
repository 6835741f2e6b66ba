package tooltip

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Margin != 16 {
		t.Fatalf("expected default margin 16, got %g", cfg.Margin)
	}
	if !cfg.ShowOnHover || !cfg.HideOnNoHover {
		t.Fatalf("expected hover behavior enabled by default, got %+v", cfg)
	}
}

func TestFillMissingDefaultsKeepsExplicitMargin(t *testing.T) {
	cfg := Config{Margin: 24}
	cfg.FillMissingDefaults()
	if cfg.Margin != 24 {
		t.Fatalf("expected margin 24 to survive, got %g", cfg.Margin)
	}

	cfg = Config{}
	cfg.FillMissingDefaults()
	if cfg.Margin != 16 {
		t.Fatalf("expected zero margin replaced with 16, got %g", cfg.Margin)
	}
	if cfg.ShowOnHover || cfg.HideOnNoHover {
		t.Fatalf("expected hover flags untouched by defaults fill, got %+v", cfg)
	}
}
