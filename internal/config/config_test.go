package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Overlay.BorderThickness != 8 {
		t.Errorf("Expected border thickness 8, got %v", cfg.Overlay.BorderThickness)
	}
	if cfg.Overlay.SolutionRadiusDivisor != 3.5 {
		t.Errorf("Expected radius divisor 3.5, got %v", cfg.Overlay.SolutionRadiusDivisor)
	}
	if !cfg.Display.MarkIsX {
		t.Error("Expected MarkIsX to default to true")
	}
	if warnings := cfg.Validate(); len(warnings) != 0 {
		t.Errorf("Default config has warnings: %v", warnings)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero thickness", func(c *Config) { c.Overlay.BorderThickness = 0 }},
		{"negative blur", func(c *Config) { c.Overlay.ShadowBlur = -1 }},
		{"zero divisor", func(c *Config) { c.Overlay.SolutionRadiusDivisor = 0 }},
		{"bad solution color", func(c *Config) { c.Overlay.SolutionColor = "yellow" }},
		{"bad preset", func(c *Config) { c.Colors.Presets = append(c.Colors.Presets, "#12") }},
		{"negative slots", func(c *Config) { c.Colors.CustomSlots = -2 }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if warnings := cfg.Validate(); len(warnings) != 1 {
				t.Errorf("Validate() = %v, want exactly one warning", warnings)
			}
		})
	}
}

func TestLoadPreservesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `[display]
monochrome = true

[overlay]
border_thickness = 4.5
`
	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}

	if !cfg.Display.Monochrome {
		t.Error("Expected monochrome from file")
	}
	if cfg.Overlay.BorderThickness != 4.5 {
		t.Errorf("Expected border thickness 4.5, got %v", cfg.Overlay.BorderThickness)
	}

	// Booleans and numbers not present in the file keep their defaults.
	if !cfg.Display.MarkIsX || !cfg.Display.HighlightErrors {
		t.Error("Expected display booleans to keep defaults")
	}
	if cfg.Overlay.ShadowBlur != 15 {
		t.Errorf("Expected default shadow blur 15, got %v", cfg.Overlay.ShadowBlur)
	}
	if len(cfg.Colors.Presets) != len(DefaultConfig().Colors.Presets) {
		t.Error("Expected default presets")
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error: %v", err)
	}
	if cfg.Window.Width != DefaultConfig().Window.Width {
		t.Error("Expected defaults for a missing file")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[display\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := ConfigPath(); got != filepath.Join("/tmp/xdg", "starbattle", "config.toml") {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestPalette(t *testing.T) {
	cfg := DefaultConfig()
	p := cfg.Palette()
	if len(p.Presets) != len(cfg.Colors.Presets) {
		t.Fatalf("Expected %d presets, got %d", len(cfg.Colors.Presets), len(p.Presets))
	}
	if len(p.Custom) != cfg.Colors.CustomSlots {
		t.Errorf("Expected %d custom slots, got %d", cfg.Colors.CustomSlots, len(p.Custom))
	}
	for i, c := range p.Custom {
		if !c.IsEmpty() {
			t.Errorf("Custom slot %d should start empty", i)
		}
	}
	if !p.Current.Equal(p.Presets[0]) {
		t.Errorf("Expected first preset selected, got %q", p.Current)
	}
}

func TestOverlayStyle(t *testing.T) {
	st := DefaultConfig().OverlayStyle()
	_, _, _, a := st.SolutionFill.RGBA()
	if a == 0 || a == 0xffff {
		t.Errorf("Expected a translucent solution fill, alpha=%x", a)
	}
	if st.BorderThickness != 8 || st.ShadowBlur != 15 {
		t.Errorf("Unexpected style %+v", st)
	}
}
