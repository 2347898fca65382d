// Package config handles board configuration.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"StarBattle/internal/glyph"
	"StarBattle/internal/overlay"
	"StarBattle/internal/state"
)

// Config represents the board configuration.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Overlay OverlayConfig `toml:"overlay"`
	Colors  ColorsConfig  `toml:"colors"`
	Window  WindowConfig  `toml:"window"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig holds the initial display flags.
type DisplayConfig struct {
	// Paint cells without region colors
	Monochrome bool `toml:"monochrome"`

	// Draw blocked cells as X instead of a dot
	MarkIsX bool `toml:"mark_is_x"`

	// Flag stars that break a rule
	HighlightErrors bool `toml:"highlight_errors"`
}

// OverlayConfig tunes the overlay painter.
type OverlayConfig struct {
	// Custom border strip width in pixels
	BorderThickness float64 `toml:"border_thickness"`

	// Solution circle fill, #rrggbbaa
	SolutionColor string `toml:"solution_color"`

	// Solution circle shadow, #rrggbbaa
	ShadowColor string `toml:"shadow_color"`

	// Shadow blur in pixels
	ShadowBlur float64 `toml:"shadow_blur"`

	// Circle radius is cell width divided by this
	SolutionRadiusDivisor float64 `toml:"solution_radius_divisor"`
}

// ColorsConfig holds the color picker setup and mark colors.
type ColorsConfig struct {
	Presets     []string `toml:"presets"`
	CustomSlots int      `toml:"custom_slots"`
	Star        string   `toml:"star"`
	Blocked     string   `toml:"blocked"`
	Error       string   `toml:"error"`
}

// WindowConfig sets the initial window size.
type WindowConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Monochrome:      false,
			MarkIsX:         true,
			HighlightErrors: true,
		},
		Overlay: OverlayConfig{
			BorderThickness:       8,
			SolutionColor:         "#fcd34db3",
			ShadowColor:           "#000000b3",
			ShadowBlur:            15,
			SolutionRadiusDivisor: 3.5,
		},
		Colors: ColorsConfig{
			Presets: []string{
				"#ef4444", "#f97316", "#eab308", "#22c55e",
				"#3b82f6", "#8b5cf6", "#ec4899", "#000000",
			},
			CustomSlots: 5,
			Star:        "#1f2937",
			Blocked:     "#6b7280",
			Error:       "#dc2626",
		},
		Window: WindowConfig{
			Width:  720,
			Height: 820,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/starbattle/config.toml (XDG style) on Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "starbattle", "config.toml")
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "starbattle", "config.toml")
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "starbattle", "config.toml")
	}
	return filepath.Join(configDir, "starbattle", "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path. A missing file
// yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	// go-toml/v2 only overwrites fields present in the file.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

// Validate returns human-readable warnings for suspicious settings.
func (c *Config) Validate() []string {
	var warnings []string

	checkColor := func(key, v string) {
		if !hexColor.MatchString(strings.TrimSpace(v)) {
			warnings = append(warnings, fmt.Sprintf("%s: %q is not a #rrggbb or #rrggbbaa color", key, v))
		}
	}

	if c.Overlay.BorderThickness <= 0 {
		warnings = append(warnings, fmt.Sprintf("overlay.border_thickness must be positive, got %v", c.Overlay.BorderThickness))
	}
	if c.Overlay.ShadowBlur < 0 {
		warnings = append(warnings, fmt.Sprintf("overlay.shadow_blur must not be negative, got %v", c.Overlay.ShadowBlur))
	}
	if c.Overlay.SolutionRadiusDivisor <= 0 {
		warnings = append(warnings, fmt.Sprintf("overlay.solution_radius_divisor must be positive, got %v", c.Overlay.SolutionRadiusDivisor))
	}
	checkColor("overlay.solution_color", c.Overlay.SolutionColor)
	checkColor("overlay.shadow_color", c.Overlay.ShadowColor)

	for i, p := range c.Colors.Presets {
		checkColor(fmt.Sprintf("colors.presets[%d]", i), p)
	}
	if c.Colors.CustomSlots < 0 {
		warnings = append(warnings, fmt.Sprintf("colors.custom_slots must not be negative, got %d", c.Colors.CustomSlots))
	}
	checkColor("colors.star", c.Colors.Star)
	checkColor("colors.blocked", c.Colors.Blocked)
	checkColor("colors.error", c.Colors.Error)

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("log.level: unknown level %q", c.Log.Level))
	}
	return warnings
}

// DisplayFlags returns the initial display state.
func (c *Config) DisplayFlags() state.Display {
	return state.Display{
		Monochrome:      c.Display.Monochrome,
		MarkIsX:         c.Display.MarkIsX,
		HighlightErrors: c.Display.HighlightErrors,
	}
}

// OverlayStyle converts the overlay section for the compositor.
func (c *Config) OverlayStyle() overlay.Style {
	return overlay.Style{
		BorderThickness: c.Overlay.BorderThickness,
		SolutionFill:    state.Color(c.Overlay.SolutionColor).RGBA(),
		ShadowColor:     state.Color(c.Overlay.ShadowColor).RGBA(),
		ShadowBlur:      c.Overlay.ShadowBlur,
		RadiusDivisor:   c.Overlay.SolutionRadiusDivisor,
	}
}

// GlyphStyle returns the mark colors.
func (c *Config) GlyphStyle() glyph.Style {
	return glyph.Style{
		Star:    state.Color(c.Colors.Star).RGBA(),
		Invalid: state.Color(c.Colors.Error).RGBA(),
		Blocked: state.Color(c.Colors.Blocked).RGBA(),
	}
}

// Palette returns the initial color picker state: presets, empty custom
// slots and the first preset selected.
func (c *Config) Palette() state.Palette {
	p := state.Palette{
		Presets: make([]state.Color, len(c.Colors.Presets)),
	}
	for i, s := range c.Colors.Presets {
		p.Presets[i] = state.Color(s)
	}
	if c.Colors.CustomSlots > 0 {
		p.Custom = make([]state.Color, c.Colors.CustomSlots)
	}
	if len(p.Presets) > 0 {
		p.Current = p.Presets[0]
	}
	return p
}

// ErrorColor is the color used for flagged stars in exports.
func (c *Config) ErrorColor() color.Color {
	return state.Color(c.Colors.Error).RGBA()
}
