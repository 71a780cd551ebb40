package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Exercise ExerciseConfig `toml:"exercise"`
	Theme    ThemeConfig    `toml:"theme"`
	Display  DisplayConfig  `toml:"display"`
	Log      LogConfig      `toml:"log"`
}

// ExerciseConfig describes the initial collections. Zero counts fall back to
// the defaults; use the Resolved* helpers rather than reading fields directly.
type ExerciseConfig struct {
	ChoiceCount      int    `toml:"choice_count,omitempty" validate:"gte=0,lte=26"`
	SlotCount        int    `toml:"slot_count,omitempty" validate:"gte=0,lte=26"`
	PlaceholderCount *int   `toml:"placeholder_count,omitempty" validate:"omitempty,gte=0"`
	ShuffleSeed      string `toml:"shuffle_seed,omitempty"`
	Prompt           string `toml:"prompt,omitempty" validate:"max=80"`
	WidgetID         string `toml:"widget_id,omitempty" validate:"omitempty,excludesall=:"`
}

type ThemeConfig struct {
	BG          string `toml:"bg,omitempty"`
	FG          string `toml:"fg,omitempty"`
	Accent      string `toml:"accent,omitempty"`
	Accent2     string `toml:"accent2,omitempty"`
	Muted       string `toml:"muted,omitempty"`
	Dim         string `toml:"dim,omitempty"`
	Answered    string `toml:"answered,omitempty"`
	Placeholder string `toml:"placeholder,omitempty"`
	DropTarget  string `toml:"drop_target,omitempty"`
	Dragging    string `toml:"dragging,omitempty"`
	StatusBarBG string `toml:"status_bar_bg,omitempty"`
	StatusBarFG string `toml:"status_bar_fg,omitempty"`
	Error       string `toml:"error,omitempty"`
	CursorBG    string `toml:"cursor_bg,omitempty"`

	FeedbackWarningFG string `toml:"feedback_warning_fg,omitempty"`
	FeedbackWarningBG string `toml:"feedback_warning_bg,omitempty"`
	FeedbackErrorFG   string `toml:"feedback_error_fg,omitempty"`
	FeedbackErrorBG   string `toml:"feedback_error_bg,omitempty"`
}

type DisplayConfig struct {
	Icons     bool `toml:"icons,omitempty"`
	NerdFonts bool `toml:"nerd_fonts,omitempty"`
	PoolWidth int  `toml:"pool_width,omitempty"` // percentage, default 40
}

type LogConfig struct {
	File   string `toml:"file,omitempty"`
	Level  string `toml:"level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Strict bool   `toml:"strict,omitempty"` // panic on invariant violations
}

const (
	DefaultChoiceCount = 4
	DefaultSlotCount   = 4
	DefaultPrompt      = "Just some info"
)

// DefaultConfigPath returns ~/.config/matchdrag/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "matchdrag", "config.toml")
}

func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	// Log file paths are relative to the config file
	if cfg.Log.File != "" {
		if strings.HasPrefix(cfg.Log.File, "~/") {
			if home, err := os.UserHomeDir(); err == nil {
				cfg.Log.File = filepath.Join(home, cfg.Log.File[2:])
			}
		}
		if !filepath.IsAbs(cfg.Log.File) {
			absConfigDir, err := filepath.Abs(filepath.Dir(path))
			if err != nil {
				return cfg, fmt.Errorf("resolving config directory: %w", err)
			}
			cfg.Log.File = filepath.Join(absConfigDir, cfg.Log.File)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault loads path. A missing file is only tolerated when the path was
// not given explicitly.
func LoadOrDefault(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	cfg, err := Load(path)
	if err != nil && !explicit && errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	return cfg, err
}

var validate = validator.New()

// Validate checks field ranges and that the placeholders fit in the slots.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if p, s := c.ResolvedPlaceholderCount(), c.ResolvedSlotCount(); p > s {
		return fmt.Errorf("invalid config: placeholder_count %d exceeds slot_count %d", p, s)
	}
	return nil
}

// ResolvedChoiceCount returns the configured choice count or 4.
func (c Config) ResolvedChoiceCount() int {
	if c.Exercise.ChoiceCount > 0 {
		return c.Exercise.ChoiceCount
	}
	return DefaultChoiceCount
}

// ResolvedSlotCount returns the configured slot count or 4.
func (c Config) ResolvedSlotCount() int {
	if c.Exercise.SlotCount > 0 {
		return c.Exercise.SlotCount
	}
	return DefaultSlotCount
}

// ResolvedPlaceholderCount returns the configured placeholder count, or the
// slot count so that every slot starts empty.
func (c Config) ResolvedPlaceholderCount() int {
	if c.Exercise.PlaceholderCount != nil {
		return *c.Exercise.PlaceholderCount
	}
	return c.ResolvedSlotCount()
}

func (c Config) ResolvedPrompt() string {
	return pick(c.Exercise.Prompt, DefaultPrompt)
}

// ResolvedPoolWidth returns the pool column width percentage or 40.
func (c Config) ResolvedPoolWidth() int {
	if c.Display.PoolWidth >= 20 && c.Display.PoolWidth <= 80 {
		return c.Display.PoolWidth
	}
	return 40
}

// DefaultTheme returns the Vesper color palette.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		BG:          "#101010",
		FG:          "#ffffff",
		Accent:      "#ffc799",
		Accent2:     "#99ffe4",
		Muted:       "#505050",
		Dim:         "#a0a0a0",
		Answered:    "#99ffe4",
		Placeholder: "#505050",
		DropTarget:  "#ffc799",
		Dragging:    "#ff99cc",
		StatusBarBG: "#1a1a1a",
		StatusBarFG: "#a0a0a0",
		Error:       "#ff8080",
		CursorBG:    "#2a2a2a",

		FeedbackWarningFG: "#ffc799",
		FeedbackWarningBG: "#2a2215",
		FeedbackErrorFG:   "#ff8080",
		FeedbackErrorBG:   "#3a1a1a",
	}
}

// ResolvedTheme merges config theme with defaults for any unset fields.
func (c Config) ResolvedTheme() ThemeConfig {
	d := DefaultTheme()
	return ThemeConfig{
		BG:          pick(c.Theme.BG, d.BG),
		FG:          pick(c.Theme.FG, d.FG),
		Accent:      pick(c.Theme.Accent, d.Accent),
		Accent2:     pick(c.Theme.Accent2, d.Accent2),
		Muted:       pick(c.Theme.Muted, d.Muted),
		Dim:         pick(c.Theme.Dim, d.Dim),
		Answered:    pick(c.Theme.Answered, d.Answered),
		Placeholder: pick(c.Theme.Placeholder, d.Placeholder),
		DropTarget:  pick(c.Theme.DropTarget, d.DropTarget),
		Dragging:    pick(c.Theme.Dragging, d.Dragging),
		StatusBarBG: pick(c.Theme.StatusBarBG, d.StatusBarBG),
		StatusBarFG: pick(c.Theme.StatusBarFG, d.StatusBarFG),
		Error:       pick(c.Theme.Error, d.Error),
		CursorBG:    pick(c.Theme.CursorBG, d.CursorBG),

		FeedbackWarningFG: pick(c.Theme.FeedbackWarningFG, d.FeedbackWarningFG),
		FeedbackWarningBG: pick(c.Theme.FeedbackWarningBG, d.FeedbackWarningBG),
		FeedbackErrorFG:   pick(c.Theme.FeedbackErrorFG, d.FeedbackErrorFG),
		FeedbackErrorBG:   pick(c.Theme.FeedbackErrorBG, d.FeedbackErrorBG),
	}
}

func pick(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// Default returns a config with every exercise field spelled out, suitable
// for writing a starter file.
func Default() Config {
	placeholders := DefaultSlotCount
	return Config{
		Exercise: ExerciseConfig{
			ChoiceCount:      DefaultChoiceCount,
			SlotCount:        DefaultSlotCount,
			PlaceholderCount: &placeholders,
			Prompt:           DefaultPrompt,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Save writes the config to a TOML file, creating the directory if needed.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
