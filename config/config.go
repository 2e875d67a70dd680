// Package config loads overlay controller settings from TOML or YAML files
// with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	overlay "github.com/grindlemire/go-overlay"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OVERLAY_"

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config holds the settings a controller can be built from.
type Config struct {
	Trigger         string   `toml:"trigger" yaml:"trigger" env:"TRIGGER"`
	HoverInMS       int      `toml:"hover_in_ms" yaml:"hover_in_ms" env:"HOVER_IN_MS"`
	Placement       string   `toml:"placement" yaml:"placement" env:"PLACEMENT"`
	FlipOrder       []string `toml:"flip_order" yaml:"flip_order" env:"FLIP_ORDER"`
	Padding         float64  `toml:"padding" yaml:"padding" env:"PADDING"`
	ViewportPadding float64  `toml:"viewport_padding" yaml:"viewport_padding" env:"VIEWPORT_PADDING"`
	ScrollToFit     bool     `toml:"scroll_to_fit" yaml:"scroll_to_fit" env:"SCROLL_TO_FIT"`
	OnCursor        bool     `toml:"on_cursor" yaml:"on_cursor" env:"ON_CURSOR"`
	Container       string   `toml:"container" yaml:"container" env:"CONTAINER"`
	OverlaysToClose []string `toml:"overlays_to_close" yaml:"overlays_to_close" env:"OVERLAYS_TO_CLOSE"`
}

// Default returns the settings controllers use without configuration.
func Default() Config {
	return Config{
		Trigger:         overlay.TriggerPress.String(),
		HoverInMS:       int(overlay.DefaultHoverInTimeout / time.Millisecond),
		Placement:       overlay.BottomCenter.String(),
		ViewportPadding: overlay.DefaultViewportPadding,
		Container:       overlay.OverlayContainer,
	}
}

// Load reads path, decodes it by extension over Default, and applies
// environment overrides.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %q: %w", path, err)
	}
	cfg, err := Parse(data, path)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Parse decodes data over Default. The format is chosen from the
// extension of source (.toml, .yaml or .yml).
func Parse(data []byte, source string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(source)) {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("parse TOML in %q: %w", source, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("parse TOML in %q: unknown key %q", source, undecoded[0].String())
		}
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse YAML in %q: %w", source, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, source)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with OVERLAY_* environment variables that are set.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := overlay.ParseTrigger(c.Trigger); err != nil {
		errs = append(errs, fmt.Errorf("trigger: %w", err))
	}
	if c.HoverInMS < 0 {
		errs = append(errs, fmt.Errorf("hover_in_ms: must not be negative, got %d", c.HoverInMS))
	}
	if _, err := overlay.ParsePlacement(c.Placement); err != nil {
		errs = append(errs, fmt.Errorf("placement: %w", err))
	}
	if _, err := overlay.ParsePlacements(c.FlipOrder); err != nil {
		errs = append(errs, fmt.Errorf("flip_order: %w", err))
	}
	if c.ViewportPadding < 0 {
		errs = append(errs, fmt.Errorf("viewport_padding: must not be negative, got %v", c.ViewportPadding))
	}
	return errors.Join(errs...)
}

// Modifiers converts the positioning settings.
func (c Config) Modifiers() ([]overlay.ModifierOption, error) {
	def, err := overlay.ParsePlacement(c.Placement)
	if err != nil {
		return nil, fmt.Errorf("placement: %w", err)
	}
	opts := []overlay.ModifierOption{
		overlay.DefaultPlacement(def),
		overlay.Padding(c.Padding),
		overlay.ViewportPadding(c.ViewportPadding),
		overlay.ScrollToFit(c.ScrollToFit),
		overlay.OnCursor(c.OnCursor),
	}
	if c.FlipOrder != nil {
		order, err := overlay.ParsePlacements(c.FlipOrder)
		if err != nil {
			return nil, fmt.Errorf("flip_order: %w", err)
		}
		opts = append(opts, overlay.FlipOrder(order...))
	}
	return opts, nil
}

// Options converts the settings into controller options.
func (c Config) Options() ([]overlay.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	trigger, _ := overlay.ParseTrigger(c.Trigger)
	mods, err := c.Modifiers()
	if err != nil {
		return nil, err
	}
	opts := []overlay.Option{
		overlay.WithTrigger(trigger),
		overlay.WithHoverInTimeout(time.Duration(c.HoverInMS) * time.Millisecond),
		overlay.WithModifiers(mods...),
		overlay.WithContainer(c.Container),
	}
	if len(c.OverlaysToClose) > 0 {
		opts = append(opts, overlay.WithOverlaysToClose(c.OverlaysToClose...))
	}
	return opts, nil
}
