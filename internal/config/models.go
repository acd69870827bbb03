package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/muurk/spinbutton/internal/spinbutton"
)

// CurrentVersion is the preset file format version this build reads and writes.
const CurrentVersion = 1

// Registry represents the entire preset file.
// Presets are keyed by a short name used on the command line.
type Registry struct {
	Version int                `yaml:"version" toml:"version" json:"version"`
	Presets map[string]*Preset `yaml:"presets,omitempty" toml:"presets,omitempty" json:"presets,omitempty"`
	Form    *FormPrefs         `yaml:"form,omitempty" toml:"form,omitempty" json:"form,omitempty"`
}

// Preset is a saved spin button configuration.
type Preset struct {
	Label         string  `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
	LabelPosition string  `yaml:"label_position,omitempty" toml:"label_position,omitempty" json:"label_position,omitempty"` // start, end, top or bottom
	Title         string  `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty"`
	AriaLabel     string  `yaml:"aria_label,omitempty" toml:"aria_label,omitempty" json:"aria_label,omitempty"`
	Icon          string  `yaml:"icon,omitempty" toml:"icon,omitempty" json:"icon,omitempty"`
	Min           float64 `yaml:"min" toml:"min" json:"min"`
	Max           float64 `yaml:"max" toml:"max" json:"max"`
	Step          float64 `yaml:"step" toml:"step" json:"step"`
	Value         string  `yaml:"value,omitempty" toml:"value,omitempty" json:"value,omitempty"`                         // fixed value, enables Format
	DefaultValue  string  `yaml:"default_value,omitempty" toml:"default_value,omitempty" json:"default_value,omitempty"` // seed value, always clamps
	Disabled      bool    `yaml:"disabled,omitempty" toml:"disabled,omitempty" json:"disabled,omitempty"`
	Width         int     `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Format        string  `yaml:"format,omitempty" toml:"format,omitempty" json:"format,omitempty"` // "", percent or unit
	Unit          string  `yaml:"unit,omitempty" toml:"unit,omitempty" json:"unit,omitempty"`       // suffix for format: unit
}

// FormPrefs holds settings for the demo form.
type FormPrefs struct {
	Title   string   `yaml:"title,omitempty" toml:"title,omitempty" json:"title,omitempty"`
	Presets []string `yaml:"presets,omitempty" toml:"presets,omitempty" json:"presets,omitempty"` // display order; empty means all, sorted
}

// Preset value formats
const (
	FormatPlain   = ""
	FormatPercent = "percent"
	FormatUnit    = "unit"
)

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version: CurrentVersion,
		Presets: make(map[string]*Preset),
		Form: &FormPrefs{
			Title: "Spin buttons",
		},
	}
}

// GetPreset retrieves a preset by name.
// Returns nil if the preset doesn't exist in the registry.
func (r *Registry) GetPreset(name string) *Preset {
	return r.Presets[name]
}

// SetPreset adds or replaces a preset.
func (r *Registry) SetPreset(name string, p *Preset) {
	if r.Presets == nil {
		r.Presets = make(map[string]*Preset)
	}
	r.Presets[name] = p
}

// Names returns preset names in form order: the names listed in Form.Presets
// first, then any others alphabetically.
func (r *Registry) Names() []string {
	seen := make(map[string]bool, len(r.Presets))
	var names []string

	if r.Form != nil {
		for _, name := range r.Form.Presets {
			if _, ok := r.Presets[name]; ok && !seen[name] {
				names = append(names, name)
				seen[name] = true
			}
		}
	}

	var rest []string
	for name := range r.Presets {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Validate checks a preset for problems that would stop it from being used.
func (p *Preset) Validate() error {
	if _, err := spinbutton.ParseLabelPosition(p.LabelPosition); err != nil {
		return err
	}
	if p.Value != "" && p.DefaultValue != "" {
		return fmt.Errorf("value and default_value are mutually exclusive")
	}

	switch strings.ToLower(p.Format) {
	case FormatPlain:
		return nil
	case FormatPercent:
	case FormatUnit:
		if strings.TrimSpace(p.Unit) == "" {
			return fmt.Errorf("format %q needs a unit", p.Format)
		}
	default:
		return fmt.Errorf("unknown format %q (expected percent or unit)", p.Format)
	}

	// Custom formats run through overrides, which only a fixed value enables.
	if p.DefaultValue != "" {
		return fmt.Errorf("format %q needs value, not default_value", p.Format)
	}
	return nil
}

// ToConfig builds the spin button configuration for a preset.
func (p *Preset) ToConfig() (spinbutton.Config, error) {
	if err := p.Validate(); err != nil {
		return spinbutton.Config{}, err
	}

	cfg := spinbutton.DefaultConfig()
	cfg.Min = p.Min
	cfg.Max = p.Max
	cfg.Step = p.Step
	if cfg.Step == 0 {
		cfg.Step = 1
	}
	cfg.Disabled = p.Disabled
	cfg.Label = p.Label
	cfg.LabelPosition, _ = spinbutton.ParseLabelPosition(p.LabelPosition)
	cfg.Title = p.Title
	cfg.AriaLabel = p.AriaLabel
	cfg.IconName = p.Icon
	cfg.Value = p.Value
	cfg.DefaultValue = p.DefaultValue
	cfg.Width = p.Width

	rng := spinbutton.Range{Min: cfg.Min, Max: cfg.Max, Step: cfg.Step}
	switch strings.ToLower(p.Format) {
	case FormatPercent:
		cfg.OnValidate, cfg.OnIncrement, cfg.OnDecrement = spinbutton.UnitOverrides("%", rng)
	case FormatUnit:
		cfg.OnValidate, cfg.OnIncrement, cfg.OnDecrement = spinbutton.UnitOverrides(" "+strings.TrimSpace(p.Unit), rng)
	}

	return cfg, nil
}

// DefaultPresets are written by CreateDefault.
func DefaultPresets() map[string]*Preset {
	return map[string]*Preset{
		"volume": {
			Label:        "Volume",
			Icon:         "♪",
			Min:          0,
			Max:          100,
			Step:         5,
			DefaultValue: "30",
		},
		"opacity": {
			Label:         "Opacity",
			LabelPosition: "top",
			Min:           0,
			Max:           100,
			Step:          10,
			Value:         "80%",
			Format:        FormatPercent,
		},
		"font-size": {
			Label:  "Font size",
			Title:  "Editor font size",
			Min:    6,
			Max:    72,
			Step:   1,
			Value:  "14 pt",
			Format: FormatUnit,
			Unit:   "pt",
		},
		"temperature": {
			Label:         "Temperature",
			LabelPosition: "end",
			Min:           -20,
			Max:           40,
			Step:          0.5,
			DefaultValue:  "21.5",
		},
		"locked": {
			Label:        "Locked",
			Min:          0,
			Max:          10,
			Step:         1,
			DefaultValue: "3",
			Disabled:     true,
		},
	}
}
