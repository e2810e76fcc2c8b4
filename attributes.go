package cloudview

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Attributes is the declarative configuration of a view, applied once at
// construction. Each field maps to one setter.
//
//	image: clouds/cumulus.png
//	min_size: 120
//	max_size: 260
//	count: 14
//	sky_color: "#0288D1"
type Attributes struct {
	// Image names a file in the view's resource filesystem. Empty selects
	// the built-in cloud.
	Image string `yaml:"image"`

	MinSize            int    `yaml:"min_size"`
	MaxSize            int    `yaml:"max_size"`
	Count              int    `yaml:"count"`
	BasePassTimeMs     int    `yaml:"base_pass_time_ms"`
	PassTimeVarianceMs int    `yaml:"pass_time_variance_ms"`
	FadeInEnabled      bool   `yaml:"fade_in_enabled"`
	FadeInTimeMs       int    `yaml:"fade_in_time_ms"`
	SkyColor           string `yaml:"sky_color"`
	Animating          bool   `yaml:"animating"`
}

// DefaultAttributes returns the attributes used for keys a document leaves
// out. Unlike New, a view built from attributes animates by default.
func DefaultAttributes() Attributes {
	return Attributes{
		MinSize:            DefaultMinCloudSize,
		MaxSize:            DefaultMaxCloudSize,
		Count:              DefaultCloudCount,
		BasePassTimeMs:     DefaultPassTimeMs,
		PassTimeVarianceMs: DefaultPassTimeVarianceMs,
		FadeInTimeMs:       DefaultFadeInTimeMs,
		SkyColor:           "#03A9F4",
		Animating:          true,
	}
}

// LoadAttributes decodes a YAML document over DefaultAttributes. An empty
// document yields the defaults.
func LoadAttributes(r io.Reader) (Attributes, error) {
	a := DefaultAttributes()
	if err := yaml.NewDecoder(r).Decode(&a); err != nil && !errors.Is(err, io.EOF) {
		return Attributes{}, fmt.Errorf("parse attributes: %w", err)
	}
	return a, nil
}

// NewFromAttributes creates a view and applies a through its setters.
func NewFromAttributes(a Attributes, opts ...Option) (*CloudView, error) {
	v := New(opts...)

	if a.Image != "" {
		if err := v.SetImageResource(a.Image); err != nil {
			return nil, fmt.Errorf("attribute image: %w", err)
		}
	}
	if err := v.SetSizeRange(a.MinSize, a.MaxSize); err != nil {
		return nil, fmt.Errorf("attributes min_size/max_size: %w", err)
	}
	if err := v.SetCloudCount(a.Count); err != nil {
		return nil, fmt.Errorf("attribute count: %w", err)
	}
	if err := v.SetBasePassTime(a.BasePassTimeMs); err != nil {
		return nil, fmt.Errorf("attribute base_pass_time_ms: %w", err)
	}
	if err := v.SetPassTimeVariance(a.PassTimeVarianceMs); err != nil {
		return nil, fmt.Errorf("attribute pass_time_variance_ms: %w", err)
	}
	v.SetFadeInEnabled(a.FadeInEnabled)
	if err := v.SetFadeInTime(a.FadeInTimeMs); err != nil {
		return nil, fmt.Errorf("attribute fade_in_time_ms: %w", err)
	}
	if a.SkyColor != "" {
		c, err := ParseColor(a.SkyColor)
		if err != nil {
			return nil, fmt.Errorf("attribute sky_color: %w", err)
		}
		v.SetSkyColor(c)
	}
	if a.Animating {
		v.StartAnimation()
	}
	return v, nil
}
