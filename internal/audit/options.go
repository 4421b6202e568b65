package audit

import (
	"fmt"

	"github.com/Dadaauditux/ux-audit-tool/internal/contrast"
	"github.com/Dadaauditux/ux-audit-tool/internal/grouping"
	"github.com/Dadaauditux/ux-audit-tool/internal/rules"
)

// Options holds every threshold used by an audit. Zero fields mean "use the
// default".
type Options struct {
	MinTextPx          int     `json:"min_text_px,omitempty" yaml:"min_text_px"`
	MinTargetPx        int     `json:"min_target_px,omitempty" yaml:"min_target_px"`
	TargetMinTextChars int     `json:"target_min_text_chars,omitempty" yaml:"target_min_text_chars"`
	MinHeadingPx       int     `json:"min_heading_px,omitempty" yaml:"min_heading_px"`
	MinSpacingPx       int     `json:"min_spacing_px,omitempty" yaml:"min_spacing_px"`
	AlignTolerancePx   int     `json:"align_tolerance_px,omitempty" yaml:"align_tolerance_px"`
	MinContrast        float64 `json:"min_contrast,omitempty" yaml:"min_contrast"`
	LineThresholdPx    int     `json:"line_threshold_px,omitempty" yaml:"line_threshold_px"`
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		MinTextPx:          rules.DefaultMinTextPx,
		MinTargetPx:        rules.DefaultMinTargetPx,
		TargetMinTextChars: rules.DefaultTargetMinTextChars,
		MinHeadingPx:       rules.DefaultMinHeadingPx,
		MinSpacingPx:       rules.DefaultMinSpacingPx,
		AlignTolerancePx:   rules.DefaultAlignTolerancePx,
		MinContrast:        contrast.DefaultMinRatio,
		LineThresholdPx:    grouping.DefaultLineThresholdPx,
	}
}

// WithDefaults returns a copy of o with zero fields replaced by defaults.
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.MinTextPx == 0 {
		o.MinTextPx = d.MinTextPx
	}
	if o.MinTargetPx == 0 {
		o.MinTargetPx = d.MinTargetPx
	}
	if o.TargetMinTextChars == 0 {
		o.TargetMinTextChars = d.TargetMinTextChars
	}
	if o.MinHeadingPx == 0 {
		o.MinHeadingPx = d.MinHeadingPx
	}
	if o.MinSpacingPx == 0 {
		o.MinSpacingPx = d.MinSpacingPx
	}
	if o.AlignTolerancePx == 0 {
		o.AlignTolerancePx = d.AlignTolerancePx
	}
	if o.MinContrast == 0 {
		o.MinContrast = d.MinContrast
	}
	if o.LineThresholdPx == 0 {
		o.LineThresholdPx = d.LineThresholdPx
	}
	return o
}

// Validate rejects negative thresholds.
func (o Options) Validate() error {
	ints := []struct {
		name string
		v    int
	}{
		{"min_text_px", o.MinTextPx},
		{"min_target_px", o.MinTargetPx},
		{"target_min_text_chars", o.TargetMinTextChars},
		{"min_heading_px", o.MinHeadingPx},
		{"min_spacing_px", o.MinSpacingPx},
		{"align_tolerance_px", o.AlignTolerancePx},
		{"line_threshold_px", o.LineThresholdPx},
	}
	for _, f := range ints {
		if f.v < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %d)", ErrInvalidOptions, f.name, f.v)
		}
	}
	if o.MinContrast < 0 {
		return fmt.Errorf("%w: min_contrast must not be negative (got %g)", ErrInvalidOptions, o.MinContrast)
	}
	return nil
}
