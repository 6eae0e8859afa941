// Package pipeline provides the core compute → render pipeline.
//
// This package ties the geometry engine, the serialization layer and the
// renderers together so the CLI and the HTTP API share one code path.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Compute: derive the electrode layout from the four subject parameters
//  2. Render: generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Layouts are recomputed on every run; only rendered artifacts are cached,
// keyed by the layout fingerprint and the render options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    AgeMonths:    30,
//	    Sex:          "female",
//	    NasionInion:  32,
//	    Preauricular: 28,
//	    Formats:      []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Tato14/Ped-eeg-position/pkg/cache"
	"github.com/Tato14/Ped-eeg-position/pkg/errors"
	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/montage"
)

const (
	// DefaultWidth is the default scalp diagram width in pixels.
	DefaultWidth = 600.0

	// DefaultScale is the default raster scale factor for PNG output.
	DefaultScale = 2.0
)

// Visualization types.
const (
	VizScalp = "scalp"
	VizChain = "chain"
)

// DefaultViz is the default visualization type.
const DefaultViz = VizScalp

// Visual styles for scalp diagrams.
const (
	StyleClinical = "clinical"
	StylePrint    = "print"
)

// DefaultStyle is the default visual style.
const DefaultStyle = StyleClinical

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleClinical: true,
	StylePrint:    true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizScalp: true,
	VizChain: true,
}

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Subject parameters
	AgeMonths    float64 `json:"age_months"`
	Sex          string  `json:"sex"`
	NasionInion  float64 `json:"nasion_inion_cm"`
	Preauricular float64 `json:"preauricular_cm"`

	// Model options
	AgeSpacing bool    `json:"age_spacing,omitempty"` // age-dependent spacing compression
	MinSpacing float64 `json:"min_spacing,omitempty"` // floor for age-dependent spacing

	// Render options
	Viz         string   `json:"viz,omitempty"`
	Formats     []string `json:"formats,omitempty"`
	Style       string   `json:"style,omitempty"`
	Width       float64  `json:"width,omitempty"`
	Grid        bool     `json:"grid,omitempty"`
	NoLabels    bool     `json:"no_labels,omitempty"`
	Scale       float64  `json:"scale,omitempty"`
	Fiducials   bool     `json:"fiducials,omitempty"`   // include landmarks in chain diagrams
	Coordinates bool     `json:"coordinates,omitempty"` // coordinate labels in chain diagrams
	Refresh     bool     `json:"refresh,omitempty"`     // bypass the artifact cache

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Document is the computed layout in its serialized form.
	Document layout.Document

	// LayoutHash is the content hash of the document.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks whether rendering hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ComputeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache behavior for the render stage.
type CacheInfo struct {
	RenderHit bool // whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: clinical, print)", style)
	}
	return nil
}

// ValidateViz checks that a visualization type is valid.
func ValidateViz(viz string) error {
	if !ValidVizTypes[viz] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid viz: %q (must be one of: scalp, chain)", viz)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Idempotent: repeated calls have no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForCompute(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// Subject converts the subject parameters into the engine's input type.
func (o *Options) Subject() (montage.Subject, error) {
	sex, err := montage.ParseSex(o.Sex)
	if err != nil {
		return montage.Subject{}, err
	}
	sub := montage.Subject{
		AgeMonths:    o.AgeMonths,
		Sex:          sex,
		NasionInion:  o.NasionInion,
		Preauricular: o.Preauricular,
	}
	return sub, sub.Validate()
}

// Model builds the scale-shift model from the options.
func (o *Options) Model() montage.Model {
	return montage.Model{
		AgeSpacing: o.AgeSpacing,
		MinSpacing: o.MinSpacing,
	}
}

// ValidateForCompute checks the subject parameters.
func (o *Options) ValidateForCompute() error {
	if _, err := o.Subject(); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Viz == "" {
		o.Viz = DefaultViz
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateViz(o.Viz); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Viz == VizScalp {
		for _, f := range o.Formats {
			if f == FormatDOT {
				return errors.New(errors.ErrCodeInvalidFormat,
					"dot output is only available for chain diagrams")
			}
		}
	}
	return ValidateStyle(o.Style)
}

// IsScalp returns true for top-down scalp diagrams.
func (o *Options) IsScalp() bool {
	return o.Viz == "" || o.Viz == VizScalp
}

// IsChain returns true for electrode chain diagrams.
func (o *Options) IsChain() bool {
	return o.Viz == VizChain
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Viz:    o.Viz,
		Format: format,
		Style:  o.Style,
		Width:  o.Width,
		Grid:   o.Grid,
		Labels: !o.NoLabels,
		Scale:  o.Scale,
	}
}
