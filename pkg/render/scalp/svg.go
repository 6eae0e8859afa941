// Package scalp renders electrode layouts as top-down head diagrams. The
// native output is SVG; PNG and PDF wrap the SVG through rsvg-convert.
package scalp

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/render/scalp/styles"
)

const (
	defaultWidth = 600.0
	marginRatio  = 0.07 // margin as a fraction of the viewport width
	gridStepCM   = 5.0
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style     styles.Style
	width     float64
	showGrid  bool
	hideLabel bool
}

// WithStyle selects the visual style (default [styles.Clinical]).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithWidth sets the viewport width in pixels (default 600). Height follows
// from the head proportions.
func WithWidth(px float64) SVGOption { return func(r *svgRenderer) { r.width = px } }

// WithGrid overlays a centimeter grid for measuring electrode distances.
func WithGrid() SVGOption { return func(r *svgRenderer) { r.showGrid = true } }

// WithoutLabels suppresses electrode name labels, leaving markers only.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.hideLabel = true } }

// frame maps head-surface centimeters to pixel coordinates. The head center
// sits mid-viewport; y grows downward in pixel space while the layout's y
// grows toward the nasion.
type frame struct {
	scale        float64 // px per cm
	width        float64
	height       float64
	centerY      float64 // head center y in cm (-nasionInion/2)
	halfW, halfH float64 // content half-extents in cm
	margin       float64
}

func newFrame(d layout.Document, width float64) frame {
	headR := d.HeadRadius
	halfW := math.Max(headR, d.Subject.Preauricular/2)
	halfH := math.Max(headR, d.Subject.NasionInion/2)

	margin := width * marginRatio
	scale := (width - 2*margin) / (2 * halfW)
	return frame{
		scale:   scale,
		width:   width,
		height:  2*halfH*scale + 2*margin,
		centerY: -d.Subject.NasionInion / 2,
		halfW:   halfW,
		halfH:   halfH,
		margin:  margin,
	}
}

func (f frame) x(cm float64) float64 { return f.width/2 + cm*f.scale }
func (f frame) y(cm float64) float64 { return f.margin + (f.halfH-(cm-f.centerY))*f.scale }

// RenderSVG draws the layout as a top-down scalp diagram: head outline,
// sagittal and interaural axes, and one marker per electrode. Markers appear
// in the document's canonical order, so output is deterministic for a given
// document and option set.
func RenderSVG(d layout.Document, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	f := newFrame(d, r.width)

	markerR := r.width / 90
	fontSize := r.width / 45

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.width, f.height, f.width, f.height)

	r.style.RenderDefs(&buf)

	if r.showGrid {
		renderGrid(&buf, &r, f)
	}

	r.style.RenderBoundary(&buf, styles.Boundary{
		CX: f.x(0), CY: f.y(f.centerY), R: d.HeadRadius * f.scale,
	})
	renderAxes(&buf, &r, d, f)

	for _, e := range d.Electrodes {
		m := styles.Marker{
			Label:    e.Label,
			Kind:     string(e.Kind),
			CX:       f.x(e.X),
			CY:       f.y(e.Y),
			R:        markerR,
			FontSize: fontSize,
		}
		if e.Kind == layout.KindFiducial {
			m.R = markerR * 0.85
		}
		r.style.RenderMarker(&buf, m)
		if !r.hideLabel {
			r.style.RenderLabel(&buf, m)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.Clinical{}, width: defaultWidth}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// renderAxes draws the nasion-inion and interaural reference lines.
func renderAxes(buf *bytes.Buffer, r *svgRenderer, d layout.Document, f frame) {
	ni := d.Subject.NasionInion
	pa := d.Subject.Preauricular
	r.style.RenderAxis(buf, styles.Axis{
		X1: f.x(0), Y1: f.y(0), X2: f.x(0), Y2: f.y(-ni),
	})
	r.style.RenderAxis(buf, styles.Axis{
		X1: f.x(-pa / 2), Y1: f.y(-ni / 2), X2: f.x(pa / 2), Y2: f.y(-ni / 2),
	})
}

// renderGrid overlays light lines every gridStepCM centimeters, centered on
// the head midpoint.
func renderGrid(buf *bytes.Buffer, r *svgRenderer, f frame) {
	buf.WriteString(`  <g class="grid">` + "\n")
	for cm := gridStepCM; cm <= f.halfW; cm += gridStepCM {
		gridLine(buf, f.x(cm), f.margin, f.x(cm), f.height-f.margin)
		gridLine(buf, f.x(-cm), f.margin, f.x(-cm), f.height-f.margin)
	}
	gridLine(buf, f.x(0), f.margin, f.x(0), f.height-f.margin)
	for cm := 0.0; cm <= f.halfH; cm += gridStepCM {
		gridLine(buf, f.margin, f.y(f.centerY+cm), f.width-f.margin, f.y(f.centerY+cm))
		gridLine(buf, f.margin, f.y(f.centerY-cm), f.width-f.margin, f.y(f.centerY-cm))
	}
	buf.WriteString("  </g>\n")
}

func gridLine(buf *bytes.Buffer, x1, y1, x2, y2 float64) {
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#eee" stroke-width="0.5"/>`+"\n",
		x1, y1, x2, y2)
}
