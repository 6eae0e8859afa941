// Package styles defines the visual vocabulary of scalp diagrams. A Style
// turns geometric primitives (head boundary, sagittal axis, electrode
// markers) into SVG fragments; the scalp renderer owns the coordinate
// transform and calls the style for each element.
package styles

import "bytes"

// Style defines the visual appearance for scalp rendering.
// Implementations control how the head boundary, axes, electrode markers,
// and labels are drawn.
type Style interface {
	// RenderDefs writes SVG <defs> content (filters, patterns, gradients).
	RenderDefs(buf *bytes.Buffer)
	// RenderBoundary writes the SVG for the head outline.
	RenderBoundary(buf *bytes.Buffer, b Boundary)
	// RenderAxis writes the SVG for a reference axis line.
	RenderAxis(buf *bytes.Buffer, a Axis)
	// RenderMarker writes the SVG for a single electrode marker.
	RenderMarker(buf *bytes.Buffer, m Marker)
	// RenderLabel writes the SVG for an electrode's text label.
	RenderLabel(buf *bytes.Buffer, m Marker)
}

// Marker contains all data needed to render a single electrode.
type Marker struct {
	Label    string  // Electrode name (e.g. "Cz")
	Kind     string  // "midline", "lateral", "temporal" or "fiducial"
	CX, CY   float64 // Center in pixel coordinates
	R        float64 // Marker radius in pixels
	FontSize float64 // Label font size in pixels
}

// Boundary contains positioning data for the head outline circle.
type Boundary struct {
	CX, CY float64 // Center in pixel coordinates
	R      float64 // Radius in pixels
}

// Axis contains positioning data for a reference line.
type Axis struct {
	X1, Y1, X2, Y2 float64 // Line coordinates in pixels
}
