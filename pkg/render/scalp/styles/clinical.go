package styles

import (
	"bytes"
	"encoding/xml"
	"fmt"
)

// Kind fill colors for the clinical palette.
var clinicalFills = map[string]string{
	"midline":  "#1f6feb",
	"lateral":  "#2da44e",
	"temporal": "#cf222e",
	"fiducial": "#6e7781",
}

// Clinical is the default style: a white head outline with electrodes
// color-coded by kind and sans-serif labels. Fiducials are drawn as open
// squares so they read as landmarks rather than recording sites.
type Clinical struct{}

func (Clinical) RenderDefs(buf *bytes.Buffer) {}

func (Clinical) RenderBoundary(buf *bytes.Buffer, b Boundary) {
	fmt.Fprintf(buf,
		`  <circle class="head" cx="%.2f" cy="%.2f" r="%.2f" fill="white" stroke="#333" stroke-width="2"/>`+"\n",
		b.CX, b.CY, b.R)
}

func (Clinical) RenderAxis(buf *bytes.Buffer, a Axis) {
	fmt.Fprintf(buf,
		`  <line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#999" stroke-width="1" stroke-dasharray="4,4"/>`+"\n",
		a.X1, a.Y1, a.X2, a.Y2)
}

func (Clinical) RenderMarker(buf *bytes.Buffer, m Marker) {
	fill := clinicalFills[m.Kind]
	if fill == "" {
		fill = "#333"
	}
	if m.Kind == "fiducial" {
		half := m.R
		fmt.Fprintf(buf,
			`  <rect class="electrode" id="electrode-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			EscapeXML(m.Label), m.CX-half, m.CY-half, 2*half, 2*half, fill)
		return
	}
	fmt.Fprintf(buf,
		`  <circle class="electrode" id="electrode-%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="#333" stroke-width="1"/>`+"\n",
		EscapeXML(m.Label), m.CX, m.CY, m.R, fill)
}

func (Clinical) RenderLabel(buf *bytes.Buffer, m Marker) {
	fmt.Fprintf(buf,
		`  <text class="electrode-label" x="%.2f" y="%.2f" text-anchor="middle" font-family="Helvetica,Arial,sans-serif" font-size="%.1f" fill="#333">%s</text>`+"\n",
		m.CX, m.CY-m.R-0.35*m.FontSize, m.FontSize, EscapeXML(m.Label))
}

// EscapeXML escapes s for safe embedding in SVG attributes and text nodes.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
