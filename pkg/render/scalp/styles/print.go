package styles

import (
	"bytes"
	"fmt"
)

// Print is a monochrome style for paper charts: open markers, serif labels,
// no color coding. Kind is conveyed by marker shape alone (squares for
// fiducials, circles for everything else).
type Print struct{}

func (Print) RenderDefs(buf *bytes.Buffer) {}

func (Print) RenderBoundary(buf *bytes.Buffer, b Boundary) {
	fmt.Fprintf(buf,
		`  <circle class="head" cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="black" stroke-width="1.5"/>`+"\n",
		b.CX, b.CY, b.R)
}

func (Print) RenderAxis(buf *bytes.Buffer, a Axis) {
	fmt.Fprintf(buf,
		`  <line class="axis" x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="black" stroke-width="0.5" stroke-dasharray="2,3"/>`+"\n",
		a.X1, a.Y1, a.X2, a.Y2)
}

func (Print) RenderMarker(buf *bytes.Buffer, m Marker) {
	if m.Kind == "fiducial" {
		half := m.R
		fmt.Fprintf(buf,
			`  <rect class="electrode" id="electrode-%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="black" stroke-width="1"/>`+"\n",
			EscapeXML(m.Label), m.CX-half, m.CY-half, 2*half, 2*half)
		return
	}
	fmt.Fprintf(buf,
		`  <circle class="electrode" id="electrode-%s" cx="%.2f" cy="%.2f" r="%.2f" fill="white" stroke="black" stroke-width="1.5"/>`+"\n",
		EscapeXML(m.Label), m.CX, m.CY, m.R)
}

func (Print) RenderLabel(buf *bytes.Buffer, m Marker) {
	fmt.Fprintf(buf,
		`  <text class="electrode-label" x="%.2f" y="%.2f" text-anchor="middle" font-family="Times,serif" font-size="%.1f" fill="black">%s</text>`+"\n",
		m.CX, m.CY-m.R-0.35*m.FontSize, m.FontSize, EscapeXML(m.Label))
}
