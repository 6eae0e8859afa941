package styles

import (
	"bytes"
	"strings"
	"testing"
)

func TestClinicalRenderDefs(t *testing.T) {
	s := Clinical{}
	var buf bytes.Buffer
	s.RenderDefs(&buf)

	// Clinical style has no defs
	if buf.Len() != 0 {
		t.Errorf("RenderDefs() wrote %d bytes, want 0", buf.Len())
	}
}

func TestClinicalRenderBoundary(t *testing.T) {
	s := Clinical{}
	var buf bytes.Buffer
	s.RenderBoundary(&buf, Boundary{CX: 300, CY: 320, R: 260})
	output := buf.String()

	for _, want := range []string{
		`<circle`,
		`class="head"`,
		`cx="300.00"`,
		`cy="320.00"`,
		`r="260.00"`,
		`fill="white"`,
		`stroke="#333"`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("RenderBoundary() output missing %q\nGot: %s", want, output)
		}
	}
}

func TestClinicalRenderMarker(t *testing.T) {
	s := Clinical{}

	tests := []struct {
		name     string
		marker   Marker
		contains []string
	}{
		{
			name:   "midline electrode",
			marker: Marker{Label: "Cz", Kind: "midline", CX: 300, CY: 320, R: 6},
			contains: []string{
				`<circle`,
				`id="electrode-Cz"`,
				`cx="300.00"`,
				`cy="320.00"`,
				`r="6.00"`,
				`fill="#1f6feb"`,
			},
		},
		{
			name:   "temporal electrode",
			marker: Marker{Label: "T7", Kind: "temporal", CX: 100, CY: 320, R: 6},
			contains: []string{
				`fill="#cf222e"`,
			},
		},
		{
			name:   "fiducial rendered as open square",
			marker: Marker{Label: "Nz", Kind: "fiducial", CX: 300, CY: 40, R: 5},
			contains: []string{
				`<rect`,
				`id="electrode-Nz"`,
				`x="295.00"`,
				`y="35.00"`,
				`width="10.00"`,
				`fill="none"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			s.RenderMarker(&buf, tt.marker)
			output := buf.String()

			for _, want := range tt.contains {
				if !strings.Contains(output, want) {
					t.Errorf("RenderMarker() output missing %q\nGot: %s", want, output)
				}
			}
		})
	}
}

func TestClinicalRenderLabel(t *testing.T) {
	s := Clinical{}
	var buf bytes.Buffer
	s.RenderLabel(&buf, Marker{Label: "Fp1", Kind: "lateral", CX: 200, CY: 100, R: 6, FontSize: 12})
	output := buf.String()

	for _, want := range []string{
		`<text`,
		`text-anchor="middle"`,
		`font-size="12.0"`,
		`>Fp1</text>`,
	} {
		if !strings.Contains(output, want) {
			t.Errorf("RenderLabel() output missing %q\nGot: %s", want, output)
		}
	}
}

func TestRenderLabelEscapesXML(t *testing.T) {
	s := Clinical{}
	var buf bytes.Buffer
	s.RenderLabel(&buf, Marker{Label: "A<&>B", CX: 0, CY: 0, R: 5, FontSize: 10})
	output := buf.String()

	if strings.Contains(output, "A<&>B") {
		t.Error("RenderLabel() should escape special characters in the label")
	}
	if !strings.Contains(output, "A&lt;&amp;&gt;B") {
		t.Errorf("RenderLabel() escaping wrong\nGot: %s", output)
	}
}

func TestPrintRenderMarkerMonochrome(t *testing.T) {
	s := Print{}
	var buf bytes.Buffer
	s.RenderMarker(&buf, Marker{Label: "O2", Kind: "lateral", CX: 400, CY: 500, R: 6})
	output := buf.String()

	if !strings.Contains(output, `stroke="black"`) || !strings.Contains(output, `fill="white"`) {
		t.Errorf("Print markers must be monochrome\nGot: %s", output)
	}
	if strings.Contains(output, "#2da44e") {
		t.Error("Print style must not use the clinical palette")
	}
}

func TestStylesImplementStyle(t *testing.T) {
	// Compile-time check that both styles implement Style
	var _ Style = Clinical{}
	var _ Style = Print{}
}
