package chain

import (
	"strings"
	"testing"

	"github.com/Tato14/Ped-eeg-position/pkg/layout"
	"github.com/Tato14/Ped-eeg-position/pkg/montage"
)

func testDocument(t *testing.T) layout.Document {
	t.Helper()
	l := montage.Compute(montage.Subject{
		AgeMonths: 120, Sex: montage.Male, NasionInion: 35, Preauricular: 30,
	})
	return layout.FromMontage(l)
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testDocument(t), Options{})

	if !strings.Contains(dot, "graph montage") {
		t.Error("ToDOT() output missing graph declaration")
	}
	if !strings.Contains(dot, "layout=neato") {
		t.Error("ToDOT() output missing neato layout attribute")
	}
	if !strings.Contains(dot, `"Cz"`) {
		t.Error("ToDOT() output missing node Cz")
	}
	if !strings.Contains(dot, `"Fpz" -- "Fz"`) {
		t.Error("ToDOT() output missing midline chain edge")
	}
	if !strings.Contains(dot, `"Fp1" -- "T7"`) {
		t.Error("ToDOT() output missing temporal chain edge")
	}
}

func TestToDOT_PinnedPositions(t *testing.T) {
	dot := ToDOT(testDocument(t), Options{})

	// Cz sits at (0, -17.5) for the adult reference subject.
	if !strings.Contains(dot, `"Cz" [label="Cz", pos="0.000,-17.500!"]`) {
		t.Errorf("ToDOT() Cz not pinned at its coordinates:\n%s", dot)
	}
}

func TestToDOT_FiducialsExcludedByDefault(t *testing.T) {
	doc := testDocument(t)

	dot := ToDOT(doc, Options{})
	if strings.Contains(dot, `"Nz"`) {
		t.Error("ToDOT() includes fiducials without the option")
	}

	dot = ToDOT(doc, Options{Fiducials: true})
	for _, label := range montage.FiducialLabels {
		if !strings.Contains(dot, `"`+label+`"`) {
			t.Errorf("ToDOT() with Fiducials missing %s", label)
		}
	}
	if !strings.Contains(dot, "shape=square") {
		t.Error("ToDOT() fiducials should use square markers")
	}
}

func TestToDOT_Coordinates(t *testing.T) {
	dot := ToDOT(testDocument(t), Options{Coordinates: true})

	if !strings.Contains(dot, `(0.0, -17.5)`) {
		t.Errorf("ToDOT() coordinate labels missing:\n%s", dot)
	}
}

func TestNodeLabel(t *testing.T) {
	e := layout.Electrode{Label: "F3", X: -3.25, Y: -10.5, Kind: layout.KindLateral}

	if got := nodeLabel(e, Options{}); got != "F3" {
		t.Errorf("nodeLabel() plain = %q, want %q", got, "F3")
	}
	if got := nodeLabel(e, Options{Coordinates: true}); !strings.Contains(got, "(-3.2, -10.5)") {
		t.Errorf("nodeLabel() with coordinates = %q", got)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 8.00 6.00" xmlns="http://www.w3.org/2000/svg"><g></g></svg>`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 8.00 6.00"`) {
		t.Errorf("normalizeViewBox() viewBox not rewritten: %s", out)
	}
	if !strings.Contains(out, `width="8" height="6"`) {
		t.Errorf("normalizeViewBox() dimensions not rewritten: %s", out)
	}

	// Inputs without a viewBox pass through untouched.
	plain := []byte(`<svg><g></g></svg>`)
	if got := string(normalizeViewBox(plain)); got != string(plain) {
		t.Errorf("normalizeViewBox() modified input without viewBox: %s", got)
	}
}
