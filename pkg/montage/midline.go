package montage

import "github.com/Tato14/Ped-eeg-position/pkg/geom"

// MidlineOffsets maps each sagittal electrode to its signed offset fraction
// along the nasion-inion axis, relative to Cz at the midpoint. Negative
// offsets are anterior (toward nasion). This table is a constant of the
// montage, not subject-dependent.
var MidlineOffsets = map[string]float64{
	LabelFpz: -0.40,
	LabelFz:  -0.30,
	LabelCz:  0.00,
	LabelPz:  +0.20,
	LabelOz:  +0.40,
}

// maxMidlineOffset is the largest posterior offset in the table; the scale
// model uses it to cap the frontal shift at the inion.
const maxMidlineOffset = 0.40

// midlinePoints places the five sagittal electrodes.
//
// For each label, fraction = 0.5 + offset*spacing + frontShift, then the
// point is interpolated from nasion to inion. The frontal shift applies
// uniformly to all labels including Cz; pinning Cz while shifting the rest
// was one of the historical variants and produces a visibly different
// anterior-posterior layout.
func midlinePoints(f Fiducials, ss ScaleShift) map[string]geom.Point {
	points := make(map[string]geom.Point, len(MidlineOffsets))
	for label, offset := range MidlineOffsets {
		fraction := 0.5 + offset*ss.SpacingFactor + ss.FrontShift
		points[label] = geom.Lerp(f.Nasion, f.Inion, fraction)
	}
	return points
}
