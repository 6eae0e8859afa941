package montage

import "github.com/Tato14/Ped-eeg-position/pkg/geom"

// Fiducials are the four anatomical landmarks anchoring the coordinate
// frame: nasion at the origin, inion straight below it, preauricular points
// at ear level on either side.
type Fiducials struct {
	Nasion            geom.Point
	Inion             geom.Point
	LeftPreauricular  geom.Point
	RightPreauricular geom.Point
}

// fiducialsFor derives the landmark frame from the subject distances.
func fiducialsFor(sub Subject) Fiducials {
	return Fiducials{
		Nasion:            geom.Point{X: 0, Y: 0},
		Inion:             geom.Point{X: 0, Y: -sub.NasionInion},
		LeftPreauricular:  geom.Point{X: -sub.Preauricular / 2, Y: -sub.NasionInion / 2},
		RightPreauricular: geom.Point{X: sub.Preauricular / 2, Y: -sub.NasionInion / 2},
	}
}

// Layout is the complete result of a computation: all 21 labeled points
// plus the scalars that produced them. It is a fresh value per call and is
// never mutated afterwards.
type Layout struct {
	Subject   Subject
	Fiducials Fiducials

	// Electrodes maps every canonical label (including the four fiducial
	// labels) to its coordinate.
	Electrodes map[string]geom.Point

	SpacingFactor float64
	FrontShift    float64 // fraction of the nasion-inion span
}

// HeadRadius returns the display radius of the head circle,
// (nasionInion + preauricular) / 4.
func (l Layout) HeadRadius() float64 {
	return (l.Subject.NasionInion + l.Subject.Preauricular) / 4
}

// Center returns the vertical midpoint of the nasion-inion axis, the center
// of the head circle and containment ellipse.
func (l Layout) Center() geom.Point {
	return geom.Point{X: 0, Y: -l.Subject.NasionInion / 2}
}

// Compute runs the full layout pipeline with the canonical (zero-value)
// scale model. See [Model.Compute].
func Compute(sub Subject) Layout {
	return Model{}.Compute(sub)
}

// Compute orchestrates the engine: scale-shift model, midline placement,
// bilateral placement, and assembly of the label→point map.
//
// Inputs are assumed pre-validated (see [Subject.Validate]); given valid
// inputs the computation is total and never returns a partial layout.
// Out-of-range ages degrade gracefully via clamping inside the model.
func (m Model) Compute(sub Subject) Layout {
	fid := fiducialsFor(sub)
	ss := m.Evaluate(sub.AgeMonths, sub.Sex, sub.NasionInion)

	mid := midlinePoints(fid, ss)
	bilateral := bilateralPoints(mid, fid, sub.NasionInion)

	electrodes := make(map[string]geom.Point, 21)
	for label, p := range mid {
		electrodes[label] = p
	}
	for label, p := range bilateral {
		electrodes[label] = p
	}
	electrodes[LabelNasion] = fid.Nasion
	electrodes[LabelInion] = fid.Inion
	electrodes[LabelLPA] = fid.LeftPreauricular
	electrodes[LabelRPA] = fid.RightPreauricular

	return Layout{
		Subject:       sub,
		Fiducials:     fid,
		Electrodes:    electrodes,
		SpacingFactor: ss.SpacingFactor,
		FrontShift:    ss.FrontShift,
	}
}
