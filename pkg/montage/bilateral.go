package montage

import "github.com/Tato14/Ped-eeg-position/pkg/geom"

// Lateral fractions: how far an electrode sits from its midline anchor
// toward the head boundary at the anchor's height.
const (
	lateralFraction  = 0.3
	temporalFraction = 0.8
)

// lateralRows maps each midline anchor to its left/right electrode pair.
var lateralRows = []struct {
	anchor, left, right string
}{
	{LabelFpz, LabelFp1, LabelFp2},
	{LabelFz, LabelF3, LabelF4},
	{LabelCz, LabelC3, LabelC4},
	{LabelPz, LabelP3, LabelP4},
	{LabelOz, LabelO1, LabelO2},
}

// bilateralPoints derives the ten lateral and two temporal electrodes from
// the midline points and the head's fiducial frame.
//
// For a midline anchor M and lateral fraction f:
//  1. relY = (M.y - inion.y) / nasionInion, the anchor's height as a
//     fraction of the full span (0 at inion, 1 at nasion).
//  2. The available width at that height comes from interpolating
//     inion → preauricular on each side, approximating the head boundary
//     as bilinear between the four fiducials.
//  3. The electrode is interpolated from M toward that bound by f.
//
// The temporal pair is keyed off Cz with the larger fraction rather than
// one pair per row: the montage has a single temporal chain.
func bilateralPoints(mid map[string]geom.Point, f Fiducials, nasionInion float64) map[string]geom.Point {
	points := make(map[string]geom.Point, len(lateralRows)*2+2)

	place := func(anchor geom.Point, frac float64) (left, right geom.Point) {
		relY := (anchor.Y - f.Inion.Y) / nasionInion
		leftBound := geom.Lerp(f.Inion, f.LeftPreauricular, relY)
		rightBound := geom.Lerp(f.Inion, f.RightPreauricular, relY)
		return geom.Lerp(anchor, leftBound, frac), geom.Lerp(anchor, rightBound, frac)
	}

	for _, row := range lateralRows {
		left, right := place(mid[row.anchor], lateralFraction)
		points[row.left] = left
		points[row.right] = right
	}

	t7, t8 := place(mid[LabelCz], temporalFraction)
	points[LabelT7] = t7
	points[LabelT8] = t8

	return points
}
