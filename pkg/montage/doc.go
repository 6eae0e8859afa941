// Package montage implements the 10-20 electrode layout engine.
//
// The engine turns four scalar subject parameters (age in months, sex,
// nasion-inion distance, preauricular distance) into the fixed set of 21
// named scalp coordinates: five midline electrodes, ten lateral pairs, the
// temporal pair, and the four fiducial landmarks anchoring the frame.
//
// # Pipeline
//
// Computation runs in three stages, each pure and O(1):
//
//  1. Scale-shift model: (age, sex) → spacing factor and frontal shift
//     ([Model.Evaluate]). Pediatric heads get electrodes shifted anteriorly;
//     the shift decays piecewise-linearly with age and vanishes at 120 months.
//  2. Midline placement: the five sagittal electrodes are interpolated along
//     the nasion-inion axis using a constant offset table.
//  3. Bilateral placement: left/right pairs are derived from each midline
//     anchor and the head boundary, approximated as bilinear between the
//     four fiducials. The temporal pair is keyed off Cz.
//
// # Conventions
//
// The coordinate frame is subject-centered: nasion at the origin, inion at
// (0, -nasionInion), preauricular points at (±preauricular/2, -nasionInion/2).
// All distances are centimeters. Age is always months. The frontal shift is
// carried as a fraction of the nasion-inion span; the centimeter form exists
// only inside the scale model.
//
// Every computation is stateless: [Compute] returns a fresh [Layout] and two
// calls with identical subjects return identical layouts.
package montage
