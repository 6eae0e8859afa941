package montage

// Age/sex scale-shift model.
//
// The historical source carried several inconsistent variants (centimeter
// vs fraction shifts, Cz shifted or pinned, age in months vs years). The
// consolidated model here is: age in months, frontal shift converted to a
// fraction of the nasion-inion span once at the model boundary, and the
// shift applied uniformly to every midline label including Cz.

// Model breakpoints and factors.
const (
	// FemaleSpacingFactor is the sex multiplier applied to the spacing
	// factor when the subject is female.
	FemaleSpacingFactor = 0.95

	// SaturationAgeMonths is the age at and above which the model is fully
	// adult: zero frontal shift, spacing factor 1.0 (modulo sex).
	SaturationAgeMonths = 120

	// MaxFrontShiftCM is the frontal shift at age 0. The shift decays
	// piecewise-linearly through the breakpoints below and is clamped to
	// this value for any age below the lowest breakpoint.
	MaxFrontShiftCM = 3.0

	// DefaultMinSpacing is the age-0 spacing factor used when age-dependent
	// spacing is enabled on the model.
	DefaultMinSpacing = 0.85
)

// shiftBreakpoints maps age in months to frontal shift in centimeters.
// Segments are linearly interpolated; the value is clamped below the first
// breakpoint and zero at and above the last. Evaluation at a breakpoint is
// continuous from both sides.
var shiftBreakpoints = []struct {
	AgeMonths float64
	ShiftCM   float64
}{
	{0, MaxFrontShiftCM},
	{12, 2.0},
	{48, 1.0},
	{SaturationAgeMonths, 0.0},
}

// ScaleShift is the per-subject output of the model.
type ScaleShift struct {
	// SpacingFactor scales midline offsets from the vertex toward the
	// periphery. Dimensionless, typically in [0.9, 1.0].
	SpacingFactor float64

	// FrontShift moves the whole midline chain anteriorly, expressed as a
	// fraction of the nasion-inion span. Zero for adult subjects.
	FrontShift float64
}

// Model converts (age, sex) into a [ScaleShift]. The zero value is the
// canonical model: spacing depends on sex only, matching the historical
// behavior. Enable AgeSpacing to additionally compress spacing for young
// subjects.
type Model struct {
	// AgeSpacing enables the optional age-dependent spacing factor: linear
	// from MinSpacing at 0 months to 1.0 at SaturationAgeMonths.
	AgeSpacing bool

	// MinSpacing is the age-0 spacing factor when AgeSpacing is set.
	// Zero means DefaultMinSpacing.
	MinSpacing float64
}

// Evaluate computes the spacing factor and frontal shift for a subject.
// nasionInion must be positive; it converts the model's centimeter shift
// into the fraction carried through placement. The shift is additionally
// capped so the most posterior midline electrode never crosses the inion,
// which keeps every produced coordinate inside the head boundary.
func (m Model) Evaluate(ageMonths float64, sex Sex, nasionInion float64) ScaleShift {
	if ageMonths < 0 {
		ageMonths = 0
	}

	spacing := 1.0
	if m.AgeSpacing {
		spacing = m.spacingAt(ageMonths)
	}
	if sex == Female {
		spacing *= FemaleSpacingFactor
	}

	shift := frontShiftCM(ageMonths) / nasionInion
	if bound := maxShiftFraction(spacing); shift > bound {
		shift = bound
	}

	return ScaleShift{SpacingFactor: spacing, FrontShift: shift}
}

// spacingAt interpolates the age-dependent spacing factor.
func (m Model) spacingAt(ageMonths float64) float64 {
	min := m.MinSpacing
	if min == 0 {
		min = DefaultMinSpacing
	}
	if ageMonths >= SaturationAgeMonths {
		return 1.0
	}
	return min + (1.0-min)*(ageMonths/SaturationAgeMonths)
}

// frontShiftCM evaluates the piecewise-linear shift table in centimeters.
func frontShiftCM(ageMonths float64) float64 {
	bps := shiftBreakpoints
	if ageMonths <= bps[0].AgeMonths {
		return bps[0].ShiftCM
	}
	last := bps[len(bps)-1]
	if ageMonths >= last.AgeMonths {
		return last.ShiftCM
	}
	for i := 1; i < len(bps); i++ {
		lo, hi := bps[i-1], bps[i]
		if ageMonths <= hi.AgeMonths {
			t := (ageMonths - lo.AgeMonths) / (hi.AgeMonths - lo.AgeMonths)
			return lo.ShiftCM + t*(hi.ShiftCM-lo.ShiftCM)
		}
	}
	return last.ShiftCM
}

// maxShiftFraction bounds the shift so that the Oz fraction
// (0.5 + maxMidlineOffset*spacing + shift) stays at or inside the inion.
func maxShiftFraction(spacing float64) float64 {
	return 0.5 - maxMidlineOffset*spacing
}
