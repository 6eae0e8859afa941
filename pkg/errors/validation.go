package errors

import "math"

// ValidateAge validates an age in months for the layout engine.
// Ages must be finite and non-negative; there is no upper limit because the
// scale model saturates above its top breakpoint.
func ValidateAge(months float64) error {
	if math.IsNaN(months) || math.IsInf(months, 0) {
		return New(ErrCodeInvalidAge, "age must be a finite number")
	}
	if months < 0 {
		return New(ErrCodeInvalidAge, "age must be non-negative, got %g months", months)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values for the named quantity.
// Used on deserialized coordinates, which are otherwise unconstrained.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidLayout, "%s must be a finite number", name)
	}
	return nil
}

// ValidateDistance validates a craniometric distance in centimeters.
// The engine divides by the nasion-inion distance, so zero and negative
// values are rejected here rather than deep inside the computation.
func ValidateDistance(name string, cm float64) error {
	if math.IsNaN(cm) || math.IsInf(cm, 0) {
		return New(ErrCodeInvalidDistance, "%s distance must be a finite number", name)
	}
	if cm <= 0 {
		return New(ErrCodeInvalidDistance, "%s distance must be positive, got %g cm", name, cm)
	}
	return nil
}
