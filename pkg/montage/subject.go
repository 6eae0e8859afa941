package montage

import (
	"strings"

	"github.com/Tato14/Ped-eeg-position/pkg/errors"
)

// Sex is the closed enum the core operates on. Free-form strings from UIs
// or query parameters must be converted at the boundary with [ParseSex].
type Sex string

// Recognized sex values.
const (
	Male   Sex = "male"
	Female Sex = "female"
)

// Valid reports whether s is one of the recognized enum values.
func (s Sex) Valid() bool {
	return s == Male || s == Female
}

// ParseSex converts a free-form string to a Sex value, case-insensitively.
func ParseSex(s string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Male), "m":
		return Male, nil
	case string(Female), "f":
		return Female, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidSex, "invalid sex: %q (must be male or female)", s)
	}
}

// Subject holds the four scalar inputs of a layout computation.
// The struct is read-only to the engine; callers own validation timing.
type Subject struct {
	AgeMonths    float64 // age in months, >= 0
	Sex          Sex
	NasionInion  float64 // nasion-inion distance in cm, > 0
	Preauricular float64 // preauricular distance in cm, > 0
}

// Validate checks the subject parameters against the engine preconditions:
// finite non-negative age, recognized sex, strictly positive distances.
// The engine treats violations as caller bugs, so validation belongs at the
// input boundary (CLI flags, HTTP query parameters), not inside Compute.
func (s Subject) Validate() error {
	if err := errors.ValidateAge(s.AgeMonths); err != nil {
		return err
	}
	if !s.Sex.Valid() {
		return errors.New(errors.ErrCodeInvalidSex, "invalid sex: %q (must be male or female)", string(s.Sex))
	}
	if err := errors.ValidateDistance("nasion-inion", s.NasionInion); err != nil {
		return err
	}
	return errors.ValidateDistance("preauricular", s.Preauricular)
}
