// Package layout defines the serialized interchange format for computed
// electrode layouts. It is the bridge between the geometry engine
// (pkg/montage) and the renderers: Compute produces a montage.Layout,
// FromMontage flattens it into a Document, and the render packages consume
// Documents. Because Documents round-trip through JSON, a layout computed
// once can be saved, inspected, and re-rendered without recomputation.
package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Tato14/Ped-eeg-position/pkg/errors"
	"github.com/Tato14/Ped-eeg-position/pkg/montage"
)

// Kind classifies an electrode position by how it was derived.
type Kind string

// Recognized electrode kinds.
const (
	KindMidline  Kind = "midline"
	KindLateral  Kind = "lateral"
	KindTemporal Kind = "temporal"
	KindFiducial Kind = "fiducial"
)

var labelKinds = buildLabelKinds()

func buildLabelKinds() map[string]Kind {
	m := make(map[string]Kind, len(montage.AllLabels))
	for _, l := range montage.MidlineLabels {
		m[l] = KindMidline
	}
	for _, l := range montage.LateralLabels {
		m[l] = KindLateral
	}
	for _, l := range montage.TemporalLabels {
		m[l] = KindTemporal
	}
	for _, l := range montage.FiducialLabels {
		m[l] = KindFiducial
	}
	return m
}

// Subject echoes the computation inputs in the serialized document so a
// saved layout is self-describing.
type Subject struct {
	AgeMonths    float64 `json:"age_months"`
	Sex          string  `json:"sex"`
	NasionInion  float64 `json:"nasion_inion_cm"`
	Preauricular float64 `json:"preauricular_cm"`
}

// Electrode is one named position in centimeters, head-surface coordinates.
type Electrode struct {
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Kind  Kind    `json:"kind"`
}

// Document is the serialized form of a computed layout. Electrodes are
// ordered canonically (midline, lateral rows, temporals, fiducials) so the
// encoding is deterministic and diffs stay readable.
type Document struct {
	Subject       Subject     `json:"subject"`
	SpacingFactor float64     `json:"spacing_factor"`
	FrontShift    float64     `json:"front_shift"`
	HeadRadius    float64     `json:"head_radius_cm"`
	Electrodes    []Electrode `json:"electrodes"`
}

// FromMontage flattens a computed layout into its serialized form.
func FromMontage(l montage.Layout) Document {
	doc := Document{
		Subject: Subject{
			AgeMonths:    l.Subject.AgeMonths,
			Sex:          string(l.Subject.Sex),
			NasionInion:  l.Subject.NasionInion,
			Preauricular: l.Subject.Preauricular,
		},
		SpacingFactor: l.SpacingFactor,
		FrontShift:    l.FrontShift,
		HeadRadius:    l.HeadRadius(),
		Electrodes:    make([]Electrode, 0, len(montage.AllLabels)),
	}
	for _, label := range montage.AllLabels {
		p, ok := l.Electrodes[label]
		if !ok {
			continue
		}
		doc.Electrodes = append(doc.Electrodes, Electrode{
			Label: label,
			X:     p.X,
			Y:     p.Y,
			Kind:  labelKinds[label],
		})
	}
	return doc
}

// Position returns the coordinates of the electrode with the given label.
func (d Document) Position(label string) (Electrode, bool) {
	for _, e := range d.Electrodes {
		if e.Label == label {
			return e, true
		}
	}
	return Electrode{}, false
}

// Validate checks that the document describes a renderable layout: a valid
// subject, at least one electrode, recognized labels without duplicates,
// and finite coordinates.
func (d Document) Validate() error {
	sex, err := montage.ParseSex(d.Subject.Sex)
	if err != nil {
		return err
	}
	sub := montage.Subject{
		AgeMonths:    d.Subject.AgeMonths,
		Sex:          sex,
		NasionInion:  d.Subject.NasionInion,
		Preauricular: d.Subject.Preauricular,
	}
	if err := sub.Validate(); err != nil {
		return err
	}

	if len(d.Electrodes) == 0 {
		return errors.New(errors.ErrCodeInvalidLayout, "layout has no electrodes")
	}
	seen := make(map[string]struct{}, len(d.Electrodes))
	for _, e := range d.Electrodes {
		if _, ok := labelKinds[e.Label]; !ok {
			return errors.New(errors.ErrCodeInvalidLayout, "unknown electrode label %q", e.Label)
		}
		if _, dup := seen[e.Label]; dup {
			return errors.New(errors.ErrCodeInvalidLayout, "duplicate electrode label %q", e.Label)
		}
		seen[e.Label] = struct{}{}
		if err := errors.ValidateFinite(e.Label+".x", e.X); err != nil {
			return err
		}
		if err := errors.ValidateFinite(e.Label+".y", e.Y); err != nil {
			return err
		}
	}
	return nil
}

// Marshal encodes the document as indented JSON. The encoding is canonical
// for a given document, so it doubles as the cache fingerprint input.
func Marshal(d Document) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal decodes a document from JSON and validates it.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// WriteJSON encodes the document as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for round-trip rendering.
func WriteJSON(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a layout document from r and validates it.
//
// ReadJSON returns an error if the JSON is malformed, if the embedded
// subject fails validation, or if the electrode list contains unknown or
// duplicate labels. The returned document is independent of r; ReadJSON
// does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Document{}, fmt.Errorf("decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// ExportJSON writes a document to a JSON file at path.
func ExportJSON(d Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}

// ImportJSON reads and validates a layout document from the file at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
