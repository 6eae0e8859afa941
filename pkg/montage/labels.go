package montage

// Canonical electrode and fiducial labels. The layout always contains
// exactly these 21 labels, no more, no fewer.
const (
	// Midline (sagittal plane, x=0).
	LabelFpz = "Fpz"
	LabelFz  = "Fz"
	LabelCz  = "Cz"
	LabelPz  = "Pz"
	LabelOz  = "Oz"

	// Lateral pairs (odd = left, even = right).
	LabelFp1 = "Fp1"
	LabelFp2 = "Fp2"
	LabelF3  = "F3"
	LabelF4  = "F4"
	LabelC3  = "C3"
	LabelC4  = "C4"
	LabelP3  = "P3"
	LabelP4  = "P4"
	LabelO1  = "O1"
	LabelO2  = "O2"

	// Temporal pair.
	LabelT7 = "T7"
	LabelT8 = "T8"

	// Fiducial landmarks.
	LabelNasion = "Nz"
	LabelInion  = "Iz"
	LabelLPA    = "LPA"
	LabelRPA    = "RPA"
)

// MidlineLabels lists the sagittal electrodes in anterior-to-posterior order.
var MidlineLabels = []string{LabelFpz, LabelFz, LabelCz, LabelPz, LabelOz}

// LateralLabels lists the ten lateral electrodes, left before right per row.
var LateralLabels = []string{
	LabelFp1, LabelFp2,
	LabelF3, LabelF4,
	LabelC3, LabelC4,
	LabelP3, LabelP4,
	LabelO1, LabelO2,
}

// TemporalLabels lists the temporal pair.
var TemporalLabels = []string{LabelT7, LabelT8}

// FiducialLabels lists the four anatomical landmarks.
var FiducialLabels = []string{LabelNasion, LabelInion, LabelLPA, LabelRPA}

// AllLabels lists all 21 canonical labels: midline, lateral, temporal and
// fiducials, in display order.
var AllLabels = func() []string {
	all := make([]string, 0, 21)
	all = append(all, MidlineLabels...)
	all = append(all, LateralLabels...)
	all = append(all, TemporalLabels...)
	all = append(all, FiducialLabels...)
	return all
}()
