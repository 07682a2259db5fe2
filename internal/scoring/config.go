// internal/scoring/config.go
package scoring

// Rubric holds every weight, bonus and cap the engine uses. All of it is
// data so a rubric change never touches control flow. DefaultRubric is the
// product policy in force; pkg/registry can overlay a JSON-loaded variant.
type Rubric struct {
	// Education
	EducationWeights map[string]float64 `json:"educationWeights"`
	CertificateBonus float64            `json:"certificateBonus"`
	ReasonDeductions map[string]float64 `json:"reasonDeductions"`
	EducationMax     float64            `json:"educationMax"`

	// Experience - current company documents
	OfferLetterPoints     float64 `json:"offerLetterPoints"`
	PayslipPoints         float64 `json:"payslipPoints"`
	RelievingLetterPoints float64 `json:"relievingLetterPoints"`

	// Experience - salary growth bands, evaluated in order, first match wins.
	GrowthBands []GrowthBand `json:"growthBands"`

	// Experience - bonuses
	IncentiveBonus      float64 `json:"incentiveBonus"`
	IncentiveProofBonus float64 `json:"incentiveProofBonus"`
	TenureBonus         float64 `json:"tenureBonus"`

	// Experience - previous companies. The cap is product policy: the form
	// allows unlimited entries but only this many ever score.
	PreviousCompanyCap      int     `json:"previousCompanyCap"`
	PreviousPresencePoints  float64 `json:"previousPresencePoints"`
	PreviousOfferPoints     float64 `json:"previousOfferPoints"`
	PreviousPayslipPoints   float64 `json:"previousPayslipPoints"`
	PreviousRelievingPoints float64 `json:"previousRelievingPoints"`
	ExperienceMax           float64 `json:"experienceMax"`

	// Additional
	TwoWheelerPoints float64 `json:"twoWheelerPoints"`
	LicensePoints    float64 `json:"licensePoints"`
	LaptopPoints     float64 `json:"laptopPoints"`
	AdditionalMax    float64 `json:"additionalMax"`

	// Candidate type classification: experienced when at least this many
	// of the five indicators hold.
	ExperiencedIndicatorMin int `json:"experiencedIndicatorMin"`

	// Type-weighted adjustment factors, applied after clamping and then
	// re-clamped.
	FresherEducationFactor      float64 `json:"fresherEducationFactor"`
	FresherAdditionalFactor     float64 `json:"fresherAdditionalFactor"`
	ExperiencedExperienceFactor float64 `json:"experiencedExperienceFactor"`

	// Grade bands over the total percentage, evaluated in order.
	GradeBands []GradeBand `json:"gradeBands"`
}

// GrowthBand awards Points when salary growth percentage exceeds Min
// (inclusive for the zero band, exclusive above).
type GrowthBand struct {
	Min    float64 `json:"min"`
	Points float64 `json:"points"`
}

// GradeBand maps an inclusive percentage range to a letter grade.
type GradeBand struct {
	Grade string  `json:"grade"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// DefaultRubric returns the rubric currently in force.
func DefaultRubric() *Rubric {
	return &Rubric{
		EducationWeights: map[string]float64{
			"phd":     25,
			"pg":      22,
			"ug":      16,
			"diploma": 12,
			"12th":    8,
			"10th":    6,
			"other":   4,
		},
		CertificateBonus: 4,
		ReasonDeductions: map[string]float64{
			"lost":           -2,
			"not_received":   -1,
			"not_applicable": 0,
		},
		EducationMax: 25,

		OfferLetterPoints:     7,
		PayslipPoints:         8,
		RelievingLetterPoints: 10,

		GrowthBands: []GrowthBand{
			{Min: 50, Points: 12},
			{Min: 20, Points: 8},
			{Min: 0, Points: 4},
		},

		IncentiveBonus:      4,
		IncentiveProofBonus: 2,
		TenureBonus:         2,

		PreviousCompanyCap:      3,
		PreviousPresencePoints:  2,
		PreviousOfferPoints:     1,
		PreviousPayslipPoints:   1,
		PreviousRelievingPoints: 2,
		ExperienceMax:           55,

		TwoWheelerPoints: 5,
		LicensePoints:    5,
		LaptopPoints:     10,
		AdditionalMax:    20,

		ExperiencedIndicatorMin: 2,

		FresherEducationFactor:      1.1,
		FresherAdditionalFactor:     1.2,
		ExperiencedExperienceFactor: 1.1,

		GradeBands: []GradeBand{
			{Grade: "A+", Min: 90, Max: 100},
			{Grade: "A", Min: 80, Max: 89},
			{Grade: "B+", Min: 70, Max: 79},
			{Grade: "B", Min: 60, Max: 69},
			{Grade: "C", Min: 50, Max: 59},
			{Grade: "D", Min: 40, Max: 49},
			{Grade: "E", Min: 30, Max: 39},
			{Grade: "F", Min: 0, Max: 29},
		},
	}
}
