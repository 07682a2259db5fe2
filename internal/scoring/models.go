// internal/scoring/models.go
package scoring

// Input is a candidate's self-reported assessment record as the scoring
// form submits it. Sequences are ordered by position; only the positions
// the rubric names contribute points.
type Input struct {
	Education         []EducationEntry  `json:"education"`
	Experience        []ExperienceEntry `json:"experience"`
	PreviousCompanies []PreviousCompany `json:"previousCompanies"`
	Additional        []AdditionalEntry `json:"additional"`
}

type EducationEntry struct {
	Type           string `json:"type"`
	HasCertificate bool   `json:"has_certificate"`
	Reason         string `json:"reason"`
}

// ExperienceEntry describes one employment. Salary fields arrive as
// numeric strings from the form layer; unparsable values are skipped, not
// rejected.
type ExperienceEntry struct {
	OfferLetter      bool   `json:"offer_letter"`
	Payslip          bool   `json:"payslip"`
	RelievingLetter  bool   `json:"relieving_letter"`
	Incentives       bool   `json:"incentives"`
	IncentiveProof   bool   `json:"incentive_proof"`
	MoreThan15Months bool   `json:"more_than_15_months"`
	FirstSalary      string `json:"first_salary"`
	CurrentSalary    string `json:"current_salary"`
	NoticePeriod     string `json:"notice_period"`
}

type PreviousCompany struct {
	OfferLetter     bool `json:"offer_letter"`
	Payslip         bool `json:"payslip"`
	RelievingLetter bool `json:"relieving_letter"`
}

type AdditionalEntry struct {
	HasTwoWheeler     bool `json:"has_two_wheeler"`
	TwoWheelerLicense bool `json:"two_wheeler_license"`
	HasLaptop         bool `json:"has_laptop"`
}

// Candidate type classification values.
const (
	TypeFresher     = "fresher"
	TypeExperienced = "experienced"
)

// Result is the derived score. It is recomputed on every input change and
// never persisted by this layer.
type Result struct {
	EducationScore  int       `json:"educationScore"`
	ExperienceScore int       `json:"experienceScore"`
	AdditionalScore int       `json:"additionalScore"`
	TotalScore      int       `json:"totalScore"`
	CandidateType   string    `json:"candidateType"`
	Grade           string    `json:"grade"`
	Breakdown       Breakdown `json:"breakdown"`
}

type Breakdown struct {
	Education  ComponentBreakdown `json:"education"`
	Experience ComponentBreakdown `json:"experience"`
	Additional ComponentBreakdown `json:"additional"`
}

type ComponentBreakdown struct {
	Score    int      `json:"score"`
	MaxScore int      `json:"maxScore"`
	Details  []Detail `json:"details"`
}

// Detail is one human-readable line of the breakdown; points are signed.
type Detail struct {
	Item   string `json:"item"`
	Points int    `json:"points"`
}
