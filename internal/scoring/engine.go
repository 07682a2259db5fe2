// internal/scoring/engine.go
package scoring

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Engine computes candidate assessment scores from a rubric. Calculate is
// pure and total: it never panics and is defined for nil input.
type Engine struct {
	rubric *Rubric
}

func NewEngine(rubric *Rubric) *Engine {
	if rubric == nil {
		rubric = DefaultRubric()
	}
	return &Engine{rubric: rubric}
}

// Calculate produces the weighted score, candidate type classification,
// letter grade and a per-item breakdown for the given assessment record.
// A nil or empty record yields an all-zero result classified as fresher.
func (e *Engine) Calculate(input *Input) *Result {
	r := e.rubric

	if input == nil {
		input = &Input{}
	}

	eduRaw, eduDetails := e.scoreEducation(input.Education)
	expRaw, expDetails, growth := e.scoreExperience(input.Experience, input.PreviousCompanies)
	addRaw, addDetails := e.scoreAdditional(input.Additional)

	edu := clamp(eduRaw, 0, r.EducationMax)
	exp := clamp(expRaw, 0, r.ExperienceMax)
	add := clamp(addRaw, 0, r.AdditionalMax)

	candidateType := e.classify(input, growth)

	// Type-weighted adjustment rewards the dimension more relevant to the
	// candidate's stage. The order is multiply-then-reclamp: adjusting first
	// and clamping after keeps every component inside its band.
	if candidateType == TypeFresher {
		edu = clamp(edu*r.FresherEducationFactor, 0, r.EducationMax)
		add = clamp(add*r.FresherAdditionalFactor, 0, r.AdditionalMax)
	} else {
		exp = clamp(exp*r.ExperiencedExperienceFactor, 0, r.ExperienceMax)
	}

	eduScore := int(math.Round(edu))
	expScore := int(math.Round(exp))
	addScore := int(math.Round(add))
	total := eduScore + expScore + addScore

	maxTotal := r.EducationMax + r.ExperienceMax + r.AdditionalMax

	return &Result{
		EducationScore:  eduScore,
		ExperienceScore: expScore,
		AdditionalScore: addScore,
		TotalScore:      total,
		CandidateType:   candidateType,
		Grade:           e.Grade(float64(total), maxTotal),
		Breakdown: Breakdown{
			Education: ComponentBreakdown{
				Score:    eduScore,
				MaxScore: int(r.EducationMax),
				Details:  eduDetails,
			},
			Experience: ComponentBreakdown{
				Score:    expScore,
				MaxScore: int(r.ExperienceMax),
				Details:  expDetails,
			},
			Additional: ComponentBreakdown{
				Score:    addScore,
				MaxScore: int(r.AdditionalMax),
				Details:  addDetails,
			},
		},
	}
}

// scoreEducation takes the highest-weighted qualification present, not the
// most recent one, then applies the certificate bonus or reason deduction
// for that entry only.
func (e *Engine) scoreEducation(entries []EducationEntry) (float64, []Detail) {
	r := e.rubric
	details := []Detail{}

	best := -1
	bestWeight := -1.0
	for i, entry := range entries {
		if entry.Type == "" {
			continue
		}
		weight := r.EducationWeights[entry.Type]
		if weight > bestWeight {
			bestWeight = weight
			best = i
		}
	}

	if best < 0 {
		return 0, details
	}

	entry := entries[best]
	score := bestWeight
	details = append(details, Detail{
		Item:   fmt.Sprintf("Highest qualification: %s", entry.Type),
		Points: int(bestWeight),
	})

	if entry.HasCertificate {
		score += r.CertificateBonus
		details = append(details, Detail{
			Item:   "Certificate verified",
			Points: int(r.CertificateBonus),
		})
	} else if entry.Reason != "" {
		deduction := r.ReasonDeductions[entry.Reason]
		score += deduction
		details = append(details, Detail{
			Item:   fmt.Sprintf("Certificate missing (%s)", entry.Reason),
			Points: int(deduction),
		})
	}

	return score, details
}

// scoreExperience scores the current company (position zero) for documents,
// salary growth, incentives and tenure, then adds presence and document
// points for up to the capped number of previous companies. The returned
// growth is the parsed salary growth percentage, or NaN when it could not
// be computed.
func (e *Engine) scoreExperience(entries []ExperienceEntry, previous []PreviousCompany) (float64, []Detail, float64) {
	r := e.rubric
	details := []Detail{}
	score := 0.0
	growth := math.NaN()

	if len(entries) > 0 {
		current := entries[0]

		if current.OfferLetter {
			score += r.OfferLetterPoints
			details = append(details, Detail{Item: "Offer letter provided", Points: int(r.OfferLetterPoints)})
		}
		if current.Payslip {
			score += r.PayslipPoints
			details = append(details, Detail{Item: "Payslip provided", Points: int(r.PayslipPoints)})
		}
		if current.RelievingLetter {
			score += r.RelievingLetterPoints
			details = append(details, Detail{Item: "Relieving letter provided", Points: int(r.RelievingLetterPoints)})
		}

		growth = salaryGrowthPercent(current.FirstSalary, current.CurrentSalary)
		if !math.IsNaN(growth) {
			if points := e.growthPoints(growth); points > 0 {
				score += points
				details = append(details, Detail{
					Item:   fmt.Sprintf("Salary growth %.0f%%", growth),
					Points: int(points),
				})
			}
		}

		if current.Incentives {
			bonus := r.IncentiveBonus
			item := "Incentives earned"
			if current.IncentiveProof {
				bonus += r.IncentiveProofBonus
				item = "Incentives earned with proof"
			}
			score += bonus
			details = append(details, Detail{Item: item, Points: int(bonus)})
		}

		if current.MoreThan15Months {
			score += r.TenureBonus
			details = append(details, Detail{Item: "Tenure above 15 months", Points: int(r.TenureBonus)})
		}
	}

	counted := len(previous)
	if counted > r.PreviousCompanyCap {
		counted = r.PreviousCompanyCap
	}
	for i := 0; i < counted; i++ {
		company := previous[i]
		points := r.PreviousPresencePoints
		if company.OfferLetter {
			points += r.PreviousOfferPoints
		}
		if company.Payslip {
			points += r.PreviousPayslipPoints
		}
		if company.RelievingLetter {
			points += r.PreviousRelievingPoints
		}
		score += points
		details = append(details, Detail{
			Item:   fmt.Sprintf("Previous company %d documents", i+1),
			Points: int(points),
		})
	}

	return score, details, growth
}

func (e *Engine) scoreAdditional(entries []AdditionalEntry) (float64, []Detail) {
	r := e.rubric
	details := []Detail{}
	score := 0.0

	if len(entries) == 0 {
		return score, details
	}

	first := entries[0]
	if first.HasTwoWheeler {
		score += r.TwoWheelerPoints
		details = append(details, Detail{Item: "Owns two wheeler", Points: int(r.TwoWheelerPoints)})
	}
	if first.TwoWheelerLicense {
		score += r.LicensePoints
		details = append(details, Detail{Item: "Holds driving license", Points: int(r.LicensePoints)})
	}
	if first.HasLaptop {
		score += r.LaptopPoints
		details = append(details, Detail{Item: "Owns laptop", Points: int(r.LaptopPoints)})
	}

	return score, details
}

// growthPoints maps a growth percentage onto the banded bonus. Bands with a
// positive threshold are exclusive; the zero band is inclusive so flat
// salary still earns its points. Negative growth earns nothing.
func (e *Engine) growthPoints(growth float64) float64 {
	for _, band := range e.rubric.GrowthBands {
		if band.Min > 0 && growth > band.Min {
			return band.Points
		}
		if band.Min == 0 && growth >= 0 {
			return band.Points
		}
	}
	return 0
}

// classify counts the five experience indicators and labels the candidate
// experienced when enough of them hold.
func (e *Engine) classify(input *Input, growth float64) string {
	indicators := 0

	if len(input.Experience) > 0 {
		current := input.Experience[0]
		if current.MoreThan15Months {
			indicators++
		}
		if current.OfferLetter || current.Payslip || current.RelievingLetter {
			indicators++
		}
		if current.Incentives {
			indicators++
		}
	}
	if !math.IsNaN(growth) && growth > 0 {
		indicators++
	}
	if len(input.PreviousCompanies) > 0 {
		indicators++
	}

	if indicators >= e.rubric.ExperiencedIndicatorMin {
		return TypeExperienced
	}
	return TypeFresher
}

// Grade maps a score out of maxScore onto the letter band table. A zero or
// negative maxScore falls back to 100; a non-finite percentage grades F.
func (e *Engine) Grade(score, maxScore float64) string {
	if maxScore <= 0 {
		maxScore = 100
	}
	percentage := score / maxScore * 100
	if math.IsNaN(percentage) || math.IsInf(percentage, 0) {
		return "F"
	}

	for _, band := range e.rubric.GradeBands {
		if percentage >= band.Min && percentage <= band.Max {
			return band.Grade
		}
	}
	return "F"
}

// salaryGrowthPercent computes (current-first)/first*100. Salary fields are
// free-text numeric strings; anything unparsable, and a zero or negative
// first salary, yields NaN so the growth bonus is skipped instead of
// poisoning the total.
func salaryGrowthPercent(first, current string) float64 {
	firstVal, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil || firstVal <= 0 {
		return math.NaN()
	}
	currentVal, err := strconv.ParseFloat(strings.TrimSpace(current), 64)
	if err != nil {
		return math.NaN()
	}
	return (currentVal - firstVal) / firstVal * 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
