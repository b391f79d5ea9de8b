package scoring

import (
	"math"

	"rural-internship-backend/internal/domain"
)

// Strength levels.
const (
	StrengthLow    = "low"
	StrengthMedium = "medium"
	StrengthHigh   = "high"
)

// Strength computes the weighted profile strength from skill counts and
// experience. Technical skills weigh 50%, soft skills 30%, experience 20%;
// each input saturates at 10. The raw score is returned alongside the level
// because eligibility consumes the score, not the level.
func Strength(technicalSkills, softSkills []string, experienceYears float64) (level string, score float64) {
	if experienceYears < 0 {
		experienceYears = 0
	}

	techScore := math.Min(float64(len(technicalSkills)), 10) * 5 // max 50
	softScore := math.Min(float64(len(softSkills)), 10) * 3     // max 30
	expScore := math.Min(experienceYears, 10) * 2               // max 20

	score = techScore + softScore + expScore

	switch {
	case score >= 70:
		return StrengthHigh, score
	case score >= 40:
		return StrengthMedium, score
	default:
		return StrengthLow, score
	}
}

// Eligibility combines completeness (60%) and the raw strength score (40%)
// into a rounded 0-100 score; 60 is the participation threshold.
func Eligibility(completeness int, strengthScore float64) (score int, eligible bool) {
	base := float64(completeness)*0.6 + strengthScore*0.4
	score = int(math.Round(base))
	return score, score >= 60
}

// RuralSupportPriority is deliberately its own named signal even though it is
// a one-liner: downstream prioritization consumes it independently.
func RuralSupportPriority(p *domain.YouthProfile) bool {
	return p.RuralAreaFlag
}
