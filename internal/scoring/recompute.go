package scoring

import "rural-internship-backend/internal/domain"

// RecomputeYouth refreshes the whole derived block of a youth profile in one
// pass. Callers must use this (never set individual derived fields) so the
// derived values can never be stale relative to each other.
func RecomputeYouth(p *domain.YouthProfile) {
	completeness := YouthCompleteness(p)
	level, strengthScore := Strength(p.TechnicalSkills, p.SoftSkills, p.ExperienceYears)
	eligibilityScore, eligible := Eligibility(completeness, strengthScore)

	p.ProfileCompleteness = completeness
	p.ProfileStrengthLevel = level
	p.EligibilityScore = eligibilityScore
	p.ParticipationEligibility = eligible
	p.RuralSupportPriority = RuralSupportPriority(p)
	p.Suggestions = YouthSuggestions(p, completeness)
}

// RecomputeOrganization refreshes the derived block of an organization
// profile, including the readiness state machine.
func RecomputeOrganization(p *domain.OrganizationProfile) {
	completeness := OrganizationCompleteness(p)
	status := ReadinessStatus(completeness, p.Verified)

	p.ProfileCompletenessPercentage = completeness
	p.ReadinessStatus = status
	p.CanPostInternship = CanPostInternship(status, p.Verified)
	p.ReadinessSuggestions = OrganizationSuggestions(p, completeness, p.Verified)
}
