package scoring

import "rural-internship-backend/internal/domain"

// Suggestion rules run in a fixed order and each appends at most one
// message, so the output order is stable for a given profile. Tests compare
// lists verbatim; changing a message or the order is a breaking change.

func YouthSuggestions(p *domain.YouthProfile, completeness int) []string {
	suggestions := []string{}

	if completeness < 100 {
		suggestions = append(suggestions, "Complete all mandatory profile fields to reach 100%.")
	}

	if len(p.TechnicalSkills) == 0 {
		suggestions = append(suggestions, "Add at least 3 technical skills relevant to your interests.")
	}

	if len(p.SoftSkills) == 0 {
		suggestions = append(suggestions, "Add key soft skills such as teamwork, communication, or leadership.")
	}

	if p.ExperienceYears == 0 {
		suggestions = append(suggestions, "Consider volunteering or short internships to gain experience.")
	}

	if p.DigitalLiteracyLevel == "low" {
		suggestions = append(suggestions, "Improve your digital literacy by taking basic computer or online skills courses.")
	}

	if !p.InternetAccess {
		suggestions = append(suggestions, "Ensure you have reliable internet access to participate in remote opportunities.")
	}

	return suggestions
}

func OrganizationSuggestions(p *domain.OrganizationProfile, completeness int, verified bool) []string {
	suggestions := []string{}

	if completeness < 100 {
		suggestions = append(suggestions, "Complete all mandatory organization profile fields.")
	}

	if p.Description == "" {
		suggestions = append(suggestions, "Add a clear description of your organization and mission.")
	}

	if p.Website == "" {
		suggestions = append(suggestions, "Add your organization website or social media page.")
	}

	if !p.OffersRemoteInternships {
		suggestions = append(suggestions, "Consider enabling remote internships to reach more rural youth candidates.")
	}

	if !verified {
		suggestions = append(suggestions, "Upload verification documents so an admin can verify your organization.")
	}

	return suggestions
}
