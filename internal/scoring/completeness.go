// Package scoring holds the pure derivation functions for profile
// completeness, strength, eligibility, suggestions and organization
// readiness. Everything here is deterministic and free of side effects,
// safe to call concurrently.
package scoring

import (
	"math"
	"strings"

	"rural-internship-backend/internal/domain"
)

// Completeness returns round(filled/total*100) over the given mandatory
// values. A value counts as filled iff it is non-empty after trimming
// whitespace. An empty mandatory set yields 0.
func Completeness(values []string) int {
	if len(values) == 0 {
		return 0
	}

	filled := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			filled++
		}
	}

	return int(math.Round(float64(filled) / float64(len(values)) * 100))
}

// YouthCompleteness evaluates the fixed mandatory field set of a youth
// profile: full name, contact number, date of birth, district,
// province/state and highest qualification.
func YouthCompleteness(p *domain.YouthProfile) int {
	dob := ""
	if !p.DateOfBirth.IsZero() {
		dob = p.DateOfBirth.Format("2006-01-02")
	}

	return Completeness([]string{
		p.FullName,
		p.ContactNumber,
		dob,
		p.District,
		p.ProvinceOrState,
		p.Education.HighestQualification,
	})
}

// OrganizationCompleteness evaluates the fixed mandatory field set of an
// organization profile: name, contact number, industry, type and location.
func OrganizationCompleteness(p *domain.OrganizationProfile) int {
	return Completeness([]string{
		p.OrganizationName,
		p.ContactNumber,
		p.Industry,
		p.OrganizationType,
		p.Location,
	})
}
