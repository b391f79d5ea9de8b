package scoring_test

import (
	"testing"
	"time"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/internal/scoring"

	"github.com/stretchr/testify/assert"
)

func fullYouthProfile() *domain.YouthProfile {
	return &domain.YouthProfile{
		FullName:        "Amina Osei",
		ContactNumber:   "+233201234567",
		DateOfBirth:     time.Date(2002, 5, 14, 0, 0, 0, 0, time.UTC),
		District:        "Tamale",
		ProvinceOrState: "Northern",
		Education: domain.Education{
			HighestQualification: "Diploma",
		},
		TechnicalSkills:      []string{"Excel", "Python", "SQL"},
		SoftSkills:           []string{"Teamwork", "Communication"},
		DigitalLiteracyLevel: "medium",
		ExperienceYears:      2,
		InternetAccess:       true,
	}
}

func TestCompleteness(t *testing.T) {
	t.Run("Empty set yields zero", func(t *testing.T) {
		assert.Equal(t, 0, scoring.Completeness([]string{}))
	})

	t.Run("Whitespace does not count as filled", func(t *testing.T) {
		assert.Equal(t, 50, scoring.Completeness([]string{"value", "   "}))
	})

	t.Run("Rounds to nearest integer", func(t *testing.T) {
		// 1 of 6 filled = 16.66 -> 17
		assert.Equal(t, 17, scoring.Completeness([]string{"x", "", "", "", "", ""}))
		// 5 of 6 filled = 83.33 -> 83
		assert.Equal(t, 83, scoring.Completeness([]string{"a", "b", "c", "d", "e", ""}))
	})

	t.Run("Youth mandatory set is six fields", func(t *testing.T) {
		p := fullYouthProfile()
		assert.Equal(t, 100, scoring.YouthCompleteness(p))

		p.District = ""
		assert.Equal(t, 83, scoring.YouthCompleteness(p))
	})

	t.Run("Zero date of birth counts as missing", func(t *testing.T) {
		p := fullYouthProfile()
		p.DateOfBirth = time.Time{}
		assert.Equal(t, 83, scoring.YouthCompleteness(p))
	})

	t.Run("Organization mandatory set is five fields", func(t *testing.T) {
		p := &domain.OrganizationProfile{
			OrganizationName: "AgriTech Hub",
			ContactNumber:    "+233501112222",
			Industry:         "Agriculture",
			OrganizationType: "NGO",
			Location:         "Kumasi",
		}
		assert.Equal(t, 100, scoring.OrganizationCompleteness(p))

		p.Location = ""
		assert.Equal(t, 80, scoring.OrganizationCompleteness(p))
	})
}

func TestStrength(t *testing.T) {
	t.Run("Weights are 50/30/20", func(t *testing.T) {
		level, score := scoring.Strength(
			[]string{"a", "b", "c"}, // 15
			[]string{"x", "y"},      // 6
			2,                       // 4
		)
		assert.Equal(t, 25.0, score)
		assert.Equal(t, scoring.StrengthLow, level)
	})

	t.Run("Each input saturates at 10", func(t *testing.T) {
		tech := make([]string, 25)
		soft := make([]string, 25)
		level, score := scoring.Strength(tech, soft, 40)
		assert.Equal(t, 100.0, score)
		assert.Equal(t, scoring.StrengthHigh, level)
	})

	t.Run("Level thresholds at 40 and 70", func(t *testing.T) {
		level, score := scoring.Strength(make([]string, 8), []string{}, 0) // 40
		assert.Equal(t, 40.0, score)
		assert.Equal(t, scoring.StrengthMedium, level)

		level, score = scoring.Strength(make([]string, 10), make([]string, 5), 2.5) // 70
		assert.Equal(t, 70.0, score)
		assert.Equal(t, scoring.StrengthHigh, level)
	})

	t.Run("Negative experience clamps to zero", func(t *testing.T) {
		_, score := scoring.Strength(nil, nil, -5)
		assert.Equal(t, 0.0, score)
	})

	t.Run("Score never decreases when inputs grow", func(t *testing.T) {
		prev := -1.0
		for n := 0; n <= 15; n++ {
			_, score := scoring.Strength(make([]string, n), nil, 0)
			assert.GreaterOrEqual(t, score, prev)
			prev = score
		}
	})
}

func TestEligibility(t *testing.T) {
	t.Run("Rounds before comparing to threshold", func(t *testing.T) {
		// 0.6*83 + 0.4*25 = 59.8 -> rounds to 60, eligible
		score, eligible := scoring.Eligibility(83, 25)
		assert.Equal(t, 60, score)
		assert.True(t, eligible)
	})

	t.Run("Below threshold is ineligible", func(t *testing.T) {
		score, eligible := scoring.Eligibility(50, 40) // 46
		assert.Equal(t, 46, score)
		assert.False(t, eligible)
	})

	t.Run("Full inputs give full score", func(t *testing.T) {
		score, eligible := scoring.Eligibility(100, 100)
		assert.Equal(t, 100, score)
		assert.True(t, eligible)
	})
}

func TestYouthSuggestions(t *testing.T) {
	t.Run("Complete strong profile gets no suggestions", func(t *testing.T) {
		p := fullYouthProfile()
		suggestions := scoring.YouthSuggestions(p, 100)
		assert.Empty(t, suggestions)
		assert.NotNil(t, suggestions)
	})

	t.Run("All six rules fire in fixed order", func(t *testing.T) {
		p := &domain.YouthProfile{
			DigitalLiteracyLevel: "low",
		}
		suggestions := scoring.YouthSuggestions(p, 0)
		assert.Equal(t, []string{
			"Complete all mandatory profile fields to reach 100%.",
			"Add at least 3 technical skills relevant to your interests.",
			"Add key soft skills such as teamwork, communication, or leadership.",
			"Consider volunteering or short internships to gain experience.",
			"Improve your digital literacy by taking basic computer or online skills courses.",
			"Ensure you have reliable internet access to participate in remote opportunities.",
		}, suggestions)
	})

	t.Run("Medium literacy does not trigger the literacy rule", func(t *testing.T) {
		p := fullYouthProfile()
		p.DigitalLiteracyLevel = "medium"
		suggestions := scoring.YouthSuggestions(p, 100)
		assert.NotContains(t, suggestions, "Improve your digital literacy by taking basic computer or online skills courses.")
	})
}

func TestOrganizationSuggestions(t *testing.T) {
	t.Run("All five rules fire in fixed order", func(t *testing.T) {
		p := &domain.OrganizationProfile{}
		suggestions := scoring.OrganizationSuggestions(p, 40, false)
		assert.Equal(t, []string{
			"Complete all mandatory organization profile fields.",
			"Add a clear description of your organization and mission.",
			"Add your organization website or social media page.",
			"Consider enabling remote internships to reach more rural youth candidates.",
			"Upload verification documents so an admin can verify your organization.",
		}, suggestions)
	})

	t.Run("Verified complete organization gets none", func(t *testing.T) {
		p := &domain.OrganizationProfile{
			Description:             "We train rural youth.",
			Website:                 "https://example.org",
			OffersRemoteInternships: true,
		}
		suggestions := scoring.OrganizationSuggestions(p, 100, true)
		assert.Empty(t, suggestions)
	})
}

func TestReadiness(t *testing.T) {
	t.Run("Ready requires completeness and verification", func(t *testing.T) {
		assert.Equal(t, domain.ReadinessReady, scoring.ReadinessStatus(80, true))
		assert.Equal(t, domain.ReadinessDraft, scoring.ReadinessStatus(79, true))
		assert.Equal(t, domain.ReadinessDraft, scoring.ReadinessStatus(100, false))
	})

	t.Run("Revoking verification drops readiness", func(t *testing.T) {
		p := &domain.OrganizationProfile{
			OrganizationName: "AgriTech Hub",
			ContactNumber:    "+233501112222",
			Industry:         "Agriculture",
			OrganizationType: "NGO",
			Location:         "Kumasi",
			Verified:         true,
		}
		scoring.RecomputeOrganization(p)
		assert.Equal(t, domain.ReadinessReady, p.ReadinessStatus)
		assert.True(t, p.CanPostInternship)

		p.Verified = false
		scoring.RecomputeOrganization(p)
		assert.Equal(t, domain.ReadinessDraft, p.ReadinessStatus)
		assert.False(t, p.CanPostInternship)
	})
}

func TestRecomputeYouth(t *testing.T) {
	t.Run("Derived block moves together", func(t *testing.T) {
		p := fullYouthProfile()
		p.RuralAreaFlag = true
		scoring.RecomputeYouth(p)

		assert.Equal(t, 100, p.ProfileCompleteness)
		// 3*5 + 2*3 + 2*2 = 25
		assert.Equal(t, scoring.StrengthLow, p.ProfileStrengthLevel)
		// round(0.6*100 + 0.4*25) = 70
		assert.Equal(t, 70, p.EligibilityScore)
		assert.True(t, p.ParticipationEligibility)
		assert.True(t, p.RuralSupportPriority)
		assert.Empty(t, p.Suggestions)
	})

	t.Run("Emptying a field degrades all derived values", func(t *testing.T) {
		p := fullYouthProfile()
		scoring.RecomputeYouth(p)
		before := p.EligibilityScore

		p.District = ""
		p.TechnicalSkills = nil
		scoring.RecomputeYouth(p)

		assert.Less(t, p.EligibilityScore, before)
		assert.Less(t, p.ProfileCompleteness, 100)
		assert.Contains(t, p.Suggestions, "Add at least 3 technical skills relevant to your interests.")
	})
}

func TestSnapshotFieldSets(t *testing.T) {
	t.Run("Youth snapshot carries the versioned fields", func(t *testing.T) {
		p := fullYouthProfile()
		scoring.RecomputeYouth(p)
		snap := p.Snapshot()

		assert.Equal(t, p.FullName, snap.FullName)
		assert.Equal(t, p.ContactNumber, snap.ContactNumber)
		assert.Equal(t, p.Education, snap.Education)
		assert.Equal(t, p.ProfileCompleteness, snap.ProfileCompleteness)
		assert.Equal(t, p.EligibilityScore, snap.EligibilityScore)
		assert.Equal(t, p.Suggestions, snap.Suggestions)
	})

	t.Run("Organization snapshot carries the versioned fields", func(t *testing.T) {
		p := &domain.OrganizationProfile{
			OrganizationName: "AgriTech Hub",
			ContactNumber:    "+233501112222",
			Industry:         "Agriculture",
			OrganizationType: "NGO",
			Location:         "Kumasi",
			Verified:         true,
		}
		scoring.RecomputeOrganization(p)
		snap := p.Snapshot()

		assert.Equal(t, p.OrganizationName, snap.OrganizationName)
		assert.Equal(t, p.ReadinessStatus, snap.ReadinessStatus)
		assert.Equal(t, p.CanPostInternship, snap.CanPostInternship)
		assert.Equal(t, p.Verified, snap.Verified)
	})
}
