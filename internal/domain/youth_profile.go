package domain

import (
	"context"
	"time"
)

// Education is the embedded education sub-record of a youth profile.
type Education struct {
	HighestQualification string `json:"highest_qualification"`
	InstitutionName      string `json:"institution_name"`
	FieldOfStudy         string `json:"field_of_study"`
	GraduationYear       int    `json:"graduation_year,omitempty" validate:"omitempty,max_current_year"`
}

// Document is an uploaded file's metadata, owned by its parent profile.
// Documents have no independent lifecycle; the list is append-only.
type Document struct {
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	SizeInBytes int64     `json:"size_in_bytes"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// YouthVersion is one audit-trail entry: the profile's field values as they
// were immediately before a mutation.
type YouthVersion struct {
	Snapshot  YouthSnapshot `json:"snapshot"`
	ChangedAt time.Time     `json:"changed_at"`
	ChangedBy string        `json:"changed_by"`
}

type YouthProfile struct {
	ID                         int64     `json:"id"`
	UserID                     string    `json:"user_id"`
	FullName                   string    `json:"full_name" validate:"required,valid_name,no_emoji"`
	ContactNumber              string    `json:"contact_number" validate:"required,valid_phone"`
	DateOfBirth                time.Time `json:"date_of_birth"`
	Gender                     string    `json:"gender,omitempty"`
	District                   string    `json:"district,omitempty"`
	ProvinceOrState            string    `json:"province_or_state,omitempty"`
	RuralAreaFlag              bool      `json:"rural_area_flag"`
	Education                  Education `json:"education"`
	TechnicalSkills            []string  `json:"technical_skills"`
	SoftSkills                 []string  `json:"soft_skills"`
	DigitalLiteracyLevel       string    `json:"digital_literacy_level" validate:"omitempty,oneof=low medium high"`
	ExperienceYears            float64   `json:"experience_years" validate:"gte=0"`
	PreviousInternships        []string  `json:"previous_internships"`
	VolunteeringExperience     []string  `json:"volunteering_experience"`
	PreferredInternshipType    string    `json:"preferred_internship_type" validate:"omitempty,oneof=remote onsite hybrid any"`
	TransportationAvailability bool      `json:"transportation_availability"`
	InternetAccess             bool      `json:"internet_access"`
	ProfileVisibility          string    `json:"profile_visibility" validate:"omitempty,oneof=public private restricted"`

	// Derived fields. Never client-writable; recomputed together after every
	// mutation so they are never individually stale.
	ProfileCompleteness      int      `json:"profile_completeness"`
	ProfileStrengthLevel     string   `json:"profile_strength_level"`
	EligibilityScore         int      `json:"eligibility_score"`
	ParticipationEligibility bool     `json:"participation_eligibility"`
	RuralSupportPriority     bool     `json:"rural_support_priority"`
	Suggestions              []string `json:"suggestions"`

	Documents []Document     `json:"documents"`
	Versions  []YouthVersion `json:"versions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// YouthSnapshot is the fixed field set captured before each mutation.
// It deliberately enumerates fields rather than deep-copying the profile:
// fields added to YouthProfile later must be added here explicitly or they
// will not be versioned.
type YouthSnapshot struct {
	FullName                   string    `json:"full_name"`
	ContactNumber              string    `json:"contact_number"`
	DateOfBirth                time.Time `json:"date_of_birth"`
	Gender                     string    `json:"gender,omitempty"`
	District                   string    `json:"district,omitempty"`
	ProvinceOrState            string    `json:"province_or_state,omitempty"`
	RuralAreaFlag              bool      `json:"rural_area_flag"`
	Education                  Education `json:"education"`
	TechnicalSkills            []string  `json:"technical_skills"`
	SoftSkills                 []string  `json:"soft_skills"`
	DigitalLiteracyLevel       string    `json:"digital_literacy_level"`
	ExperienceYears            float64   `json:"experience_years"`
	PreviousInternships        []string  `json:"previous_internships"`
	VolunteeringExperience     []string  `json:"volunteering_experience"`
	PreferredInternshipType    string    `json:"preferred_internship_type"`
	TransportationAvailability bool      `json:"transportation_availability"`
	InternetAccess             bool      `json:"internet_access"`
	ProfileVisibility          string    `json:"profile_visibility"`
	ProfileCompleteness        int       `json:"profile_completeness"`
	ProfileStrengthLevel       string    `json:"profile_strength_level"`
	ParticipationEligibility   bool      `json:"participation_eligibility"`
	EligibilityScore           int       `json:"eligibility_score"`
	RuralSupportPriority       bool      `json:"rural_support_priority"`
	Documents                  []Document `json:"documents"`
	Suggestions                []string   `json:"suggestions"`
}

// Snapshot captures the profile's current values for the audit trail.
func (p *YouthProfile) Snapshot() YouthSnapshot {
	return YouthSnapshot{
		FullName:                   p.FullName,
		ContactNumber:              p.ContactNumber,
		DateOfBirth:                p.DateOfBirth,
		Gender:                     p.Gender,
		District:                   p.District,
		ProvinceOrState:            p.ProvinceOrState,
		RuralAreaFlag:              p.RuralAreaFlag,
		Education:                  p.Education,
		TechnicalSkills:            p.TechnicalSkills,
		SoftSkills:                 p.SoftSkills,
		DigitalLiteracyLevel:       p.DigitalLiteracyLevel,
		ExperienceYears:            p.ExperienceYears,
		PreviousInternships:        p.PreviousInternships,
		VolunteeringExperience:     p.VolunteeringExperience,
		PreferredInternshipType:    p.PreferredInternshipType,
		TransportationAvailability: p.TransportationAvailability,
		InternetAccess:             p.InternetAccess,
		ProfileVisibility:          p.ProfileVisibility,
		ProfileCompleteness:        p.ProfileCompleteness,
		ProfileStrengthLevel:       p.ProfileStrengthLevel,
		ParticipationEligibility:   p.ParticipationEligibility,
		EligibilityScore:           p.EligibilityScore,
		RuralSupportPriority:       p.RuralSupportPriority,
		Documents:                  p.Documents,
		Suggestions:                p.Suggestions,
	}
}

// YouthProfileUpdate is the explicit allow-list of client-updatable fields.
// A nil member means "leave unchanged". Derived fields are absent on purpose.
type YouthProfileUpdate struct {
	FullName                   *string    `json:"full_name" validate:"omitempty,valid_name,no_emoji"`
	ContactNumber              *string    `json:"contact_number" validate:"omitempty,valid_phone"`
	DateOfBirth                *time.Time `json:"date_of_birth"`
	Gender                     *string    `json:"gender"`
	District                   *string    `json:"district"`
	ProvinceOrState            *string    `json:"province_or_state"`
	RuralAreaFlag              *bool      `json:"rural_area_flag"`
	TechnicalSkills            *[]string  `json:"technical_skills"`
	SoftSkills                 *[]string  `json:"soft_skills"`
	DigitalLiteracyLevel       *string    `json:"digital_literacy_level" validate:"omitempty,oneof=low medium high"`
	ExperienceYears            *float64   `json:"experience_years" validate:"omitempty,gte=0"`
	PreviousInternships        *[]string  `json:"previous_internships"`
	VolunteeringExperience     *[]string  `json:"volunteering_experience"`
	PreferredInternshipType    *string    `json:"preferred_internship_type" validate:"omitempty,oneof=remote onsite hybrid any"`
	TransportationAvailability *bool      `json:"transportation_availability"`
	InternetAccess             *bool      `json:"internet_access"`
	ProfileVisibility          *string    `json:"profile_visibility" validate:"omitempty,oneof=public private restricted"`
	HighestQualification       *string    `json:"highest_qualification"`
	InstitutionName            *string    `json:"institution_name"`
	FieldOfStudy               *string    `json:"field_of_study"`
	GraduationYear             *int       `json:"graduation_year" validate:"omitempty,max_current_year"`
}

// Apply merges the set members of u into p, field by field.
func (u *YouthProfileUpdate) Apply(p *YouthProfile) {
	if u.FullName != nil {
		p.FullName = *u.FullName
	}
	if u.ContactNumber != nil {
		p.ContactNumber = *u.ContactNumber
	}
	if u.DateOfBirth != nil {
		p.DateOfBirth = *u.DateOfBirth
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.District != nil {
		p.District = *u.District
	}
	if u.ProvinceOrState != nil {
		p.ProvinceOrState = *u.ProvinceOrState
	}
	if u.RuralAreaFlag != nil {
		p.RuralAreaFlag = *u.RuralAreaFlag
	}
	if u.TechnicalSkills != nil {
		p.TechnicalSkills = *u.TechnicalSkills
	}
	if u.SoftSkills != nil {
		p.SoftSkills = *u.SoftSkills
	}
	if u.DigitalLiteracyLevel != nil {
		p.DigitalLiteracyLevel = *u.DigitalLiteracyLevel
	}
	if u.ExperienceYears != nil {
		p.ExperienceYears = *u.ExperienceYears
	}
	if u.PreviousInternships != nil {
		p.PreviousInternships = *u.PreviousInternships
	}
	if u.VolunteeringExperience != nil {
		p.VolunteeringExperience = *u.VolunteeringExperience
	}
	if u.PreferredInternshipType != nil {
		p.PreferredInternshipType = *u.PreferredInternshipType
	}
	if u.TransportationAvailability != nil {
		p.TransportationAvailability = *u.TransportationAvailability
	}
	if u.InternetAccess != nil {
		p.InternetAccess = *u.InternetAccess
	}
	if u.ProfileVisibility != nil {
		p.ProfileVisibility = *u.ProfileVisibility
	}
	if u.HighestQualification != nil {
		p.Education.HighestQualification = *u.HighestQualification
	}
	if u.InstitutionName != nil {
		p.Education.InstitutionName = *u.InstitutionName
	}
	if u.FieldOfStudy != nil {
		p.Education.FieldOfStudy = *u.FieldOfStudy
	}
	if u.GraduationYear != nil {
		p.Education.GraduationYear = *u.GraduationYear
	}
}

// YouthProfileSummary is the reduced projection organizations receive when
// viewing another user's profile. The field set is a contract; do not widen
// it without reviewing the authorization policy.
type YouthProfileSummary struct {
	ID                       int64    `json:"id"`
	UserID                   string   `json:"user_id"`
	FullName                 string   `json:"full_name"`
	District                 string   `json:"district,omitempty"`
	ProvinceOrState          string   `json:"province_or_state,omitempty"`
	TechnicalSkills          []string `json:"technical_skills"`
	SoftSkills               []string `json:"soft_skills"`
	ExperienceYears          float64  `json:"experience_years"`
	ProfileStrengthLevel     string   `json:"profile_strength_level"`
	ParticipationEligibility bool     `json:"participation_eligibility"`
	RuralSupportPriority     bool     `json:"rural_support_priority"`
}

// Summarize builds the reduced projection from a full profile.
func (p *YouthProfile) Summarize() *YouthProfileSummary {
	return &YouthProfileSummary{
		ID:                       p.ID,
		UserID:                   p.UserID,
		FullName:                 p.FullName,
		District:                 p.District,
		ProvinceOrState:          p.ProvinceOrState,
		TechnicalSkills:          p.TechnicalSkills,
		SoftSkills:               p.SoftSkills,
		ExperienceYears:          p.ExperienceYears,
		ProfileStrengthLevel:     p.ProfileStrengthLevel,
		ParticipationEligibility: p.ParticipationEligibility,
		RuralSupportPriority:     p.RuralSupportPriority,
	}
}

type YouthProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*YouthProfile, error)
	Fetch(ctx context.Context) ([]YouthProfile, error)
	Create(ctx context.Context, profile *YouthProfile) error
	Update(ctx context.Context, profile *YouthProfile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

// YouthProfileView is what a read returns: exactly one of Full or Summary is
// set, depending on the requester's role and ownership.
type YouthProfileView struct {
	Full    *YouthProfile        `json:"profile,omitempty"`
	Summary *YouthProfileSummary `json:"summary,omitempty"`
}

type YouthProfileUsecase interface {
	Create(ctx context.Context, profile *YouthProfile) (*YouthProfile, error)
	GetByUserID(ctx context.Context, targetUserID string) (*YouthProfileView, error)
	List(ctx context.Context) ([]YouthProfileView, error)
	Update(ctx context.Context, targetUserID string, upd *YouthProfileUpdate) (*YouthProfile, error)
	UploadDocument(ctx context.Context, targetUserID string, doc Document) ([]Document, error)
	Delete(ctx context.Context, targetUserID string) error
}
