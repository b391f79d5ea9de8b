package domain

import (
	"context"
	"time"
)

// Organization readiness states. READY is never latched: it is recomputed
// from (completeness, verified) on every pass and can fall back to DRAFT.
const (
	ReadinessDraft = "DRAFT"
	ReadinessReady = "READY"
)

// OrgDocument extends Document with a free-form kind, e.g. "logo" or
// "verification".
type OrgDocument struct {
	FileName    string    `json:"file_name"`
	URL         string    `json:"url"`
	SizeInBytes int64     `json:"size_in_bytes"`
	Type        string    `json:"type,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type OrgVersion struct {
	Snapshot  OrganizationSnapshot `json:"snapshot"`
	ChangedAt time.Time            `json:"changed_at"`
	ChangedBy string               `json:"changed_by"`
}

type OrganizationProfile struct {
	ID                      int64  `json:"id"`
	OrganizationID          string `json:"organization_id,omitempty"`
	UserID                  string `json:"user_id"`
	OrganizationName        string `json:"organization_name" validate:"required,no_emoji"`
	ContactNumber           string `json:"contact_number" validate:"required,valid_phone"`
	Industry                string `json:"industry" validate:"required"`
	OrganizationType        string `json:"organization_type" validate:"required"`
	Location                string `json:"location" validate:"required"`
	Description             string `json:"description,omitempty"`
	Website                 string `json:"website,omitempty" validate:"omitempty,url"`
	OffersRemoteInternships bool   `json:"offers_remote_internships"`
	InternshipLocationType  string `json:"internship_location_type" validate:"omitempty,oneof=On-site Remote Hybrid"`

	// Derived fields, recomputed together after every mutation.
	ProfileCompletenessPercentage int      `json:"profile_completeness_percentage"`
	ReadinessStatus               string   `json:"readiness_status"`
	CanPostInternship             bool     `json:"can_post_internship"`
	ReadinessSuggestions          []string `json:"readiness_suggestions"`

	// Verified is admin-only mutable. A non-admin submitting it is a silent
	// no-op on this field while the rest of the update still applies.
	Verified bool `json:"verified"`

	Documents []OrgDocument `json:"documents"`
	Versions  []OrgVersion  `json:"versions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationSnapshot is the fixed field set versioned before each mutation.
// Like YouthSnapshot, it is an explicit enumeration, not a deep copy.
type OrganizationSnapshot struct {
	OrganizationID                string        `json:"organization_id,omitempty"`
	OrganizationName              string        `json:"organization_name"`
	ContactNumber                 string        `json:"contact_number"`
	Industry                      string        `json:"industry"`
	OrganizationType              string        `json:"organization_type"`
	Location                      string        `json:"location"`
	Description                   string        `json:"description,omitempty"`
	Website                       string        `json:"website,omitempty"`
	OffersRemoteInternships       bool          `json:"offers_remote_internships"`
	InternshipLocationType        string        `json:"internship_location_type"`
	ProfileCompletenessPercentage int           `json:"profile_completeness_percentage"`
	ReadinessStatus               string        `json:"readiness_status"`
	CanPostInternship             bool          `json:"can_post_internship"`
	Verified                      bool          `json:"verified"`
	Documents                     []OrgDocument `json:"documents"`
	ReadinessSuggestions          []string      `json:"readiness_suggestions"`
}

func (p *OrganizationProfile) Snapshot() OrganizationSnapshot {
	return OrganizationSnapshot{
		OrganizationID:                p.OrganizationID,
		OrganizationName:              p.OrganizationName,
		ContactNumber:                 p.ContactNumber,
		Industry:                      p.Industry,
		OrganizationType:              p.OrganizationType,
		Location:                      p.Location,
		Description:                   p.Description,
		Website:                       p.Website,
		OffersRemoteInternships:       p.OffersRemoteInternships,
		InternshipLocationType:        p.InternshipLocationType,
		ProfileCompletenessPercentage: p.ProfileCompletenessPercentage,
		ReadinessStatus:               p.ReadinessStatus,
		CanPostInternship:             p.CanPostInternship,
		Verified:                      p.Verified,
		Documents:                     p.Documents,
		ReadinessSuggestions:          p.ReadinessSuggestions,
	}
}

// OrganizationProfileUpdate is the client-updatable allow-list. Verified is
// included but only honored for admin requesters.
type OrganizationProfileUpdate struct {
	OrganizationID          *string `json:"organization_id"`
	OrganizationName        *string `json:"organization_name" validate:"omitempty,no_emoji"`
	ContactNumber           *string `json:"contact_number" validate:"omitempty,valid_phone"`
	Industry                *string `json:"industry"`
	OrganizationType        *string `json:"organization_type"`
	Location                *string `json:"location"`
	Description             *string `json:"description"`
	Website                 *string `json:"website" validate:"omitempty,url"`
	OffersRemoteInternships *bool   `json:"offers_remote_internships"`
	InternshipLocationType  *string `json:"internship_location_type" validate:"omitempty,oneof=On-site Remote Hybrid"`
	Verified                *bool   `json:"verified"`
}

// Apply merges the set members of u into p. Verified is handled by the
// usecase, not here, because it depends on the requester's role.
func (u *OrganizationProfileUpdate) Apply(p *OrganizationProfile) {
	if u.OrganizationID != nil {
		p.OrganizationID = *u.OrganizationID
	}
	if u.OrganizationName != nil {
		p.OrganizationName = *u.OrganizationName
	}
	if u.ContactNumber != nil {
		p.ContactNumber = *u.ContactNumber
	}
	if u.Industry != nil {
		p.Industry = *u.Industry
	}
	if u.OrganizationType != nil {
		p.OrganizationType = *u.OrganizationType
	}
	if u.Location != nil {
		p.Location = *u.Location
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Website != nil {
		p.Website = *u.Website
	}
	if u.OffersRemoteInternships != nil {
		p.OffersRemoteInternships = *u.OffersRemoteInternships
	}
	if u.InternshipLocationType != nil {
		p.InternshipLocationType = *u.InternshipLocationType
	}
}

type OrganizationProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*OrganizationProfile, error)
	GetByUserID(ctx context.Context, userID string) (*OrganizationProfile, error)
	Fetch(ctx context.Context) ([]OrganizationProfile, error)
	Create(ctx context.Context, profile *OrganizationProfile) error
	Update(ctx context.Context, profile *OrganizationProfile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type OrganizationProfileUsecase interface {
	Create(ctx context.Context, profile *OrganizationProfile) (*OrganizationProfile, error)
	GetByID(ctx context.Context, id int64) (*OrganizationProfile, error)
	List(ctx context.Context) ([]OrganizationProfile, error)
	Update(ctx context.Context, id int64, upd *OrganizationProfileUpdate) (*OrganizationProfile, error)
	UploadDocument(ctx context.Context, id int64, doc OrgDocument) ([]OrgDocument, error)
	Delete(ctx context.Context, id int64) error
}
