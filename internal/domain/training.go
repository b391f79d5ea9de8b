package domain

import (
	"context"
	"time"
)

// Training statuses. Soft delete moves a training to Inactive rather than
// removing the row.
const (
	TrainingStatusActive   = "Active"
	TrainingStatusClosed   = "Closed"
	TrainingStatusInactive = "Inactive"
)

// Training is an internship or training program posted by an organization.
type Training struct {
	ID                   int64    `json:"id"`
	OrganizationUserID   string   `json:"organization_user_id"`
	Title                string   `json:"title" validate:"required"`
	Description          string   `json:"description,omitempty"`
	RequiredSkills       []string `json:"required_skills"`
	Duration             string   `json:"duration,omitempty"`
	Mode                 string   `json:"mode" validate:"required,oneof=Online Physical"`
	Location             string   `json:"location,omitempty"`
	Latitude             *float64 `json:"latitude,omitempty"`
	Longitude            *float64 `json:"longitude,omitempty"`
	CertificateAvailable bool     `json:"certificate_available"`
	Status               string   `json:"status" validate:"omitempty,oneof=Active Closed Inactive"`
	ViewCount            int      `json:"view_count"`
	ApplicantCount       int      `json:"applicant_count"`
	AcceptedCount        int      `json:"accepted_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrainingUpdate is the allow-list of updatable training fields.
type TrainingUpdate struct {
	Title                *string   `json:"title"`
	Description          *string   `json:"description"`
	RequiredSkills       *[]string `json:"required_skills"`
	Duration             *string   `json:"duration"`
	Mode                 *string   `json:"mode" validate:"omitempty,oneof=Online Physical"`
	Location             *string   `json:"location"`
	CertificateAvailable *bool     `json:"certificate_available"`
	Status               *string   `json:"status" validate:"omitempty,oneof=Active Closed Inactive"`
}

func (u *TrainingUpdate) Apply(t *Training) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.RequiredSkills != nil {
		t.RequiredSkills = *u.RequiredSkills
	}
	if u.Duration != nil {
		t.Duration = *u.Duration
	}
	if u.Mode != nil {
		t.Mode = *u.Mode
	}
	if u.Location != nil {
		t.Location = *u.Location
	}
	if u.CertificateAvailable != nil {
		t.CertificateAvailable = *u.CertificateAvailable
	}
	if u.Status != nil {
		t.Status = *u.Status
	}
}

// TrainingFilter narrows active-training listings. Zero values mean "any".
type TrainingFilter struct {
	Skill    string
	Location string
	Duration string
	Mode     string
}

type TrainingRepository interface {
	Create(ctx context.Context, training *Training) error
	GetByID(ctx context.Context, id int64) (*Training, error)
	FetchActive(ctx context.Context, filter TrainingFilter) ([]Training, error)
	FetchAll(ctx context.Context) ([]Training, error)
	FetchByOrganization(ctx context.Context, organizationUserID string, status string) ([]Training, error)
	Update(ctx context.Context, training *Training) error
	IncrementViewCount(ctx context.Context, id int64) error
	IncrementApplicantCount(ctx context.Context, id int64) error
}

type TrainingUsecase interface {
	Create(ctx context.Context, training *Training) (*Training, error)
	GetByID(ctx context.Context, id int64) (*Training, error)
	ListActive(ctx context.Context, filter TrainingFilter) ([]Training, error)
	ListAll(ctx context.Context) ([]Training, error)
	ListMine(ctx context.Context, status string) ([]Training, error)
	Recommendations(ctx context.Context) ([]Training, error)
	Update(ctx context.Context, id int64, upd *TrainingUpdate) (*Training, error)
	SoftDelete(ctx context.Context, id int64) (*Training, error)
}
