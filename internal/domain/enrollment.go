package domain

import (
	"context"
	"time"
)

// Enrollment statuses. Enrolled is the initial state, Completed is terminal.
const (
	EnrollmentStatusEnrolled  = "Enrolled"
	EnrollmentStatusCompleted = "Completed"
)

// Enrollment links a youth account to a training. At most one enrollment
// exists per (youth, training) pair.
type Enrollment struct {
	ID             int64      `json:"id"`
	YouthUserID    string     `json:"youth_user_id"`
	TrainingID     int64      `json:"training_id"`
	Status         string     `json:"status"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	EnrolledAt     time.Time  `json:"enrolled_at"`

	// Training is populated on listing for convenience.
	Training *Training `json:"training,omitempty"`
}

type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *Enrollment) error
	GetByID(ctx context.Context, id int64) (*Enrollment, error)
	GetByYouthAndTraining(ctx context.Context, youthUserID string, trainingID int64) (*Enrollment, error)
	FetchByYouth(ctx context.Context, youthUserID string) ([]Enrollment, error)
	Update(ctx context.Context, enrollment *Enrollment) error
}

type EnrollmentUsecase interface {
	Enroll(ctx context.Context, trainingID int64) (*Enrollment, error)
	MyEnrollments(ctx context.Context) ([]Enrollment, error)
	MarkCompleted(ctx context.Context, enrollmentID int64) (*Enrollment, error)
}
