package usecase

import (
	"context"
	"errors"
	"time"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"
	"rural-internship-backend/pkg/logger"
)

type enrollmentUsecase struct {
	enrollmentRepo domain.EnrollmentRepository
	trainingRepo   domain.TrainingRepository
}

func NewEnrollmentUsecase(enrollmentRepo domain.EnrollmentRepository, trainingRepo domain.TrainingRepository) domain.EnrollmentUsecase {
	return &enrollmentUsecase{
		enrollmentRepo: enrollmentRepo,
		trainingRepo:   trainingRepo,
	}
}

func (u *enrollmentUsecase) Enroll(ctx context.Context, trainingID int64) (*domain.Enrollment, error) {
	userID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if role != domain.RoleYouth {
		return nil, apperror.Forbidden("Only youth accounts can enroll in trainings")
	}

	training, err := u.trainingRepo.GetByID(ctx, trainingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Training not found")
		}
		return nil, apperror.Internal(err)
	}
	if training.Status != domain.TrainingStatusActive {
		return nil, apperror.BadRequest("Training is not available for enrollment")
	}

	// Duplicate enrollment is an explicit error, not an idempotent no-op
	existing, err := u.enrollmentRepo.GetByYouthAndTraining(ctx, userID, trainingID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("You are already enrolled in this training")
	}

	enrollment := &domain.Enrollment{
		YouthUserID: userID,
		TrainingID:  trainingID,
		Status:      domain.EnrollmentStatusEnrolled,
		EnrolledAt:  time.Now(),
	}

	if err := u.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}

	// Counter update is best effort
	if err := u.trainingRepo.IncrementApplicantCount(ctx, trainingID); err != nil {
		logger.Log.Warn("Failed to increment applicant count", "training_id", trainingID, "error", err)
	}

	return enrollment, nil
}

func (u *enrollmentUsecase) MyEnrollments(ctx context.Context) ([]domain.Enrollment, error) {
	userID, _, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	enrollments, err := u.enrollmentRepo.FetchByYouth(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return enrollments, nil
}

// MarkCompleted transitions an enrollment to its terminal state and stamps
// the completion date. The enrolled youth, an admin, or an organization may
// do this; nobody else.
func (u *enrollmentUsecase) MarkCompleted(ctx context.Context, enrollmentID int64) (*domain.Enrollment, error) {
	userID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	enrollment, err := u.enrollmentRepo.GetByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Enrollment not found")
		}
		return nil, apperror.Internal(err)
	}

	isOwner := enrollment.YouthUserID == userID
	isPrivileged := role == domain.RoleAdmin || role == domain.RoleOrganization

	if !isOwner && !isPrivileged {
		return nil, apperror.Forbidden("You are not allowed to update this enrollment")
	}

	now := time.Now()
	enrollment.Status = domain.EnrollmentStatusCompleted
	enrollment.CompletionDate = &now

	if err := u.enrollmentRepo.Update(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}
