package usecase

import (
	"context"
	"errors"
	"time"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"
	"rural-internship-backend/pkg/geocode"
	"rural-internship-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type trainingUsecase struct {
	trainingRepo domain.TrainingRepository
	orgRepo      domain.OrganizationProfileRepository
	youthRepo    domain.YouthProfileRepository
	geocoder     *geocode.Client
	validate     *validator.Validate
}

func NewTrainingUsecase(
	trainingRepo domain.TrainingRepository,
	orgRepo domain.OrganizationProfileRepository,
	youthRepo domain.YouthProfileRepository,
	geocoder *geocode.Client,
	validate *validator.Validate,
) domain.TrainingUsecase {
	return &trainingUsecase{
		trainingRepo: trainingRepo,
		orgRepo:      orgRepo,
		youthRepo:    youthRepo,
		geocoder:     geocoder,
		validate:     validate,
	}
}

func (u *trainingUsecase) Create(ctx context.Context, training *domain.Training) (*domain.Training, error) {
	userID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if role != domain.RoleOrganization {
		return nil, apperror.Forbidden("Only organizations can post trainings")
	}

	// Posting is gated by organization readiness
	orgProfile, err := u.orgRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Forbidden("Create an organization profile before posting trainings")
	}
	if !orgProfile.CanPostInternship {
		return nil, apperror.Forbidden("Your organization profile is not ready to post trainings")
	}

	training.OrganizationUserID = userID

	if training.RequiredSkills == nil {
		training.RequiredSkills = []string{}
	}
	if training.Status == "" {
		training.Status = domain.TrainingStatusActive
	}

	if err := u.validate.Struct(training); err != nil {
		return nil, validationError(err)
	}

	u.enrichLocation(ctx, training)

	now := time.Now()
	training.CreatedAt = now
	training.UpdatedAt = now

	if err := u.trainingRepo.Create(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

func (u *trainingUsecase) GetByID(ctx context.Context, id int64) (*domain.Training, error) {
	training, err := u.trainingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Training not found")
		}
		return nil, apperror.Internal(err)
	}

	// View counting is best effort; a miss never fails the read
	if err := u.trainingRepo.IncrementViewCount(ctx, id); err == nil {
		training.ViewCount++
	}

	return training, nil
}

func (u *trainingUsecase) ListActive(ctx context.Context, filter domain.TrainingFilter) ([]domain.Training, error) {
	trainings, err := u.trainingRepo.FetchActive(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return trainings, nil
}

func (u *trainingUsecase) ListAll(ctx context.Context) ([]domain.Training, error) {
	_, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Only admins can list all trainings")
	}

	trainings, err := u.trainingRepo.FetchAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return trainings, nil
}

func (u *trainingUsecase) ListMine(ctx context.Context, status string) ([]domain.Training, error) {
	userID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleOrganization {
		return nil, apperror.Forbidden("Only organizations can list their own trainings")
	}

	trainings, err := u.trainingRepo.FetchByOrganization(ctx, userID, status)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return trainings, nil
}

// Recommendations returns active trainings that would teach the requesting
// youth something: trainings with at least one required skill the youth does
// not have yet.
func (u *trainingUsecase) Recommendations(ctx context.Context) ([]domain.Training, error) {
	userID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if role != domain.RoleYouth {
		return nil, apperror.Forbidden("Recommendations are only available to youth accounts")
	}

	userSkills := map[string]bool{}
	profile, err := u.youthRepo.GetByUserID(ctx, userID)
	if err == nil {
		for _, s := range profile.TechnicalSkills {
			userSkills[s] = true
		}
		for _, s := range profile.SoftSkills {
			userSkills[s] = true
		}
	}

	trainings, err := u.trainingRepo.FetchActive(ctx, domain.TrainingFilter{})
	if err != nil {
		return nil, apperror.Internal(err)
	}

	recommended := []domain.Training{}
	for _, t := range trainings {
		if len(t.RequiredSkills) == 0 {
			continue
		}
		for _, s := range t.RequiredSkills {
			if !userSkills[s] {
				recommended = append(recommended, t)
				break
			}
		}
	}

	return recommended, nil
}

func (u *trainingUsecase) Update(ctx context.Context, id int64, upd *domain.TrainingUpdate) (*domain.Training, error) {
	training, err := u.ownedTraining(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := u.validate.Struct(upd); err != nil {
		return nil, validationError(err)
	}

	locationChanged := upd.Location != nil && *upd.Location != training.Location

	upd.Apply(training)
	training.UpdatedAt = time.Now()

	if locationChanged {
		training.Latitude = nil
		training.Longitude = nil
		u.enrichLocation(ctx, training)
	}

	if err := u.trainingRepo.Update(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

// SoftDelete marks a training Inactive instead of removing it, preserving
// enrollment history.
func (u *trainingUsecase) SoftDelete(ctx context.Context, id int64) (*domain.Training, error) {
	training, err := u.ownedTraining(ctx, id)
	if err != nil {
		return nil, err
	}

	training.Status = domain.TrainingStatusInactive
	training.UpdatedAt = time.Now()

	if err := u.trainingRepo.Update(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

// ownedTraining loads a training and verifies the requester may mutate it.
func (u *trainingUsecase) ownedTraining(ctx context.Context, id int64) (*domain.Training, error) {
	userID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	training, err := u.trainingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Training not found")
		}
		return nil, apperror.Internal(err)
	}

	if training.OrganizationUserID != userID && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Not authorized to modify this training")
	}

	return training, nil
}

// enrichLocation resolves coordinates for the training location. Failures
// are logged and swallowed: the training is stored without coordinates.
func (u *trainingUsecase) enrichLocation(ctx context.Context, training *domain.Training) {
	if u.geocoder == nil || !u.geocoder.IsConfigured() || training.Location == "" {
		return
	}

	coords, err := u.geocoder.Resolve(ctx, training.Location)
	if err != nil {
		logger.Log.Warn("Geocoding failed", "location", training.Location, "error", err)
		return
	}

	training.Latitude = &coords.Lat
	training.Longitude = &coords.Lng
}
