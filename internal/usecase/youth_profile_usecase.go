package usecase

import (
	"context"
	"errors"
	"time"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/internal/scoring"
	"rural-internship-backend/pkg/apperror"
	"rural-internship-backend/pkg/security"

	"github.com/go-playground/validator/v10"
)

type youthProfileUsecase struct {
	repo     domain.YouthProfileRepository
	validate *validator.Validate
}

func NewYouthProfileUsecase(repo domain.YouthProfileRepository, validate *validator.Validate) domain.YouthProfileUsecase {
	return &youthProfileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *youthProfileUsecase) Create(ctx context.Context, profile *domain.YouthProfile) (*domain.YouthProfile, error) {
	userID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if role != domain.RoleYouth {
		return nil, apperror.Forbidden("Only youth accounts can create a youth profile")
	}

	// One profile per user, enforced here rather than by translating a
	// unique-index error.
	existing, err := u.repo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Profile already exists for this user")
	}

	// Force ownership from context
	profile.UserID = userID

	applyYouthDefaults(profile)

	if err := u.validate.Struct(profile); err != nil {
		return nil, validationError(err)
	}

	scoring.RecomputeYouth(profile)

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := u.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *youthProfileUsecase) GetByUserID(ctx context.Context, targetUserID string) (*domain.YouthProfileView, error) {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByUserID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}

	isOwner := requesterID == targetUserID

	switch {
	case isOwner, role == domain.RoleAdmin:
		return &domain.YouthProfileView{Full: profile}, nil
	case role == domain.RoleOrganization:
		// Organizations get the reduced summary projection, never the full
		// record. This response shape is a contract.
		return &domain.YouthProfileView{Summary: profile.Summarize()}, nil
	default:
		return nil, apperror.Forbidden("Not authorized to view this profile")
	}
}

func (u *youthProfileUsecase) List(ctx context.Context) ([]domain.YouthProfileView, error) {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	switch role {
	case domain.RoleAdmin:
		profiles, err := u.repo.Fetch(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		views := make([]domain.YouthProfileView, 0, len(profiles))
		for i := range profiles {
			views = append(views, domain.YouthProfileView{Full: &profiles[i]})
		}
		return views, nil

	case domain.RoleOrganization:
		profiles, err := u.repo.Fetch(ctx)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		views := make([]domain.YouthProfileView, 0, len(profiles))
		for i := range profiles {
			views = append(views, domain.YouthProfileView{Summary: profiles[i].Summarize()})
		}
		return views, nil

	case domain.RoleYouth:
		profile, err := u.repo.GetByUserID(ctx, requesterID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return []domain.YouthProfileView{}, nil
			}
			return nil, apperror.Internal(err)
		}
		return []domain.YouthProfileView{{Full: profile}}, nil

	default:
		return nil, apperror.Forbidden("Not authorized to view profiles")
	}
}

// Update snapshots the current state, merges the allow-listed fields and
// recomputes the whole derived block. The read-modify-write is not atomic:
// concurrent updates to the same profile are last-write-wins.
func (u *youthProfileUsecase) Update(ctx context.Context, targetUserID string, upd *domain.YouthProfileUpdate) (*domain.YouthProfile, error) {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if requesterID != targetUserID && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Not authorized to update this profile")
	}

	profile, err := u.repo.GetByUserID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}

	if err := u.validate.Struct(upd); err != nil {
		return nil, validationError(err)
	}

	// Versioning happens before any field mutation
	profile.Versions = append(profile.Versions, domain.YouthVersion{
		Snapshot:  profile.Snapshot(),
		ChangedAt: time.Now(),
		ChangedBy: requesterID,
	})

	upd.Apply(profile)
	scoring.RecomputeYouth(profile)
	profile.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *youthProfileUsecase) UploadDocument(ctx context.Context, targetUserID string, doc domain.Document) ([]domain.Document, error) {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if requesterID != targetUserID && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Not authorized to upload documents")
	}

	profile, err := u.repo.GetByUserID(ctx, targetUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}

	result := security.ValidateDocumentMetadata(security.YouthDocument, doc.FileName, doc.SizeInBytes)
	if !result.Valid {
		return nil, apperror.BadRequest(result.Message)
	}

	doc.UploadedAt = time.Now()
	profile.Documents = append(profile.Documents, doc)
	profile.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile.Documents, nil
}

func (u *youthProfileUsecase) Delete(ctx context.Context, targetUserID string) error {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return err
	}

	if requesterID != targetUserID && role != domain.RoleAdmin {
		return apperror.Forbidden("Not authorized to delete this profile")
	}

	if err := u.repo.DeleteByUserID(ctx, targetUserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return apperror.Internal(err)
	}
	return nil
}

func applyYouthDefaults(profile *domain.YouthProfile) {
	if profile.TechnicalSkills == nil {
		profile.TechnicalSkills = []string{}
	}
	if profile.SoftSkills == nil {
		profile.SoftSkills = []string{}
	}
	if profile.PreviousInternships == nil {
		profile.PreviousInternships = []string{}
	}
	if profile.VolunteeringExperience == nil {
		profile.VolunteeringExperience = []string{}
	}
	if profile.DigitalLiteracyLevel == "" {
		profile.DigitalLiteracyLevel = "medium"
	}
	if profile.PreferredInternshipType == "" {
		profile.PreferredInternshipType = "any"
	}
	if profile.ProfileVisibility == "" {
		profile.ProfileVisibility = "public"
	}
	profile.Documents = []domain.Document{}
	profile.Versions = []domain.YouthVersion{}
}
