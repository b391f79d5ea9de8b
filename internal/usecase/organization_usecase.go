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

type organizationUsecase struct {
	repo     domain.OrganizationProfileRepository
	validate *validator.Validate
}

func NewOrganizationUsecase(repo domain.OrganizationProfileRepository, validate *validator.Validate) domain.OrganizationProfileUsecase {
	return &organizationUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *organizationUsecase) Create(ctx context.Context, profile *domain.OrganizationProfile) (*domain.OrganizationProfile, error) {
	userID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if role != domain.RoleOrganization {
		return nil, apperror.Forbidden("Only organization accounts can create an organization profile")
	}

	existing, err := u.repo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Organization profile already exists for this user")
	}

	profile.UserID = userID

	if profile.InternshipLocationType == "" {
		profile.InternshipLocationType = "On-site"
	}
	profile.Documents = []domain.OrgDocument{}
	profile.Versions = []domain.OrgVersion{}

	// New organizations always start unverified, so readiness is DRAFT
	profile.Verified = false

	if err := u.validate.Struct(profile); err != nil {
		return nil, validationError(err)
	}

	scoring.RecomputeOrganization(profile)

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := u.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *organizationUsecase) GetByID(ctx context.Context, id int64) (*domain.OrganizationProfile, error) {
	if _, _, err := requesterFromCtx(ctx); err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Organization profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *organizationUsecase) List(ctx context.Context) ([]domain.OrganizationProfile, error) {
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
		return profiles, nil

	case domain.RoleOrganization:
		profile, err := u.repo.GetByUserID(ctx, requesterID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return []domain.OrganizationProfile{}, nil
			}
			return nil, apperror.Internal(err)
		}
		return []domain.OrganizationProfile{*profile}, nil

	case domain.RoleYouth:
		return nil, apperror.Forbidden("Not authorized to view organizations")

	default:
		return nil, apperror.Forbidden("Not authorized to view organizations")
	}
}

func (u *organizationUsecase) Update(ctx context.Context, id int64, upd *domain.OrganizationProfileUpdate) (*domain.OrganizationProfile, error) {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Organization profile not found")
		}
		return nil, apperror.Internal(err)
	}

	isOwner := profile.UserID == requesterID
	if !isOwner && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Not authorized to update this organization profile")
	}

	if err := u.validate.Struct(upd); err != nil {
		return nil, validationError(err)
	}

	profile.Versions = append(profile.Versions, domain.OrgVersion{
		Snapshot:  profile.Snapshot(),
		ChangedAt: time.Now(),
		ChangedBy: requesterID,
	})

	upd.Apply(profile)

	// Verified is admin-only. A non-admin submitting it is a silent no-op on
	// that field; the rest of the update still applies.
	if upd.Verified != nil && role == domain.RoleAdmin {
		profile.Verified = *upd.Verified
	}

	scoring.RecomputeOrganization(profile)
	profile.UpdatedAt = time.Now()

	if err := u.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *organizationUsecase) UploadDocument(ctx context.Context, id int64, doc domain.OrgDocument) ([]domain.OrgDocument, error) {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Organization profile not found")
		}
		return nil, apperror.Internal(err)
	}

	if profile.UserID != requesterID && role != domain.RoleAdmin {
		return nil, apperror.Forbidden("Not authorized to upload documents for this organization")
	}

	result := security.ValidateDocumentMetadata(security.OrganizationDocument, doc.FileName, doc.SizeInBytes)
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

func (u *organizationUsecase) Delete(ctx context.Context, id int64) error {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return err
	}

	profile, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Organization profile not found")
		}
		return apperror.Internal(err)
	}

	if profile.UserID != requesterID && role != domain.RoleAdmin {
		return apperror.Forbidden("Not authorized to delete this organization profile")
	}

	if err := u.repo.DeleteByUserID(ctx, profile.UserID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
