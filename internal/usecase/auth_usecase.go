package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"
	"rural-internship-backend/pkg/auth"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	userRepo  domain.UserRepository
	youthRepo domain.YouthProfileRepository
	orgRepo   domain.OrganizationProfileRepository
	issuer    *auth.Issuer
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	youthRepo domain.YouthProfileRepository,
	orgRepo domain.OrganizationProfileRepository,
	issuer *auth.Issuer,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		youthRepo: youthRepo,
		orgRepo:   orgRepo,
		issuer:    issuer,
	}
}

func (u *authUsecase) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, apperror.BadRequest("Name, email and password are required")
	}
	if len(password) < 6 {
		return nil, apperror.BadRequest("Password must be at least 6 characters")
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(email))

	if role == "" {
		role = domain.RoleYouth
	}
	if !role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}

	existing, err := u.userRepo.GetByEmail(ctx, normalizedEmail)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	if existing != nil {
		return nil, apperror.Conflict("User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        normalizedEmail,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.issuer.Sign(user.ID, string(user.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Same response for unknown email and wrong password
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	token, err := u.issuer.Sign(user.ID, string(user.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{User: user, Token: token}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func (u *authUsecase) UpdateMe(ctx context.Context, email, password string) (*domain.User, error) {
	userID, _, err := requesterFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if email == "" && password == "" {
		return nil, apperror.BadRequest("Nothing to update")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("User not found")
	}

	if email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(email))
	}
	if password != "" {
		if len(password) < 6 {
			return nil, apperror.BadRequest("Password must be at least 6 characters")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		user.PasswordHash = string(hash)
	}

	user.UpdatedAt = time.Now()

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account and any profiles it owns. Only the account
// owner or an admin may do this.
func (u *authUsecase) DeleteUser(ctx context.Context, targetUserID string) error {
	requesterID, role, err := requesterFromCtx(ctx)
	if err != nil {
		return err
	}

	if requesterID != targetUserID && role != domain.RoleAdmin {
		return apperror.Forbidden("Not authorized to delete this account")
	}

	if _, err := u.userRepo.GetByID(ctx, targetUserID); err != nil {
		return apperror.NotFound("User not found")
	}

	// Profiles first; either may be absent.
	if err := u.youthRepo.DeleteByUserID(ctx, targetUserID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}
	if err := u.orgRepo.DeleteByUserID(ctx, targetUserID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return apperror.Internal(err)
	}

	return u.userRepo.Delete(ctx, targetUserID)
}
