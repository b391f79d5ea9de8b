package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/internal/usecase"
	"rural-internship-backend/pkg/apperror"
	"rural-internship-backend/pkg/auth"
	"rural-internship-backend/pkg/logger"
	"rural-internship-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockYouthRepo struct {
	mock.Mock
}

func (m *MockYouthRepo) GetByUserID(ctx context.Context, userID string) (*domain.YouthProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.YouthProfile), args.Error(1)
}
func (m *MockYouthRepo) Fetch(ctx context.Context) ([]domain.YouthProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.YouthProfile), args.Error(1)
}
func (m *MockYouthRepo) Create(ctx context.Context, profile *domain.YouthProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockYouthRepo) Update(ctx context.Context, profile *domain.YouthProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockYouthRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockOrgRepo struct {
	mock.Mock
}

func (m *MockOrgRepo) GetByID(ctx context.Context, id int64) (*domain.OrganizationProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationProfile), args.Error(1)
}
func (m *MockOrgRepo) GetByUserID(ctx context.Context, userID string) (*domain.OrganizationProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrganizationProfile), args.Error(1)
}
func (m *MockOrgRepo) Fetch(ctx context.Context) ([]domain.OrganizationProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrganizationProfile), args.Error(1)
}
func (m *MockOrgRepo) Create(ctx context.Context, profile *domain.OrganizationProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockOrgRepo) Update(ctx context.Context, profile *domain.OrganizationProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockOrgRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type MockTrainingRepo struct {
	mock.Mock
}

func (m *MockTrainingRepo) Create(ctx context.Context, training *domain.Training) error {
	return m.Called(ctx, training).Error(0)
}
func (m *MockTrainingRepo) GetByID(ctx context.Context, id int64) (*domain.Training, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Training), args.Error(1)
}
func (m *MockTrainingRepo) FetchActive(ctx context.Context, filter domain.TrainingFilter) ([]domain.Training, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Training), args.Error(1)
}
func (m *MockTrainingRepo) FetchAll(ctx context.Context) ([]domain.Training, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Training), args.Error(1)
}
func (m *MockTrainingRepo) FetchByOrganization(ctx context.Context, organizationUserID string, status string) ([]domain.Training, error) {
	args := m.Called(ctx, organizationUserID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Training), args.Error(1)
}
func (m *MockTrainingRepo) Update(ctx context.Context, training *domain.Training) error {
	return m.Called(ctx, training).Error(0)
}
func (m *MockTrainingRepo) IncrementViewCount(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockTrainingRepo) IncrementApplicantCount(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEnrollmentRepo struct {
	mock.Mock
}

func (m *MockEnrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}
func (m *MockEnrollmentRepo) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}
func (m *MockEnrollmentRepo) GetByYouthAndTraining(ctx context.Context, youthUserID string, trainingID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, youthUserID, trainingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}
func (m *MockEnrollmentRepo) FetchByYouth(ctx context.Context, youthUserID string) ([]domain.Enrollment, error) {
	args := m.Called(ctx, youthUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}
func (m *MockEnrollmentRepo) Update(ctx context.Context, enrollment *domain.Enrollment) error {
	return m.Called(ctx, enrollment).Error(0)
}

// Helpers

func authedCtx(userID string, role domain.Role) context.Context {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, userID)
	return context.WithValue(ctx, domain.KeyUserRole, role)
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	return appErr.Code
}

func validYouthProfile() *domain.YouthProfile {
	return &domain.YouthProfile{
		FullName:        "Amina Osei",
		ContactNumber:   "+233201234567",
		DateOfBirth:     time.Date(2002, 5, 14, 0, 0, 0, 0, time.UTC),
		District:        "Tamale",
		ProvinceOrState: "Northern",
		RuralAreaFlag:   true,
		Education:       domain.Education{HighestQualification: "Diploma"},
		TechnicalSkills: []string{"Excel", "Python"},
		SoftSkills:      []string{"Teamwork"},
		ExperienceYears: 1,
	}
}

func readyOrgProfile(userID string) *domain.OrganizationProfile {
	return &domain.OrganizationProfile{
		ID:                1,
		UserID:            userID,
		OrganizationName:  "AgriTech Hub",
		ContactNumber:     "+233501112222",
		Industry:          "Agriculture",
		OrganizationType:  "NGO",
		Location:          "Kumasi",
		Verified:          true,
		ReadinessStatus:   domain.ReadinessReady,
		CanPostInternship: true,
	}
}

// Auth

func TestAuthRegister(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)

	t.Run("Duplicate email conflicts", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockYouthRepo), new(MockOrgRepo), issuer)

		userRepo.On("GetByEmail", mock.Anything, "taken@example.com").
			Return(&domain.User{ID: "u1", Email: "taken@example.com"}, nil)

		_, err := uc.Register(context.Background(), "Ama", "taken@example.com", "secret1", domain.RoleYouth)
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusCode(t, err))
	})

	t.Run("Defaults to youth role and normalizes email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockYouthRepo), new(MockOrgRepo), issuer)

		userRepo.On("GetByEmail", mock.Anything, "new@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		result, err := uc.Register(context.Background(), "Ama", "  NEW@Example.com ", "secret1", "")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleYouth, result.User.Role)
		assert.Equal(t, "new@example.com", result.User.Email)
		assert.NotEmpty(t, result.Token)
		assert.NotEmpty(t, result.User.PasswordHash)
	})

	t.Run("Unknown role is rejected", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), new(MockYouthRepo), new(MockOrgRepo), issuer)

		_, err := uc.Register(context.Background(), "Ama", "a@example.com", "secret1", "superuser")
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
	})
}

func TestAuthLogin(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)

	t.Run("Unknown email and wrong password give the same message", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(userRepo, new(MockYouthRepo), new(MockOrgRepo), issuer)

		userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

		_, err := uc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
		assert.Contains(t, err.Error(), "Invalid credentials")
	})
}

func TestAuthDeleteUser(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour)

	t.Run("Non-admin cannot delete another account", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(new(MockUserRepo), new(MockYouthRepo), new(MockOrgRepo), issuer)

		err := uc.DeleteUser(authedCtx("user-1", domain.RoleYouth), "user-2")
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})

	t.Run("Owner delete cascades to profiles", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		youthRepo := new(MockYouthRepo)
		orgRepo := new(MockOrgRepo)
		uc := usecase.NewAuthUsecase(userRepo, youthRepo, orgRepo, issuer)

		userRepo.On("GetByID", mock.Anything, "user-1").Return(&domain.User{ID: "user-1"}, nil)
		youthRepo.On("DeleteByUserID", mock.Anything, "user-1").Return(nil)
		orgRepo.On("DeleteByUserID", mock.Anything, "user-1").Return(domain.ErrNotFound)
		userRepo.On("Delete", mock.Anything, "user-1").Return(nil)

		err := uc.DeleteUser(authedCtx("user-1", domain.RoleYouth), "user-1")
		assert.NoError(t, err)
		userRepo.AssertCalled(t, "Delete", mock.Anything, "user-1")
	})
}

// Youth profiles

func TestYouthProfileCreate(t *testing.T) {
	t.Run("Organization accounts cannot create youth profiles", func(t *testing.T) {
		uc := usecase.NewYouthProfileUsecase(new(MockYouthRepo), newValidate())

		_, err := uc.Create(authedCtx("org-1", domain.RoleOrganization), validYouthProfile())
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})

	t.Run("Second profile conflicts", func(t *testing.T) {
		repo := new(MockYouthRepo)
		uc := usecase.NewYouthProfileUsecase(repo, newValidate())

		repo.On("GetByUserID", mock.Anything, "youth-1").Return(&domain.YouthProfile{UserID: "youth-1"}, nil)

		_, err := uc.Create(authedCtx("youth-1", domain.RoleYouth), validYouthProfile())
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusCode(t, err))
	})

	t.Run("Create forces ownership and derives scores", func(t *testing.T) {
		repo := new(MockYouthRepo)
		uc := usecase.NewYouthProfileUsecase(repo, newValidate())

		repo.On("GetByUserID", mock.Anything, "youth-1").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		p := validYouthProfile()
		p.UserID = "spoofed-user"
		created, err := uc.Create(authedCtx("youth-1", domain.RoleYouth), p)
		assert.NoError(t, err)
		assert.Equal(t, "youth-1", created.UserID)
		assert.Equal(t, 100, created.ProfileCompleteness)
		assert.True(t, created.RuralSupportPriority)
		assert.Equal(t, "medium", created.DigitalLiteracyLevel)
		assert.NotNil(t, created.Suggestions)
	})

	t.Run("Unauthenticated request is 401 not 403", func(t *testing.T) {
		uc := usecase.NewYouthProfileUsecase(new(MockYouthRepo), newValidate())

		_, err := uc.Create(context.Background(), validYouthProfile())
		assert.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, statusCode(t, err))
	})
}

func TestYouthProfileVisibility(t *testing.T) {
	stored := validYouthProfile()
	stored.ID = 7
	stored.UserID = "youth-1"
	stored.ProfileStrengthLevel = "low"
	stored.ParticipationEligibility = true
	stored.RuralSupportPriority = true

	newUC := func() (domain.YouthProfileUsecase, *MockYouthRepo) {
		repo := new(MockYouthRepo)
		repo.On("GetByUserID", mock.Anything, "youth-1").Return(stored, nil)
		repo.On("GetByUserID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)
		return usecase.NewYouthProfileUsecase(repo, newValidate()), repo
	}

	t.Run("Owner gets the full profile", func(t *testing.T) {
		uc, _ := newUC()
		view, err := uc.GetByUserID(authedCtx("youth-1", domain.RoleYouth), "youth-1")
		assert.NoError(t, err)
		assert.NotNil(t, view.Full)
		assert.Nil(t, view.Summary)
	})

	t.Run("Admin gets the full profile", func(t *testing.T) {
		uc, _ := newUC()
		view, err := uc.GetByUserID(authedCtx("admin-1", domain.RoleAdmin), "youth-1")
		assert.NoError(t, err)
		assert.NotNil(t, view.Full)
	})

	t.Run("Organization gets exactly the summary projection", func(t *testing.T) {
		uc, _ := newUC()
		view, err := uc.GetByUserID(authedCtx("org-1", domain.RoleOrganization), "youth-1")
		assert.NoError(t, err)
		assert.Nil(t, view.Full)
		assert.Equal(t, &domain.YouthProfileSummary{
			ID:                       7,
			UserID:                   "youth-1",
			FullName:                 "Amina Osei",
			District:                 "Tamale",
			ProvinceOrState:          "Northern",
			TechnicalSkills:          []string{"Excel", "Python"},
			SoftSkills:               []string{"Teamwork"},
			ExperienceYears:          1,
			ProfileStrengthLevel:     "low",
			ParticipationEligibility: true,
			RuralSupportPriority:     true,
		}, view.Summary)
	})

	t.Run("Youth viewing another existing profile is 403", func(t *testing.T) {
		uc, _ := newUC()
		_, err := uc.GetByUserID(authedCtx("youth-2", domain.RoleYouth), "youth-1")
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})

	t.Run("Missing profile is 404 regardless of role", func(t *testing.T) {
		uc, _ := newUC()
		_, err := uc.GetByUserID(authedCtx("admin-1", domain.RoleAdmin), "missing")
		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusCode(t, err))
	})
}

func TestYouthProfileUpdate(t *testing.T) {
	t.Run("Snapshot captures values before the mutation", func(t *testing.T) {
		repo := new(MockYouthRepo)
		uc := usecase.NewYouthProfileUsecase(repo, newValidate())

		stored := validYouthProfile()
		stored.UserID = "youth-1"
		repo.On("GetByUserID", mock.Anything, "youth-1").Return(stored, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		newName := "Amina Mensah"
		updated, err := uc.Update(authedCtx("youth-1", domain.RoleYouth), "youth-1", &domain.YouthProfileUpdate{
			FullName: &newName,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Amina Mensah", updated.FullName)
		assert.Len(t, updated.Versions, 1)
		assert.Equal(t, "Amina Osei", updated.Versions[0].Snapshot.FullName)
		assert.Equal(t, "youth-1", updated.Versions[0].ChangedBy)
	})

	t.Run("Update recomputes the derived block", func(t *testing.T) {
		repo := new(MockYouthRepo)
		uc := usecase.NewYouthProfileUsecase(repo, newValidate())

		stored := validYouthProfile()
		stored.UserID = "youth-1"
		repo.On("GetByUserID", mock.Anything, "youth-1").Return(stored, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)

		empty := ""
		updated, err := uc.Update(authedCtx("youth-1", domain.RoleYouth), "youth-1", &domain.YouthProfileUpdate{
			District: &empty,
		})
		assert.NoError(t, err)
		assert.Equal(t, 83, updated.ProfileCompleteness)
		assert.Contains(t, updated.Suggestions, "Complete all mandatory profile fields to reach 100%.")
	})

	t.Run("Another youth cannot update the profile", func(t *testing.T) {
		repo := new(MockYouthRepo)
		uc := usecase.NewYouthProfileUsecase(repo, newValidate())

		name := "Hacker"
		_, err := uc.Update(authedCtx("youth-2", domain.RoleYouth), "youth-1", &domain.YouthProfileUpdate{
			FullName: &name,
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})
}

func TestYouthDocumentUpload(t *testing.T) {
	repo := new(MockYouthRepo)
	uc := usecase.NewYouthProfileUsecase(repo, newValidate())

	stored := validYouthProfile()
	stored.UserID = "youth-1"
	stored.Documents = []domain.Document{}
	repo.On("GetByUserID", mock.Anything, "youth-1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	t.Run("Valid metadata is appended", func(t *testing.T) {
		docs, err := uc.UploadDocument(authedCtx("youth-1", domain.RoleYouth), "youth-1", domain.Document{
			FileName:    "cv.pdf",
			URL:         "https://files.example.org/cv.pdf",
			SizeInBytes: 1024,
		})
		assert.NoError(t, err)
		assert.Len(t, docs, 1)
		assert.False(t, docs[0].UploadedAt.IsZero())
	})

	t.Run("Disallowed extension is rejected with the validator message", func(t *testing.T) {
		_, err := uc.UploadDocument(authedCtx("youth-1", domain.RoleYouth), "youth-1", domain.Document{
			FileName:    "malware.exe",
			URL:         "https://files.example.org/malware.exe",
			SizeInBytes: 1024,
		})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
		assert.Contains(t, err.Error(), "Only PDF, DOC, and DOCX are allowed")
	})
}

// Organizations

func TestOrganizationVerifiedFlag(t *testing.T) {
	newUC := func(stored *domain.OrganizationProfile) (domain.OrganizationProfileUsecase, *MockOrgRepo) {
		repo := new(MockOrgRepo)
		repo.On("GetByID", mock.Anything, int64(1)).Return(stored, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		return usecase.NewOrganizationUsecase(repo, newValidate()), repo
	}

	t.Run("Owner submitting verified is a silent no-op", func(t *testing.T) {
		stored := readyOrgProfile("org-1")
		stored.Verified = false
		stored.ReadinessStatus = domain.ReadinessDraft
		stored.CanPostInternship = false
		uc, _ := newUC(stored)

		verified := true
		desc := "New description"
		updated, err := uc.Update(authedCtx("org-1", domain.RoleOrganization), 1, &domain.OrganizationProfileUpdate{
			Verified:    &verified,
			Description: &desc,
		})
		assert.NoError(t, err)
		// The rest of the update still applies
		assert.Equal(t, "New description", updated.Description)
		assert.False(t, updated.Verified)
		assert.False(t, updated.CanPostInternship)
	})

	t.Run("Admin submitting verified is honored and flips readiness", func(t *testing.T) {
		stored := readyOrgProfile("org-1")
		stored.Verified = false
		stored.ReadinessStatus = domain.ReadinessDraft
		stored.CanPostInternship = false
		uc, _ := newUC(stored)

		verified := true
		updated, err := uc.Update(authedCtx("admin-1", domain.RoleAdmin), 1, &domain.OrganizationProfileUpdate{
			Verified: &verified,
		})
		assert.NoError(t, err)
		assert.True(t, updated.Verified)
		assert.Equal(t, domain.ReadinessReady, updated.ReadinessStatus)
		assert.True(t, updated.CanPostInternship)
	})

	t.Run("Admin revoking verification drops readiness", func(t *testing.T) {
		stored := readyOrgProfile("org-1")
		uc, _ := newUC(stored)

		verified := false
		updated, err := uc.Update(authedCtx("admin-1", domain.RoleAdmin), 1, &domain.OrganizationProfileUpdate{
			Verified: &verified,
		})
		assert.NoError(t, err)
		assert.False(t, updated.Verified)
		assert.Equal(t, domain.ReadinessDraft, updated.ReadinessStatus)
		assert.False(t, updated.CanPostInternship)
	})
}

func TestOrganizationCreate(t *testing.T) {
	t.Run("New organizations always start unverified", func(t *testing.T) {
		repo := new(MockOrgRepo)
		uc := usecase.NewOrganizationUsecase(repo, newValidate())

		repo.On("GetByUserID", mock.Anything, "org-1").Return(nil, domain.ErrNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		p := readyOrgProfile("spoofed")
		p.Verified = true
		created, err := uc.Create(authedCtx("org-1", domain.RoleOrganization), p)
		assert.NoError(t, err)
		assert.Equal(t, "org-1", created.UserID)
		assert.False(t, created.Verified)
		assert.Equal(t, domain.ReadinessDraft, created.ReadinessStatus)
		assert.False(t, created.CanPostInternship)
		assert.Equal(t, 100, created.ProfileCompletenessPercentage)
	})

	t.Run("Youth cannot create organization profiles", func(t *testing.T) {
		uc := usecase.NewOrganizationUsecase(new(MockOrgRepo), newValidate())

		_, err := uc.Create(authedCtx("youth-1", domain.RoleYouth), readyOrgProfile("youth-1"))
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})
}

func TestOrganizationList(t *testing.T) {
	t.Run("Organizations only see their own profile", func(t *testing.T) {
		repo := new(MockOrgRepo)
		uc := usecase.NewOrganizationUsecase(repo, newValidate())

		repo.On("GetByUserID", mock.Anything, "org-1").Return(readyOrgProfile("org-1"), nil)

		profiles, err := uc.List(authedCtx("org-1", domain.RoleOrganization))
		assert.NoError(t, err)
		assert.Len(t, profiles, 1)
		assert.Equal(t, "org-1", profiles[0].UserID)
		repo.AssertNotCalled(t, "Fetch", mock.Anything)
	})

	t.Run("Youth are forbidden", func(t *testing.T) {
		uc := usecase.NewOrganizationUsecase(new(MockOrgRepo), newValidate())

		_, err := uc.List(authedCtx("youth-1", domain.RoleYouth))
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})
}

// Trainings

func TestTrainingCreate(t *testing.T) {
	validTraining := func() *domain.Training {
		return &domain.Training{
			Title: "Digital Skills Bootcamp",
			Mode:  "Online",
		}
	}

	t.Run("Unready organization cannot post", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		orgRepo := new(MockOrgRepo)
		uc := usecase.NewTrainingUsecase(trainingRepo, orgRepo, new(MockYouthRepo), nil, newValidate())

		stored := readyOrgProfile("org-1")
		stored.CanPostInternship = false
		orgRepo.On("GetByUserID", mock.Anything, "org-1").Return(stored, nil)

		_, err := uc.Create(authedCtx("org-1", domain.RoleOrganization), validTraining())
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
		assert.Contains(t, err.Error(), "not ready to post")
	})

	t.Run("Ready organization posts with Active default", func(t *testing.T) {
		trainingRepo := new(MockTrainingRepo)
		orgRepo := new(MockOrgRepo)
		uc := usecase.NewTrainingUsecase(trainingRepo, orgRepo, new(MockYouthRepo), nil, newValidate())

		orgRepo.On("GetByUserID", mock.Anything, "org-1").Return(readyOrgProfile("org-1"), nil)
		trainingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		created, err := uc.Create(authedCtx("org-1", domain.RoleOrganization), validTraining())
		assert.NoError(t, err)
		assert.Equal(t, "org-1", created.OrganizationUserID)
		assert.Equal(t, domain.TrainingStatusActive, created.Status)
		assert.NotNil(t, created.RequiredSkills)
	})

	t.Run("Youth cannot post trainings", func(t *testing.T) {
		uc := usecase.NewTrainingUsecase(new(MockTrainingRepo), new(MockOrgRepo), new(MockYouthRepo), nil, newValidate())

		_, err := uc.Create(authedCtx("youth-1", domain.RoleYouth), validTraining())
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})
}

func TestTrainingViewCount(t *testing.T) {
	trainingRepo := new(MockTrainingRepo)
	uc := usecase.NewTrainingUsecase(trainingRepo, new(MockOrgRepo), new(MockYouthRepo), nil, newValidate())

	trainingRepo.On("GetByID", mock.Anything, int64(5)).Return(&domain.Training{ID: 5, ViewCount: 3, Status: "Active"}, nil)
	trainingRepo.On("IncrementViewCount", mock.Anything, int64(5)).Return(nil)

	training, err := uc.GetByID(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, 4, training.ViewCount)
	trainingRepo.AssertCalled(t, "IncrementViewCount", mock.Anything, int64(5))
}

func TestTrainingRecommendations(t *testing.T) {
	trainingRepo := new(MockTrainingRepo)
	youthRepo := new(MockYouthRepo)
	uc := usecase.NewTrainingUsecase(trainingRepo, new(MockOrgRepo), youthRepo, nil, newValidate())

	profile := validYouthProfile()
	profile.UserID = "youth-1"
	youthRepo.On("GetByUserID", mock.Anything, "youth-1").Return(profile, nil)

	trainingRepo.On("FetchActive", mock.Anything, domain.TrainingFilter{}).Return([]domain.Training{
		{ID: 1, RequiredSkills: []string{"Excel", "Python"}},    // all known
		{ID: 2, RequiredSkills: []string{"Excel", "Welding"}},   // one new
		{ID: 3, RequiredSkills: []string{}},                     // none required
		{ID: 4, RequiredSkills: []string{"Carpentry"}},          // all new
	}, nil)

	t.Run("Only trainings teaching something new", func(t *testing.T) {
		recs, err := uc.Recommendations(authedCtx("youth-1", domain.RoleYouth))
		assert.NoError(t, err)
		ids := []int64{}
		for _, r := range recs {
			ids = append(ids, r.ID)
		}
		assert.Equal(t, []int64{2, 4}, ids)
	})

	t.Run("Organizations get no recommendations", func(t *testing.T) {
		_, err := uc.Recommendations(authedCtx("org-1", domain.RoleOrganization))
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})
}

func TestTrainingOwnership(t *testing.T) {
	newUC := func() (domain.TrainingUsecase, *MockTrainingRepo) {
		trainingRepo := new(MockTrainingRepo)
		trainingRepo.On("GetByID", mock.Anything, int64(9)).
			Return(&domain.Training{ID: 9, OrganizationUserID: "org-1", Status: "Active", Mode: "Online", Title: "T"}, nil)
		trainingRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		return usecase.NewTrainingUsecase(trainingRepo, new(MockOrgRepo), new(MockYouthRepo), nil, newValidate()), trainingRepo
	}

	t.Run("Another organization cannot update", func(t *testing.T) {
		uc, _ := newUC()
		title := "Hijacked"
		_, err := uc.Update(authedCtx("org-2", domain.RoleOrganization), 9, &domain.TrainingUpdate{Title: &title})
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})

	t.Run("Soft delete moves to Inactive", func(t *testing.T) {
		uc, repo := newUC()
		training, err := uc.SoftDelete(authedCtx("org-1", domain.RoleOrganization), 9)
		assert.NoError(t, err)
		assert.Equal(t, domain.TrainingStatusInactive, training.Status)
		repo.AssertCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Admin can update any training", func(t *testing.T) {
		uc, _ := newUC()
		title := "Renamed"
		training, err := uc.Update(authedCtx("admin-1", domain.RoleAdmin), 9, &domain.TrainingUpdate{Title: &title})
		assert.NoError(t, err)
		assert.Equal(t, "Renamed", training.Title)
	})
}

// Enrollments

func TestEnroll(t *testing.T) {
	t.Run("Organizations cannot enroll", func(t *testing.T) {
		uc := usecase.NewEnrollmentUsecase(new(MockEnrollmentRepo), new(MockTrainingRepo))

		_, err := uc.Enroll(authedCtx("org-1", domain.RoleOrganization), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})

	t.Run("Inactive training cannot be enrolled in", func(t *testing.T) {
		enrollmentRepo := new(MockEnrollmentRepo)
		trainingRepo := new(MockTrainingRepo)
		uc := usecase.NewEnrollmentUsecase(enrollmentRepo, trainingRepo)

		trainingRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Training{ID: 1, Status: domain.TrainingStatusClosed}, nil)

		_, err := uc.Enroll(authedCtx("youth-1", domain.RoleYouth), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusCode(t, err))
		assert.Contains(t, err.Error(), "not available for enrollment")
	})

	t.Run("Duplicate enrollment conflicts", func(t *testing.T) {
		enrollmentRepo := new(MockEnrollmentRepo)
		trainingRepo := new(MockTrainingRepo)
		uc := usecase.NewEnrollmentUsecase(enrollmentRepo, trainingRepo)

		trainingRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Training{ID: 1, Status: domain.TrainingStatusActive}, nil)
		enrollmentRepo.On("GetByYouthAndTraining", mock.Anything, "youth-1", int64(1)).
			Return(&domain.Enrollment{ID: 3, YouthUserID: "youth-1", TrainingID: 1}, nil)

		_, err := uc.Enroll(authedCtx("youth-1", domain.RoleYouth), 1)
		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, statusCode(t, err))
		assert.Contains(t, err.Error(), "already enrolled")
	})

	t.Run("Successful enrollment bumps the applicant counter", func(t *testing.T) {
		enrollmentRepo := new(MockEnrollmentRepo)
		trainingRepo := new(MockTrainingRepo)
		uc := usecase.NewEnrollmentUsecase(enrollmentRepo, trainingRepo)

		trainingRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Training{ID: 1, Status: domain.TrainingStatusActive}, nil)
		enrollmentRepo.On("GetByYouthAndTraining", mock.Anything, "youth-1", int64(1)).
			Return(nil, domain.ErrNotFound)
		enrollmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		trainingRepo.On("IncrementApplicantCount", mock.Anything, int64(1)).Return(nil)

		enrollment, err := uc.Enroll(authedCtx("youth-1", domain.RoleYouth), 1)
		assert.NoError(t, err)
		assert.Equal(t, domain.EnrollmentStatusEnrolled, enrollment.Status)
		assert.Nil(t, enrollment.CompletionDate)
		trainingRepo.AssertCalled(t, "IncrementApplicantCount", mock.Anything, int64(1))
	})

	t.Run("Counter failure does not fail the enrollment", func(t *testing.T) {
		enrollmentRepo := new(MockEnrollmentRepo)
		trainingRepo := new(MockTrainingRepo)
		uc := usecase.NewEnrollmentUsecase(enrollmentRepo, trainingRepo)

		trainingRepo.On("GetByID", mock.Anything, int64(1)).
			Return(&domain.Training{ID: 1, Status: domain.TrainingStatusActive}, nil)
		enrollmentRepo.On("GetByYouthAndTraining", mock.Anything, "youth-1", int64(1)).
			Return(nil, domain.ErrNotFound)
		enrollmentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		trainingRepo.On("IncrementApplicantCount", mock.Anything, int64(1)).Return(errors.New("db down"))

		_, err := uc.Enroll(authedCtx("youth-1", domain.RoleYouth), 1)
		assert.NoError(t, err)
	})
}

func TestMarkCompleted(t *testing.T) {
	newUC := func() (domain.EnrollmentUsecase, *MockEnrollmentRepo) {
		enrollmentRepo := new(MockEnrollmentRepo)
		enrollmentRepo.On("GetByID", mock.Anything, int64(3)).
			Return(&domain.Enrollment{ID: 3, YouthUserID: "youth-1", TrainingID: 1, Status: domain.EnrollmentStatusEnrolled}, nil)
		enrollmentRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
		return usecase.NewEnrollmentUsecase(enrollmentRepo, new(MockTrainingRepo)), enrollmentRepo
	}

	t.Run("Owner completes with a date stamp", func(t *testing.T) {
		uc, _ := newUC()
		enrollment, err := uc.MarkCompleted(authedCtx("youth-1", domain.RoleYouth), 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.EnrollmentStatusCompleted, enrollment.Status)
		assert.NotNil(t, enrollment.CompletionDate)
	})

	t.Run("Another youth cannot complete it", func(t *testing.T) {
		uc, _ := newUC()
		_, err := uc.MarkCompleted(authedCtx("youth-2", domain.RoleYouth), 3)
		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
	})

	t.Run("Organization may complete it", func(t *testing.T) {
		uc, _ := newUC()
		enrollment, err := uc.MarkCompleted(authedCtx("org-1", domain.RoleOrganization), 3)
		assert.NoError(t, err)
		assert.Equal(t, domain.EnrollmentStatusCompleted, enrollment.Status)
	})
}
