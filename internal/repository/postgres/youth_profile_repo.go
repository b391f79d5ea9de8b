package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type youthProfileRepo struct {
	db *pgxpool.Pool
}

func NewYouthProfileRepository(db *pgxpool.Pool) domain.YouthProfileRepository {
	return &youthProfileRepo{db: db}
}

const youthProfileColumns = `
	id, user_id, full_name, contact_number, date_of_birth, COALESCE(gender, ''),
	COALESCE(district, ''), COALESCE(province_or_state, ''), rural_area_flag,
	education, technical_skills, soft_skills, COALESCE(digital_literacy_level, ''),
	experience_years, previous_internships, volunteering_experience,
	COALESCE(preferred_internship_type, ''), transportation_availability,
	internet_access, COALESCE(profile_visibility, ''),
	profile_completeness, profile_strength_level, eligibility_score,
	participation_eligibility, rural_support_priority, suggestions,
	documents, versions, created_at, updated_at`

func (r *youthProfileRepo) scanProfile(row pgx.Row) (*domain.YouthProfile, error) {
	var p domain.YouthProfile
	var techSkills, softSkills, prevInternships, volunteering, suggestions []string
	var educationJSON, documentsJSON, versionsJSON []byte

	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.ContactNumber, &p.DateOfBirth, &p.Gender,
		&p.District, &p.ProvinceOrState, &p.RuralAreaFlag,
		&educationJSON, pq.Array(&techSkills), pq.Array(&softSkills), &p.DigitalLiteracyLevel,
		&p.ExperienceYears, pq.Array(&prevInternships), pq.Array(&volunteering),
		&p.PreferredInternshipType, &p.TransportationAvailability,
		&p.InternetAccess, &p.ProfileVisibility,
		&p.ProfileCompleteness, &p.ProfileStrengthLevel, &p.EligibilityScore,
		&p.ParticipationEligibility, &p.RuralSupportPriority, pq.Array(&suggestions),
		&documentsJSON, &versionsJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.TechnicalSkills = techSkills
	p.SoftSkills = softSkills
	p.PreviousInternships = prevInternships
	p.VolunteeringExperience = volunteering
	p.Suggestions = suggestions

	if err := json.Unmarshal(educationJSON, &p.Education); err != nil {
		return nil, fmt.Errorf("failed to decode education: %w", err)
	}
	p.Documents = []domain.Document{}
	if len(documentsJSON) > 0 {
		if err := json.Unmarshal(documentsJSON, &p.Documents); err != nil {
			return nil, fmt.Errorf("failed to decode documents: %w", err)
		}
	}
	p.Versions = []domain.YouthVersion{}
	if len(versionsJSON) > 0 {
		if err := json.Unmarshal(versionsJSON, &p.Versions); err != nil {
			return nil, fmt.Errorf("failed to decode versions: %w", err)
		}
	}
	return &p, nil
}

func (r *youthProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.YouthProfile, error) {
	query := `SELECT ` + youthProfileColumns + ` FROM youth_profiles WHERE user_id = $1`
	p, err := r.scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *youthProfileRepo) Fetch(ctx context.Context) ([]domain.YouthProfile, error) {
	query := `SELECT ` + youthProfileColumns + ` FROM youth_profiles ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.YouthProfile{}
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *youthProfileRepo) Create(ctx context.Context, profile *domain.YouthProfile) error {
	educationJSON, err := json.Marshal(profile.Education)
	if err != nil {
		return apperror.Internal(err)
	}
	documentsJSON, err := json.Marshal(profile.Documents)
	if err != nil {
		return apperror.Internal(err)
	}
	versionsJSON, err := json.Marshal(profile.Versions)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `
		INSERT INTO youth_profiles (
			user_id, full_name, contact_number, date_of_birth, gender,
			district, province_or_state, rural_area_flag,
			education, technical_skills, soft_skills, digital_literacy_level,
			experience_years, previous_internships, volunteering_experience,
			preferred_internship_type, transportation_availability,
			internet_access, profile_visibility,
			profile_completeness, profile_strength_level, eligibility_score,
			participation_eligibility, rural_support_priority, suggestions,
			documents, versions, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29
		) RETURNING id`

	err = r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.ContactNumber, profile.DateOfBirth, profile.Gender,
		profile.District, profile.ProvinceOrState, profile.RuralAreaFlag,
		educationJSON, pq.Array(profile.TechnicalSkills), pq.Array(profile.SoftSkills), profile.DigitalLiteracyLevel,
		profile.ExperienceYears, pq.Array(profile.PreviousInternships), pq.Array(profile.VolunteeringExperience),
		profile.PreferredInternshipType, profile.TransportationAvailability,
		profile.InternetAccess, profile.ProfileVisibility,
		profile.ProfileCompleteness, profile.ProfileStrengthLevel, profile.EligibilityScore,
		profile.ParticipationEligibility, profile.RuralSupportPriority, pq.Array(profile.Suggestions),
		documentsJSON, versionsJSON, profile.CreatedAt, profile.UpdatedAt,
	).Scan(&profile.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Profile already exists for this user")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *youthProfileRepo) Update(ctx context.Context, profile *domain.YouthProfile) error {
	educationJSON, err := json.Marshal(profile.Education)
	if err != nil {
		return apperror.Internal(err)
	}
	documentsJSON, err := json.Marshal(profile.Documents)
	if err != nil {
		return apperror.Internal(err)
	}
	versionsJSON, err := json.Marshal(profile.Versions)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `
		UPDATE youth_profiles SET
			full_name = $2, contact_number = $3, date_of_birth = $4, gender = $5,
			district = $6, province_or_state = $7, rural_area_flag = $8,
			education = $9, technical_skills = $10, soft_skills = $11, digital_literacy_level = $12,
			experience_years = $13, previous_internships = $14, volunteering_experience = $15,
			preferred_internship_type = $16, transportation_availability = $17,
			internet_access = $18, profile_visibility = $19,
			profile_completeness = $20, profile_strength_level = $21, eligibility_score = $22,
			participation_eligibility = $23, rural_support_priority = $24, suggestions = $25,
			documents = $26, versions = $27, updated_at = $28
		WHERE user_id = $1`

	tag, err := r.db.Exec(ctx, query,
		profile.UserID, profile.FullName, profile.ContactNumber, profile.DateOfBirth, profile.Gender,
		profile.District, profile.ProvinceOrState, profile.RuralAreaFlag,
		educationJSON, pq.Array(profile.TechnicalSkills), pq.Array(profile.SoftSkills), profile.DigitalLiteracyLevel,
		profile.ExperienceYears, pq.Array(profile.PreviousInternships), pq.Array(profile.VolunteeringExperience),
		profile.PreferredInternshipType, profile.TransportationAvailability,
		profile.InternetAccess, profile.ProfileVisibility,
		profile.ProfileCompleteness, profile.ProfileStrengthLevel, profile.EligibilityScore,
		profile.ParticipationEligibility, profile.RuralSupportPriority, pq.Array(profile.Suggestions),
		documentsJSON, versionsJSON, profile.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *youthProfileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM youth_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
