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

type organizationRepo struct {
	db *pgxpool.Pool
}

func NewOrganizationRepository(db *pgxpool.Pool) domain.OrganizationProfileRepository {
	return &organizationRepo{db: db}
}

const organizationColumns = `
	id, COALESCE(organization_id, ''), user_id, organization_name, contact_number,
	industry, organization_type, location, COALESCE(description, ''),
	COALESCE(website, ''), offers_remote_internships, COALESCE(internship_location_type, ''),
	profile_completeness_percentage, readiness_status, can_post_internship,
	readiness_suggestions, verified, documents, versions, created_at, updated_at`

func (r *organizationRepo) scanProfile(row pgx.Row) (*domain.OrganizationProfile, error) {
	var p domain.OrganizationProfile
	var suggestions []string
	var documentsJSON, versionsJSON []byte

	err := row.Scan(
		&p.ID, &p.OrganizationID, &p.UserID, &p.OrganizationName, &p.ContactNumber,
		&p.Industry, &p.OrganizationType, &p.Location, &p.Description,
		&p.Website, &p.OffersRemoteInternships, &p.InternshipLocationType,
		&p.ProfileCompletenessPercentage, &p.ReadinessStatus, &p.CanPostInternship,
		pq.Array(&suggestions), &p.Verified, &documentsJSON, &versionsJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.ReadinessSuggestions = suggestions
	p.Documents = []domain.OrgDocument{}
	if len(documentsJSON) > 0 {
		if err := json.Unmarshal(documentsJSON, &p.Documents); err != nil {
			return nil, fmt.Errorf("failed to decode documents: %w", err)
		}
	}
	p.Versions = []domain.OrgVersion{}
	if len(versionsJSON) > 0 {
		if err := json.Unmarshal(versionsJSON, &p.Versions); err != nil {
			return nil, fmt.Errorf("failed to decode versions: %w", err)
		}
	}
	return &p, nil
}

func (r *organizationRepo) GetByID(ctx context.Context, id int64) (*domain.OrganizationProfile, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization_profiles WHERE id = $1`
	p, err := r.scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *organizationRepo) GetByUserID(ctx context.Context, userID string) (*domain.OrganizationProfile, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization_profiles WHERE user_id = $1`
	p, err := r.scanProfile(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *organizationRepo) Fetch(ctx context.Context) ([]domain.OrganizationProfile, error) {
	query := `SELECT ` + organizationColumns + ` FROM organization_profiles ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.OrganizationProfile{}
	for rows.Next() {
		p, err := r.scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *organizationRepo) Create(ctx context.Context, profile *domain.OrganizationProfile) error {
	documentsJSON, err := json.Marshal(profile.Documents)
	if err != nil {
		return apperror.Internal(err)
	}
	versionsJSON, err := json.Marshal(profile.Versions)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `
		INSERT INTO organization_profiles (
			organization_id, user_id, organization_name, contact_number,
			industry, organization_type, location, description,
			website, offers_remote_internships, internship_location_type,
			profile_completeness_percentage, readiness_status, can_post_internship,
			readiness_suggestions, verified, documents, versions, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20
		) RETURNING id`

	err = r.db.QueryRow(ctx, query,
		profile.OrganizationID, profile.UserID, profile.OrganizationName, profile.ContactNumber,
		profile.Industry, profile.OrganizationType, profile.Location, profile.Description,
		profile.Website, profile.OffersRemoteInternships, profile.InternshipLocationType,
		profile.ProfileCompletenessPercentage, profile.ReadinessStatus, profile.CanPostInternship,
		pq.Array(profile.ReadinessSuggestions), profile.Verified, documentsJSON, versionsJSON,
		profile.CreatedAt, profile.UpdatedAt,
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

func (r *organizationRepo) Update(ctx context.Context, profile *domain.OrganizationProfile) error {
	documentsJSON, err := json.Marshal(profile.Documents)
	if err != nil {
		return apperror.Internal(err)
	}
	versionsJSON, err := json.Marshal(profile.Versions)
	if err != nil {
		return apperror.Internal(err)
	}

	query := `
		UPDATE organization_profiles SET
			organization_id = $2, organization_name = $3, contact_number = $4,
			industry = $5, organization_type = $6, location = $7, description = $8,
			website = $9, offers_remote_internships = $10, internship_location_type = $11,
			profile_completeness_percentage = $12, readiness_status = $13, can_post_internship = $14,
			readiness_suggestions = $15, verified = $16, documents = $17, versions = $18, updated_at = $19
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		profile.ID, profile.OrganizationID, profile.OrganizationName, profile.ContactNumber,
		profile.Industry, profile.OrganizationType, profile.Location, profile.Description,
		profile.Website, profile.OffersRemoteInternships, profile.InternshipLocationType,
		profile.ProfileCompletenessPercentage, profile.ReadinessStatus, profile.CanPostInternship,
		pq.Array(profile.ReadinessSuggestions), profile.Verified, documentsJSON, versionsJSON,
		profile.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *organizationRepo) DeleteByUserID(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM organization_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
