package postgres

import (
	"context"
	"errors"
	"fmt"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type trainingRepo struct {
	db *pgxpool.Pool
}

func NewTrainingRepository(db *pgxpool.Pool) domain.TrainingRepository {
	return &trainingRepo{db: db}
}

const trainingColumns = `
	id, organization_user_id, title, COALESCE(description, ''), required_skills,
	COALESCE(duration, ''), mode, COALESCE(location, ''), latitude, longitude,
	certificate_available, status, view_count, applicant_count, accepted_count,
	created_at, updated_at`

func (r *trainingRepo) scanTraining(row pgx.Row) (*domain.Training, error) {
	var t domain.Training
	var skills []string

	err := row.Scan(
		&t.ID, &t.OrganizationUserID, &t.Title, &t.Description, pq.Array(&skills),
		&t.Duration, &t.Mode, &t.Location, &t.Latitude, &t.Longitude,
		&t.CertificateAvailable, &t.Status, &t.ViewCount, &t.ApplicantCount, &t.AcceptedCount,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.RequiredSkills = skills
	return &t, nil
}

func (r *trainingRepo) Create(ctx context.Context, training *domain.Training) error {
	query := `
		INSERT INTO trainings (
			organization_user_id, title, description, required_skills,
			duration, mode, location, latitude, longitude,
			certificate_available, status, view_count, applicant_count, accepted_count,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		training.OrganizationUserID, training.Title, training.Description, pq.Array(training.RequiredSkills),
		training.Duration, training.Mode, training.Location, training.Latitude, training.Longitude,
		training.CertificateAvailable, training.Status, training.ViewCount, training.ApplicantCount,
		training.AcceptedCount, training.CreatedAt, training.UpdatedAt,
	).Scan(&training.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *trainingRepo) GetByID(ctx context.Context, id int64) (*domain.Training, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE id = $1`
	t, err := r.scanTraining(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *trainingRepo) FetchActive(ctx context.Context, filter domain.TrainingFilter) ([]domain.Training, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE status = 'Active'`
	args := []interface{}{}
	argPos := 1

	if filter.Skill != "" {
		query += fmt.Sprintf(` AND $%d = ANY(required_skills)`, argPos)
		args = append(args, filter.Skill)
		argPos++
	}
	if filter.Location != "" {
		query += fmt.Sprintf(` AND location ILIKE $%d`, argPos)
		args = append(args, "%"+filter.Location+"%")
		argPos++
	}
	if filter.Duration != "" {
		query += fmt.Sprintf(` AND duration = $%d`, argPos)
		args = append(args, filter.Duration)
		argPos++
	}
	if filter.Mode != "" {
		query += fmt.Sprintf(` AND mode = $%d`, argPos)
		args = append(args, filter.Mode)
		argPos++
	}
	query += ` ORDER BY created_at DESC`

	return r.fetch(ctx, query, args...)
}

func (r *trainingRepo) FetchAll(ctx context.Context) ([]domain.Training, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings ORDER BY created_at DESC`
	return r.fetch(ctx, query)
}

func (r *trainingRepo) FetchByOrganization(ctx context.Context, organizationUserID string, status string) ([]domain.Training, error) {
	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE organization_user_id = $1`
	args := []interface{}{organizationUserID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	return r.fetch(ctx, query, args...)
}

func (r *trainingRepo) fetch(ctx context.Context, query string, args ...interface{}) ([]domain.Training, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainings := []domain.Training{}
	for rows.Next() {
		t, err := r.scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, *t)
	}
	return trainings, rows.Err()
}

func (r *trainingRepo) Update(ctx context.Context, training *domain.Training) error {
	query := `
		UPDATE trainings SET
			title = $2, description = $3, required_skills = $4, duration = $5,
			mode = $6, location = $7, latitude = $8, longitude = $9,
			certificate_available = $10, status = $11, accepted_count = $12, updated_at = $13
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		training.ID, training.Title, training.Description, pq.Array(training.RequiredSkills),
		training.Duration, training.Mode, training.Location, training.Latitude, training.Longitude,
		training.CertificateAvailable, training.Status, training.AcceptedCount, training.UpdatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Counter increments happen server-side so concurrent requests never lose
// updates to a read-modify-write race.
func (r *trainingRepo) IncrementViewCount(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE trainings SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *trainingRepo) IncrementApplicantCount(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `UPDATE trainings SET applicant_count = applicant_count + 1 WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
