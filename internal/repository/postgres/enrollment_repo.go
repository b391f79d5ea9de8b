package postgres

import (
	"context"
	"errors"

	"rural-internship-backend/internal/domain"
	"rural-internship-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type enrollmentRepo struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) domain.EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

func (r *enrollmentRepo) Create(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `
		INSERT INTO enrollments (youth_user_id, training_id, status, enrolled_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		enrollment.YouthUserID, enrollment.TrainingID, enrollment.Status, enrollment.EnrolledAt,
	).Scan(&enrollment.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("You are already enrolled in this training")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *enrollmentRepo) GetByID(ctx context.Context, id int64) (*domain.Enrollment, error) {
	query := `SELECT id, youth_user_id, training_id, status, completion_date, enrolled_at
	          FROM enrollments WHERE id = $1`

	var e domain.Enrollment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.YouthUserID, &e.TrainingID, &e.Status, &e.CompletionDate, &e.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) GetByYouthAndTraining(ctx context.Context, youthUserID string, trainingID int64) (*domain.Enrollment, error) {
	query := `SELECT id, youth_user_id, training_id, status, completion_date, enrolled_at
	          FROM enrollments WHERE youth_user_id = $1 AND training_id = $2`

	var e domain.Enrollment
	err := r.db.QueryRow(ctx, query, youthUserID, trainingID).Scan(
		&e.ID, &e.YouthUserID, &e.TrainingID, &e.Status, &e.CompletionDate, &e.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) FetchByYouth(ctx context.Context, youthUserID string) ([]domain.Enrollment, error) {
	query := `
		SELECT
			e.id, e.youth_user_id, e.training_id, e.status, e.completion_date, e.enrolled_at,
			t.id, t.organization_user_id, t.title, COALESCE(t.description, ''), t.required_skills,
			COALESCE(t.duration, ''), t.mode, COALESCE(t.location, ''), t.certificate_available, t.status
		FROM enrollments e
		JOIN trainings t ON t.id = e.training_id
		WHERE e.youth_user_id = $1
		ORDER BY e.enrolled_at DESC`

	rows, err := r.db.Query(ctx, query, youthUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := []domain.Enrollment{}
	for rows.Next() {
		var e domain.Enrollment
		var t domain.Training
		var skills []string
		err := rows.Scan(
			&e.ID, &e.YouthUserID, &e.TrainingID, &e.Status, &e.CompletionDate, &e.EnrolledAt,
			&t.ID, &t.OrganizationUserID, &t.Title, &t.Description, pq.Array(&skills),
			&t.Duration, &t.Mode, &t.Location, &t.CertificateAvailable, &t.Status,
		)
		if err != nil {
			return nil, err
		}
		t.RequiredSkills = skills
		e.Training = &t
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func (r *enrollmentRepo) Update(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `UPDATE enrollments SET status = $2, completion_date = $3 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, enrollment.ID, enrollment.Status, enrollment.CompletionDate)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
