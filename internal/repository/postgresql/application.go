package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/timepick-app/timepick-backend-go/internal/domain/application"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/database"
)

type appliedJobRepositoryImpl struct {
	db *database.DB
}

func NewAppliedJobRepository(db *database.DB) application.Repository {
	return &appliedJobRepositoryImpl{db: db}
}

// Create implements application.Repository.
func (r *appliedJobRepositoryImpl) Create(ctx context.Context, applied application.AppliedJob) (application.AppliedJob, error) {
	q := GetQuerier(ctx, r.db)

	if applied.ID == "" {
		applied.ID = uuid.NewString()
	}

	query := `
		INSERT INTO applied_jobs (id, user_id, job_id)
		VALUES ($1, $2, $3)
		RETURNING applied_at
	`
	err := q.QueryRow(ctx, query, applied.ID, applied.UserID, applied.JobID).Scan(&applied.AppliedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		// Unique violation on (user_id, job_id)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return application.AppliedJob{}, application.ErrAlreadyApplied
		}
		return application.AppliedJob{}, fmt.Errorf("failed to create job application: %w", err)
	}
	return applied, nil
}

// ListByUser implements application.Repository.
func (r *appliedJobRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]application.AppliedJob, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, user_id, job_id, applied_at
		FROM applied_jobs
		WHERE user_id = $1
		ORDER BY applied_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	applications := make([]application.AppliedJob, 0)
	for rows.Next() {
		var a application.AppliedJob
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.AppliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job application: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job application rows: %w", err)
	}
	return applications, nil
}

// ExistsByUserAndJob implements application.Repository.
func (r *appliedJobRepositoryImpl) ExistsByUserAndJob(ctx context.Context, userID, jobID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM applied_jobs WHERE user_id = $1 AND job_id = $2)
	`, userID, jobID).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("failed to check job application: %w", err)
	}
	return exists, nil
}
