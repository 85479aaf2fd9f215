package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/database"
)

type jobRepositoryImpl struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.Repository {
	return &jobRepositoryImpl{db: db}
}

// ListWithRequirements implements job.Repository. Postings come back in
// creation order with their required slot set aggregated per row; that
// retrieval order is the tie-break order the matcher preserves.
func (r *jobRepositoryImpl) ListWithRequirements(ctx context.Context) ([]job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.title, j.workplace, j.location, j.address, j.category,
			   j.hourly_rate, j.deadline, j.is_open, j.created_at, j.updated_at,
			   COALESCE(array_agg(t.slot_index ORDER BY t.slot_index)
						FILTER (WHERE t.slot_index IS NOT NULL), '{}')
		FROM job_postings j
		LEFT JOIN job_time_slots t ON t.job_id = j.id
		WHERE j.is_open
		GROUP BY j.id
		ORDER BY j.created_at, j.id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	postings := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job posting rows: %w", err)
	}
	return postings, nil
}

// GetByID implements job.Repository.
func (r *jobRepositoryImpl) GetByID(ctx context.Context, id string) (job.Posting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT j.id, j.title, j.workplace, j.location, j.address, j.category,
			   j.hourly_rate, j.deadline, j.is_open, j.created_at, j.updated_at,
			   COALESCE(array_agg(t.slot_index ORDER BY t.slot_index)
						FILTER (WHERE t.slot_index IS NOT NULL), '{}')
		FROM job_postings j
		LEFT JOIN job_time_slots t ON t.job_id = j.id
		WHERE j.id = $1
		GROUP BY j.id
	`

	rows, err := q.Query(ctx, query, id)
	if err != nil {
		return job.Posting{}, fmt.Errorf("failed to get job posting: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return job.Posting{}, fmt.Errorf("failed to get job posting: %w", err)
		}
		return job.Posting{}, job.ErrPostingNotFound
	}
	return scanPosting(rows)
}

// CloseExpired implements job.Repository.
func (r *jobRepositoryImpl) CloseExpired(ctx context.Context, now time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE job_postings
		SET is_open = FALSE, updated_at = NOW()
		WHERE is_open AND deadline IS NOT NULL AND deadline < $1
	`, now)
	if err != nil {
		return 0, fmt.Errorf("failed to close expired postings: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanPosting(rows pgx.Rows) (job.Posting, error) {
	var p job.Posting
	var indices []int32
	err := rows.Scan(
		&p.ID, &p.Title, &p.Workplace, &p.Location, &p.Address, &p.Category,
		&p.HourlyRate, &p.Deadline, &p.IsOpen, &p.CreatedAt, &p.UpdatedAt,
		&indices,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Posting{}, job.ErrPostingNotFound
		}
		return job.Posting{}, fmt.Errorf("failed to scan job posting: %w", err)
	}

	p.Requirement = make([]timeslot.Index, len(indices))
	for i, idx := range indices {
		p.Requirement[i] = timeslot.Index(idx)
	}
	return p, nil
}
