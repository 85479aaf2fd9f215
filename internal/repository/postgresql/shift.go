package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.Repository {
	return &shiftRepositoryImpl{db: db}
}

// Insert implements shift.Repository. The whole batch goes into one
// transaction; a 52-record recurring expansion is either fully visible
// or not at all.
func (r *shiftRepositoryImpl) Insert(ctx context.Context, records []shift.ShiftRecord) error {
	if len(records) == 0 {
		return nil
	}
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, rec := range records {
			if err := r.insertOne(txCtx, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *shiftRepositoryImpl) insertOne(ctx context.Context, rec shift.ShiftRecord) error {
	q := GetQuerier(ctx, r.db)

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	query := `
		INSERT INTO work_shifts (
			id, user_id, workplace_name, work_date, start_time, end_time,
			hourly_rate, is_weekly_fixed, group_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q.Exec(ctx, query,
		rec.ID, rec.UserID, rec.WorkplaceName, rec.WorkDate,
		rec.StartTime.String(), rec.EndTime.String(),
		rec.HourlyRate, rec.IsWeeklyFixed, rec.GroupID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert shift: %w", err)
	}
	return nil
}

// Update implements shift.Repository. An unset id behaves as an
// insert; otherwise the row is replaced field for field.
func (r *shiftRepositoryImpl) Update(ctx context.Context, rec shift.ShiftRecord) error {
	if rec.ID == "" {
		return r.insertOne(ctx, rec)
	}

	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_shifts
		SET workplace_name = $1, work_date = $2, start_time = $3, end_time = $4,
			hourly_rate = $5, is_weekly_fixed = $6, group_id = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`
	var updatedID string
	err := q.QueryRow(ctx, query,
		rec.WorkplaceName, rec.WorkDate, rec.StartTime.String(), rec.EndTime.String(),
		rec.HourlyRate, rec.IsWeeklyFixed, rec.GroupID, rec.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to update shift: %w", err)
	}
	return nil
}

// Delete implements shift.Repository.
func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_shifts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// DeleteByGroup implements shift.Repository. Every record of the
// user's group goes, past dates included; other users' groups are
// invisible here.
func (r *shiftRepositoryImpl) DeleteByGroup(ctx context.Context, userID, groupID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_shifts WHERE user_id = $1 AND group_id = $2`, userID, groupID)
	if err != nil {
		return fmt.Errorf("failed to delete shift group: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

// GetByID implements shift.Repository.
func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.ShiftRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, workplace_name, work_date, start_time, end_time,
			   hourly_rate, is_weekly_fixed, group_id, created_at, updated_at
		FROM work_shifts
		WHERE id = $1
	`
	rec, err := scanShift(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.ShiftRecord{}, shift.ErrShiftNotFound
		}
		return shift.ShiftRecord{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return rec, nil
}

// ListByDate implements shift.Repository.
func (r *shiftRepositoryImpl) ListByDate(ctx context.Context, userID string, date time.Time) ([]shift.ShiftRecord, error) {
	query := `
		SELECT id, user_id, workplace_name, work_date, start_time, end_time,
			   hourly_rate, is_weekly_fixed, group_id, created_at, updated_at
		FROM work_shifts
		WHERE user_id = $1 AND work_date = $2
		ORDER BY start_time, id
	`
	return r.listShifts(ctx, query, userID, date)
}

// ListByMonth implements shift.Repository. A month with no shifts is an
// empty result, not an error.
func (r *shiftRepositoryImpl) ListByMonth(ctx context.Context, userID string, month time.Month, year int) ([]shift.ShiftRecord, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query := `
		SELECT id, user_id, workplace_name, work_date, start_time, end_time,
			   hourly_rate, is_weekly_fixed, group_id, created_at, updated_at
		FROM work_shifts
		WHERE user_id = $1 AND work_date >= $2 AND work_date < $3
		ORDER BY work_date, start_time, id
	`
	return r.listShifts(ctx, query, userID, monthStart, monthEnd)
}

func (r *shiftRepositoryImpl) listShifts(ctx context.Context, query string, args ...interface{}) ([]shift.ShiftRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	defer rows.Close()

	records := make([]shift.ShiftRecord, 0)
	for rows.Next() {
		rec, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift rows: %w", err)
	}
	return records, nil
}

func scanShift(row pgx.Row) (shift.ShiftRecord, error) {
	var rec shift.ShiftRecord
	var startStr, endStr string
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.WorkplaceName, &rec.WorkDate,
		&startStr, &endStr, &rec.HourlyRate, &rec.IsWeeklyFixed,
		&rec.GroupID, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return shift.ShiftRecord{}, err
	}

	if rec.StartTime, err = timeslot.ParseClock(startStr); err != nil {
		return shift.ShiftRecord{}, fmt.Errorf("stored start_time invalid: %w", err)
	}
	if rec.EndTime, err = timeslot.ParseClock(endStr); err != nil {
		return shift.ShiftRecord{}, fmt.Errorf("stored end_time invalid: %w", err)
	}
	return rec, nil
}
