package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/timepick-app/timepick-backend-go/internal/domain/availability"
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/database"
)

type availabilityRepositoryImpl struct {
	db *database.DB
}

func NewAvailabilityRepository(db *database.DB) availability.Repository {
	return &availabilityRepositoryImpl{db: db}
}

// Replace implements availability.Repository. The old set is dropped
// and the new one inserted inside one transaction so readers never see
// a half-replaced set.
func (r *availabilityRepositoryImpl) Replace(ctx context.Context, userID string, slots []timeslot.Index) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM user_time_slots WHERE user_id = $1`, userID); err != nil {
			return fmt.Errorf("failed to clear availability: %w", err)
		}

		if len(slots) == 0 {
			return nil
		}

		indices := make([]int32, len(slots))
		for i, slot := range slots {
			indices[i] = int32(slot)
		}

		query := `
			INSERT INTO user_time_slots (user_id, slot_index)
			SELECT $1, unnest($2::int[])
		`
		if _, err := q.Exec(txCtx, query, userID, indices); err != nil {
			return fmt.Errorf("failed to insert availability: %w", err)
		}
		return nil
	})
}

// GetByUser implements availability.Repository. A user with no saved
// slots yields an empty slice.
func (r *availabilityRepositoryImpl) GetByUser(ctx context.Context, userID string) ([]timeslot.Index, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT slot_index FROM user_time_slots
		WHERE user_id = $1
		ORDER BY slot_index
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	defer rows.Close()

	slots := make([]timeslot.Index, 0)
	for rows.Next() {
		var idx int32
		if err := rows.Scan(&idx); err != nil {
			return nil, fmt.Errorf("failed to scan availability slot: %w", err)
		}
		slots = append(slots, timeslot.Index(idx))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read availability rows: %w", err)
	}
	return slots, nil
}
