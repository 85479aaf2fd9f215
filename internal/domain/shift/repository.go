package shift

import (
	"context"
	"time"
)

type Repository interface {
	// Insert persists the batch as a single unit of work; readers never
	// observe a partial batch.
	Insert(ctx context.Context, records []ShiftRecord) error
	// Update replaces the record with the same id. An unset id behaves
	// as an insert.
	Update(ctx context.Context, record ShiftRecord) error
	Delete(ctx context.Context, id string) error
	// DeleteByGroup removes every record of the user sharing the group
	// id, all dates included. A group the user owns no record of is
	// ErrShiftNotFound.
	DeleteByGroup(ctx context.Context, userID, groupID string) error
	GetByID(ctx context.Context, id string) (ShiftRecord, error)
	ListByDate(ctx context.Context, userID string, date time.Time) ([]ShiftRecord, error)
	// ListByMonth returns every shift of the user falling inside the
	// calendar month, ordered by date then start time.
	ListByMonth(ctx context.Context, userID string, month time.Month, year int) ([]ShiftRecord, error)
}

type Service interface {
	Create(ctx context.Context, req CreateShiftRequest) ([]ShiftResponse, error)
	Edit(ctx context.Context, id string, req EditShiftRequest) ([]ShiftResponse, error)
	Delete(ctx context.Context, id string) error
	DeleteGroup(ctx context.Context, groupID string) error
	ListByDate(ctx context.Context, date string) ([]ShiftResponse, error)
	ListByMonth(ctx context.Context, yearMonth string) ([]ShiftResponse, error)
}
