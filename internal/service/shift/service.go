package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/jwt"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/validator"
)

type shiftServiceImpl struct {
	shiftRepo shift.Repository
}

func NewShiftService(shiftRepo shift.Repository) shift.Service {
	return &shiftServiceImpl{shiftRepo: shiftRepo}
}

// Create implements shift.Service. A plain request persists one
// record; with repeat_weekly set the template expands to a year of
// weekly occurrences stored as one batch.
func (s *shiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	template := req.Record(userID)

	var records []shift.ShiftRecord
	if req.RepeatWeekly {
		records = shift.ExpandRecurring(template)
	} else {
		template.ID = uuid.NewString()
		records = []shift.ShiftRecord{template}
	}

	if err := s.shiftRepo.Insert(ctx, records); err != nil {
		return nil, fmt.Errorf("failed to insert shifts: %w", err)
	}

	return toResponses(records), nil
}

// Edit implements shift.Service. When the edit flips the recurrence
// nature the existing record(s) are deleted and replacements inserted
// in one transaction; the whole recurring group goes when a fixed
// shift becomes single, past occurrences included.
func (s *shiftServiceImpl) Edit(ctx context.Context, id string, req shift.EditShiftRequest) ([]shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, shift.ErrShiftNotFound
	}

	edited := req.Record(userID)
	edited.IsWeeklyFixed = req.RepeatWeekly

	plan := shift.PlanTransition(existing, edited)
	if err := s.applyPlan(ctx, userID, plan); err != nil {
		return nil, err
	}

	if plan.Update != nil {
		return toResponses([]shift.ShiftRecord{*plan.Update}), nil
	}
	return toResponses(plan.Inserts), nil
}

// applyPlan executes a transition plan. The delete and insert steps
// are separate store calls; when the insert fails after a successful
// delete the edited date has no record left, so that failure surfaces
// as ErrInconsistentTransition instead of a generic store error.
func (s *shiftServiceImpl) applyPlan(ctx context.Context, userID string, plan shift.Plan) error {
	if plan.Update != nil {
		if err := s.shiftRepo.Update(ctx, *plan.Update); err != nil {
			return fmt.Errorf("failed to update shift: %w", err)
		}
		return nil
	}

	if plan.DeleteGroupID != nil {
		if err := s.shiftRepo.DeleteByGroup(ctx, userID, *plan.DeleteGroupID); err != nil {
			return fmt.Errorf("failed to delete shift group: %w", err)
		}
	}
	for _, deleteID := range plan.DeleteIDs {
		if err := s.shiftRepo.Delete(ctx, deleteID); err != nil && !errors.Is(err, shift.ErrShiftNotFound) {
			return fmt.Errorf("failed to delete shift: %w", err)
		}
	}

	if err := s.shiftRepo.Insert(ctx, plan.Inserts); err != nil {
		slog.Error("recurrence transition insert failed after delete",
			"group_id", plan.DeleteGroupID, "deleted_ids", plan.DeleteIDs, "error", err)
		return fmt.Errorf("%w: %v", shift.ErrInconsistentTransition, err)
	}
	return nil
}

// Delete implements shift.Service.
func (s *shiftServiceImpl) Delete(ctx context.Context, id string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}

	existing, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return shift.ErrShiftNotFound
	}

	return s.shiftRepo.Delete(ctx, id)
}

// DeleteGroup implements shift.Service. The delete is scoped to the
// caller's own records; someone else's group reads as not found.
func (s *shiftServiceImpl) DeleteGroup(ctx context.Context, groupID string) error {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.shiftRepo.DeleteByGroup(ctx, userID, groupID)
}

// ListByDate implements shift.Service.
func (s *shiftServiceImpl) ListByDate(ctx context.Context, date string) ([]shift.ShiftResponse, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		}}
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.shiftRepo.ListByDate(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts by date: %w", err)
	}
	return toResponses(records), nil
}

// ListByMonth implements shift.Service.
func (s *shiftServiceImpl) ListByMonth(ctx context.Context, yearMonth string) ([]shift.ShiftResponse, error) {
	month, ok := validator.IsValidMonth(yearMonth)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be a valid YYYY-MM month",
		}}
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.shiftRepo.ListByMonth(ctx, userID, month.Month(), month.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts by month: %w", err)
	}
	return toResponses(records), nil
}

func toResponses(records []shift.ShiftRecord) []shift.ShiftResponse {
	responses := make([]shift.ShiftResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, shift.NewShiftResponse(rec))
	}
	return responses
}
