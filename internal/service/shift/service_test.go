package shift

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timepick-app/timepick-backend-go/internal/domain/shift"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/validator"
)

type fakeShiftRepo struct {
	records   map[string]shift.ShiftRecord
	insertErr error
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{records: make(map[string]shift.ShiftRecord)}
}

func (f *fakeShiftRepo) Insert(ctx context.Context, records []shift.ShiftRecord) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		f.records[rec.ID] = rec
	}
	return nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, record shift.ShiftRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
		f.records[record.ID] = record
		return nil
	}
	if _, ok := f.records[record.ID]; !ok {
		return shift.ErrShiftNotFound
	}
	f.records[record.ID] = record
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return shift.ErrShiftNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeShiftRepo) DeleteByGroup(ctx context.Context, userID, groupID string) error {
	deleted := 0
	for id, rec := range f.records {
		if rec.UserID == userID && rec.GroupID != nil && *rec.GroupID == groupID {
			delete(f.records, id)
			deleted++
		}
	}
	if deleted == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.ShiftRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return shift.ShiftRecord{}, shift.ErrShiftNotFound
	}
	return rec, nil
}

func (f *fakeShiftRepo) ListByDate(ctx context.Context, userID string, date time.Time) ([]shift.ShiftRecord, error) {
	var out []shift.ShiftRecord
	for _, rec := range f.records {
		if rec.UserID == userID && rec.WorkDate.Format("2006-01-02") == date.Format("2006-01-02") {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) ListByMonth(ctx context.Context, userID string, month time.Month, year int) ([]shift.ShiftRecord, error) {
	var out []shift.ShiftRecord
	for _, rec := range f.records {
		if rec.UserID == userID && rec.WorkDate.Month() == month && rec.WorkDate.Year() == year {
			out = append(out, rec)
		}
	}
	return out, nil
}

func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret-key"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func validCreateRequest() shift.CreateShiftRequest {
	return shift.CreateShiftRequest{
		WorkplaceName: "Corner Cafe",
		WorkDate:      "2025-03-10",
		StartTime:     "09:00",
		EndTime:       "17:00",
		HourlyRate:    10000,
	}
}

func TestShiftService_Create_Single(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	results, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.NotEmpty(t, results[0].ID)
	assert.False(t, results[0].IsWeeklyFixed)
	assert.Nil(t, results[0].GroupID)
	assert.Len(t, repo.records, 1)
}

func TestShiftService_Create_Recurring(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	req := validCreateRequest()
	req.RepeatWeekly = true

	results, err := svc.Create(ctx, req)
	require.NoError(t, err)
	require.Len(t, results, shift.WeeksPerYear)
	assert.Len(t, repo.records, shift.WeeksPerYear)

	require.NotNil(t, results[0].GroupID)
	for _, res := range results {
		assert.True(t, res.IsWeeklyFixed)
		require.NotNil(t, res.GroupID)
		assert.Equal(t, *results[0].GroupID, *res.GroupID)
	}
	assert.Equal(t, "2025-03-10", results[0].WorkDate)
	assert.Equal(t, "2025-03-17", results[1].WorkDate)
}

func TestShiftService_Create_Invalid(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	req := validCreateRequest()
	req.StartTime = "25:99"
	req.HourlyRate = 0

	_, err := svc.Create(ctx, req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Empty(t, repo.records)
}

func seedShift(repo *fakeShiftRepo, userID, date string, groupID *string, fixed bool) shift.ShiftRecord {
	day, _ := time.Parse("2006-01-02", date)
	rec := shift.ShiftRecord{
		ID:            uuid.NewString(),
		UserID:        userID,
		WorkplaceName: "Corner Cafe",
		WorkDate:      day,
		StartTime:     9 * 60,
		EndTime:       17 * 60,
		HourlyRate:    10000,
		IsWeeklyFixed: fixed,
		GroupID:       groupID,
	}
	repo.records[rec.ID] = rec
	return rec
}

func TestShiftService_Edit_PlainUpdate(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	existing := seedShift(repo, "worker-1", "2025-03-10", nil, false)

	results, err := svc.Edit(ctx, existing.ID, shift.EditShiftRequest{
		WorkplaceName: "Night Mart",
		WorkDate:      "2025-03-11",
		StartTime:     "22:00",
		EndTime:       "02:00",
		HourlyRate:    12000,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, existing.ID, results[0].ID)
	assert.Equal(t, "Night Mart", results[0].WorkplaceName)
	assert.Len(t, repo.records, 1)
	assert.Equal(t, "Night Mart", repo.records[existing.ID].WorkplaceName)
}

func TestShiftService_Edit_FixedToSingle_RemovesWholeGroup(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	groupID := uuid.NewString()
	seedShift(repo, "worker-1", "2025-03-03", &groupID, true)
	edited := seedShift(repo, "worker-1", "2025-03-10", &groupID, true)
	seedShift(repo, "worker-1", "2025-03-17", &groupID, true)

	results, err := svc.Edit(ctx, edited.ID, shift.EditShiftRequest{
		WorkplaceName: "Corner Cafe",
		WorkDate:      "2025-03-10",
		StartTime:     "09:00",
		EndTime:       "17:00",
		HourlyRate:    10000,
		RepeatWeekly:  false,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Nil(t, results[0].GroupID)
	assert.False(t, results[0].IsWeeklyFixed)

	// Every occurrence of the old group is gone, past ones included.
	require.Len(t, repo.records, 1)
	for _, rec := range repo.records {
		assert.Nil(t, rec.GroupID)
	}
}

func TestShiftService_Edit_SingleToFixed_Expands(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	existing := seedShift(repo, "worker-1", "2025-03-10", nil, false)

	results, err := svc.Edit(ctx, existing.ID, shift.EditShiftRequest{
		WorkplaceName: "Corner Cafe",
		WorkDate:      "2025-03-10",
		StartTime:     "09:00",
		EndTime:       "17:00",
		HourlyRate:    10000,
		RepeatWeekly:  true,
	})
	require.NoError(t, err)
	require.Len(t, results, shift.WeeksPerYear)

	assert.Len(t, repo.records, shift.WeeksPerYear)
	_, err = repo.GetByID(ctx, existing.ID)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestShiftService_Edit_OtherUsersShiftHidden(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	existing := seedShift(repo, "worker-2", "2025-03-10", nil, false)

	_, err := svc.Edit(ctx, existing.ID, shift.EditShiftRequest{
		WorkplaceName: "Corner Cafe",
		WorkDate:      "2025-03-10",
		StartTime:     "09:00",
		EndTime:       "17:00",
		HourlyRate:    10000,
	})
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
}

func TestShiftService_Edit_InsertFailureSurfacesInconsistency(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	groupID := uuid.NewString()
	edited := seedShift(repo, "worker-1", "2025-03-10", &groupID, true)
	repo.insertErr = errors.New("connection reset")

	_, err := svc.Edit(ctx, edited.ID, shift.EditShiftRequest{
		WorkplaceName: "Corner Cafe",
		WorkDate:      "2025-03-10",
		StartTime:     "09:00",
		EndTime:       "17:00",
		HourlyRate:    10000,
		RepeatWeekly:  false,
	})
	assert.ErrorIs(t, err, shift.ErrInconsistentTransition)
}

func TestShiftService_Delete_OtherUsersShiftHidden(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	existing := seedShift(repo, "worker-2", "2025-03-10", nil, false)

	err := svc.Delete(ctx, existing.ID)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	assert.Len(t, repo.records, 1)
}

func TestShiftService_DeleteGroup_OtherUsersGroupHidden(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	groupID := uuid.NewString()
	seedShift(repo, "worker-2", "2025-03-03", &groupID, true)
	seedShift(repo, "worker-2", "2025-03-10", &groupID, true)

	err := svc.DeleteGroup(ctx, groupID)
	assert.ErrorIs(t, err, shift.ErrShiftNotFound)
	assert.Len(t, repo.records, 2)
}

func TestShiftService_DeleteGroup_OwnGroup(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	groupID := uuid.NewString()
	seedShift(repo, "worker-1", "2025-03-03", &groupID, true)
	seedShift(repo, "worker-1", "2025-03-10", &groupID, true)

	require.NoError(t, svc.DeleteGroup(ctx, groupID))
	assert.Empty(t, repo.records)
}

func TestShiftService_ListByDate_InvalidDate(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := NewShiftService(repo)
	ctx := authedContext(t, "worker-1")

	_, err := svc.ListByDate(ctx, "not-a-date")
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
