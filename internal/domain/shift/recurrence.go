package shift

import "github.com/google/uuid"

// WeeksPerYear is how many occurrences a weekly-recurring request
// expands into.
const WeeksPerYear = 52

// ExpandRecurring turns a template shift into one year of weekly
// occurrences. Every record is a field copy of the template except the
// date, which advances by seven days per occurrence, and all records
// share one freshly minted group id. Group ids are never reused.
func ExpandRecurring(template ShiftRecord) []ShiftRecord {
	groupID := uuid.NewString()

	records := make([]ShiftRecord, 0, WeeksPerYear)
	for i := 0; i < WeeksPerYear; i++ {
		rec := template
		rec.ID = uuid.NewString()
		rec.WorkDate = template.WorkDate.AddDate(0, 0, 7*i)
		rec.IsWeeklyFixed = true
		rec.GroupID = &groupID
		records = append(records, rec)
	}
	return records
}

// Plan describes the store operations a recurrence-nature transition
// requires. Exactly one of the delete fields is set when records must
// go away first; Update is set for in-place edits.
type Plan struct {
	DeleteGroupID *string
	DeleteIDs     []string
	Inserts       []ShiftRecord
	Update        *ShiftRecord
}

// PlanTransition compares the stored record against the edited one and
// decides how the store must change.
//
// fixed -> single deletes every record in the group, past occurrences
// included (the whole group goes unconditionally, matching the shipped
// behavior), then inserts one single record for the edited date. A
// fixed record carrying no group id deletes just itself.
// single -> fixed deletes the one record and inserts a full weekly
// expansion under a new group id. With no change in recurrence nature
// the edit is a plain update-by-id.
func PlanTransition(existing, edited ShiftRecord) Plan {
	if existing.IsWeeklyFixed && !edited.IsWeeklyFixed {
		single := edited
		single.ID = uuid.NewString()
		single.IsWeeklyFixed = false
		single.GroupID = nil
		plan := Plan{Inserts: []ShiftRecord{single}}
		// A fixed record without a group id has nothing else to take
		// down with it; only that record goes.
		if existing.GroupID != nil {
			plan.DeleteGroupID = existing.GroupID
		} else {
			plan.DeleteIDs = []string{existing.ID}
		}
		return plan
	}

	if !existing.IsWeeklyFixed && edited.IsWeeklyFixed {
		template := edited
		template.ID = ""
		return Plan{
			DeleteIDs: []string{existing.ID},
			Inserts:   ExpandRecurring(template),
		}
	}

	updated := edited
	updated.ID = existing.ID
	updated.IsWeeklyFixed = existing.IsWeeklyFixed
	updated.GroupID = existing.GroupID
	return Plan{Update: &updated}
}
