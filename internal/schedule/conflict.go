package schedule

import (
	"strings"
	"time"

	"github.com/mzali/radio-booking/internal/model"
)

// DayKey reduces a stored date to its calendar day as "2006-01-02".  The
// remote API hands back either bare day strings or full RFC 3339 stamps;
// both reduce to the same key, and no timezone conversion is applied so
// clients in different zones agree on which day a show occupies.  Values
// that do not look like a date are returned trimmed as-is, which keeps
// the comparison well-defined (equal garbage still compares equal).
func DayKey(date string) string {
	s := strings.TrimSpace(date)
	if len(s) >= 10 {
		if _, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return s[:10]
		}
	}
	return s
}

// HasConflict reports whether booking the candidate (date, slot) pair
// would double-book a slot: true iff some show other than excludeID
// occupies the same calendar day and the exact same slot label.  Pass
// excludeID="" when creating; pass the draft's own id when editing so a
// show never conflicts with itself.
//
// Shows without a slot label never conflict and never block a slot, and a
// candidate without a slot label conflicts with nothing (submission
// validation rejects it separately).  The slot-uniqueness rule is enforced
// nowhere else: the remote store applies last-write-wins, so two editors
// racing for the same slot can still both succeed.  This check narrows
// that window; it cannot close it.
func HasConflict(shows []model.Show, date, slot, excludeID string) bool {
	if slot == "" {
		return false
	}
	day := DayKey(date)
	for _, sh := range shows {
		if sh.Slot == "" {
			continue
		}
		if excludeID != "" && sh.ID == excludeID {
			continue
		}
		if DayKey(sh.Date) == day && sh.Slot == slot {
			return true
		}
	}
	return false
}

// TakenSlots returns the slot labels already occupied on the given day,
// excluding the show identified by excludeID.  The sidebar uses this to
// annotate its slot selector with "(taken)" marks; when editing, the
// draft's own prior slot stays selectable.
func TakenSlots(shows []model.Show, date, excludeID string) map[string]bool {
	taken := make(map[string]bool)
	day := DayKey(date)
	for _, sh := range shows {
		if sh.Slot == "" {
			continue
		}
		if excludeID != "" && sh.ID == excludeID {
			continue
		}
		if DayKey(sh.Date) == day {
			taken[sh.Slot] = true
		}
	}
	return taken
}
