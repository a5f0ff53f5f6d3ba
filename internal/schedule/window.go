package schedule

import "time"

// dayFormat is the wire format for calendar days.
const dayFormat = "2006-01-02"

// Window is the fixed two-week range the calendar shows: it starts on the
// most recent week boundary (Sunday) at or before the reference date and
// ends 13 days later, both bounds inclusive.  The window is recomputed
// from the current date every time a calendar session opens; it is never
// persisted.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CurrentWindow computes the visible window for the given reference time.
func CurrentWindow(now time.Time) Window {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	start := day.AddDate(0, 0, -int(now.Weekday()))
	return Window{Start: start, End: start.AddDate(0, 0, 13)}
}

// Contains reports whether the calendar day identified by dayKey falls
// inside the window.  Unparseable keys are outside every window.
func (w Window) Contains(dayKey string) bool {
	t, err := time.Parse(dayFormat, DayKey(dayKey))
	if err != nil {
		return false
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// Days lists the 14 day keys covered by the window in order, for grid
// rendering.
func (w Window) Days() []string {
	days := make([]string, 0, 14)
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dayFormat))
	}
	return days
}
