// Package schedule holds the pure scheduling rules of the booking app: the
// closed slot enumeration, same-day display ordering, calendar-day
// normalisation, the slot conflict check and the visible two-week window.
// Nothing in this package performs I/O or keeps hidden state, so every
// function returns identical results for identical arguments.
package schedule

import (
	"sort"

	"github.com/mzali/radio-booking/internal/model"
)

// The closed set of named time slots a show can occupy.  The declaration
// order is also the broadcast order within a day.
const (
	SlotDailyMile   = "Daily Mile"
	SlotLiveAtLunch = "Live at Lunch"
	SlotAfterLunch  = "After Lunch"
)

// slotRank maps each known slot to its display priority.  Earlier slots
// sort first; anything outside the map sorts last.
var slotRank = map[string]int{
	SlotDailyMile:   1,
	SlotLiveAtLunch: 2,
	SlotAfterLunch:  3,
}

// unknownRank is the priority given to missing or unrecognised slots so
// they always render after the known ones.
const unknownRank = 99

// Slots returns the slot labels in selector order.
func Slots() []string {
	return []string{SlotDailyMile, SlotLiveAtLunch, SlotAfterLunch}
}

// Known reports whether the label belongs to the closed slot set.
func Known(slot string) bool {
	_, ok := slotRank[slot]
	return ok
}

// Rank returns the display priority for a slot label.
func Rank(slot string) int {
	if r, ok := slotRank[slot]; ok {
		return r
	}
	return unknownRank
}

// SlotColor returns the marker colour used when rendering a show's slot
// label.  Unrecognised slots get a neutral grey.
func SlotColor(slot string) string {
	switch slot {
	case SlotDailyMile:
		return "#27ae60"
	case SlotLiveAtLunch:
		return "#007385ff"
	case SlotAfterLunch:
		return "#ef2929"
	default:
		return "#bbb"
	}
}

// SortShows returns a new slice ordered for same-day display: known slots
// by their fixed priority, unknown or missing slots last, ties kept in
// their original insertion order.  The input slice is not modified.
func SortShows(shows []model.Show) []model.Show {
	out := make([]model.Show, len(shows))
	copy(out, shows)
	sort.SliceStable(out, func(i, j int) bool {
		return Rank(out[i].Slot) < Rank(out[j].Slot)
	})
	return out
}
