package schedule

import (
	"testing"

	"github.com/mzali/radio-booking/internal/model"
)

func TestSortShows_FixedPriority(t *testing.T) {
	in := []model.Show{
		{ID: "1", Slot: SlotAfterLunch},
		{ID: "2", Slot: SlotDailyMile},
		{ID: "3", Slot: SlotLiveAtLunch},
	}
	got := SortShows(in)
	want := []string{SlotDailyMile, SlotLiveAtLunch, SlotAfterLunch}
	for i, w := range want {
		if got[i].Slot != w {
			t.Fatalf("position %d: got %q, want %q", i, got[i].Slot, w)
		}
	}
	// Input order untouched.
	if in[0].Slot != SlotAfterLunch {
		t.Fatalf("SortShows must not modify its input")
	}
}

func TestSortShows_UnknownSlotsLastStable(t *testing.T) {
	in := []model.Show{
		{ID: "1", Slot: "Midnight Hour"},
		{ID: "2", Slot: ""},
		{ID: "3", Slot: SlotAfterLunch},
		{ID: "4", Slot: "Breakfast"},
	}
	got := SortShows(in)
	if got[0].ID != "3" {
		t.Fatalf("known slot must sort first, got %q", got[0].ID)
	}
	// Unknown slots keep insertion order among themselves.
	rest := []string{got[1].ID, got[2].ID, got[3].ID}
	want := []string{"1", "2", "4"}
	for i := range want {
		if rest[i] != want[i] {
			t.Fatalf("unknown-slot order: got %v, want %v", rest, want)
		}
	}
}

func TestRank(t *testing.T) {
	if Rank(SlotDailyMile) >= Rank(SlotLiveAtLunch) || Rank(SlotLiveAtLunch) >= Rank(SlotAfterLunch) {
		t.Fatalf("slot ranks out of order")
	}
	if Rank("whatever") != unknownRank || Rank("") != unknownRank {
		t.Fatalf("unrecognised slots must rank last")
	}
}

func TestKnownAndSlots(t *testing.T) {
	for _, s := range Slots() {
		if !Known(s) {
			t.Fatalf("%q must be a known slot", s)
		}
	}
	if Known("Midnight Hour") {
		t.Fatalf("unexpected slot reported as known")
	}
}
