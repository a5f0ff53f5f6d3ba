package calendar

import (
	"context"
	"time"

	"github.com/mzali/radio-booking/internal/auth"
	"github.com/mzali/radio-booking/internal/model"
	"github.com/mzali/radio-booking/internal/schedule"
)

// ShowStore is the remote show collection as the surface consumes it.
// *repository.Collection[model.Show] satisfies it; tests use fakes.
type ShowStore interface {
	List(ctx context.Context) ([]model.Show, error)
	Create(ctx context.Context, rec model.Show) (model.Show, error)
	Update(ctx context.Context, id string, rec model.Show) (model.Show, error)
	Delete(ctx context.Context, id string) error
}

// ReferenceStore is the read side of a reference-data collection, used to
// populate the sidebar's class and producer selectors.
type ReferenceStore interface {
	List(ctx context.Context) ([]model.Reference, error)
}

// Surface is one browser session's calendar state: the visible two-week
// window, the authoritative in-memory show list for that window, and the
// sidebar.  The show list is the single shared resource touched by every
// action; mutations always replace the whole slice rather than editing it
// in place, so a render sees either the old list or the new one, never a
// half-applied mix.  Surfaces serialise to JSON for the session store.
type Surface struct {
	Window  schedule.Window `json:"window"`
	Shows   []model.Show    `json:"shows"`
	Sidebar Sidebar         `json:"sidebar"`
	// LoadError is the inline banner shown when the show list could not
	// be fetched.  The previous list stays on screen untouched.
	LoadError string `json:"load_error,omitempty"`
}

// NewSurface builds a fresh surface for the window containing now.  The
// window is recomputed on every open and never persisted.
func NewSurface(now time.Time) *Surface {
	return &Surface{
		Window:  schedule.CurrentWindow(now),
		Shows:   []model.Show{},
		Sidebar: Sidebar{Mode: ModeClosed},
	}
}

// Load replaces the show list wholesale from the remote collection.  On
// failure the previous list is left untouched and LoadError carries the
// inline banner text; the error is also returned so the caller can tell
// an auth failure from a remote one.
func (s *Surface) Load(ctx context.Context, shows ShowStore) error {
	list, err := shows.List(ctx)
	if err != nil {
		s.LoadError = "failed to load shows: " + err.Error()
		return err
	}
	if list == nil {
		list = []model.Show{}
	}
	s.Shows = list
	s.LoadError = ""
	return nil
}

// SelectDate handles a date selection on the grid.  Only write-capable
// users open the add panel, and only for days inside the visible window;
// everything else is a silent no-op with no state change.  Reports whether
// the sidebar opened.
func (s *Surface) SelectDate(access auth.Access, date string) bool {
	if !access.CanWrite {
		return false
	}
	if !s.Window.Contains(date) {
		return false
	}
	s.Sidebar = Sidebar{
		Mode:  ModeAdd,
		Draft: Draft{Date: schedule.DayKey(date)},
	}
	return true
}

// ClickShow opens the sidebar in view mode over the clicked show, draft
// populated with its full field set including identity.  Reports false
// when no show with that id is on the surface.
func (s *Surface) ClickShow(id string) bool {
	for _, sh := range s.Shows {
		if sh.ID == id {
			s.Sidebar = Sidebar{Mode: ModeView, Draft: draftFromShow(sh)}
			return true
		}
	}
	return false
}

// BeginEdit moves the sidebar from view to edit, carrying the same draft
// forward.  Requires write access and an open view panel.
func (s *Surface) BeginEdit(access auth.Access) error {
	if !access.CanWrite {
		return ErrReadOnly
	}
	if s.Sidebar.Mode != ModeView {
		return ErrNoDraft
	}
	s.Sidebar.Mode = ModeEdit
	return nil
}

// Cancel closes the sidebar from any state, discarding the draft.
func (s *Surface) Cancel() {
	s.Sidebar.close()
}

// LoadOptions fetches the class-name and producer reference lists for the
// sidebar selectors.  The fetches race with other actions on the session,
// so the results are applied only if the sidebar still shows the same
// draft it showed when the fetch started; a late result for a panel that
// moved on is dropped.  Fetch failures leave the selector empty — the
// fields stay usable as free text.
func (s *Surface) LoadOptions(ctx context.Context, classes, producers ReferenceStore) {
	mode, id := s.Sidebar.Mode, s.Sidebar.Draft.ID
	apply := func(dst *[]model.Reference, list []model.Reference) {
		if s.Sidebar.Mode != mode || s.Sidebar.Draft.ID != id {
			return
		}
		if list == nil {
			list = []model.Reference{}
		}
		*dst = list
	}

	cls, err := classes.List(ctx)
	if err != nil {
		cls = nil
	}
	apply(&s.Sidebar.ClassOptions, cls)

	prods, err := producers.List(ctx)
	if err != nil {
		prods = nil
	}
	apply(&s.Sidebar.ProducerOptions, prods)
}

// Submit resolves the sidebar's pending draft against the remote store.
//
// In add mode the draft is validated and re-checked for a slot conflict —
// the list may have changed since the selector was rendered — before the
// create goes out; on success any stale local record already holding the
// submitted day+slot pair is pruned and the server's copy appended, then
// the sidebar closes.  In edit mode the full record is written and the
// show list is reloaded wholesale from the remote source, so the surface
// reflects the server's version rather than a local patch.
//
// The mode that was submitted and the resulting record (the server's
// copy, carrying its assigned id) are returned so callers can report what
// happened.  On any error the surface is unchanged and the sidebar stays
// where it was.
func (s *Surface) Submit(ctx context.Context, shows ShowStore, access auth.Access, d Draft) (Mode, model.Show, error) {
	mode := s.Sidebar.Mode
	if mode != ModeAdd && mode != ModeEdit {
		return mode, model.Show{}, ErrNoDraft
	}
	if !access.CanWrite {
		return mode, model.Show{}, ErrReadOnly
	}
	// The submitted form may omit what it did not change; identity and
	// date fall back to the open draft.
	if d.ID == "" {
		d.ID = s.Sidebar.Draft.ID
	}
	if d.Date == "" {
		d.Date = s.Sidebar.Draft.Date
	}
	if err := d.validate(); err != nil {
		return mode, model.Show{}, err
	}

	var result model.Show
	switch mode {
	case ModeAdd:
		if schedule.HasConflict(s.Shows, d.Date, d.Slot, "") {
			return mode, model.Show{}, ErrSlotTaken
		}
		saved, err := shows.Create(ctx, d.show())
		if err != nil {
			return mode, model.Show{}, err
		}
		// Optimistic splice: drop any stale local record for the same
		// day+slot so the saved copy cannot render twice, then append.
		day := schedule.DayKey(d.Date)
		next := make([]model.Show, 0, len(s.Shows)+1)
		for _, sh := range s.Shows {
			if schedule.DayKey(sh.Date) == day && sh.Slot == d.Slot {
				continue
			}
			next = append(next, sh)
		}
		s.Shows = append(next, saved)
		result = saved

	case ModeEdit:
		updated, err := shows.Update(ctx, d.ID, d.show())
		if err != nil {
			return mode, model.Show{}, err
		}
		if updated.ID == "" {
			updated.ID = d.ID
		}
		result = updated
		// Reload wholesale so concurrent edits by others are picked up.
		// The update itself succeeded, so the sidebar closes even if the
		// refetch fails; the banner reports the stale list.
		_ = s.Load(ctx, shows)
	}

	s.Sidebar.close()
	return mode, result, nil
}

// Delete removes the viewed show from the remote store, filters it out of
// the local list by identity, and closes the sidebar.  Only available
// from view mode with write access.  A draft without an identity (never
// saved) is a silent no-op, mirroring the confirm-then-nothing path in
// the browser.
func (s *Surface) Delete(ctx context.Context, shows ShowStore, access auth.Access) (model.Show, error) {
	if s.Sidebar.Mode != ModeView {
		return model.Show{}, ErrNoDraft
	}
	if !access.CanWrite {
		return model.Show{}, ErrReadOnly
	}
	id := s.Sidebar.Draft.ID
	if id == "" {
		return model.Show{}, nil
	}
	if err := shows.Delete(ctx, id); err != nil {
		return model.Show{}, err
	}
	removed := s.Sidebar.Draft.show()
	removed.ID = id
	next := make([]model.Show, 0, len(s.Shows))
	for _, sh := range s.Shows {
		if sh.ID != id {
			next = append(next, sh)
		}
	}
	s.Shows = next
	s.Sidebar.close()
	return removed, nil
}
