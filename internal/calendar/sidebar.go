// Package calendar owns the scheduling UI state: the two-week calendar
// surface with its authoritative in-memory show list, and the detail
// sidebar's mode machine (closed/add/view/edit).  All remote access goes
// through the small store interfaces declared in surface.go so the state
// machine is exercised in tests with fakes.
package calendar

import (
	"errors"
	"fmt"

	"github.com/mzali/radio-booking/internal/model"
)

// Mode names the sidebar's current state.  The sidebar is a single-draft
// panel: closed means nothing is being composed or inspected.
type Mode string

const (
	ModeClosed Mode = "closed"
	ModeAdd    Mode = "add"
	ModeView   Mode = "view"
	ModeEdit   Mode = "edit"
)

// Sentinel errors surfaced by the state machine.  Handlers translate them
// into HTTP responses; none of them changes surface state.
var (
	// ErrReadOnly rejects a mutation attempted without write access.
	ErrReadOnly = errors.New("write access required")
	// ErrNoDraft rejects a submit/delete when the sidebar is not in a
	// state that allows it.
	ErrNoDraft = errors.New("no draft in progress")
	// ErrValidation rejects a draft with a missing required field.
	// Wrapped values carry the field-specific message.
	ErrValidation = errors.New("validation failed")
	// ErrSlotTaken rejects a new booking whose day+slot pair is already
	// occupied.  The message mirrors the alert users see.
	ErrSlotTaken = errors.New("there is already an event for this time slot on this day")
)

// Draft is the sidebar's transient working copy of a show.  It mirrors the
// Show fields plus the identity carried forward between view and edit, and
// is discarded on cancel or successful submit.  A draft is never persisted
// on its own.
type Draft struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
	Class    string `json:"class"`
	Producer string `json:"producer"`
	Topic    string `json:"topic"`
}

// draftFromShow copies a show's full field set, identity included, into a
// draft for viewing or editing.
func draftFromShow(s model.Show) Draft {
	return Draft{
		ID:       s.ID,
		Title:    s.Title,
		Date:     s.Date,
		Slot:     s.Slot,
		Class:    s.Class,
		Producer: s.Producer,
		Topic:    s.Topic,
	}
}

// show converts the draft back into the record submitted to the remote
// store.  The ID travels in the URL for updates and is absent on create,
// so it is not copied here.
func (d Draft) show() model.Show {
	return model.Show{
		Title:    d.Title,
		Date:     d.Date,
		Slot:     d.Slot,
		Class:    d.Class,
		Producer: d.Producer,
		Topic:    d.Topic,
	}
}

// validate checks the draft's required fields before any network call.
func (d Draft) validate() error {
	if d.Title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if d.Slot == "" {
		return fmt.Errorf("%w: time slot is required", ErrValidation)
	}
	if d.Date == "" {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return nil
}

// Sidebar is the detail panel's state: the current mode, the draft under
// composition or inspection, and the reference-data option lists fetched
// when the panel opens.
type Sidebar struct {
	Mode            Mode              `json:"mode"`
	Draft           Draft             `json:"draft"`
	ClassOptions    []model.Reference `json:"class_options,omitempty"`
	ProducerOptions []model.Reference `json:"producer_options,omitempty"`
}

// close resets the sidebar to its terminal state, discarding the draft and
// the option lists.
func (sb *Sidebar) close() {
	*sb = Sidebar{Mode: ModeClosed}
}
