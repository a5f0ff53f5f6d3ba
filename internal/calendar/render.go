package calendar

import (
	"github.com/mzali/radio-booking/internal/auth"
	"github.com/mzali/radio-booking/internal/model"
	"github.com/mzali/radio-booking/internal/schedule"
)

// ShowView is a show decorated for the grid: the record plus its slot
// marker colour.
type ShowView struct {
	model.Show
	Color string `json:"color"`
}

// SlotOption is one entry of the sidebar's slot selector with its
// "(taken)" annotation.
type SlotOption struct {
	Label string `json:"label"`
	Taken bool   `json:"taken"`
}

// SidebarView is the sidebar as sent to the browser: state, draft,
// reference options and the annotated slot selector.
type SidebarView struct {
	Mode            Mode              `json:"mode"`
	Draft           Draft             `json:"draft"`
	ClassOptions    []model.Reference `json:"class_options"`
	ProducerOptions []model.Reference `json:"producer_options"`
	SlotOptions     []SlotOption      `json:"slot_options"`
}

// View is the full surface render returned by the calendar endpoints.
type View struct {
	Window    schedule.Window `json:"window"`
	Days      []string        `json:"days"`
	Shows     []ShowView      `json:"shows"`
	Sidebar   SidebarView     `json:"sidebar"`
	CanWrite  bool            `json:"can_write"`
	LoadError string          `json:"load_error,omitempty"`
}

// Render produces the view for the current caller.  Shows come out in the
// fixed same-day display order; the slot selector marks slots already
// taken on the draft's day, leaving the draft's own slot free when it
// carries an identity (editing).
func (s *Surface) Render(access auth.Access) View {
	ordered := schedule.SortShows(s.Shows)
	shows := make([]ShowView, 0, len(ordered))
	for _, sh := range ordered {
		shows = append(shows, ShowView{Show: sh, Color: schedule.SlotColor(sh.Slot)})
	}

	sb := SidebarView{
		Mode:            s.Sidebar.Mode,
		Draft:           s.Sidebar.Draft,
		ClassOptions:    s.Sidebar.ClassOptions,
		ProducerOptions: s.Sidebar.ProducerOptions,
	}
	if sb.ClassOptions == nil {
		sb.ClassOptions = []model.Reference{}
	}
	if sb.ProducerOptions == nil {
		sb.ProducerOptions = []model.Reference{}
	}
	if s.Sidebar.Mode != ModeClosed {
		taken := schedule.TakenSlots(s.Shows, s.Sidebar.Draft.Date, s.Sidebar.Draft.ID)
		for _, label := range schedule.Slots() {
			sb.SlotOptions = append(sb.SlotOptions, SlotOption{Label: label, Taken: taken[label]})
		}
	}

	return View{
		Window:    s.Window,
		Days:      s.Window.Days(),
		Shows:     shows,
		Sidebar:   sb,
		CanWrite:  access.CanWrite,
		LoadError: s.LoadError,
	}
}
