package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mzali/radio-booking/internal/auth"
	"github.com/mzali/radio-booking/internal/calendar"
	"github.com/mzali/radio-booking/internal/middleware"
	"github.com/mzali/radio-booking/internal/model"
	"github.com/mzali/radio-booking/internal/publisher"
	"github.com/mzali/radio-booking/internal/queue"
	"github.com/mzali/radio-booking/internal/session"
)

// SessionHeader carries the calendar session id on every request after
// open.
const SessionHeader = "X-Calendar-Session"

// CalendarHandler drives one calendar surface per browser session.  All
// remote access goes through the injected stores; Events receives
// fire-and-forget change notifications; Now is injectable for tests.
type CalendarHandler struct {
	Sessions  session.Store
	Shows     calendar.ShowStore
	Classes   calendar.ReferenceStore
	Producers calendar.ReferenceStore
	Events    *publisher.Publisher
	Now       func() time.Time
}

func (h *CalendarHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func surfaceKey(sid string) string { return "calendar:" + sid }

// load fetches the caller's surface from the session store.
func (h *CalendarHandler) load(c echo.Context) (string, *calendar.Surface, error) {
	sid := c.Request().Header.Get(SessionHeader)
	if sid == "" {
		return "", nil, errNoSession
	}
	var surf calendar.Surface
	if err := h.Sessions.Get(c.Request().Context(), surfaceKey(sid), &surf); err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return "", nil, errNoSession
		}
		return "", nil, err
	}
	return sid, &surf, nil
}

// save writes the surface back to the session store.
func (h *CalendarHandler) save(c echo.Context, sid string, surf *calendar.Surface) error {
	return h.Sessions.Put(c.Request().Context(), surfaceKey(sid), surf)
}

type openResponse struct {
	SessionID string        `json:"session_id"`
	View      calendar.View `json:"view"`
}

// Open starts a calendar session: the two-week window is computed from
// the current date, the show list is loaded from the remote collection,
// and a fresh session id is minted.  A failed load still opens the
// session — the view carries the inline error banner and an empty list —
// but a missing credential aborts with 401.
func (h *CalendarHandler) Open(c echo.Context) error {
	access := middleware.AccessFrom(c)
	surf := calendar.NewSurface(h.now())
	if err := surf.Load(c.Request().Context(), h.Shows); err != nil {
		if errors.Is(err, auth.ErrAuthUnavailable) {
			return fail(c, err)
		}
	}
	sid := session.NewID()
	if err := h.save(c, sid, surf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store session"})
	}
	return c.JSON(http.StatusCreated, openResponse{SessionID: sid, View: surf.Render(access)})
}

// Get renders the current surface without changing it.
func (h *CalendarHandler) Get(c echo.Context) error {
	_, surf, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, surf.Render(middleware.AccessFrom(c)))
}

// Select handles a date selection on the grid.  For write-capable users
// it opens the sidebar in add mode and loads the selector options; for
// everyone else it is a silent no-op and the unchanged view comes back.
func (h *CalendarHandler) Select(c echo.Context) error {
	sid, surf, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	var body struct {
		Date string `json:"date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	access := middleware.AccessFrom(c)
	if surf.SelectDate(access, body.Date) {
		surf.LoadOptions(c.Request().Context(), h.Classes, h.Producers)
		if err := h.save(c, sid, surf); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store session"})
		}
	}
	return c.JSON(http.StatusOK, surf.Render(access))
}

// Click opens the sidebar in view mode over an existing show.
func (h *CalendarHandler) Click(c echo.Context) error {
	sid, surf, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	if !surf.ClickShow(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "show not found"})
	}
	surf.LoadOptions(c.Request().Context(), h.Classes, h.Producers)
	if err := h.save(c, sid, surf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store session"})
	}
	return c.JSON(http.StatusOK, surf.Render(middleware.AccessFrom(c)))
}

// Edit moves an open view panel into edit mode.
func (h *CalendarHandler) Edit(c echo.Context) error {
	sid, surf, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	access := middleware.AccessFrom(c)
	if err := surf.BeginEdit(access); err != nil {
		return fail(c, err)
	}
	if err := h.save(c, sid, surf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store session"})
	}
	return c.JSON(http.StatusOK, surf.Render(access))
}

// Cancel closes the sidebar and discards the draft.
func (h *CalendarHandler) Cancel(c echo.Context) error {
	sid, surf, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	surf.Cancel()
	if err := h.save(c, sid, surf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store session"})
	}
	return c.JSON(http.StatusOK, surf.Render(middleware.AccessFrom(c)))
}

// Submit resolves the open draft: create for add mode, update plus
// wholesale refetch for edit mode.  Failures leave both the sidebar and
// the show list exactly as they were.
func (h *CalendarHandler) Submit(c echo.Context) error {
	sid, surf, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	var d calendar.Draft
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	access := middleware.AccessFrom(c)
	mode, rec, err := surf.Submit(c.Request().Context(), h.Shows, access, d)
	if err != nil {
		return fail(c, err)
	}
	if err := h.save(c, sid, surf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store session"})
	}
	h.notify(c, modeAction(mode), rec)
	return c.JSON(http.StatusOK, surf.Render(access))
}

// Delete removes the viewed show.
func (h *CalendarHandler) Delete(c echo.Context) error {
	sid, surf, err := h.load(c)
	if err != nil {
		return fail(c, err)
	}
	access := middleware.AccessFrom(c)
	removed, err := surf.Delete(c.Request().Context(), h.Shows, access)
	if err != nil {
		return fail(c, err)
	}
	if err := h.save(c, sid, surf); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not store session"})
	}
	if removed.ID != "" {
		h.notify(c, queue.ActionDeleted, removed)
	}
	return c.JSON(http.StatusOK, surf.Render(access))
}

func modeAction(m calendar.Mode) string {
	if m == calendar.ModeEdit {
		return queue.ActionUpdated
	}
	return queue.ActionCreated
}

// notify publishes a schedule change event.  Errors are already logged by
// the publisher and deliberately ignored here.
func (h *CalendarHandler) notify(c echo.Context, action string, rec model.Show) {
	if h.Events == nil {
		return
	}
	_ = h.Events.ShowChanged(c.Request().Context(), queue.ShowChangedEvent{
		Action: action,
		ShowID: rec.ID,
		Title:  rec.Title,
		Date:   rec.Date,
		Slot:   rec.Slot,
		Actor:  middleware.IdentityFrom(c).Subject,
		At:     h.now().UTC(),
	})
}
