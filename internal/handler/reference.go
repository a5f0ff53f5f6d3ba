package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mzali/radio-booking/internal/model"
)

// ReferenceCRUD is the full remote contract of a reference-data
// collection.  *repository.Collection[model.Reference] satisfies it.
type ReferenceCRUD interface {
	List(ctx context.Context) ([]model.Reference, error)
	Create(ctx context.Context, rec model.Reference) (model.Reference, error)
	Update(ctx context.Context, id string, rec model.Reference) (model.Reference, error)
	Delete(ctx context.Context, id string) error
}

// ReferenceHandler is the manager for one reference list (class names or
// producers).  It is a thin pass-through to the remote collection: reads
// degrade to an error payload the frontend shows as an inline banner,
// mutations fail loudly and change nothing locally.
type ReferenceHandler struct {
	Store ReferenceCRUD
	Label string // "class name" or "producer", used in messages
}

// List returns every record in the collection.
func (h *ReferenceHandler) List(c echo.Context) error {
	list, err := h.Store.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	if list == nil {
		list = []model.Reference{}
	}
	return c.JSON(http.StatusOK, list)
}

// Create stores a new record.  The name is required; nothing else is
// validated — duplicates are allowed, as they always were.
func (h *ReferenceHandler) Create(c echo.Context) error {
	var rec model.Reference
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	rec.Name = strings.TrimSpace(rec.Name)
	if rec.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": h.Label + " name is required"})
	}
	rec.ID = ""
	created, err := h.Store.Create(c.Request().Context(), rec)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update replaces the record with the given id.
func (h *ReferenceHandler) Update(c echo.Context) error {
	var rec model.Reference
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	rec.Name = strings.TrimSpace(rec.Name)
	if rec.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": h.Label + " name is required"})
	}
	rec.ID = ""
	updated, err := h.Store.Update(c.Request().Context(), c.Param("id"), rec)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes the record with the given id.  Shows referencing the
// deleted name keep it; references are by value, there is no cascade.
func (h *ReferenceHandler) Delete(c echo.Context) error {
	if err := h.Store.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
