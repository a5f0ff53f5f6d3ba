package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/mzali/radio-booking/internal/model"
)

// Collection is a typed client for one remote collection endpoint.  The
// remote API exposes the same REST shape for every collection (GET the
// list, POST a new record, PUT/DELETE by id), so a single generic
// implementation is instantiated once per collection.
type Collection[T any] struct {
	client *Client
	name   string // collection label used in error values
	path   string // endpoint path, e.g. "/events"
}

// List fetches every record in the collection.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := c.client.do(ctx, c.name, "list", http.MethodGet, c.path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create stores a new record and returns the server's copy, which carries
// the assigned id.
func (c *Collection[T]) Create(ctx context.Context, rec T) (T, error) {
	var out T
	if err := c.client.do(ctx, c.name, "create", http.MethodPost, c.path, rec, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Update replaces the record with the given id and returns the server's
// updated copy.
func (c *Collection[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var out T
	if err := c.client.do(ctx, c.name, "update", http.MethodPut, c.path+"/"+url.PathEscape(id), rec, &out); err != nil {
		return out, err
	}
	return out, nil
}

// Delete removes the record with the given id.  No response body is
// expected.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.client.do(ctx, c.name, "delete", http.MethodDelete, c.path+"/"+url.PathEscape(id), nil, nil)
}

// NewShows returns the client for the show bookings collection.
func NewShows(c *Client) *Collection[model.Show] {
	return &Collection[model.Show]{client: c, name: "shows", path: "/events"}
}

// NewClassNames returns the client for the class-name reference list.
func NewClassNames(c *Client) *Collection[model.Reference] {
	return &Collection[model.Reference]{client: c, name: "class names", path: "/class"}
}

// NewProducers returns the client for the producer reference list.
func NewProducers(c *Client) *Collection[model.Reference] {
	return &Collection[model.Reference]{client: c, name: "producers", path: "/producers"}
}
