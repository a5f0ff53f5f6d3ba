// Package repository contains the data access layer of the booking app.
// Unlike a conventional service there is no local database: every record
// lives in the station's remote collections API, so the repositories here
// are typed HTTP clients.  Each call acquires a fresh bearer credential
// from the auth token source immediately before the request goes out;
// credentials are short-lived and never cached across calls.
package repository

import "fmt"

// RemoteError reports a remote collection operation that came back with a
// non-success HTTP status.  It carries the operation and collection names
// so handlers can surface a precise message, and the status so they can
// choose a response code.  Local state must be left untouched when one of
// these is returned.
type RemoteError struct {
	Collection string // e.g. "shows", "class names"
	Op         string // "list", "create", "update" or "delete"
	Status     int    // HTTP status returned by the remote API
}

// Error implements the error interface.
func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s failed: unexpected status %d", e.Op, e.Collection, e.Status)
}
