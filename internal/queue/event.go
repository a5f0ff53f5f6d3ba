// Package queue defines the domain events published when the show
// schedule changes.  Downstream consumers (the playout system, digest
// mails) subscribe to these; the booking flow itself never depends on
// them being delivered.
package queue

import "time"

// Queue name for schedule change events.
const ShowChangedQueue = "schedule.changed"

// Actions carried by a ShowChangedEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ShowChangedEvent describes one mutation applied to the show schedule.
type ShowChangedEvent struct {
	Action string    `json:"action"`
	ShowID string    `json:"show_id"`
	Title  string    `json:"title"`
	Date   string    `json:"date"`
	Slot   string    `json:"slot"`
	Actor  string    `json:"actor"` // identity subject of the editor
	At     time.Time `json:"at"`
}
