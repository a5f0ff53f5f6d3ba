package model

// Reference is a flat reference-data record.  Class names and producers
// share this shape: an id plus a free-text name with no uniqueness
// enforced.  Shows point at reference records by value (the name string),
// not by foreign key, so deleting a reference never cascades to existing
// shows.
type Reference struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
