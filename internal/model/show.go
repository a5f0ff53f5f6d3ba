package model

// Show represents a single radio booking occupying one named time slot on
// one calendar day.  Shows are stored by the station's remote collections
// API; the ID is assigned by the server on create and is the record's
// stable identity.  Date carries the calendar day only, either as
// "2006-01-02" or as a full RFC 3339 stamp whose time-of-day part is
// ignored everywhere in this service.
//
// Fields:
//  ID       – server-assigned identifier.
//  Title    – name of the show (free text).
//  Date     – calendar day the show airs on.
//  Slot     – named time slot ("Daily Mile", "Live at Lunch", "After Lunch").
//  Class    – class name the show belongs to, referenced by value.
//  Producer – producer responsible for the show, referenced by value.
//  Topic    – free-text description of the episode.
type Show struct {
	ID       string `json:"id,omitempty"` // omitted on create; the server assigns it
	Title    string `json:"title"`
	Date     string `json:"date"`
	Slot     string `json:"slot"`
	Class    string `json:"class"`
	Producer string `json:"producer"`
	Topic    string `json:"topic"`
}
