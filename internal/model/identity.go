package model

// Role names recognised by the booking service.  The role arrives as a
// profile attribute on the identity provider's token and is advisory:
// it gates the UI surface, not the remote store.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// Identity is the authenticated caller as presented by the external
// identity provider.  Subject is the provider's stable user id.  Role is
// the raw, untrusted role attribute; use auth.Resolve to turn it into a
// capability set.
type Identity struct {
	Subject string
	Role    string
}
