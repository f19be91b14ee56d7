// Package ownership decides who may mutate a post or comment.
//
// The guard is applied as a predicate folded into the store's conditional
// update/delete, so a failed check looks exactly like a missing row.
package ownership

import "Postboard/internal/auth"

// Record is anything with a single owning user
type Record interface {
	OwnerID() string
}

// Filter is the owner predicate handed to repositories for conditional mutations
type Filter struct {
	UserID string
}

// For builds the owner filter for an identity
func For(identity auth.Identity) Filter {
	return Filter{UserID: identity.UserID}
}

// Permits reports whether the filter matches the record's owner.
// An empty filter matches nothing.
func (f Filter) Permits(rec Record) bool {
	return Authorize(auth.Identity{UserID: f.UserID}, rec)
}

// Authorize reports whether identity may update or delete rec.
// There is no admin override.
func Authorize(identity auth.Identity, rec Record) bool {
	if identity.UserID == "" || rec == nil {
		return false
	}
	return rec.OwnerID() == identity.UserID
}
