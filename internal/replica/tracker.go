package replica

import "photocard/internal/domain/entity"

// CurrentUserTracker follows the one user the client acts as. It keeps
// its own resolved copy of that user's record; other users never raise
// notifications.
type CurrentUserTracker struct {
	users    *Collection[*entity.User]
	resolver *Resolver
	id       string
	user     *entity.User
}

func newCurrentUserTracker(users *Collection[*entity.User], resolver *Resolver) *CurrentUserTracker {
	return &CurrentUserTracker{users: users, resolver: resolver}
}

// ID returns the tracked user id, empty when nobody is signed in.
func (t *CurrentUserTracker) ID() string {
	return t.id
}

// User returns the latest resolved record of the tracked user.
func (t *CurrentUserTracker) User() *entity.User {
	return t.user
}

// Affects reports whether a change to the user id concerns the tracker.
func (t *CurrentUserTracker) Affects(id string) bool {
	return t.id != "" && t.id == id
}

// Track switches to id. Switching raises a notification carrying the new
// user if its record is already known, nil otherwise.
func (t *CurrentUserTracker) Track(id string) (UserChanged, bool) {
	if id == t.id {
		return UserChanged{}, false
	}
	t.id = id
	t.user = nil

	return t.Refresh(), true
}

// Refresh rebuilds the tracked user from the store and resolves its lists.
func (t *CurrentUserTracker) Refresh() UserChanged {
	t.user = nil
	if t.id != "" {
		if stored, ok := t.users.LookupByID(t.id); ok {
			u := *stored
			t.resolver.ResolveUserLists(&u)
			t.user = &u
		}
	}

	return UserChanged{UserID: t.id, User: t.user}
}
