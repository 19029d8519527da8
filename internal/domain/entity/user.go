package entity

// User is an account of the app, anonymous or authenticated. Its three
// photocard lists are independent: Favourites is by convention a subset of
// All and Wishlist is by convention disjoint from All. Nothing here
// enforces those conventions; the catalogue writes keep them.
type User struct {
	ID            string
	Name          string // Display name.
	Email         string // Empty for anonymous accounts.
	Anonymous     bool
	Image         Image
	AllRefs       []Ref // Owned photocards.
	FavouriteRefs []Ref
	WishlistRefs  []Ref
	All           []*Photocard // Resolved AllRefs, unresolved entries dropped.
	Favourites    []*Photocard
	Wishlist      []*Photocard
}

func (u *User) EntityID() string             { return u.ID }
func (u *User) EntityCollection() Collection { return CollectionUsers }

// Ref returns a reference to this user.
func (u *User) Ref() Ref { return NewRef(CollectionUsers, u.ID) }

// Owns reports whether photocardID is in the user's collection.
func (u *User) Owns(photocardID string) bool {
	return containsID(u.AllRefs, photocardID)
}

// HasFavourite reports whether photocardID is one of the user's favourites.
func (u *User) HasFavourite(photocardID string) bool {
	return containsID(u.FavouriteRefs, photocardID)
}

// Wishes reports whether photocardID is on the user's wishlist.
func (u *User) Wishes(photocardID string) bool {
	return containsID(u.WishlistRefs, photocardID)
}

func containsID(refs []Ref, id string) bool {
	for _, ref := range refs {
		if ref.ID == id {
			return true
		}
	}

	return false
}
