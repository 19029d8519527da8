// Package entity contains the catalogue objects mirrored from the remote
// document store. Identities are opaque strings assigned by the store;
// every other attribute may change through the change feed.
package entity

// Collection names a remote collection of documents.
type Collection string

const (
	CollectionIdols      Collection = "idols"
	CollectionArtists    Collection = "artists"
	CollectionAlbums     Collection = "albums"
	CollectionPhotocards Collection = "photocards"
	CollectionListings   Collection = "listings"
	CollectionUsers      Collection = "users"
)

// Collections returns every watched collection in feed start order.
// Referenced collections come before the collections that point at them so
// that a cold start resolves as much as possible on the first pass.
func Collections() []Collection {
	return []Collection{
		CollectionIdols,
		CollectionAlbums,
		CollectionArtists,
		CollectionPhotocards,
		CollectionUsers,
		CollectionListings,
	}
}

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	switch c {
	case CollectionIdols, CollectionArtists, CollectionAlbums,
		CollectionPhotocards, CollectionListings, CollectionUsers:
		return true
	default:
		return false
	}
}

func (c Collection) String() string { return string(c) }

// Ref is a foreign key: the collection and id of another document.
// The zero Ref means "no reference".
type Ref struct {
	Collection Collection `json:"collection"`
	ID         string     `json:"id"`
}

// NewRef builds a reference into collection c.
func NewRef(c Collection, id string) Ref {
	return Ref{Collection: c, ID: id}
}

// IsZero reports whether r points nowhere.
func (r Ref) IsZero() bool {
	return r.ID == ""
}

func (r Ref) String() string {
	if r.IsZero() {
		return ""
	}

	return string(r.Collection) + "/" + r.ID
}

// Image pairs the logical file name used by the local cache with the
// locator of the object in remote storage.
type Image struct {
	Name    string `json:"name"`
	Locator string `json:"locator"`
}

// IsZero reports whether the image is unset.
func (i Image) IsZero() bool {
	return i.Name == "" && i.Locator == ""
}

// Entity is implemented by every catalogue object.
type Entity interface {
	EntityID() string
	EntityCollection() Collection
}
