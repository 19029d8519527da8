package entity

// Album is a release. The owning artist is optional.
type Album struct {
	ID        string
	Name      string
	ArtistRef Ref     // Zero when the album has no owning artist.
	Artist    *Artist // Resolved ArtistRef, nil when absent or not yet known.
	Image     Image
}

func (a *Album) EntityID() string             { return a.ID }
func (a *Album) EntityCollection() Collection { return CollectionAlbums }

// Ref returns a reference to this album.
func (a *Album) Ref() Ref { return NewRef(CollectionAlbums, a.ID) }
