package entity

// Photocard is a collectible card picturing one idol from one artist's
// album. A reference that could not be resolved leaves its field nil.
type Photocard struct {
	ID        string
	IdolRef   Ref
	ArtistRef Ref
	AlbumRef  Ref
	Idol      *Idol
	Artist    *Artist
	Album     *Album
	Image     Image
}

func (p *Photocard) EntityID() string             { return p.ID }
func (p *Photocard) EntityCollection() Collection { return CollectionPhotocards }

// Ref returns a reference to this photocard.
func (p *Photocard) Ref() Ref { return NewRef(CollectionPhotocards, p.ID) }

// FullyLinked reports whether every reference the card carries resolved.
func (p *Photocard) FullyLinked() bool {
	return (p.IdolRef.IsZero() || p.Idol != nil) &&
		(p.ArtistRef.IsZero() || p.Artist != nil) &&
		(p.AlbumRef.IsZero() || p.Album != nil)
}
