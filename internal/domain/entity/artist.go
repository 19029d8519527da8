package entity

// Artist is a group or solo act. Members and albums are held by
// reference; the resolved slices only contain the referents that were
// present when the artist was last resolved.
type Artist struct {
	ID         string
	Name       string
	Image      Image
	MemberRefs []Ref    // Ordered member idols as stored remotely.
	AlbumRefs  []Ref    // Ordered albums as stored remotely.
	Members    []*Idol  // Resolved MemberRefs, unresolved entries dropped.
	Albums     []*Album // Resolved AlbumRefs, unresolved entries dropped.
}

func (a *Artist) EntityID() string             { return a.ID }
func (a *Artist) EntityCollection() Collection { return CollectionArtists }

// Ref returns a reference to this artist.
func (a *Artist) Ref() Ref { return NewRef(CollectionArtists, a.ID) }

// HasMember reports whether idolID is listed as a member, resolved or not.
func (a *Artist) HasMember(idolID string) bool {
	for _, ref := range a.MemberRefs {
		if ref.ID == idolID {
			return true
		}
	}

	return false
}
