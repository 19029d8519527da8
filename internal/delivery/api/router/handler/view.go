package handler

import (
	"time"

	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"
	"photocard/internal/domain/service"
	"photocard/internal/replica"
	"photocard/internal/usecase"
)

// The resolved graph is cyclic (artist -> album -> artist), so responses
// embed references one level deep as NamedRef.

// NamedRef is a resolved reference. Name is empty when the referent is
// not known locally.
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type IdolView struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Birthday *time.Time   `json:"birthday,omitempty"`
	Image    entity.Image `json:"image"`
}

type ArtistView struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Image   entity.Image `json:"image"`
	Members []NamedRef   `json:"members"`
	Albums  []NamedRef   `json:"albums"`
}

type AlbumView struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Image  entity.Image `json:"image"`
	Artist *NamedRef    `json:"artist,omitempty"`
}

type PhotocardView struct {
	ID     string       `json:"id"`
	Image  entity.Image `json:"image"`
	Idol   *NamedRef    `json:"idol,omitempty"`
	Artist *NamedRef    `json:"artist,omitempty"`
	Album  *NamedRef    `json:"album,omitempty"`
}

type ListingView struct {
	ID          string         `json:"id"`
	Photocard   *PhotocardView `json:"photocard,omitempty"`
	PhotocardID string         `json:"photocardId"`
	Price       float64        `json:"price"`
	Seller      *NamedRef      `json:"seller,omitempty"`
	ListDate    time.Time      `json:"listDate"`
	Description string         `json:"description,omitempty"`
	Images      []entity.Image `json:"images"`
	Sold        bool           `json:"sold"`
	Buyer       *NamedRef      `json:"buyer,omitempty"`
	SoldDate    *time.Time     `json:"soldDate,omitempty"`
}

type UserView struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email,omitempty"`
	Anonymous  bool            `json:"anonymous"`
	Image      entity.Image    `json:"image"`
	All        []PhotocardView `json:"all"`
	Favourites []PhotocardView `json:"favourites"`
	Wishlist   []PhotocardView `json:"wishlist"`
}

type SessionView struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email,omitempty"`
	Anonymous bool      `json:"anonymous"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *UserView `json:"user,omitempty"`
}

type SearchView struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type FeedView struct {
	Collection string    `json:"collection"`
	State      string    `json:"state"`
	Attempt    int       `json:"attempt"`
	Error      string    `json:"error,omitempty"`
	Since      time.Time `json:"since"`
}

// named picks the local name of ref when resolved is non-nil.
func named[T any](ref entity.Ref, resolved *T, name func(*T) string) *NamedRef {
	if ref.IsZero() {
		return nil
	}
	n := &NamedRef{ID: ref.ID}
	if resolved != nil {
		n.Name = name(resolved)
	}

	return n
}

func idolName(i *entity.Idol) string     { return i.Name }
func artistName(a *entity.Artist) string { return a.Name }
func albumName(a *entity.Album) string   { return a.Name }
func userName(u *entity.User) string     { return u.Name }

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}

	return &t
}

func mapAll[S, V any](in []S, fn func(S) V) []V {
	out := make([]V, 0, len(in))
	for _, s := range in {
		out = append(out, fn(s))
	}

	return out
}

func NewIdolView(i *entity.Idol) IdolView {
	return IdolView{ID: i.ID, Name: i.Name, Birthday: optionalTime(i.Birthday), Image: i.Image}
}

func NewArtistView(a *entity.Artist) ArtistView {
	members := make([]NamedRef, 0, len(a.MemberRefs))
	for _, ref := range a.MemberRefs {
		members = append(members, NamedRef{ID: ref.ID})
	}
	for _, m := range a.Members {
		for i := range members {
			if members[i].ID == m.ID {
				members[i].Name = m.Name
			}
		}
	}
	albums := make([]NamedRef, 0, len(a.AlbumRefs))
	for _, ref := range a.AlbumRefs {
		albums = append(albums, NamedRef{ID: ref.ID})
	}
	for _, al := range a.Albums {
		for i := range albums {
			if albums[i].ID == al.ID {
				albums[i].Name = al.Name
			}
		}
	}

	return ArtistView{ID: a.ID, Name: a.Name, Image: a.Image, Members: members, Albums: albums}
}

func NewAlbumView(a *entity.Album) AlbumView {
	return AlbumView{
		ID:     a.ID,
		Name:   a.Name,
		Image:  a.Image,
		Artist: named(a.ArtistRef, a.Artist, artistName),
	}
}

func NewPhotocardView(p *entity.Photocard) PhotocardView {
	return PhotocardView{
		ID:     p.ID,
		Image:  p.Image,
		Idol:   named(p.IdolRef, p.Idol, idolName),
		Artist: named(p.ArtistRef, p.Artist, artistName),
		Album:  named(p.AlbumRef, p.Album, albumName),
	}
}

func NewListingView(l *entity.Listing) ListingView {
	v := ListingView{
		ID:          l.ID,
		PhotocardID: l.PhotocardRef.ID,
		Price:       l.Price,
		Seller:      named(l.SellerRef, l.Seller, userName),
		ListDate:    l.ListDate,
		Description: l.Description,
		Images:      l.Images,
		Sold:        l.Sold,
		Buyer:       named(l.BuyerRef, l.Buyer, userName),
		SoldDate:    optionalTime(l.SoldDate),
	}
	if v.Images == nil {
		v.Images = []entity.Image{}
	}
	if l.Photocard != nil {
		pv := NewPhotocardView(l.Photocard)
		v.Photocard = &pv
	}

	return v
}

func NewUserView(u *entity.User) *UserView {
	if u == nil {
		return nil
	}

	return &UserView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Anonymous:  u.Anonymous,
		Image:      u.Image,
		All:        mapAll(u.All, NewPhotocardView),
		Favourites: mapAll(u.Favourites, NewPhotocardView),
		Wishlist:   mapAll(u.Wishlist, NewPhotocardView),
	}
}

func NewSessionView(s *usecase.Session) SessionView {
	return sessionView(s.Identity, s.User)
}

func sessionView(id *service.Identity, u *entity.User) SessionView {
	return SessionView{
		UserID:    id.UserID,
		Email:     id.Email,
		Anonymous: id.Anonymous,
		ExpiresAt: id.ExpiresAt,
		User:      NewUserView(u),
	}
}

func NewSearchView(e repository.SearchEntry) SearchView {
	return SearchView(e)
}

func NewFeedView(s replica.FeedStatus) FeedView {
	v := FeedView{
		Collection: s.Collection.String(),
		State:      s.State.String(),
		Attempt:    s.Attempt,
		Since:      s.Since,
	}
	if s.Err != nil {
		v.Error = s.Err.Error()
	}

	return v
}

// EventView is the payload of one server-sent event.
type EventView struct {
	Kind string `json:"kind"`
	Data any    `json:"data"`
}

// NewEventView renders a replica event. The second result is false for
// events that have no wire form.
func NewEventView(e replica.Event) (EventView, bool) {
	switch ev := e.(type) {
	case replica.IdolsChanged:
		return EventView{Kind: ev.Kind().String(), Data: mapAll(ev.Idols, NewIdolView)}, true
	case replica.ArtistsChanged:
		return EventView{Kind: ev.Kind().String(), Data: mapAll(ev.Artists, NewArtistView)}, true
	case replica.AlbumsChanged:
		return EventView{Kind: ev.Kind().String(), Data: mapAll(ev.Albums, NewAlbumView)}, true
	case replica.PhotocardsChanged:
		return EventView{Kind: ev.Kind().String(), Data: mapAll(ev.Photocards, NewPhotocardView)}, true
	case replica.ListingsChanged:
		return EventView{Kind: ev.Kind().String(), Data: mapAll(ev.Listings, NewListingView)}, true
	case replica.UserChanged:
		return EventView{Kind: ev.Kind().String(), Data: NewUserView(ev.User)}, true
	case replica.FeedStatusChanged:
		return EventView{Kind: ev.Kind().String(), Data: mapAll(ev.Statuses, NewFeedView)}, true
	default:
		return EventView{}, false
	}
}
