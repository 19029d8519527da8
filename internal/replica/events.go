package replica

import (
	"strings"

	"photocard/internal/domain/entity"
	domainerrors "photocard/internal/domain/errors"
)

// Kind tags an Event.
type Kind uint8

const (
	KindIdol Kind = iota
	KindArtist
	KindAlbum
	KindPhotocard
	KindListing
	KindUser
	KindFeedStatus
	kindCount
)

var kindNames = [...]string{
	KindIdol:       "idol",
	KindArtist:     "artist",
	KindAlbum:      "album",
	KindPhotocard:  "photocard",
	KindListing:    "listing",
	KindUser:       "user",
	KindFeedStatus: "feed",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}

	return "unknown"
}

// Kinds returns every kind in broadcast order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindIdol; k < kindCount; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// KindOf maps a collection to the kind of its notifications. The users
// collection maps to KindUser, which only carries the current user.
func KindOf(c entity.Collection) (Kind, bool) {
	switch c {
	case entity.CollectionIdols:
		return KindIdol, true
	case entity.CollectionArtists:
		return KindArtist, true
	case entity.CollectionAlbums:
		return KindAlbum, true
	case entity.CollectionPhotocards:
		return KindPhotocard, true
	case entity.CollectionListings:
		return KindListing, true
	case entity.CollectionUsers:
		return KindUser, true
	default:
		return 0, false
	}
}

// Interest is a set of kinds a listener wants to hear about.
type Interest uint16

const (
	InterestIdol       Interest = 1 << KindIdol
	InterestArtist     Interest = 1 << KindArtist
	InterestAlbum      Interest = 1 << KindAlbum
	InterestPhotocard  Interest = 1 << KindPhotocard
	InterestListing    Interest = 1 << KindListing
	InterestUser       Interest = 1 << KindUser
	InterestFeedStatus Interest = 1 << KindFeedStatus
	InterestAll        Interest = 1<<kindCount - 1
)

// InterestIn returns the interest holding exactly kinds.
func InterestIn(kinds ...Kind) Interest {
	var i Interest
	for _, k := range kinds {
		i |= 1 << k
	}

	return i
}

// Has reports whether k is part of the interest.
func (i Interest) Has(k Kind) bool {
	return k < kindCount && i&(1<<k) != 0
}

// Kinds lists the kinds of the interest in broadcast order.
func (i Interest) Kinds() []Kind {
	var kinds []Kind
	for _, k := range Kinds() {
		if i.Has(k) {
			kinds = append(kinds, k)
		}
	}

	return kinds
}

func (i Interest) String() string {
	if i == InterestAll {
		return "all"
	}
	names := make([]string, 0, kindCount)
	for _, k := range i.Kinds() {
		names = append(names, k.String())
	}

	return strings.Join(names, ",")
}

// ParseInterest reads a comma separated list of kind names. "all" and the
// empty string select every kind.
func ParseInterest(s string) (Interest, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return InterestAll, nil
	}
	var i Interest
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "all" {
			return InterestAll, nil
		}
		found := false
		for k := KindIdol; k < kindCount; k++ {
			if kindNames[k] == name {
				i |= 1 << k
				found = true

				break
			}
		}
		if !found {
			return 0, domainerrors.ErrValidationFailed.WithDetails("unknown interest " + name)
		}
	}

	return i, nil
}

// Event is the tagged union of notifications. Slices carried by events
// are snapshots owned by the receiver.
type Event interface {
	Kind() Kind
}

type IdolsChanged struct {
	Idols []*entity.Idol
}

type ArtistsChanged struct {
	Artists []*entity.Artist
}

type AlbumsChanged struct {
	Albums []*entity.Album
}

type PhotocardsChanged struct {
	Photocards []*entity.Photocard
}

type ListingsChanged struct {
	Listings []*entity.Listing
}

// UserChanged carries the current user with its lists resolved. User is
// nil when the current user has no record.
type UserChanged struct {
	UserID string
	User   *entity.User
}

// FeedStatusChanged reports the state of every feed after Changed moved.
type FeedStatusChanged struct {
	Changed  entity.Collection
	Statuses []FeedStatus
}

func (IdolsChanged) Kind() Kind      { return KindIdol }
func (ArtistsChanged) Kind() Kind    { return KindArtist }
func (AlbumsChanged) Kind() Kind     { return KindAlbum }
func (PhotocardsChanged) Kind() Kind { return KindPhotocard }
func (ListingsChanged) Kind() Kind   { return KindListing }
func (UserChanged) Kind() Kind       { return KindUser }
func (FeedStatusChanged) Kind() Kind { return KindFeedStatus }

// Status returns the status of the feed that moved.
func (e FeedStatusChanged) Status() (FeedStatus, bool) {
	for _, s := range e.Statuses {
		if s.Collection == e.Changed {
			return s, true
		}
	}

	return FeedStatus{}, false
}
