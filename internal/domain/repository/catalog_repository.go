// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"photocard/internal/domain/entity"
	"photocard/internal/errors"
)

// ErrDocumentNotFound is returned when a write targets a missing document.
var ErrDocumentNotFound = errors.New("document not found")

// UserList names one of the three photocard lists of a user.
type UserList string

const (
	ListAll        UserList = "all"
	ListFavourites UserList = "favourites"
	ListWishlist   UserList = "wishlist"
)

// CatalogRepository performs writes against the remote document store.
// Reads never go through it: the replica learns about every write from
// the change feed.
type CatalogRepository interface {
	// AddIdol creates the idol and sets its store-assigned ID.
	AddIdol(ctx context.Context, idol *entity.Idol) error

	// AddArtist creates the artist from its references and sets its ID.
	AddArtist(ctx context.Context, artist *entity.Artist) error

	// AddAlbum creates the album and, when it has an owner, appends it to
	// the owning artist's album list.
	AddAlbum(ctx context.Context, album *entity.Album) error

	// AddPhotocard creates the photocard and sets its ID.
	AddPhotocard(ctx context.Context, card *entity.Photocard) error

	// AddListing creates the listing and sets its ID.
	AddListing(ctx context.Context, listing *entity.Listing) error

	// MarkListingSold records the buyer and sale date.
	MarkListingSold(ctx context.Context, listing *entity.Listing) error

	// DeleteIdol removes the idol from every artist's member list, deletes
	// the photocards that picture it, then deletes the idol.
	DeleteIdol(ctx context.Context, idolID string) error

	// CreateUser writes the user document under the ID issued by auth.
	CreateUser(ctx context.Context, user *entity.User) error

	// AddToUserList appends photocardID to a user's list if absent.
	AddToUserList(ctx context.Context, userID string, list UserList, photocardID string) error

	// RemoveFromUserLists removes photocardID from each of the given lists
	// in a single write.
	RemoveFromUserLists(ctx context.Context, userID string, photocardID string, lists ...UserList) error
}
