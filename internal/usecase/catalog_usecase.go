package usecase

import (
	"context"
	"time"

	"photocard/internal/domain/entity"
)

// AddIdolInput describes a new idol.
type AddIdolInput struct {
	Name     string       `json:"name" validate:"required,max=100"`
	Birthday time.Time    `json:"birthday"`
	Image    entity.Image `json:"image"`
}

// AddArtistInput describes a new artist and its member idols.
type AddArtistInput struct {
	Name      string       `json:"name" validate:"required,max=100"`
	Image     entity.Image `json:"image"`
	MemberIDs []string     `json:"memberIds"`
}

// AddAlbumInput describes a new album. ArtistID is optional.
type AddAlbumInput struct {
	Name     string       `json:"name" validate:"required,max=200"`
	ArtistID string       `json:"artistId"`
	Image    entity.Image `json:"image"`
}

// AddPhotocardInput describes a new photocard.
type AddPhotocardInput struct {
	IdolID   string       `json:"idolId" validate:"required"`
	ArtistID string       `json:"artistId" validate:"required"`
	AlbumID  string       `json:"albumId" validate:"required"`
	Image    entity.Image `json:"image" validate:"required"`
}

// AddListingInput describes a card put up for sale by the current user.
type AddListingInput struct {
	PhotocardID string         `json:"photocardId" validate:"required"`
	Price       float64        `json:"price" validate:"gte=0"`
	Description string         `json:"description" validate:"max=2000"`
	Images      []entity.Image `json:"images"`
}

// CatalogUsecase defines the writes of the catalogue and of the current
// user's lists. Writes go to the remote store; the replica picks them up
// through the change feed. Add operations return the new object resolved
// against the local replica.
type CatalogUsecase interface {
	AddIdol(ctx context.Context, input *AddIdolInput) (*entity.Idol, error)
	AddArtist(ctx context.Context, input *AddArtistInput) (*entity.Artist, error)
	AddAlbum(ctx context.Context, input *AddAlbumInput) (*entity.Album, error)
	AddPhotocard(ctx context.Context, input *AddPhotocardInput) (*entity.Photocard, error)
	AddListing(ctx context.Context, input *AddListingInput) (*entity.Listing, error)

	// MarkListingSold records the current user as the buyer.
	MarkListingSold(ctx context.Context, listingID string) (*entity.Listing, error)

	// DeleteIdol removes the idol from every artist and deletes its photocards.
	DeleteIdol(ctx context.Context, idolID string) error

	AddToCollection(ctx context.Context, photocardID string) error
	// RemoveFromCollection also drops the card from the favourites.
	RemoveFromCollection(ctx context.Context, photocardID string) error
	// AddFavourite also adds the card to the collection.
	AddFavourite(ctx context.Context, photocardID string) error
	RemoveFavourite(ctx context.Context, photocardID string) error
	AddToWishlist(ctx context.Context, photocardID string) error
	RemoveFromWishlist(ctx context.Context, photocardID string) error
}
