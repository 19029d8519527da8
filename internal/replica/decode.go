package replica

import (
	"photocard/internal/domain/entity"
	"photocard/internal/domain/repository"
)

// Record field names shared by the remote documents.
const (
	fieldName        = "name"
	fieldBirthday    = "birthday"
	fieldMembers     = "members"
	fieldAlbums      = "albums"
	fieldArtist      = "artist"
	fieldIdol        = "idol"
	fieldAlbum       = "album"
	fieldPhotocard   = "photocard"
	fieldPrice       = "price"
	fieldSeller      = "seller"
	fieldListDate    = "listDate"
	fieldDescription = "description"
	fieldImages      = "images"
	fieldSold        = "sold"
	fieldBuyer       = "buyer"
	fieldSoldDate    = "soldDate"
	fieldEmail       = "email"
	fieldAnonymous   = "anonymous"
	fieldAll         = "all"
	fieldFavourites  = "favourites"
	fieldWishlist    = "wishlist"
)

// Decode builds the unresolved entity of collection c from a record.
// Missing or mistyped fields decode to their zero value.
func Decode(c entity.Collection, id string, rec repository.Record) (entity.Entity, bool) {
	switch c {
	case entity.CollectionIdols:
		return &entity.Idol{
			ID:       id,
			Name:     rec.String(fieldName),
			Birthday: rec.Time(fieldBirthday),
			Image:    rec.Image(),
		}, true
	case entity.CollectionArtists:
		return &entity.Artist{
			ID:         id,
			Name:       rec.String(fieldName),
			Image:      rec.Image(),
			MemberRefs: rec.Refs(fieldMembers),
			AlbumRefs:  rec.Refs(fieldAlbums),
		}, true
	case entity.CollectionAlbums:
		return &entity.Album{
			ID:        id,
			Name:      rec.String(fieldName),
			ArtistRef: rec.Ref(fieldArtist),
			Image:     rec.Image(),
		}, true
	case entity.CollectionPhotocards:
		return &entity.Photocard{
			ID:        id,
			IdolRef:   rec.Ref(fieldIdol),
			ArtistRef: rec.Ref(fieldArtist),
			AlbumRef:  rec.Ref(fieldAlbum),
			Image:     rec.Image(),
		}, true
	case entity.CollectionListings:
		return &entity.Listing{
			ID:           id,
			PhotocardRef: rec.Ref(fieldPhotocard),
			Price:        rec.Float(fieldPrice),
			SellerRef:    rec.Ref(fieldSeller),
			ListDate:     rec.Time(fieldListDate),
			Description:  rec.String(fieldDescription),
			Images:       rec.Images(fieldImages),
			Sold:         rec.Bool(fieldSold),
			BuyerRef:     rec.Ref(fieldBuyer),
			SoldDate:     rec.Time(fieldSoldDate),
		}, true
	case entity.CollectionUsers:
		return &entity.User{
			ID:            id,
			Name:          rec.String(fieldName),
			Email:         rec.String(fieldEmail),
			Anonymous:     rec.Bool(fieldAnonymous),
			Image:         rec.Image(),
			AllRefs:       rec.Refs(fieldAll),
			FavouriteRefs: rec.Refs(fieldFavourites),
			WishlistRefs:  rec.Refs(fieldWishlist),
		}, true
	default:
		return nil, false
	}
}
