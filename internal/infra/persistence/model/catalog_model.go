package model

import (
	"time"

	"cloud.google.com/go/firestore"
)

// IdolDocument is the Firestore shape of a document in 'idols'.
type IdolDocument struct {
	Name      string    `firestore:"name"`
	Birthday  time.Time `firestore:"birthday,omitempty"`
	ImageName string    `firestore:"imageName"`
	ImageURL  string    `firestore:"imageUrl"`
}

// ArtistDocument is the Firestore shape of a document in 'artists'.
type ArtistDocument struct {
	Name      string                   `firestore:"name"`
	ImageName string                   `firestore:"imageName"`
	ImageURL  string                   `firestore:"imageUrl"`
	Members   []*firestore.DocumentRef `firestore:"members"`
	Albums    []*firestore.DocumentRef `firestore:"albums"`
}

// AlbumDocument is the Firestore shape of a document in 'albums'.
type AlbumDocument struct {
	Name      string                 `firestore:"name"`
	Artist    *firestore.DocumentRef `firestore:"artist"`
	ImageName string                 `firestore:"imageName"`
	ImageURL  string                 `firestore:"imageUrl"`
}

// PhotocardDocument is the Firestore shape of a document in 'photocards'.
type PhotocardDocument struct {
	Idol      *firestore.DocumentRef `firestore:"idol"`
	Artist    *firestore.DocumentRef `firestore:"artist"`
	Album     *firestore.DocumentRef `firestore:"album"`
	ImageName string                 `firestore:"imageName"`
	ImageURL  string                 `firestore:"imageUrl"`
}

// ListingImage is one picture of a listing.
type ListingImage struct {
	Name string `firestore:"name"`
	URL  string `firestore:"url"`
}

// ListingDocument is the Firestore shape of a document in 'listings'.
type ListingDocument struct {
	Photocard   *firestore.DocumentRef `firestore:"photocard"`
	Price       float64                `firestore:"price"`
	Seller      *firestore.DocumentRef `firestore:"seller"`
	ListDate    time.Time              `firestore:"listDate"`
	Description string                 `firestore:"description"`
	Images      []ListingImage         `firestore:"images"`
	Sold        bool                   `firestore:"sold"`
	Buyer       *firestore.DocumentRef `firestore:"buyer,omitempty"`
	SoldDate    time.Time              `firestore:"soldDate,omitempty"`
}

// UserDocument is the Firestore shape of a document in 'users'.
type UserDocument struct {
	Name       string                   `firestore:"name"`
	Email      string                   `firestore:"email"`
	Anonymous  bool                     `firestore:"anonymous"`
	ImageName  string                   `firestore:"imageName"`
	ImageURL   string                   `firestore:"imageUrl"`
	All        []*firestore.DocumentRef `firestore:"all"`
	Favourites []*firestore.DocumentRef `firestore:"favourites"`
	Wishlist   []*firestore.DocumentRef `firestore:"wishlist"`
}
