package entity

import "time"

// Listing offers a photocard for sale on the marketplace.
type Listing struct {
	ID           string
	PhotocardRef Ref
	Photocard    *Photocard
	Price        float64
	SellerRef    Ref
	Seller       *User
	ListDate     time.Time
	Description  string
	Images       []Image // Ordered pictures of the physical card.

	// Set once the card is sold.
	Sold     bool
	BuyerRef Ref
	Buyer    *User
	SoldDate time.Time
}

func (l *Listing) EntityID() string             { return l.ID }
func (l *Listing) EntityCollection() Collection { return CollectionListings }

// Ref returns a reference to this listing.
func (l *Listing) Ref() Ref { return NewRef(CollectionListings, l.ID) }

// IsSold reports whether the listing has been sold.
func (l *Listing) IsSold() bool { return l.Sold }
