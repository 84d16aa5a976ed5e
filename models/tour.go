package models

import "fmt"

// Tour represents a bookable travel product. Instances are built by the
// tour repository's normalization layer, which maps the inconsistent
// legacy document layouts onto this canonical shape.
type Tour struct {
	ID            string  `bson:"id" json:"id"`
	Title         string  `bson:"title" json:"title"`
	Description   string  `bson:"description" json:"description"`
	ImageURL      string  `bson:"tourImageUrl" json:"tourImageUrl"`
	Status        string  `bson:"status" json:"status"`
	Rating        float64 `bson:"rating" json:"rating"`
	Category      string  `bson:"category" json:"category"`
	ProviderPhone string  `bson:"providerPhone" json:"providerPhone"`
	PickupLoc     string  `bson:"pickupLoc" json:"pickupLoc"`
	Address       string  `bson:"address" json:"address"`
	Location      string  `bson:"location" json:"location"`
	Duration      string  `bson:"duration,omitempty" json:"duration,omitempty"`

	// Price is the numeric price. It is zero when the document carried
	// no parseable price, in which case RawPrice holds whatever string
	// the document had.
	Price    float64 `bson:"price" json:"price"`
	RawPrice string  `bson:"rawPrice,omitempty" json:"rawPrice,omitempty"`

	// ReviewCount is derived from the reviews collection, best effort.
	ReviewCount int `bson:"-" json:"reviewCount"`
}

// DisplayLocation returns the location, falling back to the address.
func (t *Tour) DisplayLocation() string {
	if t.Location != "" {
		return t.Location
	}
	return t.Address
}

// DisplayPrice returns a human-readable price string.
func (t *Tour) DisplayPrice() string {
	if t.Price > 0 {
		return fmt.Sprintf("%.0f VND", t.Price)
	}
	if t.RawPrice != "" {
		return t.RawPrice
	}
	return "Contact for price"
}
