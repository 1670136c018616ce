package marketplace

import (
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ModelAttribute is the variant attribute that carries the hardware summary.
const ModelAttribute = "Model"

// FeedEntry is one minified record of a named feed.
type FeedEntry struct {
	OfferID    uuid.UUID `json:"OfferId"`
	Categories []string  `json:"Categories"`
	IsSoldOut  bool      `json:"IsSoldOut"`
}

// HasCategory reports whether the entry carries the tag.
func (e FeedEntry) HasCategory(tag string) bool {
	return slices.Contains(e.Categories, tag)
}

// NamedFeed is the body of GET /feed/{name}.
type NamedFeed struct {
	Items []FeedEntry `json:"Items"`
}

// Photo is a listing image.
type Photo struct {
	URL string `json:"Url"`
}

// Attribute is a key/value pair attached to a variant.
type Attribute struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// Variant is one buyable unit of a listing.
type Variant struct {
	ID         uuid.UUID       `json:"Id"`
	SalePrice  decimal.Decimal `json:"SalePrice"`
	Attributes []Attribute     `json:"Attributes"`
}

// Model returns the value of the Model attribute, or "" when the variant has none.
func (v Variant) Model() string {
	for _, attr := range v.Attributes {
		if attr.Key == ModelAttribute {
			return attr.Value
		}
	}
	return ""
}

// Listing is the full record returned by POST /getoffers.
type Listing struct {
	ID        uuid.UUID `json:"Id"`
	Title     string    `json:"Title"`
	FullTitle *string   `json:"FullTitle"`
	Photos    []Photo   `json:"Photos"`
	IsSoldOut bool      `json:"IsSoldOut"`
	Condition string    `json:"Condition"`
	URL       string    `json:"Url"`
	Items     []Variant `json:"Items"`

	// Category is not part of the full record; the sync pipeline fills it
	// from the feed entry tags.
	Category string `json:"Category,omitempty"`
}

// FirstPhoto returns the URL of the first photo, or "".
func (l Listing) FirstPhoto() string {
	if len(l.Photos) == 0 {
		return ""
	}
	return l.Photos[0].URL
}
