package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Offer is one marketplace listing in the local catalog.
// ExternalID is the marketplace id and the natural key for sync.
type Offer struct {
	ID             uint            `gorm:"column:id;primaryKey" json:"id"`
	ExternalID     uuid.UUID       `gorm:"column:external_id;type:varchar(36);uniqueIndex;not null" json:"external_id"`
	Category       string          `gorm:"column:category;size:50;index" json:"category"`
	Title          string          `gorm:"column:title;size:255" json:"title"`
	Photo          string          `gorm:"column:photo;size:512" json:"photo"`
	IsSoldOut      bool            `gorm:"column:is_sold_out;not null;index" json:"is_sold_out"`
	Condition      string          `gorm:"column:item_condition;size:50" json:"condition"`
	URL            string          `gorm:"column:url;size:512" json:"url"`
	Configurations []Configuration `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"configurations"`
}

// TableName overrides the table name.
func (Offer) TableName() string {
	return "offer"
}

// Configuration is one buyable variant of an offer.
// MemoryCapacity and StorageSize are in GB; 0 means the value could not be extracted.
type Configuration struct {
	ID             uint            `gorm:"column:id;primaryKey" json:"id"`
	ExternalID     uuid.UUID       `gorm:"column:external_id;type:varchar(36);index;not null" json:"external_id"`
	Processor      string          `gorm:"column:processor;size:255" json:"processor"`
	MemoryCapacity int16           `gorm:"column:memory_capacity;not null" json:"memory_capacity"`
	StorageSize    int16           `gorm:"column:storage_size;not null" json:"storage_size"`
	Price          decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	OfferID        uint            `gorm:"column:offer_id;not null;index" json:"offer_id"`
	Offer          *Offer          `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"offer,omitempty"`
}

// TableName overrides the table name.
func (Configuration) TableName() string {
	return "configuration"
}

// IsMalformed reports whether extraction failed for memory or storage.
func (c Configuration) IsMalformed() bool {
	return c.MemoryCapacity == 0 || c.StorageSize == 0
}

// Bookmark links a user to a configuration they want to track.
type Bookmark struct {
	ID              uint           `gorm:"column:id;primaryKey" json:"id"`
	UserID          string         `gorm:"column:user_id;size:191;not null;uniqueIndex:idx_bookmark_user_configuration" json:"user_id"`
	ConfigurationID uint           `gorm:"column:configuration_id;not null;uniqueIndex:idx_bookmark_user_configuration" json:"configuration_id"`
	Configuration   *Configuration `gorm:"foreignKey:ConfigurationID;constraint:OnDelete:CASCADE" json:"configuration,omitempty"`
	CreatedAt       time.Time      `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides the table name.
func (Bookmark) TableName() string {
	return "bookmark"
}

// All returns the catalog models in migration order.
func All() []any {
	return []any{&Offer{}, &Configuration{}, &Bookmark{}}
}
