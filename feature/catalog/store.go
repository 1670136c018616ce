package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-sync/core/utils"
	"catalog-sync/feature/catalog/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Keeps IN lists under the sqlite bind variable limit.
const inClauseChunk = 500

// ErrNotFound is returned when a configuration or bookmark does not exist.
var ErrNotFound = errors.New("not found")

// OfferFilter narrows ListOffers. Values within Memory and within Storage are ORed,
// the two lists are ANDed. Empty fields do not filter.
type OfferFilter struct {
	Category string
	Memory   []int16
	Storage  []int16
}

// Store is the gorm-backed catalog repository.
type Store struct {
	db *gorm.DB
}

// NewStore creates a new catalog store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying connection for schema inspection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the catalog tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate catalog schema: %w", err)
	}
	return nil
}

// ExistingExternalIDs returns which of the given external ids already have an offer.
func (s *Store) ExistingExternalIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	existing := make(map[uuid.UUID]struct{}, len(ids))
	for _, chunk := range utils.Chunk(ids, inClauseChunk) {
		var found []uuid.UUID
		err := s.db.WithContext(ctx).
			Model(&models.Offer{}).
			Where("external_id IN ?", chunk).
			Pluck("external_id", &found).Error
		if err != nil {
			return nil, fmt.Errorf("failed to look up offers: %w", err)
		}
		for _, id := range found {
			existing[id] = struct{}{}
		}
	}
	return existing, nil
}

// InsertOffers creates offers with their configurations in a single transaction.
func (s *Store) InsertOffers(ctx context.Context, offers []models.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&offers, 100).Error; err != nil {
			return fmt.Errorf("failed to insert offers: %w", err)
		}
		return nil
	})
}

// AvailabilityIndex maps every persisted offer's external id to its sold-out flag.
func (s *Store) AvailabilityIndex(ctx context.Context) (map[uuid.UUID]bool, error) {
	type row struct {
		ExternalID uuid.UUID
		IsSoldOut  bool
	}
	var rows []row
	err := s.db.WithContext(ctx).
		Model(&models.Offer{}).
		Select("external_id", "is_sold_out").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load availability index: %w", err)
	}

	index := make(map[uuid.UUID]bool, len(rows))
	for _, r := range rows {
		index[r.ExternalID] = r.IsSoldOut
	}
	return index, nil
}

// ApplyAvailability flips offers to available and to sold out in one transaction.
func (s *Store) ApplyAvailability(ctx context.Context, toAvailable, toSoldOut []uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := setSoldOut(tx, toAvailable, false); err != nil {
			return err
		}
		return setSoldOut(tx, toSoldOut, true)
	})
}

func setSoldOut(tx *gorm.DB, ids []uuid.UUID, soldOut bool) error {
	for _, chunk := range utils.Chunk(ids, inClauseChunk) {
		err := tx.Model(&models.Offer{}).
			Where("external_id IN ?", chunk).
			Update("is_sold_out", soldOut).Error
		if err != nil {
			return fmt.Errorf("failed to set is_sold_out=%t: %w", soldOut, err)
		}
	}
	return nil
}

// CountOffers returns the number of stored offers.
func (s *Store) CountOffers(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Offer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count offers: %w", err)
	}
	return count, nil
}

// CountConfigurations returns the number of stored configurations.
func (s *Store) CountConfigurations(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Configuration{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count configurations: %w", err)
	}
	return count, nil
}

// CountAvailable returns the number of offers that are not sold out.
func (s *Store) CountAvailable(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Offer{}).Where("is_sold_out = ?", false).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count available offers: %w", err)
	}
	return count, nil
}

// CountMalformedConfigurations returns configurations missing memory or storage.
func (s *Store) CountMalformedConfigurations(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Configuration{}).
		Where("memory_capacity = 0 OR storage_size = 0").
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count malformed configurations: %w", err)
	}
	return count, nil
}

// ListOffers returns available offers with the configurations that match the filter.
// Malformed configurations never match, and offers left without a match are omitted.
func (s *Store) ListOffers(ctx context.Context, filter OfferFilter) ([]models.Offer, error) {
	matching := func(db *gorm.DB) *gorm.DB {
		db = db.Where("configuration.memory_capacity <> 0 AND configuration.storage_size <> 0")
		if len(filter.Memory) > 0 {
			db = db.Where("configuration.memory_capacity IN ?", filter.Memory)
		}
		if len(filter.Storage) > 0 {
			db = db.Where("configuration.storage_size IN ?", filter.Storage)
		}
		return db
	}

	sub := matching(s.db.Table("configuration").Select("1").Where("configuration.offer_id = offer.id"))

	query := s.db.WithContext(ctx).
		Model(&models.Offer{}).
		Where("offer.is_sold_out = ?", false).
		Where("EXISTS (?)", sub)
	if filter.Category != "" {
		query = query.Where("offer.category = ?", filter.Category)
	}

	var offers []models.Offer
	err := query.
		Preload("Configurations", func(db *gorm.DB) *gorm.DB {
			return matching(db).Order("configuration.id")
		}).
		Order("offer.id").
		Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	return offers, nil
}

// GetConfiguration returns a configuration with its offer.
func (s *Store) GetConfiguration(ctx context.Context, id uint) (*models.Configuration, error) {
	var cfg models.Configuration
	err := s.db.WithContext(ctx).Preload("Offer").First(&cfg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get configuration %d: %w", id, err)
	}
	return &cfg, nil
}

// ListBookmarks returns a user's bookmarks, optionally narrowed to one configuration.
func (s *Store) ListBookmarks(ctx context.Context, userID string, configurationID *uint) ([]models.Bookmark, error) {
	query := s.db.WithContext(ctx).
		Preload("Configuration.Offer").
		Where("user_id = ?", userID)
	if configurationID != nil {
		query = query.Where("configuration_id = ?", *configurationID)
	}

	var bookmarks []models.Bookmark
	if err := query.Order("id").Find(&bookmarks).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// CreateBookmark bookmarks a configuration for a user.
// It returns created=false with the existing bookmark when one is already present.
func (s *Store) CreateBookmark(ctx context.Context, userID string, configurationID uint) (*models.Bookmark, bool, error) {
	var (
		bookmark models.Bookmark
		created  bool
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cfgCount int64
		if err := tx.Model(&models.Configuration{}).Where("id = ?", configurationID).Count(&cfgCount).Error; err != nil {
			return err
		}
		if cfgCount == 0 {
			return ErrNotFound
		}

		err := tx.Where("user_id = ? AND configuration_id = ?", userID, configurationID).First(&bookmark).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		bookmark = models.Bookmark{UserID: userID, ConfigurationID: configurationID, CreatedAt: time.Now().UTC()}
		if err := tx.Create(&bookmark).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if errors.Is(err, ErrNotFound) {
		return nil, false, err
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create bookmark: %w", err)
	}

	if err := s.db.WithContext(ctx).Preload("Configuration.Offer").First(&bookmark, bookmark.ID).Error; err != nil {
		return nil, false, fmt.Errorf("failed to load bookmark: %w", err)
	}
	return &bookmark, created, nil
}

// DeleteBookmark removes a user's bookmark. Deleting a missing bookmark is not an error.
func (s *Store) DeleteBookmark(ctx context.Context, userID string, configurationID uint) error {
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND configuration_id = ?", userID, configurationID).
		Delete(&models.Bookmark{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}
