package catalog

import (
	"context"

	"catalog-sync/feature/catalog/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// OfferItem is the flattened browse row: one configuration with its offer's details.
type OfferItem struct {
	ID             uint            `json:"id"`
	Category       string          `json:"category"`
	Title          string          `json:"title"`
	Photo          string          `json:"photo"`
	MemoryCapacity int16           `json:"memory_capacity"`
	StorageSize    int16           `json:"storage_size"`
	Price          decimal.Decimal `json:"price"`
	IsSoldOut      bool            `json:"is_sold_out"`
	URL            string          `json:"url"`
}

func newOfferItem(offer *models.Offer, cfg models.Configuration) OfferItem {
	return OfferItem{
		ID:             cfg.ID,
		Category:       offer.Category,
		Title:          offer.Title,
		Photo:          offer.Photo,
		MemoryCapacity: cfg.MemoryCapacity,
		StorageSize:    cfg.StorageSize,
		Price:          cfg.Price,
		IsSoldOut:      offer.IsSoldOut,
		URL:            offer.URL,
	}
}

// Service implements catalog browsing and bookmarks on top of the store.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListOfferItems returns one item per matching configuration of every available offer.
func (s *Service) ListOfferItems(ctx context.Context, filter OfferFilter) ([]OfferItem, error) {
	offers, err := s.store.ListOffers(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]OfferItem, 0, len(offers))
	for i := range offers {
		for _, cfg := range offers[i].Configurations {
			items = append(items, newOfferItem(&offers[i], cfg))
		}
	}
	return items, nil
}

// GetOfferItem returns the item for a configuration id, or ErrNotFound.
func (s *Service) GetOfferItem(ctx context.Context, configurationID uint) (*OfferItem, error) {
	cfg, err := s.store.GetConfiguration(ctx, configurationID)
	if err != nil {
		return nil, err
	}
	if cfg.Offer == nil {
		return nil, ErrNotFound
	}
	item := newOfferItem(cfg.Offer, *cfg)
	return &item, nil
}

// ListBookmarks returns a user's bookmarks.
func (s *Service) ListBookmarks(ctx context.Context, userID string, configurationID *uint) ([]models.Bookmark, error) {
	return s.store.ListBookmarks(ctx, userID, configurationID)
}

// CreateBookmark bookmarks a configuration; created is false when it already existed.
func (s *Service) CreateBookmark(ctx context.Context, userID string, configurationID uint) (*models.Bookmark, bool, error) {
	bookmark, created, err := s.store.CreateBookmark(ctx, userID, configurationID)
	if err != nil {
		return nil, false, err
	}
	if created {
		s.logger.Info("Bookmark created",
			zap.String("user_id", userID),
			zap.Uint("configuration_id", configurationID))
	}
	return bookmark, created, nil
}

// DeleteBookmark removes a bookmark if present.
func (s *Service) DeleteBookmark(ctx context.Context, userID string, configurationID uint) error {
	return s.store.DeleteBookmark(ctx, userID, configurationID)
}
