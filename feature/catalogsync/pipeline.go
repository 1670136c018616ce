package catalogsync

import (
	"context"
	"errors"
	"fmt"

	"catalog-sync/core/metrics"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/utils"
	"catalog-sync/feature/catalog/models"
	"catalog-sync/feature/catalogsync/specs"
	"catalog-sync/feature/marketplace"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FeedClient is the marketplace surface the pipeline reads from.
type FeedClient interface {
	GetLiveFeed(ctx context.Context, feed string) ([]marketplace.FeedEntry, error)
	GetFullRecords(ctx context.Context, ids []uuid.UUID) ([]marketplace.Listing, error)
}

// OfferStore is the catalog surface the pipeline writes to.
type OfferStore interface {
	ExistingExternalIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]struct{}, error)
	InsertOffers(ctx context.Context, offers []models.Offer) error
	AvailabilityIndex(ctx context.Context) (map[uuid.UUID]bool, error)
	ApplyAvailability(ctx context.Context, toAvailable, toSoldOut []uuid.UUID) error
}

// Feed tags the catalog accepts, in the order they are checked, and the category each maps to.
var categoryTags = []struct {
	Tag      string
	Category string
}{
	{Tag: "PC/Desktops", Category: "Desktops"},
	{Tag: "PC/Laptops", Category: "Laptops"},
}

// CategoryFor returns the catalog category for a feed entry, or "" when none of its tags is accepted.
func CategoryFor(entry marketplace.FeedEntry) string {
	for _, ct := range categoryTags {
		if entry.HasCategory(ct.Tag) {
			return ct.Category
		}
	}
	return ""
}

// Options tune one pipeline run.
type Options struct {
	Feed         string
	BatchSize    int
	MinAvailable int
	DryRun       bool
}

// AddResult summarizes AddNew.
type AddResult struct {
	Candidates int `json:"candidates"`
	Planned    int `json:"planned"`
	Inserted   int `json:"inserted"`
	Existing   int `json:"existing"`
	Duplicates int `json:"duplicates"`
}

// AvailabilityResult summarizes UpdateAvailability.
type AvailabilityResult struct {
	Summary     reconcile.AvailabilitySummary `json:"summary"`
	ToAvailable int                           `json:"to_available"`
	ToSoldOut   int                           `json:"to_sold_out"`
	Applied     int                           `json:"applied"`
	// Suppressed names the guard that blocked the update, if any.
	Suppressed string `json:"suppressed,omitempty"`
}

// Pipeline stages one sync run. It holds per-run state and must not be reused
// across runs; build a fresh one for every cycle.
type Pipeline struct {
	client FeedClient
	store  OfferStore
	opts   Options
	logger *zap.Logger

	entries       []marketplace.FeedEntry
	listings      []marketplace.Listing
	failedBatches int
}

// NewPipeline creates an empty pipeline.
func NewPipeline(client FeedClient, store OfferStore, opts Options, logger *zap.Logger) *Pipeline {
	if opts.BatchSize <= 0 || opts.BatchSize > marketplace.MaxBatchSize {
		opts.BatchSize = marketplace.MaxBatchSize
	}
	return &Pipeline{client: client, store: store, opts: opts, logger: logger}
}

// Entries returns the feed entries kept by Load.
func (p *Pipeline) Entries() []marketplace.FeedEntry {
	return p.entries
}

// Listings returns the full records hydrated by Transform.
func (p *Pipeline) Listings() []marketplace.Listing {
	return p.listings
}

// FailedBatches returns the number of full-record batches Transform skipped.
func (p *Pipeline) FailedBatches() int {
	return p.failedBatches
}

// Load fetches the live feed and keeps the desktop and laptop entries.
// A failed fetch leaves the pipeline empty; the availability guard handles that later.
func (p *Pipeline) Load(ctx context.Context) *Pipeline {
	p.entries = nil

	feed, err := p.client.GetLiveFeed(ctx, p.opts.Feed)
	if err != nil {
		p.logger.Error("Failed to load live feed", zap.String("feed", p.opts.Feed), zap.Error(err))
		return p
	}

	for _, entry := range feed {
		if CategoryFor(entry) != "" {
			p.entries = append(p.entries, entry)
		}
	}

	p.logger.Info("Live feed loaded",
		zap.String("feed", p.opts.Feed),
		zap.Int("received", len(feed)),
		zap.Int("kept", len(p.entries)))
	return p
}

// Transform hydrates the kept entries into full listings, batch by batch,
// and backfills each listing's category from its feed entry.
func (p *Pipeline) Transform(ctx context.Context) *Pipeline {
	p.listings = nil
	p.failedBatches = 0

	categories := make(map[uuid.UUID]string, len(p.entries))
	ids := make([]uuid.UUID, 0, len(p.entries))
	for _, entry := range p.entries {
		if _, seen := categories[entry.OfferID]; seen {
			continue
		}
		categories[entry.OfferID] = CategoryFor(entry)
		ids = append(ids, entry.OfferID)
	}

	batches := utils.Chunk(ids, p.opts.BatchSize)
	for i, batch := range batches {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("Transform interrupted", zap.Int("batch", i), zap.Error(err))
			break
		}

		listings, err := p.client.GetFullRecords(ctx, batch)
		if err != nil {
			p.failedBatches++
			metrics.ObserveBatchFailure()
			p.logger.Error("Skipping failed batch",
				zap.Int("batch", i),
				zap.Int("size", len(batch)),
				zap.Error(err))
			continue
		}
		p.listings = append(p.listings, listings...)
	}

	for i := range p.listings {
		p.listings[i].Category = categories[p.listings[i].ID]
	}

	p.logger.Info("Listings hydrated",
		zap.Int("ids", len(ids)),
		zap.Int("batches", len(batches)),
		zap.Int("failed_batches", p.failedBatches),
		zap.Int("listings", len(p.listings)))
	return p
}

// AddNew inserts offers whose external id is not stored yet, in one transaction.
// Stored offers are never refreshed.
func (p *Pipeline) AddNew(ctx context.Context) (AddResult, error) {
	var result AddResult
	if len(p.listings) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(p.listings))
	offers := make(map[uuid.UUID]models.Offer, len(p.listings))
	for _, listing := range p.listings {
		ids = append(ids, listing.ID)
		if _, seen := offers[listing.ID]; !seen {
			offers[listing.ID] = BuildOffer(listing)
		}
	}

	existing, err := p.store.ExistingExternalIDs(ctx, ids)
	if err != nil {
		return result, fmt.Errorf("failed to check existing offers: %w", err)
	}

	plan := reconcile.PlanInserts(ids, existing)
	staged := make([]models.Offer, 0, len(plan.Insert))
	for _, id := range plan.Insert {
		staged = append(staged, offers[id])
	}

	result.Candidates = len(ids)
	result.Planned = len(staged)
	result.Existing = len(plan.Existing)
	result.Duplicates = len(plan.Duplicates)

	if p.opts.DryRun || len(staged) == 0 {
		p.logger.Info("No offers written",
			zap.Bool("dry_run", p.opts.DryRun),
			zap.Int("planned", result.Planned),
			zap.Int("existing", result.Existing))
		return result, nil
	}

	if err := p.store.InsertOffers(ctx, staged); err != nil {
		return result, fmt.Errorf("failed to insert offers: %w", err)
	}
	result.Inserted = len(staged)
	metrics.ObserveInserted(result.Inserted)

	p.logger.Info("Offers inserted",
		zap.Int("inserted", result.Inserted),
		zap.Int("existing", result.Existing),
		zap.Int("duplicates", result.Duplicates))
	return result, nil
}

// UpdateAvailability makes every stored offer's sold-out flag match the live feed.
// A guard trip is reported in the result, not as an error.
func (p *Pipeline) UpdateAvailability(ctx context.Context) (AvailabilityResult, error) {
	var result AvailabilityResult

	live := make(map[uuid.UUID]bool, len(p.entries))
	for _, entry := range p.entries {
		if soldOut, seen := live[entry.OfferID]; seen {
			live[entry.OfferID] = soldOut && entry.IsSoldOut
			continue
		}
		live[entry.OfferID] = entry.IsSoldOut
	}

	persisted, err := p.store.AvailabilityIndex(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to load availability index: %w", err)
	}

	opts := reconcile.Options{DryRun: p.opts.DryRun, MinAvailable: p.opts.MinAvailable}
	plan, err := reconcile.PlanAvailability(live, persisted, opts)
	result.Summary = plan.Summary

	var guard *reconcile.GuardError
	if errors.As(err, &guard) {
		result.Suppressed = guard.ReasonLabel()
		metrics.ObserveGuardTrip(result.Suppressed)
		p.logger.Warn("Availability update suppressed",
			zap.String("reason", result.Suppressed),
			zap.Int("live_entries", plan.Summary.LiveEntries),
			zap.Int("persisted", guard.Persisted),
			zap.Int("available", guard.Available),
			zap.Int("minimum", guard.Minimum))
		return result, nil
	}
	if err != nil {
		return result, err
	}

	result.ToAvailable = len(plan.ToAvailable)
	result.ToSoldOut = len(plan.ToSoldOut)

	applied, err := reconcile.ApplyAvailability[uuid.UUID](ctx, p.store, plan, opts)
	if err != nil {
		return result, err
	}
	result.Applied = applied
	if applied > 0 {
		metrics.ObserveAvailabilityChanges(result.ToAvailable, result.ToSoldOut)
	}

	p.logger.Info("Availability updated",
		zap.Bool("dry_run", p.opts.DryRun),
		zap.Int("to_available", result.ToAvailable),
		zap.Int("to_sold_out", result.ToSoldOut),
		zap.Int("unchanged", plan.Summary.Unchanged),
		zap.Int("available", plan.Summary.Available))
	return result, nil
}

// BuildOffer maps a listing to a catalog offer. Condition is left empty.
// Configurations are only built when the listing carries a full title, since
// extraction reads from it.
func BuildOffer(listing marketplace.Listing) models.Offer {
	offer := models.Offer{
		ExternalID: listing.ID,
		Category:   listing.Category,
		Title:      listing.Title,
		Photo:      listing.FirstPhoto(),
		IsSoldOut:  listing.IsSoldOut,
		URL:        listing.URL,
	}
	if listing.FullTitle == nil {
		return offer
	}

	offer.Configurations = make([]models.Configuration, 0, len(listing.Items))
	for _, variant := range listing.Items {
		hw := specs.Extract(variant.Model(), *listing.FullTitle, len(listing.Items))
		offer.Configurations = append(offer.Configurations, models.Configuration{
			ExternalID:     variant.ID,
			MemoryCapacity: hw.MemoryGB,
			StorageSize:    hw.StorageGB,
			Price:          variant.SalePrice.Round(2),
		})
	}
	return offer
}
