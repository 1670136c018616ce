package mocks

import (
	"context"

	"catalog-sync/feature/marketplace"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// FeedClient is a mock implementation of the marketplace client.
type FeedClient struct {
	mock.Mock
}

func (m *FeedClient) GetLiveFeed(ctx context.Context, feed string) ([]marketplace.FeedEntry, error) {
	args := m.Called(ctx, feed)
	entries, _ := args.Get(0).([]marketplace.FeedEntry)
	return entries, args.Error(1)
}

func (m *FeedClient) GetFullRecords(ctx context.Context, ids []uuid.UUID) ([]marketplace.Listing, error) {
	args := m.Called(ctx, ids)
	listings, _ := args.Get(0).([]marketplace.Listing)
	return listings, args.Error(1)
}
