package catalogsync

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"catalog-sync/feature/marketplace"
	"catalog-sync/feature/marketplace/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler_StatusAndRun(t *testing.T) {
	store := newTestStore(t)
	client := new(mocks.FeedClient)
	entries := []marketplace.FeedEntry{entry("PC/Laptops", false)}
	client.On("GetLiveFeed", mock.Anything, testFeed).Return(entries, nil)
	client.On("GetFullRecords", mock.Anything, idsOf(entries)).Return(listingsFor(idsOf(entries)), nil)

	feature := NewFeature(NewService(client, store, testFeed, Config{}, nil, zap.NewNop()))
	app := fiber.New()
	require.NoError(t, feature.Load(app))
	assert.Equal(t, "catalogsync", feature.Name())

	resp, err := app.Test(httptest.NewRequest("GET", "/sync/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/sync/run", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report RunReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "success", report.Status)
	assert.Equal(t, 1, report.Added.Inserted)

	resp, err = app.Test(httptest.NewRequest("GET", "/sync/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var status RunReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, report.RunID, status.RunID)
}

func TestHandler_RunPanicReturnsFailedReport(t *testing.T) {
	client := new(mocks.FeedClient)
	client.On("GetLiveFeed", mock.Anything, testFeed).
		Run(func(mock.Arguments) { panic("boom") }).
		Return(nil, nil)

	feature := NewFeature(NewService(client, newTestStore(t), testFeed, Config{}, nil, zap.NewNop()))
	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("POST", "/sync/run", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)

	var report RunReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "failed", report.Status)
	assert.Equal(t, "panic: boom", report.Error)
}
