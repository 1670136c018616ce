package integrity

import (
	"net/http/httptest"
	"testing"

	"catalog-sync/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFeature_Load(t *testing.T) {
	tests := []struct {
		name        string
		withStorage bool
		wantStatus  int
	}{
		{"archive enabled", true, fiber.StatusOK},
		{"archive disabled", false, fiber.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var feature *Feature
			if tt.withStorage {
				client := new(mocks.Client)
				client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
				client.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Listing("snapshots/run/feed.json"))
				feature = NewFeature(nil, client, "test-bucket", "snapshots", zap.NewNop())
			} else {
				feature = NewFeature(nil, nil, "test-bucket", "snapshots", zap.NewNop())
			}

			assert.Equal(t, "integrity", feature.Name())
			assert.True(t, feature.IsEnabled())

			app := fiber.New()
			require.NoError(t, feature.Load(app))

			resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}
