package checks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticCounter struct {
	offers, available, configurations, malformed int64
	err                                          error
}

func (c staticCounter) CountOffers(context.Context) (int64, error) {
	return c.offers, c.err
}

func (c staticCounter) CountAvailable(context.Context) (int64, error) {
	return c.available, nil
}

func (c staticCounter) CountConfigurations(context.Context) (int64, error) {
	return c.configurations, nil
}

func (c staticCounter) CountMalformedConfigurations(context.Context) (int64, error) {
	return c.malformed, nil
}

func TestCheckCatalog(t *testing.T) {
	tests := []struct {
		name    string
		counter staticCounter
		status  string
		ratio   float64
	}{
		{"empty", staticCounter{}, "empty", 0},
		{"healthy", staticCounter{offers: 4, available: 3, configurations: 10, malformed: 1}, "ok", 0.1},
		{"degraded", staticCounter{offers: 4, available: 3, configurations: 10, malformed: 6}, "degraded", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := CheckCatalog(context.Background(), tt.counter)
			require.NoError(t, err)
			assert.Equal(t, tt.status, report.Status)
			assert.InDelta(t, tt.ratio, report.MalformedRatio, 0.0001)
		})
	}
}

func TestCheckCatalog_Error(t *testing.T) {
	_, err := CheckCatalog(context.Background(), staticCounter{err: errors.New("no such table: offer")})
	assert.Error(t, err)
}
