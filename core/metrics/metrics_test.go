package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	Init()
	Init()

	assert.NotNil(t, syncRunsTotal)
	assert.NotNil(t, syncGuardTripsTotal)
}

func TestObservers(t *testing.T) {
	Init()

	before := testutil.ToFloat64(syncRunsTotal.WithLabelValues(StatusSuppressed))
	ObserveRun(StatusSuppressed, 2*time.Second)
	assert.Equal(t, before+1, testutil.ToFloat64(syncRunsTotal.WithLabelValues(StatusSuppressed)))

	inserted := testutil.ToFloat64(syncOffersInsertedTotal)
	ObserveInserted(3)
	ObserveInserted(0)
	assert.Equal(t, inserted+3, testutil.ToFloat64(syncOffersInsertedTotal))

	soldOut := testutil.ToFloat64(syncAvailabilityChanges.WithLabelValues("sold_out"))
	ObserveAvailabilityChanges(0, 4)
	assert.Equal(t, soldOut+4, testutil.ToFloat64(syncAvailabilityChanges.WithLabelValues("sold_out")))

	errs := testutil.ToFloat64(marketplaceRequestsTotal.WithLabelValues("feed", "error"))
	ObserveMarketplaceRequest("feed", errors.New("boom"), time.Millisecond)
	assert.Equal(t, errs+1, testutil.ToFloat64(marketplaceRequestsTotal.WithLabelValues("feed", "error")))
}

func TestHandler(t *testing.T) {
	ObserveGuardTrip("empty_feed")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "catalog_sync_guard_trips_total")
}
