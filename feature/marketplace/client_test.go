package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return newClient(srv.Client(), Config{BaseURL: srv.URL + "/", APIKey: "test-key"}, zap.NewNop())
}

func TestClient_GetLiveFeed(t *testing.T) {
	id := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/feed/Computers", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"Items":[{"OfferId":"`+id.String()+`","Categories":["PC/Laptops","Computers"],"IsSoldOut":true}]}`)
	})

	entries, err := client.GetLiveFeed(context.Background(), "Computers")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].OfferID)
	assert.True(t, entries[0].IsSoldOut)
	assert.True(t, entries[0].HasCategory("PC/Laptops"))
	assert.False(t, entries[0].HasCategory("PC/Desktops"))
}

func TestClient_GetLiveFeed_Errors(t *testing.T) {
	t.Run("Status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, "quota exceeded")
		})

		_, err := client.GetLiveFeed(context.Background(), "Computers")
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
		assert.Equal(t, "quota exceeded", statusErr.Body)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>")
		})

		_, err := client.GetLiveFeed(context.Background(), "Computers")
		assert.ErrorContains(t, err, "failed to decode")
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"Items":[]}`)
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.GetLiveFeed(ctx, "Computers")
		assert.Error(t, err)
	})
}

func TestClient_GetFullRecords(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New()}
	variantID := uuid.New()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/getoffers", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var got []uuid.UUID
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, ids, got)

		_, _ = io.WriteString(w, `[{
			"Id":"`+ids[0].String()+`",
			"Title":"Dell OptiPlex",
			"FullTitle":"Dell OptiPlex 7060 i7 16GB 512GB SSD",
			"Photos":[{"Url":"https://img/1.jpg"},{"Url":"https://img/2.jpg"}],
			"IsSoldOut":false,
			"Condition":"Refurbished",
			"Url":"https://woot/offers/1",
			"Items":[{"Id":"`+variantID.String()+`","SalePrice":219.99,"Attributes":[{"Key":"Model","Value":"i7 | 16GB | 512GB"}]}]
		},{
			"Id":"`+ids[1].String()+`",
			"Title":"Mystery box",
			"FullTitle":null,
			"Photos":[],
			"Items":[]
		}]`)
	})

	listings, err := client.GetFullRecords(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	first := listings[0]
	assert.Equal(t, ids[0], first.ID)
	require.NotNil(t, first.FullTitle)
	assert.Equal(t, "Dell OptiPlex 7060 i7 16GB 512GB SSD", *first.FullTitle)
	assert.Equal(t, "https://img/1.jpg", first.FirstPhoto())
	assert.Equal(t, "Refurbished", first.Condition)
	require.Len(t, first.Items, 1)
	assert.Equal(t, variantID, first.Items[0].ID)
	assert.True(t, decimal.RequireFromString("219.99").Equal(first.Items[0].SalePrice))
	assert.Equal(t, "i7 | 16GB | 512GB", first.Items[0].Model())
	assert.Empty(t, first.Category)

	second := listings[1]
	assert.Nil(t, second.FullTitle)
	assert.Equal(t, "", second.FirstPhoto())
}

func TestClient_GetFullRecords_BatchLimit(t *testing.T) {
	called := false
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	ids := make([]uuid.UUID, MaxBatchSize+1)
	for i := range ids {
		ids[i] = uuid.New()
	}

	_, err := client.GetFullRecords(context.Background(), ids)
	assert.ErrorIs(t, err, ErrBatchTooLarge)
	assert.False(t, called)

	listings, err := client.GetFullRecords(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, listings)
	assert.False(t, called)
}

func TestVariant_Model(t *testing.T) {
	v := Variant{Attributes: []Attribute{{Key: "Color", Value: "Black"}}}
	assert.Equal(t, "", v.Model())

	v.Attributes = append(v.Attributes, Attribute{Key: "Model", Value: "16GB"})
	assert.Equal(t, "16GB", v.Model())
}
