package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "ListingChangedEvent/1.0.0", generateKeyFromPath("events/listing-changed/v1.json"))
	assert.Equal(t, "PriceDropEvent/2.0.0", generateKeyFromPath("events/price-drop/v2.json"))
	assert.Equal(t, "", generateKeyFromPath("events/flat.json"))
	assert.Equal(t, "", generateKeyFromPath("events/name/latest.json"))
}

func TestDefaultRegistryValidatesListingEvent(t *testing.T) {
	r, err := DefaultRegistry()
	require.NoError(t, err)
	require.True(t, r.Has(ListingChangedEventName, ListingChangedEventVersion))

	valid := []byte(`{
		"event_id": "8f14e45f-ceea-4e67-8c49-1a2b3c4d5e6f",
		"event_type": "listing.created",
		"listing_id": "l-1",
		"slug": "satilik-deniz-manzarali-villa",
		"type": "sale",
		"status": "active",
		"category": {"main": "Konut", "sub": "Villa"},
		"city": "mugla",
		"price": 12500000,
		"currency": "TRY",
		"occurred_at": "2026-10-14T09:30:00Z"
	}`)
	assert.NoError(t, r.ValidateEvent(ListingChangedEventName, ListingChangedEventVersion, valid))

	tests := map[string][]byte{
		"bad type":      []byte(`{"event_id":"8f14e45f-ceea-4e67-8c49-1a2b3c4d5e6f","event_type":"listing.created","listing_id":"l","slug":"s","type":"lease","status":"active","category":{"main":"Konut"},"price":1,"currency":"TRY","occurred_at":"2026-10-14T09:30:00Z"}`),
		"zero price":    []byte(`{"event_id":"8f14e45f-ceea-4e67-8c49-1a2b3c4d5e6f","event_type":"listing.created","listing_id":"l","slug":"s","type":"sale","status":"active","category":{"main":"Konut"},"price":0,"currency":"TRY","occurred_at":"2026-10-14T09:30:00Z"}`),
		"missing slug":  []byte(`{"event_id":"8f14e45f-ceea-4e67-8c49-1a2b3c4d5e6f","event_type":"listing.created","listing_id":"l","type":"sale","status":"active","category":{"main":"Konut"},"price":1,"currency":"TRY","occurred_at":"2026-10-14T09:30:00Z"}`),
		"bad timestamp": []byte(`{"event_id":"8f14e45f-ceea-4e67-8c49-1a2b3c4d5e6f","event_type":"listing.created","listing_id":"l","slug":"s","type":"sale","status":"active","category":{"main":"Konut"},"price":1,"currency":"TRY","occurred_at":"yesterday"}`),
		"not json":      []byte(`{`),
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, r.ValidateEvent(ListingChangedEventName, ListingChangedEventVersion, body))
		})
	}
}

func TestValidateUnknownEvent(t *testing.T) {
	r, err := DefaultRegistry()
	require.NoError(t, err)
	assert.Error(t, r.ValidateEvent("UnknownEvent", "1.0.0", []byte(`{}`)))
}
