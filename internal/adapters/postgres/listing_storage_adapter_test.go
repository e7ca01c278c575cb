package postgres

import (
	"fmt"
	"testing"
	"time"

	"catalog-service/internal/core/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowValuesMatchColumns(t *testing.T) {
	size := 120.0
	l := &domain.Listing{
		ID:        "l-1",
		Slug:      "satilik-villa",
		Type:      domain.ListingTypeSale,
		Status:    domain.StatusActive,
		Title:     "Villa Kadıköy",
		Category:  domain.Category{Main: domain.CategoryResidential, Sub: "Villa"},
		Location:  domain.Location{Country: "tr", City: "istanbul", District: "kadikoy"},
		Specs:     domain.Specs{NetSize: &size},
		Interior:  &domain.InteriorFeatures{KitchenType: "open"},
		Land:      &domain.LandDetails{CreditEligible: true},
		Price:     100,
		Currency:  "TRY",
		GeoCell:   "sxk9abc",
		CreatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
	}

	values, err := rowValues(l)
	require.NoError(t, err)
	require.Len(t, values, len(listingColumns))

	byColumn := make(map[string]interface{}, len(values))
	for i, col := range listingColumns {
		byColumn[col] = values[i]
	}
	assert.Equal(t, "open", byColumn["kitchen_type"])
	assert.Equal(t, true, byColumn["credit_eligible"])
	assert.Equal(t, false, byColumn["has_parking"])
	assert.Equal(t, "villa kadikoy\nistanbul\nkadikoy\nl-1", byColumn["search_text"])

	decoded, err := decodeDoc(byColumn["doc"].([]byte))
	require.NoError(t, err)
	assert.Equal(t, l.Slug, decoded.Slug)
	assert.Equal(t, l.Category, decoded.Category)
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", placeholders(1, 3))
	assert.Equal(t, "$4", placeholders(4, 1))
}

func TestMapWriteError(t *testing.T) {
	slugErr := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "listings_slug_key"}
	assert.ErrorIs(t, mapWriteError(fmt.Errorf("exec: %w", slugErr), "satilik-villa"), domain.ErrSlugTaken)

	pkErr := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "listings_pkey"}
	assert.NotErrorIs(t, mapWriteError(pkErr, "x"), domain.ErrSlugTaken)

	other := fmt.Errorf("connection reset")
	assert.Equal(t, other, mapWriteError(other, "x"))
}

func TestNewListingStorageAdapterRequiresPool(t *testing.T) {
	_, err := NewListingStorageAdapter(nil)
	assert.Error(t, err)
}
