package query

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/core/domain"
)

func ptr(v float64) *float64 { return &v }

func fullFilter() domain.ListingFilter {
	var toggles domain.FeatureToggles
	for _, flag := range domain.FeatureFlags {
		toggles = toggles.Set(flag, true)
	}
	return domain.ListingFilter{
		Type:          domain.ListingTypeSale,
		Category:      domain.CategoryResidential,
		SubCategory:   "Villa",
		Location:      domain.LocationPath{Country: "tr", City: "mugla", District: "bodrum"},
		MinPrice:      ptr(1_000_000),
		MaxPrice:      ptr(5_000_000.5),
		MinSize:       ptr(80),
		MaxSize:       ptr(250),
		Rooms:         "3+1",
		Furnishing:    "furnished",
		KitchenType:   "open",
		HeatingType:   "combi",
		UsageStatus:   "empty",
		DeedStatus:    "condominium",
		FromWho:       "owner",
		MaxMonthlyFee: ptr(1500),
		GeoCell:       "sw8",
		Features:      toggles,
		Search:        "deniz manzaralı",
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.ListingFilter
	}{
		{"empty", domain.ListingFilter{}},
		{"every field", fullFilter()},
		{"stateful country", domain.ListingFilter{Location: domain.LocationPath{Country: "us", State: "ny", City: "new-york"}}},
		{"city only", domain.ListingFilter{Location: domain.LocationPath{City: "istanbul"}}},
		{"inverted range", domain.ListingFilter{MinPrice: ptr(100), MaxPrice: ptr(50)}},
		{"zero bound", domain.ListingFilter{MinPrice: ptr(0)}},
		{"one toggle", domain.ListingFilter{Features: domain.FeatureToggles{HasPool: true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := Encode(tt.filter)
			assert.Equal(t, tt.filter, Decode(encoded.Values()))

			// через строку URL тоже
			parsed, err := url.ParseQuery(encoded.Encode())
			require.NoError(t, err)
			assert.Equal(t, tt.filter, Decode(parsed))
		})
	}
}

func TestEncodeOrderIsFixed(t *testing.T) {
	f := domain.ListingFilter{
		Type:     domain.ListingTypeRent,
		Location: domain.LocationPath{Country: "tr", City: "istanbul"},
		MinPrice: ptr(15000),
		Search:   "  kadıköy  ",
		Features: domain.FeatureToggles{HasParking: true, HasPool: true},
	}
	assert.Equal(t,
		"type=rent&country=tr&city=istanbul&minPrice=15000&search=kad%C4%B1k%C3%B6y&hasParking=true&hasPool=true",
		Encode(f).Encode())
}

func TestEncodeOmitsAbsentValues(t *testing.T) {
	f := domain.ListingFilter{
		MinPrice: ptr(math.NaN()),
		MaxPrice: ptr(math.Inf(1)),
		Search:   "   ",
		Features: domain.FeatureToggles{},
	}
	assert.Empty(t, Encode(f))
}

func TestEncodePassesInvertedRange(t *testing.T) {
	p := Encode(domain.ListingFilter{MinPrice: ptr(100), MaxPrice: ptr(50)})
	minPrice, _ := p.Get(KeyMinPrice)
	maxPrice, _ := p.Get(KeyMaxPrice)
	assert.Equal(t, "100", minPrice)
	assert.Equal(t, "50", maxPrice)
}

func TestDecodeDegradesMalformedInput(t *testing.T) {
	values := url.Values{
		"type":          {"lease"},
		"category":      {"Konut"},
		"subCategory":   {"Tarla"},
		"minPrice":      {"abc"},
		"maxPrice":      {"NaN"},
		"minSize":       {"Inf"},
		"maxSize":       {"120"},
		"rooms":         {"99+9"},
		"heatingType":   {"lava"},
		"hasPool":       {"yes"},
		"hasParking":    {"false"},
		"hasElevator":   {"1"},
		"geoCell":       {"sw8a"},
		"unknownFilter": {"x"},
		"state":         {"ny"},
		"district":      {"kadikoy"},
	}
	f := Decode(values)

	assert.Empty(t, f.Type)
	assert.Equal(t, domain.CategoryResidential, f.Category)
	assert.Empty(t, f.SubCategory)
	assert.Nil(t, f.MinPrice)
	assert.Nil(t, f.MaxPrice)
	assert.Nil(t, f.MinSize)
	require.NotNil(t, f.MaxSize)
	assert.Equal(t, 120.0, *f.MaxSize)
	assert.Empty(t, f.Rooms)
	assert.Empty(t, f.HeatingType)
	assert.Equal(t, domain.FeatureToggles{HasElevator: true}, f.Features)
	assert.Empty(t, f.GeoCell, "a is not in the geohash alphabet")
	assert.True(t, f.Location.IsEmpty(), "orphaned levels are dropped")
}

func TestDecodeSearch(t *testing.T) {
	req := DecodeSearch(url.Values{"sort": {"price-low"}, "page": {"3"}, "perPage": {"50"}})
	assert.Equal(t, domain.SortPriceLow, req.Sort)
	assert.Equal(t, domain.Pagination{Page: 3, PerPage: 50}, req.Page)

	req = DecodeSearch(url.Values{"sort": {"cheapest"}, "page": {"-1"}, "perPage": {"1000"}})
	assert.Equal(t, domain.SortNewest, req.Sort)
	assert.Equal(t, domain.Pagination{Page: 1, PerPage: domain.DefaultPerPage}, req.Page)

	req = DecodeSearch(url.Values{"page": {"9223372036854775807"}, "perPage": {"20"}})
	assert.Equal(t, domain.MaxPage, req.Page.Page)
	assert.GreaterOrEqual(t, req.Page.Offset(), 0)
	assert.Equal(t, req, DecodeSearch(EncodeSearch(req).Values()))
}

func TestSearchRoundTrip(t *testing.T) {
	req := domain.SearchRequest{
		Filter: fullFilter(),
		Sort:   domain.SortPriceHigh,
		Page:   domain.Pagination{Page: 2, PerPage: 40},
	}
	assert.Equal(t, req, DecodeSearch(EncodeSearch(req).Values()))
}
