package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"catalog-service/internal/adapters/memory"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/location"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopEvents struct{}

func (noopEvents) Publish(context.Context, domain.ListingEvent) error { return nil }

type silentLogger struct{}

func (silentLogger) Info(string, port.Fields)         {}
func (silentLogger) Warn(string, port.Fields)         {}
func (silentLogger) Error(string, error, port.Fields) {}
func (silentLogger) Debug(string, port.Fields)        {}
func (l silentLogger) WithFields(port.Fields) port.LoggerPort {
	return l
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	store := memory.NewListingStorageAdapter()
	resolver := location.Default()
	events := noopEvents{}

	createUC, err := usecase.NewCreateListingUseCase(store, events)
	require.NoError(t, err)
	updateUC, err := usecase.NewUpdateListingUseCase(store, events)
	require.NoError(t, err)
	statusUC, err := usecase.NewChangeListingStatusUseCase(store, events)
	require.NoError(t, err)
	deleteUC, err := usecase.NewDeleteListingUseCase(store, events)
	require.NoError(t, err)
	getUC, err := usecase.NewGetListingUseCase(store)
	require.NoError(t, err)
	findUC, err := usecase.NewFindListingsUseCase(store)
	require.NoError(t, err)
	optionsUC, err := usecase.NewGetFilterOptionsUseCase(store, resolver)
	require.NoError(t, err)
	locationsUC, err := usecase.NewGetLocationsUseCase(resolver)
	require.NoError(t, err)

	srv := NewServer(ServerConfig{Port: "0", AllowedOrigins: []string{"*"}},
		NewListingHandler(createUC, updateUC, statusUC, deleteUC, getUC),
		NewSearchHandler(findUC, PagingConfig{DefaultPerPage: 20, MaxPerPage: 100}),
		NewFilterHandler(optionsUC, usecase.NewGetDictionariesUseCase()),
		NewLocationHandler(locationsUC),
		silentLogger{},
	)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func listingBody(listingType, title, city string, price float64) map[string]interface{} {
	return map[string]interface{}{
		"type":     listingType,
		"title":    title,
		"category": map[string]string{"main": domain.CategoryResidential, "sub": "Daire"},
		"location": map[string]string{"country": "tr", "city": city},
		"price":    price,
	}
}

func createListing(t *testing.T, h http.Handler, body map[string]interface{}) ListingResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/listings", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCreateAndFetchListing(t *testing.T) {
	h := newTestServer(t)

	created := createListing(t, h, listingBody("sale", "Deniz Manzaralı Müstakil Ev", "mugla", 9500000))
	assert.Equal(t, "satilik-deniz-manzarali-mustakil-ev", created.Slug)
	assert.Equal(t, domain.StatusActive, created.Status)
	assert.Equal(t, "TRY", created.Currency)
	assert.Equal(t, "/listing/satilik-deniz-manzarali-mustakil-ev", created.Path)

	rec := do(t, h, http.MethodGet, "/api/v1/listings/by-slug/"+created.Slug, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/listings/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	rec = do(t, h, http.MethodGet, "/api/v1/listings/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateListingRejectsInvalidBodies(t *testing.T) {
	h := newTestServer(t)

	noTitle := listingBody("sale", "", "mugla", 100)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/listings", noTitle).Code)

	badType := listingBody("lease", "Ev", "mugla", 100)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/listings", badType).Code)

	unknownField := listingBody("sale", "Ev", "mugla", 100)
	unknownField["colour"] = "blue"
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/api/v1/listings", unknownField).Code)

	badCategory := listingBody("sale", "Ev", "mugla", 100)
	badCategory["category"] = map[string]string{"main": "Konut", "sub": "Otel"}
	rec := do(t, h, http.MethodPost, "/api/v1/listings", badCategory)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestSlugCollisionGetsSuffix(t *testing.T) {
	h := newTestServer(t)

	first := createListing(t, h, listingBody("rent", "Moda Daire", "istanbul", 30000))
	second := createListing(t, h, listingBody("rent", "Moda Daire", "istanbul", 32000))

	assert.Equal(t, "kiralik-moda-daire", first.Slug)
	assert.NotEqual(t, first.Slug, second.Slug)
	assert.True(t, strings.HasPrefix(second.Slug, "kiralik-moda-daire-"))
}

func TestResultSpaces(t *testing.T) {
	h := newTestServer(t)
	createListing(t, h, listingBody("sale", "Satılık Daire", "istanbul", 5000000))
	createListing(t, h, listingBody("rent", "Kiralık Daire", "istanbul", 25000))
	createListing(t, h, listingBody("rent", "Kiralık Ofis", "ankara", 40000))

	decode := func(rec *httptest.ResponseRecorder) PaginatedListingsResponse {
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp PaginatedListingsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	all := decode(do(t, h, http.MethodGet, "/api/v1/listings", nil))
	assert.Equal(t, 3, all.Total)
	assert.Equal(t, "/api/v1/listings", all.URL)

	rent := decode(do(t, h, http.MethodGet, "/api/v1/for-rent?city=istanbul&country=tr", nil))
	require.Equal(t, 1, rent.Total)
	assert.Equal(t, domain.ListingTypeRent, rent.Listings[0].Type)
	assert.Equal(t, "/api/v1/for-rent?country=tr&city=istanbul", rent.URL)

	// маршрут пространства сильнее параметра type
	sale := decode(do(t, h, http.MethodGet, "/api/v1/for-sale?type=rent", nil))
	require.Equal(t, 1, sale.Total)
	assert.Equal(t, domain.ListingTypeSale, sale.Listings[0].Type)

	combined := decode(do(t, h, http.MethodGet, "/api/v1/listings?type=rent&sort=price-high&perPage=1", nil))
	assert.Equal(t, 2, combined.Total)
	assert.Equal(t, 2, combined.TotalPages)
	require.Len(t, combined.Listings, 1)
	assert.Equal(t, 40000.0, combined.Listings[0].Price)
}

func TestSearchPerPageFallsBackToConfiguredDefault(t *testing.T) {
	store := memory.NewListingStorageAdapter()
	findUC, err := usecase.NewFindListingsUseCase(store)
	require.NoError(t, err)
	h := NewSearchHandler(findUC, PagingConfig{DefaultPerPage: 5, MaxPerPage: 10})

	req := domain.SearchRequest{}
	h.applyPaging(&req, map[string][]string{"perPage": {"50"}})
	assert.Equal(t, 5, req.Page.PerPage)

	h.applyPaging(&req, map[string][]string{"perPage": {"7"}})
	assert.Equal(t, 7, req.Page.PerPage)

	h.applyPaging(&req, nil)
	assert.Equal(t, 5, req.Page.PerPage)
}

func TestStatusLifecycle(t *testing.T) {
	h := newTestServer(t)
	created := createListing(t, h, listingBody("sale", "Villa", "mugla", 12000000))
	path := "/api/v1/listings/" + created.ID + "/status"

	rec := do(t, h, http.MethodPatch, path, map[string]string{"status": "rented"})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPatch, path, map[string]string{"status": "sold"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.StatusSold, resp.Status)

	rec = do(t, h, http.MethodPatch, path, map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDelete(t *testing.T) {
	h := newTestServer(t)
	created := createListing(t, h, listingBody("sale", "Bahçeli Ev", "izmir", 3000000))

	update := listingBody("sale", "Bahçeli Ev", "izmir", 2800000)
	rec := do(t, h, http.MethodPut, "/api/v1/listings/"+created.ID, update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated ListingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 2800000.0, updated.Price)
	assert.Equal(t, created.Slug, updated.Slug)

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodPut, "/api/v1/listings/nope", update).Code)

	assert.Equal(t, http.StatusNoContent, do(t, h, http.MethodDelete, "/api/v1/listings/"+created.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/v1/listings/"+created.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/api/v1/listings/"+created.ID, nil).Code)
}

func TestFilterURL(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/v1/filters/url?type=sale&city=istanbul&country=tr&hasPool=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp FilterURLResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "/for-sale", resp.Route)
	assert.Equal(t, "country=tr&city=istanbul&hasPool=true", resp.Query)
	assert.Equal(t, "/api/v1/for-sale?country=tr&city=istanbul&hasPool=true", resp.URL)
}

func TestFilterOptionsAndDictionaries(t *testing.T) {
	h := newTestServer(t)
	createListing(t, h, listingBody("sale", "Daire", "istanbul", 1000000))
	createListing(t, h, listingBody("sale", "Daire Geniş", "istanbul", 3000000))

	rec := do(t, h, http.MethodGet, "/api/v1/filters/options?type=sale&category=Konut", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var opts FilterOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.Equal(t, 2, opts.Count)
	require.Contains(t, opts.Options, "price")
	assert.Equal(t, 1000000.0, *opts.Options["price"].Min)
	assert.Equal(t, 3000000.0, *opts.Options["price"].Max)
	assert.NotEmpty(t, opts.Options["sub_categories"].Options)

	rec = do(t, h, http.MethodGet, "/api/v1/dictionaries?names=currencies,unknown", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var dicts DictionaryItemsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dicts))
	require.Len(t, dicts, 1)
	assert.Equal(t, "TRY", dicts["currencies"][0].SystemName)
}

func TestLocationRoutes(t *testing.T) {
	h := newTestServer(t)

	var countries []domain.LocationOption
	rec := do(t, h, http.MethodGet, "/api/v1/locations/countries", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &countries))
	assert.NotEmpty(t, countries)

	rec = do(t, h, http.MethodGet, "/api/v1/locations/countries/tr/cities/istanbul/districts", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var districts []domain.LocationOption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &districts))
	assert.NotEmpty(t, districts)

	// неизвестный родитель - пустой список, а не ошибка
	rec = do(t, h, http.MethodGet, "/api/v1/locations/countries/zz/cities", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/v1/locations/cascade?district=kadikoy", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cascade CascadeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cascade))
	assert.Equal(t, domain.LocationPath{}, cascade.Path)
}

func TestTraceIDHeader(t *testing.T) {
	h := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "5f0c6f5e-1111-4a2b-9c3d-6e7f8a9b0c1d")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5f0c6f5e-1111-4a2b-9c3d-6e7f8a9b0c1d", rec.Header().Get("X-Trace-ID"))

	rec = do(t, h, http.MethodGet, "/health", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
