package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-service/internal/core/domain"
)

func listing(id, slug string, price float64) *domain.Listing {
	return &domain.Listing{
		ID:        id,
		Slug:      slug,
		Type:      domain.ListingTypeSale,
		Status:    domain.StatusActive,
		Title:     "Villa " + id,
		Price:     price,
		Location:  domain.Location{Country: "tr", City: "istanbul"},
		Building:  &domain.BuildingFeatures{HasPool: true},
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewListingStorageAdapter()

	require.NoError(t, store.Create(ctx, listing("a", "satilik-villa", 100)))

	got, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "satilik-villa", got.Slug)

	bySlug, err := store.GetBySlug(ctx, "satilik-villa")
	require.NoError(t, err)
	assert.Equal(t, "a", bySlug.ID)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	_, err = store.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestSlugUniqueness(t *testing.T) {
	ctx := context.Background()
	store := NewListingStorageAdapter()

	require.NoError(t, store.Create(ctx, listing("a", "satilik-villa", 100)))
	assert.ErrorIs(t, store.Create(ctx, listing("b", "satilik-villa", 100)), domain.ErrSlugTaken)

	require.NoError(t, store.Create(ctx, listing("b", "satilik-villa-b", 100)))
	assert.ErrorIs(t, store.Update(ctx, listing("b", "satilik-villa", 100)), domain.ErrSlugTaken)

	// своя запись конфликтом не считается
	assert.NoError(t, store.Update(ctx, listing("a", "satilik-villa", 200)))
}

func TestUpdateReleasesOldSlug(t *testing.T) {
	ctx := context.Background()
	store := NewListingStorageAdapter()

	require.NoError(t, store.Create(ctx, listing("a", "old", 100)))
	require.NoError(t, store.Update(ctx, listing("a", "new", 100)))

	_, err := store.GetBySlug(ctx, "old")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	require.NoError(t, store.Create(ctx, listing("b", "old", 100)))

	assert.ErrorIs(t, store.Update(ctx, listing("zzz", "x", 1)), domain.ErrListingNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := NewListingStorageAdapter()
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Create(ctx, listing(id, "slug-"+id, float64(i))))
	}

	require.NoError(t, store.Delete(ctx, "b"))
	assert.ErrorIs(t, store.Delete(ctx, "b"), domain.ErrListingNotFound)

	got, err := store.GetByID(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "c", got.ID)

	res, err := store.Search(ctx, domain.SearchRequest{Sort: domain.SortPriceLow})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount)
}

func TestReturnedListingsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewListingStorageAdapter()
	require.NoError(t, store.Create(ctx, listing("a", "slug-a", 100)))

	got, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Building.HasPool = false
	got.Price = 1

	again, err := store.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, again.Building.HasPool)
	assert.Equal(t, 100.0, again.Price)
}

func TestSearchAndStats(t *testing.T) {
	ctx := context.Background()
	store := NewListingStorageAdapter()
	for i, price := range []float64{300, 100, 200} {
		require.NoError(t, store.Create(ctx, listing(fmt.Sprint(i), fmt.Sprint("slug-", i), price)))
	}

	res, err := store.Search(ctx, domain.SearchRequest{
		Filter: domain.ListingFilter{MaxPrice: ptr(250)},
		Sort:   domain.SortPriceHigh,
		Page:   domain.Pagination{Page: 1, PerPage: 10},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalCount)
	assert.Equal(t, 200.0, res.Listings[0].Price)

	stats, err := store.Stats(ctx, domain.ListingFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 100.0, *stats.MinPrice)
	assert.Equal(t, 300.0, *stats.MaxPrice)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewListingStorageAdapter()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprint(i)
			_ = store.Create(ctx, listing(id, "slug-"+id, float64(i)))
			_, _ = store.Search(ctx, domain.SearchRequest{})
		}(i)
	}
	wg.Wait()

	res, err := store.Search(ctx, domain.SearchRequest{Page: domain.Pagination{PerPage: 100}})
	require.NoError(t, err)
	assert.Equal(t, 20, res.TotalCount)
}

func ptr(v float64) *float64 { return &v }
