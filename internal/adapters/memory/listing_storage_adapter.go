package memory

import (
	"context"
	"fmt"
	"sync"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/matching"
	"catalog-service/internal/core/port"
)

// ListingStorageAdapter - хранилище в памяти. Порядок вставки служит
// стабильным порядком для сортировки при равных ключах.
type ListingStorageAdapter struct {
	mu       sync.RWMutex
	listings []domain.Listing
	byID     map[string]int
	bySlug   map[string]string
}

func NewListingStorageAdapter() *ListingStorageAdapter {
	return &ListingStorageAdapter{
		byID:   make(map[string]int),
		bySlug: make(map[string]string),
	}
}

func (a *ListingStorageAdapter) Create(ctx context.Context, listing *domain.Listing) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.byID[listing.ID]; ok {
		return fmt.Errorf("listing %s already exists", listing.ID)
	}
	if _, ok := a.bySlug[listing.Slug]; ok {
		return fmt.Errorf("%w: %s", domain.ErrSlugTaken, listing.Slug)
	}

	a.listings = append(a.listings, cloneListing(*listing))
	a.byID[listing.ID] = len(a.listings) - 1
	a.bySlug[listing.Slug] = listing.ID

	contextkeys.LoggerFromContext(ctx).Debug("Listing stored", port.Fields{
		"component":  "MemoryListingStorage",
		"listing_id": listing.ID,
	})
	return nil
}

func (a *ListingStorageAdapter) Update(ctx context.Context, listing *domain.Listing) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx, ok := a.byID[listing.ID]
	if !ok {
		return domain.ErrListingNotFound
	}
	if owner, taken := a.bySlug[listing.Slug]; taken && owner != listing.ID {
		return fmt.Errorf("%w: %s", domain.ErrSlugTaken, listing.Slug)
	}

	delete(a.bySlug, a.listings[idx].Slug)
	a.listings[idx] = cloneListing(*listing)
	a.bySlug[listing.Slug] = listing.ID
	return nil
}

func (a *ListingStorageAdapter) Delete(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx, ok := a.byID[id]
	if !ok {
		return domain.ErrListingNotFound
	}
	delete(a.bySlug, a.listings[idx].Slug)
	a.listings = append(a.listings[:idx], a.listings[idx+1:]...)

	a.byID = make(map[string]int, len(a.listings))
	for i := range a.listings {
		a.byID[a.listings[i].ID] = i
	}
	return nil
}

func (a *ListingStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	idx, ok := a.byID[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	l := cloneListing(a.listings[idx])
	return &l, nil
}

func (a *ListingStorageAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	a.mu.RLock()
	id, ok := a.bySlug[slug]
	a.mu.RUnlock()
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return a.GetByID(ctx, id)
}

func (a *ListingStorageAdapter) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	result := matching.Search(a.snapshot(), req)
	return &result, nil
}

func (a *ListingStorageAdapter) Stats(ctx context.Context, filter domain.ListingFilter) (*domain.FilterStats, error) {
	stats := matching.Stats(a.snapshot(), filter)
	return &stats, nil
}

func (a *ListingStorageAdapter) Close() error {
	return nil
}

// snapshot - копия в порядке вставки, дальше работаем без блокировки
func (a *ListingStorageAdapter) snapshot() []domain.Listing {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]domain.Listing, len(a.listings))
	for i := range a.listings {
		out[i] = cloneListing(a.listings[i])
	}
	return out
}

func cloneListing(l domain.Listing) domain.Listing {
	if l.Location.Coordinates != nil {
		c := *l.Location.Coordinates
		l.Location.Coordinates = &c
	}
	if l.Interior != nil {
		v := *l.Interior
		l.Interior = &v
	}
	if l.Exterior != nil {
		v := *l.Exterior
		l.Exterior = &v
	}
	if l.Building != nil {
		v := *l.Building
		l.Building = &v
	}
	if l.Land != nil {
		v := *l.Land
		l.Land = &v
	}
	if l.PublishedAt != nil {
		t := *l.PublishedAt
		l.PublishedAt = &t
	}
	l.Images = append([]string(nil), l.Images...)
	return l
}
