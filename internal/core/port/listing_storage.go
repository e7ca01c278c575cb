package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// ListingStoragePort - контракт хранилища объявлений.
// Хранилище обеспечивает уникальность slug и возвращает domain.ErrSlugTaken при конфликте,
// domain.ErrListingNotFound при отсутствии записи.
type ListingStoragePort interface {
	Create(ctx context.Context, listing *domain.Listing) error
	// Update - полная замена записи
	Update(ctx context.Context, listing *domain.Listing) error
	Delete(ctx context.Context, id string) error

	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Listing, error)

	// Search применяет фильтр, сортировку и пагинацию с той же семантикой, что и matching.Search
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
	Stats(ctx context.Context, filter domain.ListingFilter) (*domain.FilterStats, error)

	Close() error
}
