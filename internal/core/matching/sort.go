package matching

import (
	"sort"

	"catalog-service/internal/core/domain"
)

// Sort упорядочивает на месте. Сортировка стабильная: при равенстве ключа
// сохраняется входной порядок. Неизвестный порядок считается newest.
func Sort(listings []domain.Listing, order domain.SortOrder) {
	var less func(a, b *domain.Listing) bool
	switch order {
	case domain.SortOldest:
		less = func(a, b *domain.Listing) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case domain.SortPriceHigh:
		less = func(a, b *domain.Listing) bool { return a.Price > b.Price }
	case domain.SortPriceLow:
		less = func(a, b *domain.Listing) bool { return a.Price < b.Price }
	default:
		less = func(a, b *domain.Listing) bool { return a.CreatedAt.After(b.CreatedAt) }
	}
	sort.SliceStable(listings, func(i, j int) bool {
		return less(&listings[i], &listings[j])
	})
}

// Paginate - offset/limit. Страница за последней дает пустой срез, а не ошибку.
func Paginate(listings []domain.Listing, page domain.Pagination) []domain.Listing {
	offset, limit := page.Offset(), page.Limit()
	if offset < 0 || offset >= len(listings) {
		return []domain.Listing{}
	}
	end := offset + min(limit, len(listings)-offset)
	return listings[offset:end]
}
