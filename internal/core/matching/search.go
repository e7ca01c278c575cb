package matching

import "catalog-service/internal/core/domain"

// Filter возвращает подходящие объявления во входном порядке
func Filter(listings []domain.Listing, f domain.ListingFilter) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if Matches(f, &listings[i]) {
			out = append(out, listings[i])
		}
	}
	return out
}

// Search - фильтр, сортировка, пагинация. Входной срез не меняется.
func Search(listings []domain.Listing, req domain.SearchRequest) domain.SearchResult {
	matched := Filter(listings, req.Filter)
	Sort(matched, req.Sort)

	page := req.Page.Normalized()
	return domain.SearchResult{
		Listings:   Paginate(matched, page),
		TotalCount: len(matched),
		Page:       page.Page,
		PerPage:    page.PerPage,
	}
}

// Stats - количество и диапазоны цены/площади по подходящим объявлениям
func Stats(listings []domain.Listing, f domain.ListingFilter) domain.FilterStats {
	var stats domain.FilterStats
	for i := range listings {
		l := &listings[i]
		if !Matches(f, l) {
			continue
		}
		stats.Count++
		stats.MinPrice, stats.MaxPrice = widen(stats.MinPrice, stats.MaxPrice, l.Price)
		if l.Specs.NetSize != nil {
			stats.MinSize, stats.MaxSize = widen(stats.MinSize, stats.MaxSize, *l.Specs.NetSize)
		}
	}
	return stats
}

func widen(min, max *float64, v float64) (*float64, *float64) {
	if min == nil || v < *min {
		min = &v
	}
	if max == nil || v > *max {
		vv := v
		max = &vv
	}
	return min, max
}
