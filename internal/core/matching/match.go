// Package matching - предикат фильтра, сортировка и пагинация выдачи каталога.
package matching

import (
	"strings"
	"unicode"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/translit"
)

// Matches - все заданные ограничения через AND, отсутствующие поля не ограничивают.
// Функция тотальна: для любого фильтра возвращает bool.
func Matches(f domain.ListingFilter, l *domain.Listing) bool {
	if f.Type != "" && l.Type != f.Type {
		return false
	}
	if f.Category != "" && l.Category.Main != f.Category {
		return false
	}
	if f.SubCategory != "" && l.Category.Sub != f.SubCategory {
		return false
	}
	if !matchLocation(f.Location.Normalize(), l.Location) {
		return false
	}
	if !InRange(l.Price, f.MinPrice, f.MaxPrice) {
		return false
	}
	if f.MinSize != nil || f.MaxSize != nil {
		if l.Specs.NetSize == nil || !InRange(*l.Specs.NetSize, f.MinSize, f.MaxSize) {
			return false
		}
	}
	if f.MaxMonthlyFee != nil {
		if l.Specs.MonthlyFee == nil || *l.Specs.MonthlyFee > *f.MaxMonthlyFee {
			return false
		}
	}
	if !matchSpecs(f, l) {
		return false
	}
	if f.GeoCell != "" && !strings.HasPrefix(l.GeoCell, f.GeoCell) {
		return false
	}
	for _, flag := range f.Features.Required() {
		if !l.Flag(flag) {
			return false
		}
	}
	return MatchesText(f.Search, l)
}

// InRange - включительные границы; min > max не выполняется ни для какого значения
func InRange(v float64, min, max *float64) bool {
	if min != nil && max != nil && *min > *max {
		return false
	}
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func matchLocation(p domain.LocationPath, loc domain.Location) bool {
	if p.Country != "" && loc.Country != p.Country {
		return false
	}
	if p.State != "" && loc.State != p.State {
		return false
	}
	if p.City != "" && loc.City != p.City {
		return false
	}
	if p.District != "" && loc.District != p.District {
		return false
	}
	return true
}

func matchSpecs(f domain.ListingFilter, l *domain.Listing) bool {
	kitchen := ""
	if l.Interior != nil {
		kitchen = l.Interior.KitchenType
	}
	pairs := [...]struct{ want, got string }{
		{f.Rooms, l.Specs.RoomType},
		{f.Furnishing, l.Specs.Furnishing},
		{f.KitchenType, kitchen},
		{f.HeatingType, l.Specs.HeatingType},
		{f.UsageStatus, l.Specs.UsageStatus},
		{f.DeedStatus, l.Specs.DeedStatus},
		{f.FromWho, l.Specs.FromWho},
	}
	for _, p := range pairs {
		if p.want != "" && p.got != p.want {
			return false
		}
	}
	return true
}

// SearchFields - текстовые поля для свободного поиска, в порядке проверки
func SearchFields(l *domain.Listing) []string {
	return []string{l.Title, l.Location.City, l.Location.District, l.ID}
}

// MatchesText - регистронезависимая подстрока хотя бы в одном поле; пустой токен не ограничивает
func MatchesText(search string, l *domain.Listing) bool {
	token := SearchToken(search)
	if token == "" {
		return true
	}
	for _, field := range SearchFields(l) {
		if strings.Contains(translit.Fold(field), token) {
			return true
		}
	}
	return false
}

// SearchToken - нормализованный поисковый токен. Управляющие символы заменяются пробелом,
// поэтому токен не может совпасть через разделитель полей в SearchText.
func SearchToken(search string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, search)
	return translit.Fold(strings.TrimSpace(cleaned))
}

// SearchText - нормализованный текст для хранилищ, которые ищут подстроку на своей стороне
func SearchText(l *domain.Listing) string {
	fields := SearchFields(l)
	for i, field := range fields {
		fields[i] = translit.Fold(field)
	}
	return strings.Join(fields, "\n")
}
