package domain

// ListingFilter - каноническое представление поискового запроса.
// Каждое поле независимо: пустая строка / nil / false означает "нет ограничения".
type ListingFilter struct {
	Type        ListingType  `json:"type,omitempty"`
	Category    string       `json:"category,omitempty"`
	SubCategory string       `json:"subCategory,omitempty"`
	Location    LocationPath `json:"location"`

	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
	// Площадь нетто, м²
	MinSize *float64 `json:"minSize,omitempty"`
	MaxSize *float64 `json:"maxSize,omitempty"`

	Rooms         string   `json:"rooms,omitempty"`
	Furnishing    string   `json:"furnishing,omitempty"`
	KitchenType   string   `json:"kitchenType,omitempty"`
	HeatingType   string   `json:"heatingType,omitempty"`
	UsageStatus   string   `json:"usageStatus,omitempty"`
	DeedStatus    string   `json:"deedStatus,omitempty"`
	FromWho       string   `json:"fromWho,omitempty"`
	MaxMonthlyFee *float64 `json:"maxMonthlyFee,omitempty"`

	// Префикс geohash (видимая область карты)
	GeoCell string `json:"geoCell,omitempty"`

	Features FeatureToggles `json:"features"`

	Search string `json:"search,omitempty"`
}

// SelectCountry и остальные Select* применяют каскадный сброс к пути локации фильтра
func (f ListingFilter) SelectCountry(country string) ListingFilter {
	f.Location = f.Location.WithCountry(country)
	return f
}

func (f ListingFilter) SelectState(state string) ListingFilter {
	f.Location = f.Location.WithState(state)
	return f
}

func (f ListingFilter) SelectCity(city string) ListingFilter {
	f.Location = f.Location.WithCity(city)
	return f
}

func (f ListingFilter) SelectDistrict(district string) ListingFilter {
	f.Location = f.Location.WithDistrict(district)
	return f
}

// SortOrder - порядок выдачи
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortPriceHigh SortOrder = "price-high"
	SortPriceLow  SortOrder = "price-low"
)

var SortOrders = []SortOrder{SortNewest, SortOldest, SortPriceHigh, SortPriceLow}

func (s SortOrder) IsValid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceHigh, SortPriceLow:
		return true
	}
	return false
}

const (
	DefaultPerPage = 20
	MaxPerPage     = 100

	// MaxPage ограничивает номер страницы, чтобы смещение не переполняло int
	MaxPage = 1_000_000
)

// Pagination - страница (с 1) и размер страницы
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

// Normalized приводит некорректные значения к значениям по умолчанию
func (p Pagination) Normalized() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PerPage < 1 || p.PerPage > MaxPerPage {
		p.PerPage = DefaultPerPage
	}
	return p
}

func (p Pagination) Offset() int {
	n := p.Normalized()
	return (n.Page - 1) * n.PerPage
}

func (p Pagination) Limit() int {
	return p.Normalized().PerPage
}

// SearchRequest - фильтр плюс сортировка и пагинация
type SearchRequest struct {
	Filter ListingFilter `json:"filter"`
	Sort   SortOrder     `json:"sort"`
	Page   Pagination    `json:"page"`
}

// SearchResult - страница выдачи
type SearchResult struct {
	Listings   []Listing
	TotalCount int
	Page       int
	PerPage    int
}

// FilterStats - диапазоны по найденным объектам, для подсказок в форме фильтра
type FilterStats struct {
	Count    int
	MinPrice *float64
	MaxPrice *float64
	MinSize  *float64
	MaxSize  *float64
}
