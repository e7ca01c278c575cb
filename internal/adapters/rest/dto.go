package rest

import (
	"time"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/location"
)

// CategoryRequest - категория в теле запроса
type CategoryRequest struct {
	Main string `json:"main" validate:"required"`
	Sub  string `json:"sub"`
}

type CoordinatesRequest struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type LocationRequest struct {
	Country      string              `json:"country"`
	State        string              `json:"state"`
	City         string              `json:"city" validate:"required"`
	District     string              `json:"district"`
	Neighborhood string              `json:"neighborhood"`
	Address      string              `json:"address" validate:"max=500"`
	Coordinates  *CoordinatesRequest `json:"coordinates"`
}

type SpecsRequest struct {
	NetSize       *float64 `json:"netSize" validate:"omitempty,gte=0"`
	GrossSize     *float64 `json:"grossSize" validate:"omitempty,gte=0"`
	RoomType      string   `json:"roomType"`
	BathroomCount *int     `json:"bathroomCount" validate:"omitempty,gte=0"`
	BalconyCount  *int     `json:"balconyCount" validate:"omitempty,gte=0"`
	Age           *int     `json:"age" validate:"omitempty,gte=0"`
	Floor         *int     `json:"floor"`
	TotalFloors   *int     `json:"totalFloors" validate:"omitempty,gte=0"`
	HeatingType   string   `json:"heatingType"`
	Furnishing    string   `json:"furnishing"`
	UsageStatus   string   `json:"usageStatus"`
	DeedStatus    string   `json:"deedStatus"`
	FromWho       string   `json:"fromWho"`
	MonthlyFee    *float64 `json:"monthlyFee" validate:"omitempty,gte=0"`
}

// ListingRequest - тело POST/PUT /listings. Проверяется validator'ом,
// бизнес-правила проверяет домен.
type ListingRequest struct {
	Type        string          `json:"type" validate:"required,oneof=sale rent"`
	Status      string          `json:"status" validate:"omitempty,oneof=active passive sold rented"`
	Title       string          `json:"title" validate:"required,max=200"`
	Description string          `json:"description" validate:"max=10000"`
	Category    CategoryRequest `json:"category"`
	Location    LocationRequest `json:"location"`
	Specs       SpecsRequest    `json:"specs"`

	Interior *domain.InteriorFeatures `json:"interiorFeatures"`
	Exterior *domain.ExteriorFeatures `json:"exteriorFeatures"`
	Building *domain.BuildingFeatures `json:"buildingFeatures"`
	Land     *domain.LandDetails      `json:"landDetails"`

	Price             float64 `json:"price" validate:"gt=0"`
	Currency          string  `json:"currency" validate:"omitempty,len=3"`
	CreditEligible    bool    `json:"creditEligible"`
	ExchangeAvailable bool    `json:"exchangeAvailable"`

	Images  []string `json:"images" validate:"max=50,dive,url"`
	AgentID string   `json:"agentId"`
}

func (r ListingRequest) toDomain() domain.Listing {
	l := domain.Listing{
		Type:        domain.ListingType(r.Type),
		Status:      domain.ListingStatus(r.Status),
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.Category{Main: r.Category.Main, Sub: r.Category.Sub},
		Location: domain.Location{
			Country:      r.Location.Country,
			State:        r.Location.State,
			City:         r.Location.City,
			District:     r.Location.District,
			Neighborhood: r.Location.Neighborhood,
			Address:      r.Location.Address,
		},
		Specs: domain.Specs{
			NetSize:       r.Specs.NetSize,
			GrossSize:     r.Specs.GrossSize,
			RoomType:      r.Specs.RoomType,
			BathroomCount: r.Specs.BathroomCount,
			BalconyCount:  r.Specs.BalconyCount,
			Age:           r.Specs.Age,
			Floor:         r.Specs.Floor,
			TotalFloors:   r.Specs.TotalFloors,
			HeatingType:   r.Specs.HeatingType,
			Furnishing:    r.Specs.Furnishing,
			UsageStatus:   r.Specs.UsageStatus,
			DeedStatus:    r.Specs.DeedStatus,
			FromWho:       r.Specs.FromWho,
			MonthlyFee:    r.Specs.MonthlyFee,
		},
		Interior:          r.Interior,
		Exterior:          r.Exterior,
		Building:          r.Building,
		Land:              r.Land,
		Price:             r.Price,
		Currency:          r.Currency,
		CreditEligible:    r.CreditEligible,
		ExchangeAvailable: r.ExchangeAvailable,
		Images:            r.Images,
		AgentID:           r.AgentID,
	}
	if r.Location.Coordinates != nil {
		l.Location.Coordinates = &domain.Coordinates{Lat: r.Location.Coordinates.Lat, Lng: r.Location.Coordinates.Lng}
	}
	return l
}

// StatusChangeRequest - тело PATCH /listings/{id}/status
type StatusChangeRequest struct {
	Status string `json:"status" validate:"required,oneof=active passive sold rented"`
}

// ListingResponse - объявление в ответе API
type ListingResponse struct {
	domain.Listing
	// Каноническая ссылка на карточку
	Path string `json:"path"`
}

func toListingResponse(l domain.Listing) ListingResponse {
	return ListingResponse{Listing: l, Path: "/listing/" + l.Slug}
}

// PaginatedListingsResponse - страница выдачи
type PaginatedListingsResponse struct {
	Listings   []ListingResponse `json:"listings"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"perPage"`
	TotalPages int               `json:"totalPages"`
	// Каноническая ссылка на эту выдачу
	URL string `json:"url"`
}

// FilterURLResponse - маршрут и query string для фильтра
type FilterURLResponse struct {
	Route string `json:"route"`
	Query string `json:"query"`
	URL   string `json:"url"`
}

type DictionaryItemResponse struct {
	SystemName  string `json:"system_name"`
	DisplayName string `json:"display_name"`
}

type DictionaryItemsResponse map[string][]DictionaryItemResponse

type FilterOptionResponse struct {
	Options []DictionaryItemResponse `json:"options,omitempty"`
	Min     *float64                 `json:"min,omitempty"`
	Max     *float64                 `json:"max,omitempty"`
}

type FilterOptionsResponse struct {
	Options map[string]FilterOptionResponse `json:"options"`
	Count   int                             `json:"count"`
}

func toDictionaryItems(items []domain.DictionaryItem) []DictionaryItemResponse {
	out := make([]DictionaryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, DictionaryItemResponse{SystemName: item.SystemName, DisplayName: item.DisplayName})
	}
	return out
}

// CascadeResponse - состояние каскадного выбора локации
type CascadeResponse struct {
	Path      domain.LocationPath     `json:"path"`
	Countries []domain.LocationOption `json:"countries"`
	States    []domain.LocationOption `json:"states"`
	Cities    []domain.LocationOption `json:"cities"`
	Districts []domain.LocationOption `json:"districts"`
}

func toCascadeResponse(s location.Selector) CascadeResponse {
	return CascadeResponse{
		Path:      s.Path,
		Countries: s.Countries,
		States:    s.States,
		Cities:    s.Cities,
		Districts: s.Districts,
	}
}

// HealthResponse - ответ /health
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
