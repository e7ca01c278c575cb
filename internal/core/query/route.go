package query

import (
	"net/url"

	"catalog-service/internal/core/domain"
)

// Route - одно из трех взаимоисключающих пространств выдачи
type Route string

const (
	RouteSale     Route = "/for-sale"
	RouteRent     Route = "/for-rent"
	RouteCombined Route = "/listings"
)

// RouteFor выбирает пространство только по полю type. Остальные поля
// сужают выдачу внутри выбранного пространства.
func RouteFor(f domain.ListingFilter) Route {
	switch f.Type {
	case domain.ListingTypeSale:
		return RouteSale
	case domain.ListingTypeRent:
		return RouteRent
	}
	return RouteCombined
}

// SpaceForRoute - тип сделки, который навязывает маршрут; пустой для общего пространства
func SpaceForRoute(r Route) domain.ListingType {
	switch r {
	case RouteSale:
		return domain.ListingTypeSale
	case RouteRent:
		return domain.ListingTypeRent
	}
	return ""
}

// BuildURL - каноническая ссылка на выдачу. type не попадает в query string,
// его несет маршрут.
func BuildURL(basePath string, req domain.SearchRequest) string {
	path := basePath + string(RouteFor(req.Filter))
	encoded := EncodeSearch(req).Without(KeyType).Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// ParseRoute восстанавливает запрос по маршруту и query string. На маршрутах
// пространств тип берется из маршрута, на общем - из параметра type.
func ParseRoute(r Route, values url.Values) domain.SearchRequest {
	req := DecodeSearch(values)
	if forced := SpaceForRoute(r); forced != "" {
		req.Filter.Type = forced
	}
	return req
}
