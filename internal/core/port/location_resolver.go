package port

import (
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/location"
)

// LocationResolverPort - справочник локаций. Неизвестный родитель дает пустой список.
type LocationResolverPort interface {
	Countries() []domain.LocationOption
	States(country string) []domain.LocationOption
	Cities(country, state string) []domain.LocationOption
	Districts(country, city string) []domain.LocationOption
	Select(path domain.LocationPath) location.Selector
}
