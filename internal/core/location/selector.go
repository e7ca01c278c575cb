package location

import "catalog-service/internal/core/domain"

// Selector - состояние каскадного выбора: текущий путь и списки опций дочерних уровней.
// Пустой список означает "скрыть уровень".
type Selector struct {
	Path      domain.LocationPath     `json:"path"`
	Countries []domain.LocationOption `json:"countries"`
	States    []domain.LocationOption `json:"states"`
	Cities    []domain.LocationOption `json:"cities"`
	Districts []domain.LocationOption `json:"districts"`

	resolver *Resolver
}

// Select строит селектор по пути, отбрасывая "осиротевшие" уровни
func (r *Resolver) Select(path domain.LocationPath) Selector {
	return r.build(path.Normalize())
}

// build сначала вычисляет все списки опций и только затем возвращает новое значение,
// старые опции заменяются целиком
func (r *Resolver) build(path domain.LocationPath) Selector {
	return Selector{
		Path:      path,
		Countries: r.Countries(),
		States:    r.States(path.Country),
		Cities:    r.Cities(path.Country, path.State),
		Districts: r.Districts(path.Country, path.City),
		resolver:  r,
	}
}

func (s Selector) SelectCountry(country string) Selector {
	return s.res().build(s.Path.WithCountry(country))
}

func (s Selector) SelectState(state string) Selector {
	return s.res().build(s.Path.WithState(state))
}

func (s Selector) SelectCity(city string) Selector {
	return s.res().build(s.Path.WithCity(city))
}

func (s Selector) SelectDistrict(district string) Selector {
	return s.res().build(s.Path.WithDistrict(district))
}

func (s Selector) res() *Resolver {
	if s.resolver == nil {
		return defaultResolver
	}
	return s.resolver
}
