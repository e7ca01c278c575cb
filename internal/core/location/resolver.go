// Package location - каскадный справочник country -> state -> city -> district.
package location

import "catalog-service/internal/core/domain"

type option struct {
	value string
	label string
}

type cityNode struct {
	key       string
	label     string
	districts []option
}

type stateNode struct {
	key    string
	label  string
	cities []cityNode
}

type countryNode struct {
	key    string
	label  string
	states []stateNode
	// города страны без штатов
	cities []cityNode
}

type stateKey struct{ country, state string }
type cityKey struct{ country, city string }

// Resolver - неизменяемый индекс, построенный один раз. Безопасен для конкурентного чтения.
type Resolver struct {
	countries []domain.LocationOption
	states    map[string][]domain.LocationOption
	cities    map[stateKey][]domain.LocationOption
	districts map[cityKey][]domain.LocationOption
}

var defaultResolver = newResolver(catalog)

// Default - резолвер по встроенному справочнику
func Default() *Resolver {
	return defaultResolver
}

// NewResolver строит индекс по встроенному справочнику
func NewResolver() *Resolver {
	return newResolver(catalog)
}

func newResolver(nodes []countryNode) *Resolver {
	r := &Resolver{
		states:    make(map[string][]domain.LocationOption),
		cities:    make(map[stateKey][]domain.LocationOption),
		districts: make(map[cityKey][]domain.LocationOption),
	}
	for _, c := range nodes {
		r.countries = append(r.countries, domain.LocationOption{Value: c.key, Label: c.label})
		for _, s := range c.states {
			r.states[c.key] = append(r.states[c.key], domain.LocationOption{Value: s.key, Label: s.label})
			r.addCities(c.key, s.key, s.cities)
		}
		r.addCities(c.key, "", c.cities)
	}
	return r
}

func (r *Resolver) addCities(country, state string, cities []cityNode) {
	for _, city := range cities {
		k := stateKey{country, state}
		r.cities[k] = append(r.cities[k], domain.LocationOption{Value: city.key, Label: city.label})
		ck := cityKey{country, city.key}
		for _, d := range city.districts {
			r.districts[ck] = append(r.districts[ck], domain.LocationOption{Value: d.value, Label: d.label})
		}
	}
}

func (r *Resolver) Countries() []domain.LocationOption {
	return clone(r.countries)
}

// States возвращает пустой список для неизвестной страны или страны без штатов
func (r *Resolver) States(country string) []domain.LocationOption {
	return clone(r.states[country])
}

// Cities: для страны со штатами пустой state дает пустой список, уровень пропустить нельзя
func (r *Resolver) Cities(country, state string) []domain.LocationOption {
	if country == "" {
		return []domain.LocationOption{}
	}
	return clone(r.cities[stateKey{country, state}])
}

func (r *Resolver) Districts(country, city string) []domain.LocationOption {
	if country == "" || city == "" {
		return []domain.LocationOption{}
	}
	return clone(r.districts[cityKey{country, city}])
}

// Label - отображаемое имя значения на уровне пути; пустая строка, если путь неизвестен
func (r *Resolver) Label(path domain.LocationPath) string {
	switch {
	case path.District != "":
		return findLabel(r.Districts(path.Country, path.City), path.District)
	case path.City != "":
		return findLabel(r.Cities(path.Country, path.State), path.City)
	case path.State != "":
		return findLabel(r.States(path.Country), path.State)
	case path.Country != "":
		return findLabel(r.countries, path.Country)
	}
	return ""
}

// Contains - каждый заданный уровень пути присутствует в справочнике под своим родителем
func (r *Resolver) Contains(path domain.LocationPath) bool {
	if path.Country == "" || findLabel(r.countries, path.Country) == "" {
		return false
	}
	if path.State != "" && findLabel(r.states[path.Country], path.State) == "" {
		return false
	}
	if path.City == "" {
		return path.District == ""
	}
	if findLabel(r.cities[stateKey{path.Country, path.State}], path.City) == "" {
		return false
	}
	return path.District == "" || findLabel(r.districts[cityKey{path.Country, path.City}], path.District) != ""
}

func findLabel(options []domain.LocationOption, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

func clone(options []domain.LocationOption) []domain.LocationOption {
	out := make([]domain.LocationOption, len(options))
	copy(out, options)
	return out
}
