package domain

// LocationOption - пара {value, label} из справочника локаций.
// Value - стабильный ключ для фильтра и URL, Label - отображаемый текст.
type LocationOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LocationPath - выбранный путь в каскаде country -> state -> city -> district
type LocationPath struct {
	Country  string `json:"country,omitempty"`
	State    string `json:"state,omitempty"`
	City     string `json:"city,omitempty"`
	District string `json:"district,omitempty"`
}

// WithCountry меняет страну. Смена родителя сбрасывает все дочерние уровни,
// повторный выбор того же значения ничего не меняет.
func (p LocationPath) WithCountry(country string) LocationPath {
	if p.Country == country {
		return p
	}
	return LocationPath{Country: country}
}

func (p LocationPath) WithState(state string) LocationPath {
	if p.State == state {
		return p
	}
	return LocationPath{Country: p.Country, State: state}
}

func (p LocationPath) WithCity(city string) LocationPath {
	if p.City == city {
		return p
	}
	return LocationPath{Country: p.Country, State: p.State, City: city}
}

func (p LocationPath) WithDistrict(district string) LocationPath {
	p.District = district
	return p
}

// Normalize отбрасывает "осиротевшие" уровни: state без country, district без city
func (p LocationPath) Normalize() LocationPath {
	if p.Country == "" {
		p.State = ""
	}
	if p.City == "" {
		p.District = ""
	}
	return p
}

func (p LocationPath) IsEmpty() bool {
	return p.Country == "" && p.State == "" && p.City == "" && p.District == ""
}
