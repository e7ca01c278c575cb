package domain

import (
	"time"
)

// ListingType - транзакционный фасет объявления, делит каталог на два пространства
type ListingType string

const (
	ListingTypeSale ListingType = "sale"
	ListingTypeRent ListingType = "rent"
)

func (t ListingType) IsValid() bool {
	return t == ListingTypeSale || t == ListingTypeRent
}

// ListingStatus - мягкое состояние объявления
type ListingStatus string

const (
	StatusActive  ListingStatus = "active"
	StatusPassive ListingStatus = "passive"
	StatusSold    ListingStatus = "sold"
	StatusRented  ListingStatus = "rented"
)

func (s ListingStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusPassive, StatusSold, StatusRented:
		return true
	}
	return false
}

// Coordinates - опциональные геокоординаты объекта
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Location - иерархический адрес. Уровень нельзя пропустить:
// district только при city, state только при country.
type Location struct {
	Country      string       `json:"country" bson:"country"`
	State        string       `json:"state,omitempty" bson:"state,omitempty"`
	City         string       `json:"city" bson:"city"`
	District     string       `json:"district,omitempty" bson:"district,omitempty"`
	Neighborhood string       `json:"neighborhood,omitempty" bson:"neighborhood,omitempty"`
	Address      string       `json:"address,omitempty" bson:"address,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
}

// Path возвращает ту часть адреса, по которой работает фильтрация
func (l Location) Path() LocationPath {
	return LocationPath{
		Country:  l.Country,
		State:    l.State,
		City:     l.City,
		District: l.District,
	}
}

// Specs - числовые и перечислимые физические характеристики
type Specs struct {
	NetSize       *float64 `json:"netSize,omitempty" bson:"net_size,omitempty"`
	GrossSize     *float64 `json:"grossSize,omitempty" bson:"gross_size,omitempty"`
	RoomType      string   `json:"roomType,omitempty" bson:"room_type,omitempty"` // "3+1"
	BathroomCount *int     `json:"bathroomCount,omitempty" bson:"bathroom_count,omitempty"`
	BalconyCount  *int     `json:"balconyCount,omitempty" bson:"balcony_count,omitempty"`
	Age           *int     `json:"age,omitempty" bson:"age,omitempty"`
	Floor         *int     `json:"floor,omitempty" bson:"floor,omitempty"`
	TotalFloors   *int     `json:"totalFloors,omitempty" bson:"total_floors,omitempty"`
	HeatingType   string   `json:"heatingType,omitempty" bson:"heating_type,omitempty"`
	Furnishing    string   `json:"furnishing,omitempty" bson:"furnishing,omitempty"`
	UsageStatus   string   `json:"usageStatus,omitempty" bson:"usage_status,omitempty"`
	DeedStatus    string   `json:"deedStatus,omitempty" bson:"deed_status,omitempty"`
	FromWho       string   `json:"fromWho,omitempty" bson:"from_who,omitempty"`
	MonthlyFee    *float64 `json:"monthlyFee,omitempty" bson:"monthly_fee,omitempty"` // аидат
}

// Listing - объявление каталога
type Listing struct {
	ID          string        `json:"id" bson:"_id"`
	Slug        string        `json:"slug" bson:"slug"`
	Type        ListingType   `json:"type" bson:"type"`
	Status      ListingStatus `json:"status" bson:"status"`
	Title       string        `json:"title" bson:"title"`
	Description string        `json:"description,omitempty" bson:"description,omitempty"`
	Category    Category      `json:"category" bson:"category"`
	Location    Location      `json:"location" bson:"location"`
	Specs       Specs         `json:"specs" bson:"specs"`

	// Наборы признаков. У участка (Arsa) их нет, вместо них LandDetails
	Interior *InteriorFeatures `json:"interiorFeatures,omitempty" bson:"interior,omitempty"`
	Exterior *ExteriorFeatures `json:"exteriorFeatures,omitempty" bson:"exterior,omitempty"`
	Building *BuildingFeatures `json:"buildingFeatures,omitempty" bson:"building,omitempty"`
	Land     *LandDetails      `json:"landDetails,omitempty" bson:"land,omitempty"`

	// Для rent - ежемесячная сумма
	Price             float64 `json:"price" bson:"price"`
	Currency          string  `json:"currency" bson:"currency"`
	CreditEligible    bool    `json:"creditEligible" bson:"credit_eligible"`
	ExchangeAvailable bool    `json:"exchangeAvailable" bson:"exchange_available"`

	Images  []string `json:"images,omitempty" bson:"images,omitempty"`
	AgentID string   `json:"agentId,omitempty" bson:"agent_id,omitempty"`

	// Ячейка geohash, вычисляется из координат при сохранении
	GeoCell string `json:"geoCell,omitempty" bson:"geo_cell,omitempty"`

	CreatedAt   time.Time  `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" bson:"updated_at"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" bson:"published_at,omitempty"`
}

// IsPublished - объявление хотя бы раз было активным, slug уже мог попасть в индексы
func (l *Listing) IsPublished() bool {
	return l.PublishedAt != nil
}

// IsCreditEligible учитывает флаг участка
func (l *Listing) IsCreditEligible() bool {
	if l.CreditEligible {
		return true
	}
	return l.Land != nil && l.Land.CreditEligible
}

// Flag разрешает булев переключатель фильтра в признак объявления.
// Отсутствующий набор признаков означает false.
func (l *Listing) Flag(flag FeatureFlag) bool {
	switch flag {
	case FlagHasParking:
		return l.Building != nil && l.Building.HasParking
	case FlagHasElevator:
		return l.Building != nil && l.Building.HasElevator
	case FlagIsFurnished:
		return l.Interior != nil && l.Interior.IsFurnished
	case FlagHasBalcony:
		return l.Interior != nil && l.Interior.HasBalcony
	case FlagInSite:
		return l.Building != nil && l.Building.InSite
	case FlagCreditEligible:
		return l.IsCreditEligible()
	case FlagExchangeAvailable:
		return l.ExchangeAvailable
	case FlagHasPool:
		return l.Building != nil && l.Building.HasPool
	}
	return false
}

// CanTransition - допустимые переходы жизненного цикла
func CanTransition(listingType ListingType, from, to ListingStatus) bool {
	if from == to {
		return false
	}
	switch from {
	case StatusActive:
		switch to {
		case StatusPassive:
			return true
		case StatusSold:
			return listingType == ListingTypeSale
		case StatusRented:
			return listingType == ListingTypeRent
		}
	case StatusPassive, StatusSold, StatusRented:
		return to == StatusActive
	}
	return false
}
