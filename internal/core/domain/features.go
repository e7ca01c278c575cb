package domain

// InteriorFeatures - внутренние признаки (iç özellikler)
type InteriorFeatures struct {
	KitchenType        string `json:"kitchenType,omitempty" bson:"kitchen_type,omitempty"`
	HasBalcony         bool   `json:"hasBalcony" bson:"has_balcony"`
	IsFurnished        bool   `json:"isFurnished" bson:"is_furnished"`
	HasAirConditioning bool   `json:"hasAirConditioning" bson:"has_air_conditioning"`
	HasBuiltInWardrobe bool   `json:"hasBuiltInWardrobe" bson:"has_built_in_wardrobe"`
	HasDressingRoom    bool   `json:"hasDressingRoom" bson:"has_dressing_room"`
	HasFireplace       bool   `json:"hasFireplace" bson:"has_fireplace"`
	HasJacuzzi         bool   `json:"hasJacuzzi" bson:"has_jacuzzi"`
	HasParquet         bool   `json:"hasParquet" bson:"has_parquet"`
	HasSteelDoor       bool   `json:"hasSteelDoor" bson:"has_steel_door"`
	HasWhiteGoods      bool   `json:"hasWhiteGoods" bson:"has_white_goods"`
}

// ExteriorFeatures - внешние признаки (dış özellikler)
type ExteriorFeatures struct {
	FacadeDirection      string `json:"facadeDirection,omitempty" bson:"facade_direction,omitempty"`
	HasGarden            bool   `json:"hasGarden" bson:"has_garden"`
	HasTerrace           bool   `json:"hasTerrace" bson:"has_terrace"`
	HasSecurity          bool   `json:"hasSecurity" bson:"has_security"`
	HasSportsArea        bool   `json:"hasSportsArea" bson:"has_sports_area"`
	HasPlayground        bool   `json:"hasPlayground" bson:"has_playground"`
	HasThermalInsulation bool   `json:"hasThermalInsulation" bson:"has_thermal_insulation"`
	HasSeaView           bool   `json:"hasSeaView" bson:"has_sea_view"`
}

// BuildingFeatures - признаки здания
type BuildingFeatures struct {
	HasElevator  bool `json:"hasElevator" bson:"has_elevator"`
	HasPool      bool `json:"hasPool" bson:"has_pool"`
	HasParking   bool `json:"hasParking" bson:"has_parking"`
	HasGenerator bool `json:"hasGenerator" bson:"has_generator"`
	HasDoorman   bool `json:"hasDoorman" bson:"has_doorman"`
	HasSatellite bool `json:"hasSatellite" bson:"has_satellite"`
	InSite       bool `json:"inSite" bson:"in_site"` // в охраняемом комплексе (site içerisinde)
}

// LandDetails - детали участка вместо наборов признаков
type LandDetails struct {
	ZoningStatus        string   `json:"zoningStatus,omitempty" bson:"zoning_status,omitempty"`
	PricePerSquareMeter *float64 `json:"pricePerSquareMeter,omitempty" bson:"price_per_square_meter,omitempty"`
	BlockNumber         string   `json:"blockNumber,omitempty" bson:"block_number,omitempty"`        // ada
	ParcelNumber        string   `json:"parcelNumber,omitempty" bson:"parcel_number,omitempty"`      // parsel
	SheetNumber         string   `json:"sheetNumber,omitempty" bson:"sheet_number,omitempty"`        // pafta
	FloorAreaRatio      *float64 `json:"floorAreaRatio,omitempty" bson:"floor_area_ratio,omitempty"` // KAKS
	CreditEligible      bool     `json:"creditEligible" bson:"credit_eligible"`
}

// FeatureFlag - булев переключатель фильтра
type FeatureFlag string

const (
	FlagHasParking        FeatureFlag = "hasParking"
	FlagHasElevator       FeatureFlag = "hasElevator"
	FlagIsFurnished       FeatureFlag = "isFurnished"
	FlagHasBalcony        FeatureFlag = "hasBalcony"
	FlagInSite            FeatureFlag = "inSite"
	FlagCreditEligible    FeatureFlag = "creditEligible"
	FlagExchangeAvailable FeatureFlag = "exchangeAvailable"
	FlagHasPool           FeatureFlag = "hasPool"
)

// FeatureFlags - фиксированный порядок переключателей, он же порядок в query string
var FeatureFlags = []FeatureFlag{
	FlagHasParking,
	FlagHasElevator,
	FlagIsFurnished,
	FlagHasBalcony,
	FlagInSite,
	FlagCreditEligible,
	FlagExchangeAvailable,
	FlagHasPool,
}

// FeatureToggles - набор переключателей фильтра. true = признак обязателен,
// false = ограничения нет (а не "признак должен отсутствовать").
type FeatureToggles struct {
	HasParking        bool `json:"hasParking,omitempty"`
	HasElevator       bool `json:"hasElevator,omitempty"`
	IsFurnished       bool `json:"isFurnished,omitempty"`
	HasBalcony        bool `json:"hasBalcony,omitempty"`
	InSite            bool `json:"inSite,omitempty"`
	CreditEligible    bool `json:"creditEligible,omitempty"`
	ExchangeAvailable bool `json:"exchangeAvailable,omitempty"`
	HasPool           bool `json:"hasPool,omitempty"`
}

func (t FeatureToggles) Get(flag FeatureFlag) bool {
	switch flag {
	case FlagHasParking:
		return t.HasParking
	case FlagHasElevator:
		return t.HasElevator
	case FlagIsFurnished:
		return t.IsFurnished
	case FlagHasBalcony:
		return t.HasBalcony
	case FlagInSite:
		return t.InSite
	case FlagCreditEligible:
		return t.CreditEligible
	case FlagExchangeAvailable:
		return t.ExchangeAvailable
	case FlagHasPool:
		return t.HasPool
	}
	return false
}

// Set возвращает копию с включенным/выключенным переключателем
func (t FeatureToggles) Set(flag FeatureFlag, value bool) FeatureToggles {
	switch flag {
	case FlagHasParking:
		t.HasParking = value
	case FlagHasElevator:
		t.HasElevator = value
	case FlagIsFurnished:
		t.IsFurnished = value
	case FlagHasBalcony:
		t.HasBalcony = value
	case FlagInSite:
		t.InSite = value
	case FlagCreditEligible:
		t.CreditEligible = value
	case FlagExchangeAvailable:
		t.ExchangeAvailable = value
	case FlagHasPool:
		t.HasPool = value
	}
	return t
}

// Required - список включенных переключателей в фиксированном порядке
func (t FeatureToggles) Required() []FeatureFlag {
	var flags []FeatureFlag
	for _, flag := range FeatureFlags {
		if t.Get(flag) {
			flags = append(flags, flag)
		}
	}
	return flags
}
