package domain

// Перечисления турецкого рынка. Значения совпадают с ключами в URL.

var RoomTypes = []string{
	"1+0", "1+1", "1.5+1", "2+0", "2+1", "2.5+1", "2+2",
	"3+1", "3.5+1", "3+2", "4+1", "4.5+1", "4+2", "5+1", "5+2", "6+1", "7+1", "8+",
}

var HeatingTypes = []string{
	"none", "stove", "natural-gas-stove", "central", "central-meter", "combi", "floor-heating",
	"air-conditioning", "heat-pump", "solar", "geothermal",
}

var FurnishingStates = []string{"furnished", "unfurnished", "partially-furnished"}

var KitchenTypes = []string{"open", "closed", "american"}

var UsageStatuses = []string{"empty", "tenant", "owner"}

var DeedStatuses = []string{
	"condominium",    // kat mülkiyeti
	"floor-easement", // kat irtifakı
	"shared-title",   // hisseli tapu
	"detached-title", // müstakil tapu
	"cooperative",
	"no-deed",
}

var FromWhoValues = []string{"owner", "agency", "construction-company", "bank"}

var FacadeDirections = []string{"north", "south", "east", "west", "north-east", "north-west", "south-east", "south-west"}

var ZoningStatuses = []string{"residential", "commercial", "industrial", "agricultural", "tourism", "mixed", "unzoned"}

var Currencies = []string{"TRY", "USD", "EUR", "GBP"}

var ListingTypes = []ListingType{ListingTypeSale, ListingTypeRent}

var ListingStatuses = []ListingStatus{StatusActive, StatusPassive, StatusSold, StatusRented}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func IsValidRoomType(v string) bool        { return contains(RoomTypes, v) }
func IsValidHeatingType(v string) bool     { return contains(HeatingTypes, v) }
func IsValidFurnishing(v string) bool      { return contains(FurnishingStates, v) }
func IsValidKitchenType(v string) bool     { return contains(KitchenTypes, v) }
func IsValidUsageStatus(v string) bool     { return contains(UsageStatuses, v) }
func IsValidDeedStatus(v string) bool      { return contains(DeedStatuses, v) }
func IsValidFromWho(v string) bool         { return contains(FromWhoValues, v) }
func IsValidFacadeDirection(v string) bool { return contains(FacadeDirections, v) }
func IsValidZoningStatus(v string) bool    { return contains(ZoningStatuses, v) }
func IsValidCurrency(v string) bool        { return contains(Currencies, v) }
