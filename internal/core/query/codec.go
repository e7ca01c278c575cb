package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"catalog-service/internal/core/domain"
)

// Encode сериализует фильтр. Поле попадает в вывод только если задано;
// перевернутые диапазоны передаются как есть, их обрабатывает движок сопоставления.
func Encode(f domain.ListingFilter) Params {
	var p Params
	addString := func(key, value string) {
		if value != "" {
			p = append(p, Param{Key: key, Value: value})
		}
	}
	addFloat := func(key string, value *float64) {
		if value != nil && isFinite(*value) {
			p = append(p, Param{Key: key, Value: strconv.FormatFloat(*value, 'f', -1, 64)})
		}
	}

	addString(KeyType, string(f.Type))
	addString(KeyCategory, f.Category)
	addString(KeySubCategory, f.SubCategory)
	addString(KeyCountry, f.Location.Country)
	addString(KeyState, f.Location.State)
	addString(KeyCity, f.Location.City)
	addString(KeyDistrict, f.Location.District)
	addFloat(KeyMinPrice, f.MinPrice)
	addFloat(KeyMaxPrice, f.MaxPrice)
	addString(KeySearch, strings.TrimSpace(f.Search))
	addString(KeyRooms, f.Rooms)
	addFloat(KeyMinSize, f.MinSize)
	addFloat(KeyMaxSize, f.MaxSize)
	addString(KeyFurnishing, f.Furnishing)
	addString(KeyKitchenType, f.KitchenType)
	addString(KeyHeatingType, f.HeatingType)
	addString(KeyUsageStatus, f.UsageStatus)
	addString(KeyDeedStatus, f.DeedStatus)
	addString(KeyFromWho, f.FromWho)
	addFloat(KeyMaxMonthlyFee, f.MaxMonthlyFee)
	addString(KeyGeoCell, f.GeoCell)

	for _, flag := range f.Features.Required() {
		p = append(p, Param{Key: string(flag), Value: "true"})
	}
	return p
}

// Decode - обратное преобразование. Неизвестные ключи игнорируются,
// некорректные значения считаются отсутствующими. Ошибок не бывает.
func Decode(values url.Values) domain.ListingFilter {
	var f domain.ListingFilter

	if t := domain.ListingType(first(values, KeyType)); t.IsValid() {
		f.Type = t
	}
	if main := first(values, KeyCategory); domain.IsValidMainCategory(main) {
		f.Category = main
		if sub := first(values, KeySubCategory); domain.IsValidSubCategory(main, sub) {
			f.SubCategory = sub
		}
	}

	f.Location = domain.LocationPath{
		Country:  first(values, KeyCountry),
		State:    first(values, KeyState),
		City:     first(values, KeyCity),
		District: first(values, KeyDistrict),
	}.Normalize()

	f.MinPrice = parseFloat(first(values, KeyMinPrice))
	f.MaxPrice = parseFloat(first(values, KeyMaxPrice))
	f.MinSize = parseFloat(first(values, KeyMinSize))
	f.MaxSize = parseFloat(first(values, KeyMaxSize))
	f.MaxMonthlyFee = parseFloat(first(values, KeyMaxMonthlyFee))

	f.Search = first(values, KeySearch)

	f.Rooms = enum(first(values, KeyRooms), domain.IsValidRoomType)
	f.Furnishing = enum(first(values, KeyFurnishing), domain.IsValidFurnishing)
	f.KitchenType = enum(first(values, KeyKitchenType), domain.IsValidKitchenType)
	f.HeatingType = enum(first(values, KeyHeatingType), domain.IsValidHeatingType)
	f.UsageStatus = enum(first(values, KeyUsageStatus), domain.IsValidUsageStatus)
	f.DeedStatus = enum(first(values, KeyDeedStatus), domain.IsValidDeedStatus)
	f.FromWho = enum(first(values, KeyFromWho), domain.IsValidFromWho)
	f.GeoCell = enum(strings.ToLower(first(values, KeyGeoCell)), isGeoCell)

	for _, flag := range domain.FeatureFlags {
		if on, err := strconv.ParseBool(first(values, string(flag))); err == nil && on {
			f.Features = f.Features.Set(flag, true)
		}
	}
	return f
}

// first - первое значение ключа без окружающих пробелов
func first(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(v) {
		return nil
	}
	return &v
}

func enum(raw string, valid func(string) bool) string {
	if raw == "" || !valid(raw) {
		return ""
	}
	return raw
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

const geohashAlphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

func isGeoCell(s string) bool {
	if len(s) == 0 || len(s) > 12 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(geohashAlphabet, r) {
			return false
		}
	}
	return true
}
