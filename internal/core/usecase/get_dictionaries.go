package usecase

import (
	"context"
	"strings"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

const (
	DictCategories       = "categories"
	DictListingTypes     = "listing_types"
	DictStatuses         = "statuses"
	DictRoomTypes        = "room_types"
	DictHeatingTypes     = "heating_types"
	DictFurnishing       = "furnishing"
	DictKitchenTypes     = "kitchen_types"
	DictUsageStatuses    = "usage_statuses"
	DictDeedStatuses     = "deed_statuses"
	DictFromWho          = "from_who"
	DictFacadeDirections = "facade_directions"
	DictZoningStatuses   = "zoning_statuses"
	DictCurrencies       = "currencies"
	DictSortOrders       = "sort_orders"
	DictFeatureFlags     = "feature_flags"
)

var displayNames = map[string]string{
	string(domain.ListingTypeSale): "Satılık",
	string(domain.ListingTypeRent): "Kiralık",
	string(domain.StatusActive):    "Aktif",
	string(domain.StatusPassive):   "Pasif",
	string(domain.StatusSold):      "Satıldı",
	string(domain.StatusRented):    "Kiralandı",
	string(domain.SortNewest):      "En yeni",
	string(domain.SortOldest):      "En eski",
	string(domain.SortPriceHigh):   "Fiyat (yüksekten düşüğe)",
	string(domain.SortPriceLow):    "Fiyat (düşükten yükseğe)",
}

// dictionaries - статичные справочники в фиксированном порядке
func dictionaries() map[string][]domain.DictionaryItem {
	return map[string][]domain.DictionaryItem{
		DictCategories:       stringItems(domain.CategoryMains),
		DictListingTypes:     labeled(toStrings(domain.ListingTypes)),
		DictStatuses:         labeled(toStrings(domain.ListingStatuses)),
		DictRoomTypes:        stringItems(domain.RoomTypes),
		DictHeatingTypes:     stringItems(domain.HeatingTypes),
		DictFurnishing:       stringItems(domain.FurnishingStates),
		DictKitchenTypes:     stringItems(domain.KitchenTypes),
		DictUsageStatuses:    stringItems(domain.UsageStatuses),
		DictDeedStatuses:     stringItems(domain.DeedStatuses),
		DictFromWho:          stringItems(domain.FromWhoValues),
		DictFacadeDirections: stringItems(domain.FacadeDirections),
		DictZoningStatuses:   stringItems(domain.ZoningStatuses),
		DictCurrencies:       stringItems(domain.Currencies),
		DictSortOrders:       labeled(toStrings(domain.SortOrders)),
		DictFeatureFlags:     stringItems(toStrings(domain.FeatureFlags)),
	}
}

type GetDictionariesUseCase struct {
	all map[string][]domain.DictionaryItem
}

func NewGetDictionariesUseCase() *GetDictionariesUseCase {
	return &GetDictionariesUseCase{all: dictionaries()}
}

// Execute возвращает запрошенные справочники; пустой список имен - все.
// Неизвестные имена игнорируются.
func (uc *GetDictionariesUseCase) Execute(ctx context.Context, names []string) (map[string][]domain.DictionaryItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetDictionaries",
		"names":    names,
	})

	ucLogger.Info("Use case started", nil)

	requested := make(map[string]bool)
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			requested[name] = true
		}
	}

	result := make(map[string][]domain.DictionaryItem)
	for name, items := range uc.all {
		if len(requested) == 0 || requested[name] {
			result[name] = append([]domain.DictionaryItem(nil), items...)
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"dictionaries": len(result)})
	return result, nil
}

func labeled(values []string) []domain.DictionaryItem {
	items := stringItems(values)
	for i := range items {
		if label, ok := displayNames[items[i].SystemName]; ok {
			items[i].DisplayName = label
		}
	}
	return items
}

func toStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
