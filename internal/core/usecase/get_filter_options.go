package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	storage   port.ListingStoragePort
	locations port.LocationResolverPort
}

func NewGetFilterOptionsUseCase(storage port.ListingStoragePort, locations port.LocationResolverPort) (*GetFilterOptionsUseCase, error) {
	if storage == nil {
		return nil, fmt.Errorf("listing storage cannot be nil")
	}
	if locations == nil {
		return nil, fmt.Errorf("location resolver cannot be nil")
	}
	return &GetFilterOptionsUseCase{storage: storage, locations: locations}, nil
}

// Execute собирает опции формы фильтра для текущего запроса: диапазоны по найденным
// объявлениям, подкатегории выбранной категории и опции следующего уровня локации.
func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context, filter domain.ListingFilter) (*domain.FilterOptionsResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetFilterOptions",
		"category": filter.Category,
	})

	ucLogger.Info("Use case started", nil)

	filter.Location = filter.Location.Normalize()
	options := make(map[string]domain.FilterOption)
	count := 0

	// диапазоны не критичны: без них форма остается рабочей
	stats, err := uc.storage.Stats(ctx, filter)
	if err != nil {
		ucLogger.Error("Failed to get filter stats", err, nil)
	} else {
		count = stats.Count
		if stats.MinPrice != nil {
			options["price"] = domain.FilterOption{Min: stats.MinPrice, Max: stats.MaxPrice}
		}
		if stats.MinSize != nil {
			options["size"] = domain.FilterOption{Min: stats.MinSize, Max: stats.MaxSize}
		}
	}

	options["categories"] = domain.FilterOption{Options: stringItems(domain.CategoryMains)}
	if domain.IsValidMainCategory(filter.Category) {
		options["sub_categories"] = domain.FilterOption{Options: stringItems(domain.CategoryTree[filter.Category])}
	}

	// у участка нет комнат, отопления и меблировки
	if filter.Category != domain.CategoryLand {
		options["rooms"] = domain.FilterOption{Options: stringItems(domain.RoomTypes)}
		options["heating_types"] = domain.FilterOption{Options: stringItems(domain.HeatingTypes)}
		options["furnishing"] = domain.FilterOption{Options: stringItems(domain.FurnishingStates)}
		options["kitchen_types"] = domain.FilterOption{Options: stringItems(domain.KitchenTypes)}
		options["usage_statuses"] = domain.FilterOption{Options: stringItems(domain.UsageStatuses)}
	}
	options["deed_statuses"] = domain.FilterOption{Options: stringItems(domain.DeedStatuses)}
	options["from_who"] = domain.FilterOption{Options: stringItems(domain.FromWhoValues)}

	path := filter.Location
	options["countries"] = domain.FilterOption{Options: locationItems(uc.locations.Countries())}
	if states := uc.locations.States(path.Country); len(states) > 0 {
		options["states"] = domain.FilterOption{Options: locationItems(states)}
	}
	if cities := uc.locations.Cities(path.Country, path.State); len(cities) > 0 {
		options["cities"] = domain.FilterOption{Options: locationItems(cities)}
	}
	if districts := uc.locations.Districts(path.Country, path.City); len(districts) > 0 {
		options["districts"] = domain.FilterOption{Options: locationItems(districts)}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": count, "options": len(options)})
	return &domain.FilterOptionsResult{Options: options, Count: count}, nil
}

func stringItems(values []string) []domain.DictionaryItem {
	items := make([]domain.DictionaryItem, len(values))
	for i, v := range values {
		items[i] = domain.DictionaryItem{SystemName: v, DisplayName: v}
	}
	return items
}

func locationItems(options []domain.LocationOption) []domain.DictionaryItem {
	items := make([]domain.DictionaryItem, len(options))
	for i, o := range options {
		items[i] = domain.DictionaryItem{SystemName: o.Value, DisplayName: o.Label}
	}
	return items
}
