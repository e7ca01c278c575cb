package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/location"
	"catalog-service/internal/core/port"
)

// GetLocationsUseCase - тонкая обертка над справочником для REST
type GetLocationsUseCase struct {
	resolver port.LocationResolverPort
}

func NewGetLocationsUseCase(resolver port.LocationResolverPort) (*GetLocationsUseCase, error) {
	if resolver == nil {
		return nil, fmt.Errorf("location resolver cannot be nil")
	}
	return &GetLocationsUseCase{resolver: resolver}, nil
}

func (uc *GetLocationsUseCase) Countries(ctx context.Context) []domain.LocationOption {
	return uc.resolver.Countries()
}

func (uc *GetLocationsUseCase) States(ctx context.Context, country string) []domain.LocationOption {
	return uc.logMiss(ctx, "states", uc.resolver.States(country), port.Fields{"country": country})
}

func (uc *GetLocationsUseCase) Cities(ctx context.Context, country, state string) []domain.LocationOption {
	return uc.logMiss(ctx, "cities", uc.resolver.Cities(country, state), port.Fields{"country": country, "state": state})
}

func (uc *GetLocationsUseCase) Districts(ctx context.Context, country, city string) []domain.LocationOption {
	return uc.logMiss(ctx, "districts", uc.resolver.Districts(country, city), port.Fields{"country": country, "city": city})
}

func (uc *GetLocationsUseCase) Cascade(ctx context.Context, path domain.LocationPath) location.Selector {
	return uc.resolver.Select(path)
}

// logMiss: пустой список - не ошибка, уровень просто скрывается
func (uc *GetLocationsUseCase) logMiss(ctx context.Context, level string, options []domain.LocationOption, fields port.Fields) []domain.LocationOption {
	if len(options) == 0 {
		contextkeys.LoggerFromContext(ctx).Debug("No location options for parent", port.Fields{"level": level, "parent": fields})
	}
	return options
}
