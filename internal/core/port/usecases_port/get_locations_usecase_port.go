package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/location"
)

type GetLocationsUseCase interface {
	Countries(ctx context.Context) []domain.LocationOption
	States(ctx context.Context, country string) []domain.LocationOption
	Cities(ctx context.Context, country, state string) []domain.LocationOption
	Districts(ctx context.Context, country, city string) []domain.LocationOption
	// Cascade нормализует путь и возвращает опции каждого уровня
	Cascade(ctx context.Context, path domain.LocationPath) location.Selector
}
