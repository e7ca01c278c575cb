package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type GetFilterOptionsUseCase interface {
	Execute(ctx context.Context, filter domain.ListingFilter) (*domain.FilterOptionsResult, error)
}
