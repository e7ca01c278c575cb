package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type FindListingsUseCase interface {
	Execute(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
}
