package usecases_port

import (
	"context"

	"catalog-service/internal/core/domain"
)

type CreateListingUseCase interface {
	Execute(ctx context.Context, listing domain.Listing) (*domain.Listing, error)
}

type UpdateListingUseCase interface {
	Execute(ctx context.Context, id string, listing domain.Listing) (*domain.Listing, error)
}

type ChangeListingStatusUseCase interface {
	Execute(ctx context.Context, id string, status domain.ListingStatus) (*domain.Listing, error)
}

type DeleteListingUseCase interface {
	Execute(ctx context.Context, id string) error
}

type GetListingUseCase interface {
	ByID(ctx context.Context, id string) (*domain.Listing, error)
	BySlug(ctx context.Context, slug string) (*domain.Listing, error)
}
