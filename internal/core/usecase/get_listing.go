package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type GetListingUseCase struct {
	storage port.ListingStoragePort
}

func NewGetListingUseCase(storage port.ListingStoragePort) (*GetListingUseCase, error) {
	if storage == nil {
		return nil, fmt.Errorf("listing storage cannot be nil")
	}
	return &GetListingUseCase{storage: storage}, nil
}

func (uc *GetListingUseCase) ByID(ctx context.Context, id string) (*domain.Listing, error) {
	return uc.get(ctx, "id", id, uc.storage.GetByID)
}

// BySlug - разрешение slug -> объявление при отображении
func (uc *GetListingUseCase) BySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	return uc.get(ctx, "slug", slug, uc.storage.GetBySlug)
}

func (uc *GetListingUseCase) get(ctx context.Context, key, value string, lookup func(context.Context, string) (*domain.Listing, error)) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetListing",
		key:        value,
	})

	ucLogger.Info("Use case started", nil)

	l, err := lookup(ctx, value)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return l, nil
}
