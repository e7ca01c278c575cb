package usecase

import (
	"context"
	"fmt"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type FindListingsUseCase struct {
	storage port.ListingStoragePort
}

func NewFindListingsUseCase(storage port.ListingStoragePort) (*FindListingsUseCase, error) {
	if storage == nil {
		return nil, fmt.Errorf("listing storage cannot be nil")
	}
	return &FindListingsUseCase{storage: storage}, nil
}

func (uc *FindListingsUseCase) Execute(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	req.Page = req.Page.Normalized()
	if !req.Sort.IsValid() {
		req.Sort = domain.SortNewest
	}
	req.Filter.Location = req.Filter.Location.Normalize()

	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindListings",
		"type":     string(req.Filter.Type),
		"sort":     string(req.Sort),
		"page":     req.Page.Page,
		"per_page": req.Page.PerPage,
	})

	ucLogger.Info("Use case started", nil)

	result, err := uc.storage.Search(ctx, req)
	if err != nil {
		ucLogger.Error("Storage returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_found":   result.TotalCount,
		"items_on_page": len(result.Listings),
	})
	return result, nil
}
