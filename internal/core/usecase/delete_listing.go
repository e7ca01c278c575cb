package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type DeleteListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	now     func() time.Time
}

func NewDeleteListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) (*DeleteListingUseCase, error) {
	if storage == nil {
		return nil, fmt.Errorf("listing storage cannot be nil")
	}
	if events == nil {
		return nil, fmt.Errorf("listing events port cannot be nil")
	}
	return &DeleteListingUseCase{storage: storage, events: events, now: time.Now}, nil
}

// Execute - жесткое удаление из каталога
func (uc *DeleteListingUseCase) Execute(ctx context.Context, id string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "DeleteListing",
		"listing_id": id,
	})

	ucLogger.Info("Use case started", nil)

	l, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Listing lookup failed", port.Fields{"error": err.Error()})
		return err
	}

	if err := uc.storage.Delete(ctx, id); err != nil {
		ucLogger.Error("Storage failed to delete listing", err, nil)
		return err
	}

	publishEvent(ctx, uc.events, ucLogger, domain.EventListingDeleted, l, uc.now().UTC())

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
