package usecase

import (
	"context"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

type ChangeListingStatusUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	now     func() time.Time
}

func NewChangeListingStatusUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) (*ChangeListingStatusUseCase, error) {
	if storage == nil {
		return nil, fmt.Errorf("listing storage cannot be nil")
	}
	if events == nil {
		return nil, fmt.Errorf("listing events port cannot be nil")
	}
	return &ChangeListingStatusUseCase{storage: storage, events: events, now: time.Now}, nil
}

func (uc *ChangeListingStatusUseCase) Execute(ctx context.Context, id string, status domain.ListingStatus) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "ChangeListingStatus",
		"listing_id": id,
		"new_status": string(status),
	})

	ucLogger.Info("Use case started", nil)

	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %w: %q", domain.ErrInvalidListing, domain.ErrInvalidStatus, status)
	}

	l, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Listing lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	if !domain.CanTransition(l.Type, l.Status, status) {
		ucLogger.Warn("Rejected status transition", port.Fields{"old_status": string(l.Status)})
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, l.Status, status)
	}

	now := uc.now().UTC()
	l.Status = status
	l.UpdatedAt = now
	// первая активация публикует объявление, slug с этого момента не меняется
	if status == domain.StatusActive && l.PublishedAt == nil {
		l.PublishedAt = &now
	}

	if err := uc.storage.Update(ctx, l); err != nil {
		ucLogger.Error("Storage failed to update listing status", err, nil)
		return nil, err
	}

	publishEvent(ctx, uc.events, ucLogger, domain.EventListingStatusChanged, l, now)

	ucLogger.Info("Use case finished successfully", nil)
	return l, nil
}
