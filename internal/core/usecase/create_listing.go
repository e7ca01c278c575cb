package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/slug"

	"github.com/google/uuid"
)

const defaultCurrency = "TRY"

type CreateListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	now     func() time.Time
}

func NewCreateListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) (*CreateListingUseCase, error) {
	if storage == nil {
		return nil, fmt.Errorf("listing storage cannot be nil")
	}
	if events == nil {
		return nil, fmt.Errorf("listing events port cannot be nil")
	}
	return &CreateListingUseCase{storage: storage, events: events, now: time.Now}, nil
}

// Execute присваивает id, slug и временные метки, валидирует и сохраняет объявление.
// При коллизии slug к нему добавляется начало id.
func (uc *CreateListingUseCase) Execute(ctx context.Context, listing domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateListing",
		"type":     string(listing.Type),
		"category": listing.Category.Main,
	})

	ucLogger.Info("Use case started", nil)

	l := listing
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	now := uc.now().UTC()
	l.CreatedAt, l.UpdatedAt = now, now
	if l.Status == "" {
		l.Status = domain.StatusActive
	}
	if l.Currency == "" {
		l.Currency = defaultCurrency
	}
	l.PublishedAt = nil
	if l.Status == domain.StatusActive {
		l.PublishedAt = &now
	}
	l.GeoCell = domain.GeoCell(l.Location.Coordinates)
	l.Slug = slug.Generate(l.Type, l.Title)

	ucLogger = ucLogger.WithFields(port.Fields{"listing_id": l.ID})

	if err := domain.ValidateListing(&l); err != nil {
		ucLogger.Warn("Listing failed validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	err := uc.storage.Create(ctx, &l)
	if errors.Is(err, domain.ErrSlugTaken) {
		ucLogger.Debug("Slug already taken, retrying with id suffix", port.Fields{"slug": l.Slug})
		l.Slug = slug.WithSuffix(l.Slug, l.ID)
		err = uc.storage.Create(ctx, &l)
	}
	if err != nil {
		ucLogger.Error("Storage failed to create listing", err, nil)
		return nil, err
	}

	publishEvent(ctx, uc.events, ucLogger, domain.EventListingCreated, &l, now)

	ucLogger.Info("Use case finished successfully", port.Fields{"slug": l.Slug})
	return &l, nil
}
