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
)

type UpdateListingUseCase struct {
	storage port.ListingStoragePort
	events  port.ListingEventsPort
	now     func() time.Time
}

func NewUpdateListingUseCase(storage port.ListingStoragePort, events port.ListingEventsPort) (*UpdateListingUseCase, error) {
	if storage == nil {
		return nil, fmt.Errorf("listing storage cannot be nil")
	}
	if events == nil {
		return nil, fmt.Errorf("listing events port cannot be nil")
	}
	return &UpdateListingUseCase{storage: storage, events: events, now: time.Now}, nil
}

// Execute - полная замена записи. id, createdAt и publishedAt сохраняются;
// slug пересчитывается, только пока объявление не опубликовано.
func (uc *UpdateListingUseCase) Execute(ctx context.Context, id string, listing domain.Listing) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "UpdateListing",
		"listing_id": id,
	})

	ucLogger.Info("Use case started", nil)

	existing, err := uc.storage.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Listing lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	l := listing
	l.ID = existing.ID
	l.CreatedAt = existing.CreatedAt
	l.PublishedAt = existing.PublishedAt
	now := uc.now().UTC()
	l.UpdatedAt = now

	if l.Status == "" {
		l.Status = existing.Status
	}
	if l.Status != existing.Status && !domain.CanTransition(l.Type, existing.Status, l.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, existing.Status, l.Status)
	}
	if l.Currency == "" {
		l.Currency = existing.Currency
	}
	if l.Status == domain.StatusActive && l.PublishedAt == nil {
		l.PublishedAt = &now
	}
	l.GeoCell = domain.GeoCell(l.Location.Coordinates)

	regenerate := !existing.IsPublished()
	if regenerate {
		l.Slug = slug.Generate(l.Type, l.Title)
	} else {
		l.Slug = existing.Slug
	}

	if err := domain.ValidateListing(&l); err != nil {
		ucLogger.Warn("Listing failed validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	err = uc.storage.Update(ctx, &l)
	if regenerate && errors.Is(err, domain.ErrSlugTaken) {
		ucLogger.Debug("Slug already taken, retrying with id suffix", port.Fields{"slug": l.Slug})
		l.Slug = slug.WithSuffix(l.Slug, l.ID)
		err = uc.storage.Update(ctx, &l)
	}
	if err != nil {
		ucLogger.Error("Storage failed to update listing", err, nil)
		return nil, err
	}

	publishEvent(ctx, uc.events, ucLogger, domain.EventListingUpdated, &l, now)

	ucLogger.Info("Use case finished successfully", port.Fields{"slug": l.Slug})
	return &l, nil
}
