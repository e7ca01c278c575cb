package usecase

import (
	"context"
	"time"

	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
)

// publishEvent не возвращает ошибку: запись уже сохранена, сбой доставки только логируется
func publishEvent(ctx context.Context, events port.ListingEventsPort, logger port.LoggerPort, eventType domain.ListingEventType, l *domain.Listing, at time.Time) {
	event := domain.NewListingEvent(eventType, l, at)
	if err := events.Publish(ctx, event); err != nil {
		logger.Error("Failed to publish listing event", err, port.Fields{
			"event_type": string(eventType),
			"event_id":   event.EventID,
		})
		return
	}
	logger.Debug("Listing event published", port.Fields{"event_type": string(eventType), "event_id": event.EventID})
}
