package port

import (
	"context"

	"catalog-service/internal/core/domain"
)

// ListingEventsPort публикует события жизненного цикла объявлений
type ListingEventsPort interface {
	Publish(ctx context.Context, event domain.ListingEvent) error
}
