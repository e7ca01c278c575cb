package domain

import (
	"time"

	"github.com/google/uuid"
)

// ListingEventType - тип события жизненного цикла объявления
type ListingEventType string

const (
	EventListingCreated       ListingEventType = "listing.created"
	EventListingUpdated       ListingEventType = "listing.updated"
	EventListingStatusChanged ListingEventType = "listing.status_changed"
	EventListingDeleted       ListingEventType = "listing.deleted"
)

// ListingEvent - сообщение для коллабораторов (CDN изображений, журнал активности, индексатор)
type ListingEvent struct {
	EventID    string
	EventType  ListingEventType
	ListingID  string
	Slug       string
	Type       ListingType
	Status     ListingStatus
	Category   Category
	City       string
	Price      float64
	Currency   string
	OccurredAt time.Time
}

// NewListingEvent собирает событие из текущего состояния объявления
func NewListingEvent(eventType ListingEventType, l *Listing, at time.Time) ListingEvent {
	return ListingEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		ListingID:  l.ID,
		Slug:       l.Slug,
		Type:       l.Type,
		Status:     l.Status,
		Category:   l.Category,
		City:       l.Location.City,
		Price:      l.Price,
		Currency:   l.Currency,
		OccurredAt: at.UTC(),
	}
}
