package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-service/internal/constants"
	"catalog-service/internal/contextkeys"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"
	"catalog-service/pkg/rabbitmq/rabbitmq_producer"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 10 * time.Second

// CategoryDTO - категория в сообщении
type CategoryDTO struct {
	Main string `json:"main"`
	Sub  string `json:"sub,omitempty"`
}

// ListingChangedDTO - тело сообщения ListingChangedEvent/1.0.0
type ListingChangedDTO struct {
	EventID    string      `json:"event_id"`
	EventType  string      `json:"event_type"`
	ListingID  string      `json:"listing_id"`
	Slug       string      `json:"slug"`
	Type       string      `json:"type"`
	Status     string      `json:"status"`
	Category   CategoryDTO `json:"category"`
	City       string      `json:"city,omitempty"`
	Price      float64     `json:"price"`
	Currency   string      `json:"currency"`
	OccurredAt time.Time   `json:"occurred_at"`
}

func toListingChangedDTO(e domain.ListingEvent) ListingChangedDTO {
	return ListingChangedDTO{
		EventID:    e.EventID,
		EventType:  string(e.EventType),
		ListingID:  e.ListingID,
		Slug:       e.Slug,
		Type:       string(e.Type),
		Status:     string(e.Status),
		Category:   CategoryDTO{Main: e.Category.Main, Sub: e.Category.Sub},
		City:       e.City,
		Price:      e.Price,
		Currency:   e.Currency,
		OccurredAt: e.OccurredAt.UTC(),
	}
}

var routingKeys = map[domain.ListingEventType]string{
	domain.EventListingCreated:       constants.RoutingKeyListingCreated,
	domain.EventListingUpdated:       constants.RoutingKeyListingUpdated,
	domain.EventListingStatusChanged: constants.RoutingKeyListingStatusChanged,
	domain.EventListingDeleted:       constants.RoutingKeyListingDeleted,
}

// messagePublisher - часть rabbitmq_producer.Publisher, нужная адаптеру
type messagePublisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// ListingEventsPublisherAdapter публикует события объявлений в обменник каталога.
// Тело проверяется по JSON Schema до отправки.
type ListingEventsPublisherAdapter struct {
	producer messagePublisher
	registry *contracts.Registry
	now      func() time.Time
}

func NewListingEventsPublisherAdapter(producer *rabbitmq_producer.Publisher, registry *contracts.Registry) (*ListingEventsPublisherAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return newListingEventsPublisherAdapter(producer, registry)
}

func newListingEventsPublisherAdapter(producer messagePublisher, registry *contracts.Registry) (*ListingEventsPublisherAdapter, error) {
	if registry == nil {
		return nil, fmt.Errorf("rabbitmq adapter: schema registry cannot be nil")
	}
	if !registry.Has(contracts.ListingChangedEventName, contracts.ListingChangedEventVersion) {
		return nil, fmt.Errorf("rabbitmq adapter: schema %s/%s is not registered",
			contracts.ListingChangedEventName, contracts.ListingChangedEventVersion)
	}
	return &ListingEventsPublisherAdapter{
		producer: producer,
		registry: registry,
		now:      time.Now,
	}, nil
}

func (a *ListingEventsPublisherAdapter) Publish(ctx context.Context, event domain.ListingEvent) error {
	routingKey, ok := routingKeys[event.EventType]
	if !ok {
		return fmt.Errorf("rabbitmq adapter: unknown event type %q", event.EventType)
	}

	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "ListingEventsPublisherAdapter",
		"routing_key": routingKey,
		"listing_id":  event.ListingID,
		"event_id":    event.EventID,
	})

	body, err := json.Marshal(toListingChangedDTO(event))
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}
	if err := a.registry.ValidateEvent(contracts.ListingChangedEventName, contracts.ListingChangedEventVersion, body); err != nil {
		adapterLogger.Error("Event does not match its schema", err, nil)
		return fmt.Errorf("rabbitmq adapter: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Type:         contracts.ListingChangedEventName,
		Timestamp:    a.now(),
		Headers: amqp.Table{
			"x-event-version": contracts.ListingChangedEventVersion,
		},
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Debug("Publishing listing event", nil)
	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish listing event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event %s: %w", event.EventID, err)
	}

	adapterLogger.Info("Successfully published listing event", nil)
	return nil
}

// NoopListingEventsAdapter используется, когда брокер выключен
type NoopListingEventsAdapter struct{}

func NewNoopListingEventsAdapter() *NoopListingEventsAdapter {
	return &NoopListingEventsAdapter{}
}

func (NoopListingEventsAdapter) Publish(ctx context.Context, event domain.ListingEvent) error {
	contextkeys.LoggerFromContext(ctx).Debug("Event publishing disabled, dropping event", port.Fields{
		"component":  "NoopListingEventsAdapter",
		"event_type": string(event.EventType),
		"listing_id": event.ListingID,
	})
	return nil
}
