package constants

// Обменник событий каталога
const (
	ListingEventsExchange     = "catalog_exchange"
	ListingEventsExchangeType = "topic"
)

// Ключи маршрутизации совпадают с типами событий
const (
	RoutingKeyListingCreated       = "listing.created"
	RoutingKeyListingUpdated       = "listing.updated"
	RoutingKeyListingStatusChanged = "listing.status_changed"
	RoutingKeyListingDeleted       = "listing.deleted"
)
