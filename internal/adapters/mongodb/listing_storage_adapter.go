package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/matching"
	"catalog-service/internal/core/port"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	listingsCollection = "listings"
	countersCollection = "counters"
	listingsSeqID      = "listings_seq"
)

// listingDocument - объявление плюс служебные поля хранилища
type listingDocument struct {
	domain.Listing `bson:",inline"`
	Seq            int64  `bson:"seq"`
	SearchText     string `bson:"search_text"`
}

func newDocument(l *domain.Listing, seq int64) listingDocument {
	return listingDocument{Listing: *l, Seq: seq, SearchText: matching.SearchText(l)}
}

// ListingStorageAdapter реализует ListingStoragePort для MongoDB
type ListingStorageAdapter struct {
	client   *mongo.Client
	listings *mongo.Collection
	counters *mongo.Collection
}

func NewListingStorageAdapter(client *mongo.Client, db *mongo.Database) (*ListingStorageAdapter, error) {
	if client == nil || db == nil {
		return nil, fmt.Errorf("mongo client and database cannot be nil")
	}
	return &ListingStorageAdapter{
		client:   client,
		listings: db.Collection(listingsCollection),
		counters: db.Collection(countersCollection),
	}, nil
}

// EnsureIndexes создает уникальный индекс slug и индексы фильтров
func (a *ListingStorageAdapter) EnsureIndexes(ctx context.Context) error {
	_, err := a.listings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("slug_unique")},
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "location.country", Value: 1}, {Key: "location.city", Value: 1}}},
		{Keys: bson.D{{Key: "category.main", Value: 1}, {Key: "category.sub", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}, {Key: "seq", Value: 1}}},
		{Keys: bson.D{{Key: "price", Value: 1}}},
		{Keys: bson.D{{Key: "geo_cell", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to ensure listing indexes: %w", err)
	}
	return nil
}

func (a *ListingStorageAdapter) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "MongoListingStorage",
		"method":    method,
	})
}

// nextSeq - монотонный счетчик порядка вставки
func (a *ListingStorageAdapter) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := a.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: listingsSeqID}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "value", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate listing sequence: %w", err)
	}
	return counter.Value, nil
}

func mapWriteError(err error, slug string) error {
	if mongo.IsDuplicateKeyError(err) && strings.Contains(err.Error(), "slug") {
		return fmt.Errorf("%w: %s", domain.ErrSlugTaken, slug)
	}
	return err
}

func (a *ListingStorageAdapter) Create(ctx context.Context, listing *domain.Listing) error {
	repoLogger := a.logger(ctx, "Create").WithFields(port.Fields{"listing_id": listing.ID})

	seq, err := a.nextSeq(ctx)
	if err != nil {
		repoLogger.Error("Failed to allocate sequence", err, nil)
		return err
	}
	if _, err := a.listings.InsertOne(ctx, newDocument(listing, seq)); err != nil {
		err = mapWriteError(err, listing.Slug)
		if !errors.Is(err, domain.ErrSlugTaken) {
			repoLogger.Error("Failed to insert listing", err, nil)
			return fmt.Errorf("failed to insert listing: %w", err)
		}
		return err
	}
	repoLogger.Debug("Listing inserted", port.Fields{"seq": seq})
	return nil
}

// Update заменяет документ целиком, сохраняя seq
func (a *ListingStorageAdapter) Update(ctx context.Context, listing *domain.Listing) error {
	repoLogger := a.logger(ctx, "Update").WithFields(port.Fields{"listing_id": listing.ID})

	var existing struct {
		Seq int64 `bson:"seq"`
	}
	err := a.listings.FindOne(ctx, bson.D{{Key: "_id", Value: listing.ID}},
		options.FindOne().SetProjection(bson.D{{Key: "seq", Value: 1}})).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrListingNotFound
	}
	if err != nil {
		repoLogger.Error("Failed to load listing sequence", err, nil)
		return fmt.Errorf("failed to load listing: %w", err)
	}

	res, err := a.listings.ReplaceOne(ctx, bson.D{{Key: "_id", Value: listing.ID}}, newDocument(listing, existing.Seq))
	if err != nil {
		err = mapWriteError(err, listing.Slug)
		if !errors.Is(err, domain.ErrSlugTaken) {
			repoLogger.Error("Failed to replace listing", err, nil)
			return fmt.Errorf("failed to update listing: %w", err)
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) Delete(ctx context.Context, id string) error {
	res, err := a.listings.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		a.logger(ctx, "Delete").Error("Failed to delete listing", err, port.Fields{"listing_id": id})
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) getOne(ctx context.Context, method string, filter bson.D) (*domain.Listing, error) {
	var doc listingDocument
	if err := a.listings.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		a.logger(ctx, method).Error("Failed to get listing", err, nil)
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &doc.Listing, nil
}

func (a *ListingStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return a.getOne(ctx, "GetByID", bson.D{{Key: "_id", Value: id}})
}

func (a *ListingStorageAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	return a.getOne(ctx, "GetBySlug", bson.D{{Key: "slug", Value: slug}})
}

func (a *ListingStorageAdapter) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	page := req.Page.Normalized()
	repoLogger := a.logger(ctx, "Search").WithFields(port.Fields{
		"page":     page.Page,
		"per_page": page.PerPage,
	})

	filter := buildFilter(req.Filter)
	total, err := a.listings.CountDocuments(ctx, filter)
	if err != nil {
		repoLogger.Error("Failed to count listings", err, nil)
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	result := &domain.SearchResult{
		Listings:   []domain.Listing{},
		TotalCount: int(total),
		Page:       page.Page,
		PerPage:    page.PerPage,
	}
	if total == 0 || int64(page.Offset()) >= total {
		return result, nil
	}

	opts := options.Find().
		SetSort(sortSpec(req.Sort)).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit()))
	cursor, err := a.listings.Find(ctx, filter, opts)
	if err != nil {
		repoLogger.Error("Failed to query listings page", err, nil)
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc listingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode listing: %w", err)
		}
		result.Listings = append(result.Listings, doc.Listing)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}

	repoLogger.Debug("Listings page loaded", port.Fields{"total_count": total, "count": len(result.Listings)})
	return result, nil
}

// statsRow - результат $group. $min/$max пропускают отсутствующие поля.
type statsRow struct {
	Count    int      `bson:"count"`
	MinPrice *float64 `bson:"min_price"`
	MaxPrice *float64 `bson:"max_price"`
	MinSize  *float64 `bson:"min_size"`
	MaxSize  *float64 `bson:"max_size"`
}

func statsPipeline(filter domain.ListingFilter) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: buildFilter(filter)}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "min_price", Value: bson.D{{Key: "$min", Value: "$price"}}},
			{Key: "max_price", Value: bson.D{{Key: "$max", Value: "$price"}}},
			{Key: "min_size", Value: bson.D{{Key: "$min", Value: "$specs.net_size"}}},
			{Key: "max_size", Value: bson.D{{Key: "$max", Value: "$specs.net_size"}}},
		}}},
	}
}

func (a *ListingStorageAdapter) Stats(ctx context.Context, filter domain.ListingFilter) (*domain.FilterStats, error) {
	cursor, err := a.listings.Aggregate(ctx, statsPipeline(filter))
	if err != nil {
		a.logger(ctx, "Stats").Error("Failed to aggregate listings", err, nil)
		return nil, fmt.Errorf("failed to aggregate listings: %w", err)
	}
	defer cursor.Close(ctx)

	stats := &domain.FilterStats{}
	// пустая выборка не дает ни одной группы
	if cursor.Next(ctx) {
		var row statsRow
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode listing stats: %w", err)
		}
		stats.Count = row.Count
		stats.MinPrice, stats.MaxPrice = row.MinPrice, row.MaxPrice
		stats.MinSize, stats.MaxSize = row.MinSize, row.MaxSize
	}
	return stats, cursor.Err()
}

func (a *ListingStorageAdapter) Close() error {
	return a.client.Disconnect(context.Background())
}
