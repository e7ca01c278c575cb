package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/matching"
	"catalog-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// ListingStorageAdapter реализует ListingStoragePort для PostgreSQL
type ListingStorageAdapter struct {
	pool *pgxpool.Pool
}

func NewListingStorageAdapter(pool *pgxpool.Pool) (*ListingStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &ListingStorageAdapter{pool: pool}, nil
}

// EnsureSchema создает таблицу и индексы, если их нет
func (a *ListingStorageAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := a.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to ensure listings schema: %w", err)
	}
	return nil
}

func (a *ListingStorageAdapter) logger(ctx context.Context, method string) port.LoggerPort {
	return contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresListingStorage",
		"method":    method,
	})
}

// rowValues раскладывает объявление по колонкам listingColumns
func rowValues(l *domain.Listing) ([]interface{}, error) {
	doc, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing document: %w", err)
	}
	kitchen := ""
	if l.Interior != nil {
		kitchen = l.Interior.KitchenType
	}
	return []interface{}{
		l.ID, l.Slug, string(l.Type), string(l.Status), l.Category.Main, l.Category.Sub,
		l.Location.Country, l.Location.State, l.Location.City, l.Location.District,
		l.Price, l.Specs.NetSize, l.Specs.MonthlyFee,
		l.Specs.RoomType, l.Specs.Furnishing, kitchen, l.Specs.HeatingType, l.Specs.UsageStatus, l.Specs.DeedStatus, l.Specs.FromWho,
		l.GeoCell,
		l.Flag(domain.FlagHasParking), l.Flag(domain.FlagHasElevator), l.Flag(domain.FlagIsFurnished), l.Flag(domain.FlagHasBalcony),
		l.Flag(domain.FlagInSite), l.Flag(domain.FlagCreditEligible), l.Flag(domain.FlagExchangeAvailable), l.Flag(domain.FlagHasPool),
		matching.SearchText(l), doc, l.CreatedAt, l.UpdatedAt,
	}, nil
}

func placeholders(from, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("$%d", from+i)
	}
	return strings.Join(parts, ", ")
}

func mapWriteError(err error, slug string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && strings.Contains(pgErr.ConstraintName, "slug") {
		return fmt.Errorf("%w: %s", domain.ErrSlugTaken, slug)
	}
	return err
}

func (a *ListingStorageAdapter) Create(ctx context.Context, listing *domain.Listing) error {
	repoLogger := a.logger(ctx, "Create").WithFields(port.Fields{"listing_id": listing.ID})

	values, err := rowValues(listing)
	if err != nil {
		return err
	}
	query := fmt.Sprintf("INSERT INTO listings (%s) VALUES (%s)",
		strings.Join(listingColumns, ", "), placeholders(1, len(listingColumns)))

	if _, err := a.pool.Exec(ctx, query, values...); err != nil {
		err = mapWriteError(err, listing.Slug)
		if !errors.Is(err, domain.ErrSlugTaken) {
			repoLogger.Error("Failed to insert listing", err, nil)
			return fmt.Errorf("failed to insert listing: %w", err)
		}
		return err
	}

	repoLogger.Debug("Listing inserted", nil)
	return nil
}

func (a *ListingStorageAdapter) Update(ctx context.Context, listing *domain.Listing) error {
	repoLogger := a.logger(ctx, "Update").WithFields(port.Fields{"listing_id": listing.ID})

	values, err := rowValues(listing)
	if err != nil {
		return err
	}
	// id - первый аргумент и условие WHERE
	sets := make([]string, 0, len(listingColumns)-1)
	for i, col := range listingColumns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", col, i+2))
	}
	query := fmt.Sprintf("UPDATE listings SET %s WHERE id = $1", strings.Join(sets, ", "))

	tag, err := a.pool.Exec(ctx, query, values...)
	if err != nil {
		err = mapWriteError(err, listing.Slug)
		if !errors.Is(err, domain.ErrSlugTaken) {
			repoLogger.Error("Failed to update listing", err, nil)
			return fmt.Errorf("failed to update listing: %w", err)
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) Delete(ctx context.Context, id string) error {
	tag, err := a.pool.Exec(ctx, "DELETE FROM listings WHERE id = $1", id)
	if err != nil {
		a.logger(ctx, "Delete").Error("Failed to delete listing", err, port.Fields{"listing_id": id})
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

func (a *ListingStorageAdapter) getOne(ctx context.Context, method, column, value string) (*domain.Listing, error) {
	var doc []byte
	query := fmt.Sprintf("SELECT doc FROM listings WHERE %s = $1", column)
	if err := a.pool.QueryRow(ctx, query, value).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		a.logger(ctx, method).Error("Failed to get listing", err, port.Fields{column: value})
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return decodeDoc(doc)
}

func decodeDoc(doc []byte) (*domain.Listing, error) {
	var l domain.Listing
	if err := json.Unmarshal(doc, &l); err != nil {
		return nil, fmt.Errorf("failed to decode listing document: %w", err)
	}
	return &l, nil
}

func (a *ListingStorageAdapter) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	return a.getOne(ctx, "GetByID", "id", id)
}

func (a *ListingStorageAdapter) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	return a.getOne(ctx, "GetBySlug", "slug", slug)
}

// Search - COUNT и страница в одной транзакции
func (a *ListingStorageAdapter) Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	page := req.Page.Normalized()
	repoLogger := a.logger(ctx, "Search").WithFields(port.Fields{
		"page":     page.Page,
		"per_page": page.PerPage,
	})

	whereClause, args := applyFilters(req.Filter)

	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM listings %s", whereClause)
	var totalCount int64
	if err := tx.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		repoLogger.Error("Failed to count listings", err, port.Fields{"query": countQuery})
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	result := &domain.SearchResult{
		Listings:   []domain.Listing{},
		TotalCount: int(totalCount),
		Page:       page.Page,
		PerPage:    page.PerPage,
	}
	if totalCount == 0 || int64(page.Offset()) >= totalCount {
		return result, nil
	}

	dataQuery := fmt.Sprintf("SELECT doc FROM listings %s %s LIMIT $%d OFFSET $%d",
		whereClause, orderClause(req.Sort), len(args)+1, len(args)+2)
	rows, err := tx.Query(ctx, dataQuery, append(args, page.Limit(), page.Offset())...)
	if err != nil {
		repoLogger.Error("Failed to query listings page", err, port.Fields{"query": dataQuery})
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		l, err := decodeDoc(doc)
		if err != nil {
			return nil, err
		}
		result.Listings = append(result.Listings, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listings: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	repoLogger.Debug("Listings page loaded", port.Fields{"total_count": totalCount, "count": len(result.Listings)})
	return result, nil
}

func (a *ListingStorageAdapter) Stats(ctx context.Context, filter domain.ListingFilter) (*domain.FilterStats, error) {
	whereClause, args := applyFilters(filter)
	query := fmt.Sprintf(
		"SELECT COUNT(*), MIN(price), MAX(price), MIN(net_size), MAX(net_size) FROM listings %s", whereClause)

	var stats domain.FilterStats
	var count int64
	err := a.pool.QueryRow(ctx, query, args...).Scan(&count, &stats.MinPrice, &stats.MaxPrice, &stats.MinSize, &stats.MaxSize)
	if err != nil {
		a.logger(ctx, "Stats").Error("Failed to aggregate listings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to aggregate listings: %w", err)
	}
	stats.Count = int(count)
	return &stats, nil
}

func (a *ListingStorageAdapter) Close() error {
	a.pool.Close()
	return nil
}
