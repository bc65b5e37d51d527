package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures the connection pool.
type PostgresOption func(*pgxpool.Config)

// WithMaxConns sets the maximum pool size.
func WithMaxConns(n int) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // pool size from validated config
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string, opts ...PostgresOption) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertListing inserts or updates a listing by URL. Scores from earlier
// passes are kept until the next pass overwrites them.
func (s *PostgresStore) UpsertListing(ctx context.Context, l *domain.Listing) error {
	args := pgx.NamedArgs{
		"url":             l.URL,
		"title":           l.Title,
		"price":           l.Price,
		"model_year":      l.ModelYear,
		"mileage":         l.Mileage,
		"condition_text":  l.ConditionText,
		"condition_score": l.ConditionScore,
		"condition_label": l.ConditionLabel,
		"brand":           l.Brand,
		"model":           l.Model,
		"fuel_type":       l.FuelType,
		"transmission":    l.Transmission,
		"body_type":       l.BodyType,
		"location":        l.Location,
		"dealer_name":     l.DealerName,
	}

	if err := s.pool.QueryRow(ctx, queryUpsertListing, args).Scan(
		&l.ID, &l.FetchedAt, &l.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting listing %s: %w", l.URL, err)
	}
	return nil
}

// GetListingByID retrieves a listing by its internal UUID.
func (s *PostgresStore) GetListingByID(ctx context.Context, id string) (*domain.Listing, error) {
	return s.getListing(ctx, queryGetListingByID, id)
}

// GetListingByURL retrieves a listing by its source URL.
func (s *PostgresStore) GetListingByURL(ctx context.Context, url string) (*domain.Listing, error) {
	return s.getListing(ctx, queryGetListingByURL, url)
}

func (s *PostgresStore) getListing(ctx context.Context, query, key string) (*domain.Listing, error) {
	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, query, key), l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting listing %s: %w", key, err)
	}
	return l, nil
}

// ListListings queries listings with optional filters, returning results and total count.
func (s *PostgresStore) ListListings(
	ctx context.Context,
	q *ListingQuery,
) ([]domain.Listing, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting listings: %w", err)
	}

	listings, err := s.queryListings(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}
	return listings, total, nil
}

// ListAllListings returns the whole collection for a scoring pass.
func (s *PostgresStore) ListAllListings(ctx context.Context) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryListAllListings)
}

// TopListings returns up to limit scored listings, best first.
func (s *PostgresStore) TopListings(ctx context.Context, limit int) ([]domain.Listing, error) {
	return s.queryListings(ctx, queryTopListings, limit)
}

// UpdateListing applies a partial update and returns the updated listing.
func (s *PostgresStore) UpdateListing(
	ctx context.Context,
	id string,
	p *domain.ListingPatch,
) (*domain.Listing, error) {
	args := pgx.NamedArgs{
		"id":              id,
		"title":           p.Title,
		"price":           p.Price,
		"model_year":      p.ModelYear,
		"mileage":         p.Mileage,
		"condition_text":  p.ConditionText,
		"condition_score": p.ConditionScore,
		"condition_label": p.ConditionLabel,
		"brand":           p.Brand,
		"model":           p.Model,
		"fuel_type":       p.FuelType,
		"transmission":    p.Transmission,
		"body_type":       p.BodyType,
		"location":        p.Location,
		"dealer_name":     p.DealerName,
	}

	l := &domain.Listing{}
	if err := scanListing(s.pool.QueryRow(ctx, queryUpdateListing, args), l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("updating listing %s: %w", id, err)
	}
	return l, nil
}

// DeleteListing removes a listing. It reports whether a row was deleted.
func (s *PostgresStore) DeleteListing(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, queryDeleteListing, id)
	if err != nil {
		return false, fmt.Errorf("deleting listing %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteListingsOlderThan removes listings not fetched within age.
func (s *PostgresStore) DeleteListingsOlderThan(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().Add(-age)
	tag, err := s.pool.Exec(ctx, queryDeleteListingsOlderThan, cutoff)
	if err != nil {
		return 0, fmt.Errorf("deleting listings older than %s: %w", age, err)
	}
	return int(tag.RowsAffected()), nil
}

// WithScoringLock runs fn while holding a session-level advisory lock on a
// dedicated connection. Every process takes the same lock around the whole
// read-score-write of a pass, so a pass never writes scores computed from
// an older snapshot over a newer one. fn must not run another pass.
func (s *PostgresStore) WithScoringLock(ctx context.Context, fn func(context.Context) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring scoring lock connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, queryLockScoring, scoreLockKey); err != nil {
		return fmt.Errorf("acquiring scoring lock: %w", err)
	}
	defer func() {
		unlockCtx := context.WithoutCancel(ctx)
		if _, err := conn.Exec(unlockCtx, queryUnlockScoring, scoreLockKey); err != nil {
			// The lock dies with the session.
			conn.Conn().Close(unlockCtx) //nolint:errcheck // best effort
		}
	}()

	return fn(ctx)
}

// UpdateScores persists the results of one scoring pass in a single
// transaction and returns the number of rows updated. Callers running a
// full pass hold WithScoringLock around the load and this write.
func (s *PostgresStore) UpdateScores(ctx context.Context, updates []domain.ScoreUpdate) (int, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning score transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(queryUpdateScores,
			u.ID,
			u.Components.Price,
			u.Components.Year,
			u.Components.Mileage,
			u.Components.Condition,
			u.Composite.Raw,
			u.Composite.Total,
		)
	}

	br := tx.SendBatch(ctx, batch)
	updated := 0
	for _, u := range updates {
		tag, err := br.Exec()
		if err != nil {
			br.Close() //nolint:errcheck // first error wins
			return 0, fmt.Errorf("updating score for %s: %w", u.ID, err)
		}
		updated += int(tag.RowsAffected())
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("closing score batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing scores: %w", err)
	}
	return updated, nil
}

// ListScores returns every non-null composite score, highest first.
func (s *PostgresStore) ListScores(ctx context.Context) ([]int, error) {
	rows, err := s.pool.Query(ctx, queryListScores)
	if err != nil {
		return nil, fmt.Errorf("querying scores: %w", err)
	}

	scores, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("collecting scores: %w", err)
	}
	return scores, nil
}

// CountListings returns the total number of listings.
func (s *PostgresStore) CountListings(ctx context.Context) (int, error) {
	var count int
	if err := s.pool.QueryRow(ctx, queryCountListings).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting listings: %w", err)
	}
	return count, nil
}

func (s *PostgresStore) queryListings(ctx context.Context, query string, args ...any) ([]domain.Listing, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	listings := []domain.Listing{}
	for rows.Next() {
		var l domain.Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, fmt.Errorf("scanning listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating listings: %w", err)
	}
	return listings, nil
}

// scannable is satisfied by both pgx.Row and pgx.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanListing scans a full listing row in listingColumns order.
func scanListing(row scannable, l *domain.Listing) error {
	return row.Scan(
		&l.ID, &l.URL, &l.Title,
		&l.Price, &l.ModelYear, &l.Mileage, &l.ConditionText, &l.ConditionScore, &l.ConditionLabel,
		&l.Brand, &l.Model, &l.FuelType, &l.Transmission, &l.BodyType, &l.Location, &l.DealerName,
		&l.PriceScore, &l.YearScore, &l.MileageScore, &l.ScoreRaw, &l.Score,
		&l.FetchedAt, &l.UpdatedAt,
	)
}
