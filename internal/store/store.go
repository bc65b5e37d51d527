// Package store defines the datastore abstraction for car-deal-finder.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// ErrNotFound is returned when a listing lookup matches no row.
var ErrNotFound = errors.New("listing not found")

// Store defines all data access operations for car-deal-finder.
type Store interface {
	// Listings
	UpsertListing(ctx context.Context, l *domain.Listing) error
	GetListingByID(ctx context.Context, id string) (*domain.Listing, error)
	GetListingByURL(ctx context.Context, url string) (*domain.Listing, error)
	ListListings(ctx context.Context, q *ListingQuery) ([]domain.Listing, int, error)
	ListAllListings(ctx context.Context) ([]domain.Listing, error)
	TopListings(ctx context.Context, limit int) ([]domain.Listing, error)
	UpdateListing(ctx context.Context, id string, p *domain.ListingPatch) (*domain.Listing, error)
	DeleteListing(ctx context.Context, id string) (bool, error)
	DeleteListingsOlderThan(ctx context.Context, age time.Duration) (int, error)

	// Scores
	UpdateScores(ctx context.Context, updates []domain.ScoreUpdate) (int, error)
	WithScoringLock(ctx context.Context, fn func(context.Context) error) error
	ListScores(ctx context.Context) ([]int, error)
	CountListings(ctx context.Context) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
