package result

import (
	"context"

	"github.com/reitmaier/banjara-api/internal/model"
)

// Repository defines operations for QueryResult persistence. The
// (query, photo) pair is the natural key; ranking is written once at
// insert time and never recomputed.
type Repository interface {
	// Insert creates a ranked result row
	Insert(ctx context.Context, result *model.QueryResult) error

	// Exists reports whether a result row exists for the pair
	Exists(ctx context.Context, queryID model.QueryID, photoID model.PhotoID) (bool, error)

	// Rate updates the rating of an existing result row; it never
	// creates one
	Rate(ctx context.Context, queryID model.QueryID, photoID model.PhotoID, rating model.Rating) error

	// GetByQueryID retrieves a query's result rows by ranking
	GetByQueryID(ctx context.Context, queryID model.QueryID) ([]*model.QueryResult, error)

	// HydratedByQueryID retrieves a query's results joined with photo
	// alias and path for display
	HydratedByQueryID(ctx context.Context, queryID model.QueryID) ([]model.HydratedResult, error)
}
