package result

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository"
)

// resultRepository implements Repository using PostgreSQL
type resultRepository struct {
	pool repository.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool repository.Pool) Repository {
	return &resultRepository{
		pool: pool,
	}
}

// Insert creates a ranked result row
func (r *resultRepository) Insert(ctx context.Context, result *model.QueryResult) error {
	sql := "INSERT INTO query_results (query_id, photo_id, confidence, rating, ranking) VALUES ($1, $2, $3, $4, $5)"

	_, err := r.pool.Exec(ctx, sql,
		result.QueryID.UUID(), int64(result.PhotoID), result.Confidence, int(result.Rating), result.Ranking)
	if err != nil {
		appErr := repository.HandlePostgresError(err, "failed to create query result")
		if appErr.Code == apperrors.CodeConflict {
			return apperrors.QueryResultAlreadyExists(result.QueryID.String(), result.PhotoID.String())
		}
		return appErr
	}
	return nil
}

// Exists reports whether a result row exists for the pair
func (r *resultRepository) Exists(ctx context.Context, queryID model.QueryID, photoID model.PhotoID) (bool, error) {
	sql := "SELECT 1 FROM query_results WHERE query_id = $1 AND photo_id = $2"

	var one int
	err := r.pool.QueryRow(ctx, sql, queryID.UUID(), int64(photoID)).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, repository.HandlePostgresError(err, "failed to check query result")
	}
	return true, nil
}

// Rate updates the rating of an existing result row; it never creates one
func (r *resultRepository) Rate(ctx context.Context, queryID model.QueryID, photoID model.PhotoID, rating model.Rating) error {
	sql := "UPDATE query_results SET rating = $1 WHERE query_id = $2 AND photo_id = $3"

	tag, err := r.pool.Exec(ctx, sql, int(rating), queryID.UUID(), int64(photoID))
	if err != nil {
		return repository.HandlePostgresError(err, "failed to rate query result")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.New(apperrors.CodeNotFound, "query result not found")
	}
	return nil
}

// GetByQueryID retrieves a query's result rows by ranking
func (r *resultRepository) GetByQueryID(ctx context.Context, queryID model.QueryID) ([]*model.QueryResult, error) {
	sql := "SELECT query_id, photo_id, confidence, rating, ranking FROM query_results WHERE query_id = $1 ORDER BY ranking"

	rows, err := r.pool.Query(ctx, sql, queryID.UUID())
	if err != nil {
		return nil, repository.HandlePostgresError(err, "failed to list query results")
	}
	defer rows.Close()

	var results []*model.QueryResult
	for rows.Next() {
		var (
			item    model.QueryResult
			qid     uuid.UUID
			photoID int64
			rating  int
		)
		if err := rows.Scan(&qid, &photoID, &item.Confidence, &rating, &item.Ranking); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan query result row")
		}
		item.QueryID = model.QueryID(qid)
		item.PhotoID = model.PhotoID(photoID)
		item.Rating = model.RatingFromValue(rating)
		results = append(results, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate query result rows")
	}

	return results, nil
}

// HydratedByQueryID retrieves a query's results joined with photo
// alias and path for display
func (r *resultRepository) HydratedByQueryID(ctx context.Context, queryID model.QueryID) ([]model.HydratedResult, error) {
	sql := `
		SELECT r.query_id, r.photo_id, r.confidence, r.rating, r.ranking, p.path, p.alias
		FROM query_results r
		JOIN photos p ON p.id = r.photo_id
		WHERE r.query_id = $1
		ORDER BY r.ranking`

	rows, err := r.pool.Query(ctx, sql, queryID.UUID())
	if err != nil {
		return nil, repository.HandlePostgresError(err, "failed to hydrate query results")
	}
	defer rows.Close()

	var results []model.HydratedResult
	for rows.Next() {
		var (
			item    model.HydratedResult
			qid     uuid.UUID
			photoID int64
			rating  int
		)
		err := rows.Scan(&qid, &photoID, &item.Confidence, &rating, &item.Ranking, &item.PhotoPath, &item.PhotoAlias)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan hydrated result row")
		}
		item.QueryID = model.QueryID(qid)
		item.PhotoID = model.PhotoID(photoID)
		item.Rating = model.RatingFromValue(rating)
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate hydrated result rows")
	}

	return results, nil
}
