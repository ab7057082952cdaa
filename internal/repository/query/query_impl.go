package query

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository"
)

const queryColumns = "id, path, created_at, updated_at, comment_path, text_comment, include, translation_en, translation_hi, translation_mr, sample_id"

// queryRepository implements Repository using PostgreSQL
type queryRepository struct {
	pool repository.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool repository.Pool) Repository {
	return &queryRepository{
		pool: pool,
	}
}

// Insert creates a query with its client-supplied id
func (r *queryRepository) Insert(ctx context.Context, id model.QueryID, path string) (model.QueryID, error) {
	sql := "INSERT INTO queries (id, path) VALUES ($1, $2) RETURNING id"

	var returned uuid.UUID
	err := r.pool.QueryRow(ctx, sql, id.UUID(), path).Scan(&returned)
	if err != nil {
		appErr := repository.HandlePostgresError(err, "failed to create query")
		if appErr.Code == apperrors.CodeConflict {
			return model.QueryID{}, apperrors.QueryAlreadyExists(id.String())
		}
		return model.QueryID{}, appErr
	}
	return model.QueryID(returned), nil
}

// Exists reports whether the query id is taken
func (r *queryRepository) Exists(ctx context.Context, id model.QueryID) (bool, error) {
	sql := "SELECT 1 FROM queries WHERE id = $1"

	var one int
	err := r.pool.QueryRow(ctx, sql, id.UUID()).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, repository.HandlePostgresError(err, "failed to check query id")
	}
	return true, nil
}

// GetByID retrieves a query
func (r *queryRepository) GetByID(ctx context.Context, id model.QueryID) (*model.Query, error) {
	sql := "SELECT " + queryColumns + " FROM queries WHERE id = $1"

	q, err := scanQuery(r.pool.QueryRow(ctx, sql, id.UUID()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "query not found")
		}
		return nil, repository.HandlePostgresError(err, "failed to get query")
	}
	return q, nil
}

// GetBySampleID retrieves the query carrying the sample number
func (r *queryRepository) GetBySampleID(ctx context.Context, sampleID model.SampleID) (*model.Query, error) {
	sql := "SELECT " + queryColumns + " FROM queries WHERE sample_id = $1"

	q, err := scanQuery(r.pool.QueryRow(ctx, sql, int(sampleID)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "query not found")
		}
		return nil, repository.HandlePostgresError(err, "failed to get query by sample id")
	}
	return q, nil
}

// GetNext returns the query created immediately after the given one
func (r *queryRepository) GetNext(ctx context.Context, id model.QueryID) (*model.Query, error) {
	sql := `
		SELECT ` + queryColumns + `
		FROM queries
		WHERE created_at > (SELECT created_at FROM queries WHERE id = $1)
		ORDER BY created_at ASC
		LIMIT 1`
	return r.adjacent(ctx, sql, id)
}

// GetPrevious returns the query created immediately before the given one
func (r *queryRepository) GetPrevious(ctx context.Context, id model.QueryID) (*model.Query, error) {
	sql := `
		SELECT ` + queryColumns + `
		FROM queries
		WHERE created_at < (SELECT created_at FROM queries WHERE id = $1)
		ORDER BY created_at DESC
		LIMIT 1`
	return r.adjacent(ctx, sql, id)
}

// adjacent runs a navigation query; a missing neighbor is nil, not an error
func (r *queryRepository) adjacent(ctx context.Context, sql string, id model.QueryID) (*model.Query, error) {
	q, err := scanQuery(r.pool.QueryRow(ctx, sql, id.UUID()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.HandlePostgresError(err, "failed to navigate queries")
	}
	return q, nil
}

// List retrieves all queries in creation order
func (r *queryRepository) List(ctx context.Context) ([]*model.Query, error) {
	sql := "SELECT " + queryColumns + " FROM queries ORDER BY created_at"

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, repository.HandlePostgresError(err, "failed to list queries")
	}
	defer rows.Close()

	var queries []*model.Query
	for rows.Next() {
		q, err := scanQuery(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan query row")
		}
		queries = append(queries, q)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate query rows")
	}

	return queries, nil
}

// GetByPhotoID retrieves queries ranked against a photo
func (r *queryRepository) GetByPhotoID(ctx context.Context, photoID model.PhotoID) ([]*model.QueryWithRank, error) {
	sql := `
		SELECT q.id, q.path, q.created_at, q.updated_at, q.comment_path, q.text_comment, q.include,
		       q.translation_en, q.translation_hi, q.translation_mr, q.sample_id, r.ranking
		FROM queries q
		JOIN query_results r ON r.query_id = q.id
		WHERE r.photo_id = $1
		ORDER BY r.ranking`

	rows, err := r.pool.Query(ctx, sql, int64(photoID))
	if err != nil {
		return nil, repository.HandlePostgresError(err, "failed to list queries for photo")
	}
	defer rows.Close()

	var ranked []*model.QueryWithRank
	for rows.Next() {
		var (
			id           uuid.UUID
			q            model.Query
			commentPath  *string
			sampleID     *int32
			includeValue string
			ranking      int
		)
		err := rows.Scan(&id, &q.Path, &q.CreatedAt, &q.UpdatedAt, &commentPath, &q.TextComment,
			&includeValue, &q.TranslationEN, &q.TranslationHI, &q.TranslationMR, &sampleID, &ranking)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan ranked query row")
		}
		fillQuery(&q, id, commentPath, includeValue, sampleID)
		ranked = append(ranked, &model.QueryWithRank{Query: q, Ranking: ranking})
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate ranked query rows")
	}

	return ranked, nil
}

// AppendCommentPath appends one comment path to the query's comment list.
// The column keeps a comma-joined list; the first comment simply sets it.
func (r *queryRepository) AppendCommentPath(ctx context.Context, id model.QueryID, commentPath string) error {
	var existing *string
	err := r.pool.QueryRow(ctx, "SELECT comment_path FROM queries WHERE id = $1", id.UUID()).Scan(&existing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.Wrap(err, apperrors.CodeNotFound, "query not found")
		}
		return repository.HandlePostgresError(err, "failed to read comment paths")
	}

	joined := commentPath
	if existing != nil && *existing != "" {
		joined = *existing + "," + commentPath
	}

	sql := "UPDATE queries SET comment_path = $1, updated_at = now() WHERE id = $2"
	_, err = r.pool.Exec(ctx, sql, joined, id.UUID())
	if err != nil {
		return repository.HandlePostgresError(err, "failed to append comment path")
	}
	return nil
}

// UpdateInclude sets the query's corpus inclusion status
func (r *queryRepository) UpdateInclude(ctx context.Context, id model.QueryID, include model.Include) error {
	sql := "UPDATE queries SET include = $1, updated_at = now() WHERE id = $2"
	_, err := r.pool.Exec(ctx, sql, string(include), id.UUID())
	if err != nil {
		return repository.HandlePostgresError(err, "failed to update include status")
	}
	return nil
}

// UpdateTextComment sets the query's free-text comment
func (r *queryRepository) UpdateTextComment(ctx context.Context, id model.QueryID, textComment string) error {
	sql := "UPDATE queries SET text_comment = $1, updated_at = now() WHERE id = $2"
	_, err := r.pool.Exec(ctx, sql, textComment, id.UUID())
	if err != nil {
		return repository.HandlePostgresError(err, "failed to update text comment")
	}
	return nil
}

// UpdateTranslation sets the manual translation for one language
func (r *queryRepository) UpdateTranslation(ctx context.Context, id model.QueryID, language model.Language, text string) error {
	var column string
	switch language {
	case model.LanguageEnglish:
		column = "translation_en"
	case model.LanguageHindi:
		column = "translation_hi"
	case model.LanguageMarathi:
		column = "translation_mr"
	default:
		return apperrors.LanguageInvalid()
	}

	sql := "UPDATE queries SET " + column + " = $1, updated_at = now() WHERE id = $2"
	_, err := r.pool.Exec(ctx, sql, text, id.UUID())
	if err != nil {
		return repository.HandlePostgresError(err, "failed to update translation")
	}
	return nil
}

// scanQuery reads one full query row
func scanQuery(row pgx.Row) (*model.Query, error) {
	var (
		id           uuid.UUID
		q            model.Query
		commentPath  *string
		sampleID     *int32
		includeValue string
	)
	err := row.Scan(&id, &q.Path, &q.CreatedAt, &q.UpdatedAt, &commentPath, &q.TextComment,
		&includeValue, &q.TranslationEN, &q.TranslationHI, &q.TranslationMR, &sampleID)
	if err != nil {
		return nil, err
	}
	fillQuery(&q, id, commentPath, includeValue, sampleID)
	return &q, nil
}

func fillQuery(q *model.Query, id uuid.UUID, commentPath *string, includeValue string, sampleID *int32) {
	q.ID = model.QueryID(id)
	q.Include = model.IncludeFromString(includeValue)
	if commentPath != nil {
		q.CommentPaths = model.SplitCommentPaths(*commentPath)
	}
	if sampleID != nil {
		sid := model.SampleID(*sampleID)
		q.SampleID = &sid
	}
}
