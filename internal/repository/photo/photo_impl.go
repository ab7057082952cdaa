package photo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository"
)

// photoRepository implements Repository using PostgreSQL
type photoRepository struct {
	pool repository.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool repository.Pool) Repository {
	return &photoRepository{
		pool: pool,
	}
}

// Insert creates a new photo record and returns its id
func (r *photoRepository) Insert(ctx context.Context, path, hash, alias string) (model.PhotoID, error) {
	sql := "INSERT INTO photos (hash, path, alias) VALUES ($1, $2, $3) RETURNING id"

	var id int64
	err := r.pool.QueryRow(ctx, sql, hash, path, alias).Scan(&id)
	if err != nil {
		appErr := repository.HandlePostgresError(err, "failed to create photo")
		if appErr.Code == apperrors.CodeConflict {
			return 0, apperrors.PhotoAlreadyExists(hash)
		}
		return 0, appErr
	}
	return model.PhotoID(id), nil
}

// ExistsByHash reports the id of the photo with the given content hash
func (r *photoRepository) ExistsByHash(ctx context.Context, hash string) (*model.PhotoID, error) {
	sql := "SELECT id FROM photos WHERE hash = $1"

	var id int64
	err := r.pool.QueryRow(ctx, sql, hash).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.HandlePostgresError(err, "failed to check photo hash")
	}
	photoID := model.PhotoID(id)
	return &photoID, nil
}

// GetByID retrieves a photo with its summed audio length
func (r *photoRepository) GetByID(ctx context.Context, id model.PhotoID) (*model.Photo, error) {
	sql := `
		SELECT p.id, p.hash, p.path, p.alias, p.created_at, p.updated_at,
		       COALESCE(SUM(a.length), 0) AS audio_length
		FROM photos p
		LEFT JOIN audio a ON a.photo_id = p.id
		WHERE p.id = $1
		GROUP BY p.id`

	photo, err := scanPhoto(r.pool.QueryRow(ctx, sql, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "photo not found")
		}
		return nil, repository.HandlePostgresError(err, "failed to get photo")
	}
	return photo, nil
}

// GetIDByAlias resolves a display alias to a photo id
func (r *photoRepository) GetIDByAlias(ctx context.Context, alias string) (model.PhotoID, error) {
	sql := "SELECT id FROM photos WHERE alias = $1"

	var id int64
	err := r.pool.QueryRow(ctx, sql, alias).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.Wrap(err, apperrors.CodeNotFound, "photo alias not found")
		}
		return 0, repository.HandlePostgresError(err, "failed to resolve photo alias")
	}
	return model.PhotoID(id), nil
}

// List retrieves all photos with their summed audio lengths
func (r *photoRepository) List(ctx context.Context) ([]*model.Photo, error) {
	sql := `
		SELECT p.id, p.hash, p.path, p.alias, p.created_at, p.updated_at,
		       COALESCE(SUM(a.length), 0) AS audio_length
		FROM photos p
		LEFT JOIN audio a ON a.photo_id = p.id
		GROUP BY p.id
		ORDER BY p.id`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, repository.HandlePostgresError(err, "failed to list photos")
	}
	defer rows.Close()

	var photos []*model.Photo
	for rows.Next() {
		photo, err := scanPhoto(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan photo row")
		}
		photos = append(photos, photo)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate photo rows")
	}

	return photos, nil
}

// scanPhoto reads one photo-with-audio-length row
func scanPhoto(row pgx.Row) (*model.Photo, error) {
	var photo model.Photo
	var id int64
	var lengthMillis float64
	err := row.Scan(&id, &photo.Hash, &photo.Path, &photo.Alias, &photo.CreatedAt, &photo.UpdatedAt, &lengthMillis)
	if err != nil {
		return nil, err
	}
	photo.ID = model.PhotoID(id)
	photo.AudioLengthSeconds = lengthMillis / 1000.0
	return &photo, nil
}
