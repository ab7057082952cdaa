package audio

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository"
)

// audioRepository implements Repository using PostgreSQL
type audioRepository struct {
	pool repository.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool repository.Pool) Repository {
	return &audioRepository{
		pool: pool,
	}
}

// Insert creates a new audio record and returns its id
func (r *audioRepository) Insert(ctx context.Context, photoID model.PhotoID, path, hash string, lengthMillis int64) (model.AudioID, error) {
	sql := "INSERT INTO audio (photo_id, hash, path, length) VALUES ($1, $2, $3, $4) RETURNING id"

	var id int64
	err := r.pool.QueryRow(ctx, sql, int64(photoID), hash, path, lengthMillis).Scan(&id)
	if err != nil {
		appErr := repository.HandlePostgresError(err, "failed to create audio")
		if appErr.Code == apperrors.CodeConflict {
			return 0, apperrors.AudioAlreadyExists(hash)
		}
		return 0, appErr
	}
	return model.AudioID(id), nil
}

// ExistsByHash reports the id of the audio with the given content hash
func (r *audioRepository) ExistsByHash(ctx context.Context, hash string) (*model.AudioID, error) {
	sql := "SELECT id FROM audio WHERE hash = $1"

	var id int64
	err := r.pool.QueryRow(ctx, sql, hash).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, repository.HandlePostgresError(err, "failed to check audio hash")
	}
	audioID := model.AudioID(id)
	return &audioID, nil
}

// GetByPhotoID retrieves the recordings attached to a photo
func (r *audioRepository) GetByPhotoID(ctx context.Context, photoID model.PhotoID) ([]*model.Audio, error) {
	sql := "SELECT id, photo_id, hash, path, length FROM audio WHERE photo_id = $1 ORDER BY id"

	rows, err := r.pool.Query(ctx, sql, int64(photoID))
	if err != nil {
		return nil, repository.HandlePostgresError(err, "failed to list audio")
	}
	defer rows.Close()

	var items []*model.Audio
	for rows.Next() {
		var item model.Audio
		var id, photo int64
		if err := rows.Scan(&id, &photo, &item.Hash, &item.Path, &item.LengthMillis); err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan audio row")
		}
		item.ID = model.AudioID(id)
		item.PhotoID = model.PhotoID(photo)
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate audio rows")
	}

	return items, nil
}

// TotalLength sums the length of all recordings, in milliseconds
func (r *audioRepository) TotalLength(ctx context.Context) (float64, error) {
	sql := "SELECT COALESCE(SUM(length), 0) FROM audio"

	var total float64
	err := r.pool.QueryRow(ctx, sql).Scan(&total)
	if err != nil {
		return 0, repository.HandlePostgresError(err, "failed to sum audio length")
	}
	return total, nil
}
