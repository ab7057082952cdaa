package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository/audio"
	"github.com/reitmaier/banjara-api/internal/repository/photo"
	"github.com/reitmaier/banjara-api/internal/repository/query"
	"github.com/reitmaier/banjara-api/internal/store"
)

// PhotoService defines operations for photo ingestion and display
type PhotoService interface {
	// CreatePhoto ingests photo bytes and persists its metadata. An
	// empty alias defaults to a generated unique token.
	CreatePhoto(ctx context.Context, file io.Reader, extension, alias string) (model.PhotoID, error)

	// GetPhotoDetail assembles the photo with its attached audio and
	// the queries ranked against it. Resolution tries a numeric id
	// first and falls back to alias lookup.
	GetPhotoDetail(ctx context.Context, idOrAlias string) (*model.PhotoDetail, error)

	// ListPhotos retrieves all photos plus the corpus-wide summed
	// audio length in seconds
	ListPhotos(ctx context.Context) ([]*model.Photo, float64, error)
}

// photoService implements PhotoService
type photoService struct {
	photoStore *store.Store
	photoRepo  photo.Repository
	audioRepo  audio.Repository
	queryRepo  query.Repository
}

// NewPhotoService creates a new PhotoService
func NewPhotoService(photoStore *store.Store, photoRepo photo.Repository, audioRepo audio.Repository, queryRepo query.Repository) PhotoService {
	return &photoService{
		photoStore: photoStore,
		photoRepo:  photoRepo,
		audioRepo:  audioRepo,
		queryRepo:  queryRepo,
	}
}

// CreatePhoto ingests photo bytes and persists its metadata
func (s *photoService) CreatePhoto(ctx context.Context, file io.Reader, extension, alias string) (model.PhotoID, error) {
	if alias == "" {
		alias = uuid.NewString()
	}

	hash, path, err := s.photoStore.Ingest(ctx, file, extension, func(ctx context.Context, hash string) (bool, error) {
		existing, err := s.photoRepo.ExistsByHash(ctx, hash)
		if err != nil {
			return false, err
		}
		return existing != nil, nil
	})
	if err != nil {
		if errors.IsCode(err, errors.CodeConflict) {
			return 0, errors.PhotoAlreadyExists(hash)
		}
		return 0, err
	}

	// Metadata is only written after the bytes landed at their final
	// path; if the insert fails the stored file is removed so the two
	// stay consistent. A conflict means another row already owns the
	// file, so it stays.
	id, err := s.photoRepo.Insert(ctx, path, hash, alias)
	if err != nil {
		if !errors.IsCode(err, errors.CodeConflict) {
			s.photoStore.Remove(path)
		}
		return 0, err
	}
	return id, nil
}

// GetPhotoDetail assembles the photo with its audio and ranked queries
func (s *photoService) GetPhotoDetail(ctx context.Context, idOrAlias string) (*model.PhotoDetail, error) {
	photoID, err := s.resolve(ctx, idOrAlias)
	if err != nil {
		return nil, err
	}

	photoInfo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	audioItems, err := s.audioRepo.GetByPhotoID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	queries, err := s.queryRepo.GetByPhotoID(ctx, photoID)
	if err != nil {
		return nil, err
	}

	detail := &model.PhotoDetail{Photo: *photoInfo}
	for _, item := range audioItems {
		detail.Audio = append(detail.Audio, *item)
	}
	for _, ranked := range queries {
		detail.Queries = append(detail.Queries, *ranked)
	}
	return detail, nil
}

// resolve interprets the parameter as a numeric id first, falling back
// to alias resolution when the parse or the lookup misses
func (s *photoService) resolve(ctx context.Context, idOrAlias string) (model.PhotoID, error) {
	photoID, parseErr := model.ParsePhotoID(idOrAlias)
	if parseErr == nil {
		if _, err := s.photoRepo.GetByID(ctx, photoID); err == nil {
			return photoID, nil
		} else if !errors.IsCode(err, errors.CodeNotFound) {
			return 0, err
		}
	}
	return s.photoRepo.GetIDByAlias(ctx, idOrAlias)
}

// ListPhotos retrieves all photos plus the total audio length in seconds
func (s *photoService) ListPhotos(ctx context.Context) ([]*model.Photo, float64, error) {
	photos, err := s.photoRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	totalMillis, err := s.audioRepo.TotalLength(ctx)
	if err != nil {
		return nil, 0, err
	}

	return photos, totalMillis / 1000.0, nil
}
