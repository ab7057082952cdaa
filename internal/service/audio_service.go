package service

import (
	"context"
	"io"

	"github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository/audio"
	"github.com/reitmaier/banjara-api/internal/repository/photo"
	"github.com/reitmaier/banjara-api/internal/store"
)

// AudioService defines operations for attaching recordings to photos
type AudioService interface {
	// AttachAudio ingests a community recording and links it to the
	// photo identified by its content hash
	AttachAudio(ctx context.Context, photoHash string, file io.Reader, extension string, lengthMillis int64) (model.AudioID, error)
}

// audioService implements AudioService
type audioService struct {
	audioStore *store.Store
	photoRepo  photo.Repository
	audioRepo  audio.Repository
}

// NewAudioService creates a new AudioService
func NewAudioService(audioStore *store.Store, photoRepo photo.Repository, audioRepo audio.Repository) AudioService {
	return &audioService{
		audioStore: audioStore,
		photoRepo:  photoRepo,
		audioRepo:  audioRepo,
	}
}

// AttachAudio ingests a recording and links it to a photo
func (s *audioService) AttachAudio(ctx context.Context, photoHash string, file io.Reader, extension string, lengthMillis int64) (model.AudioID, error) {
	photoID, err := s.photoRepo.ExistsByHash(ctx, photoHash)
	if err != nil {
		return 0, err
	}
	if photoID == nil {
		return 0, errors.PhotoHashInvalid()
	}

	hash, path, err := s.audioStore.Ingest(ctx, file, extension, func(ctx context.Context, hash string) (bool, error) {
		existing, err := s.audioRepo.ExistsByHash(ctx, hash)
		if err != nil {
			return false, err
		}
		return existing != nil, nil
	})
	if err != nil {
		if errors.IsCode(err, errors.CodeConflict) {
			return 0, errors.AudioAlreadyExists(hash)
		}
		return 0, err
	}

	id, err := s.audioRepo.Insert(ctx, *photoID, path, hash, lengthMillis)
	if err != nil {
		if !errors.IsCode(err, errors.CodeConflict) {
			s.audioStore.Remove(path)
		}
		return 0, err
	}
	return id, nil
}
