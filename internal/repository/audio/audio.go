package audio

import (
	"context"

	"github.com/reitmaier/banjara-api/internal/model"
)

// Repository defines operations for Audio persistence
type Repository interface {
	// Insert creates a new audio record and returns its id
	Insert(ctx context.Context, photoID model.PhotoID, path, hash string, lengthMillis int64) (model.AudioID, error)

	// ExistsByHash reports the id of the audio with the given content
	// hash, or nil when none exists
	ExistsByHash(ctx context.Context, hash string) (*model.AudioID, error)

	// GetByPhotoID retrieves the recordings attached to a photo
	GetByPhotoID(ctx context.Context, photoID model.PhotoID) ([]*model.Audio, error)

	// TotalLength sums the length of all recordings, in milliseconds
	TotalLength(ctx context.Context) (float64, error)
}
