package photo

import (
	"context"

	"github.com/reitmaier/banjara-api/internal/model"
)

// Repository defines operations for Photo persistence
type Repository interface {
	// Insert creates a new photo record and returns its id
	Insert(ctx context.Context, path, hash, alias string) (model.PhotoID, error)

	// ExistsByHash reports the id of the photo with the given content
	// hash, or nil when none exists
	ExistsByHash(ctx context.Context, hash string) (*model.PhotoID, error)

	// GetByID retrieves a photo with its summed audio length
	GetByID(ctx context.Context, id model.PhotoID) (*model.Photo, error)

	// GetIDByAlias resolves a display alias to a photo id
	GetIDByAlias(ctx context.Context, alias string) (model.PhotoID, error)

	// List retrieves all photos with their summed audio lengths
	List(ctx context.Context) ([]*model.Photo, error)
}
