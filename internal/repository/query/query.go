package query

import (
	"context"

	"github.com/reitmaier/banjara-api/internal/model"
)

// Repository defines operations for Query persistence.
//
// Next/previous navigation is defined over creation order, not UUID
// lexical order, since client-supplied UUIDs carry no ordering.
type Repository interface {
	// Insert creates a query with its client-supplied id
	Insert(ctx context.Context, id model.QueryID, path string) (model.QueryID, error)

	// Exists reports whether the query id is taken
	Exists(ctx context.Context, id model.QueryID) (bool, error)

	// GetByID retrieves a query
	GetByID(ctx context.Context, id model.QueryID) (*model.Query, error)

	// GetBySampleID retrieves the query carrying the sample number
	GetBySampleID(ctx context.Context, sampleID model.SampleID) (*model.Query, error)

	// GetNext returns the query created immediately after the given
	// one, or nil at the end of the corpus
	GetNext(ctx context.Context, id model.QueryID) (*model.Query, error)

	// GetPrevious returns the query created immediately before the
	// given one, or nil at the start of the corpus
	GetPrevious(ctx context.Context, id model.QueryID) (*model.Query, error)

	// List retrieves all queries in creation order
	List(ctx context.Context) ([]*model.Query, error)

	// GetByPhotoID retrieves queries ranked against a photo
	GetByPhotoID(ctx context.Context, photoID model.PhotoID) ([]*model.QueryWithRank, error)

	// AppendCommentPath appends one comment path to the query's
	// append-only comment list
	AppendCommentPath(ctx context.Context, id model.QueryID, commentPath string) error

	// UpdateInclude sets the query's corpus inclusion status
	UpdateInclude(ctx context.Context, id model.QueryID, include model.Include) error

	// UpdateTextComment sets the query's free-text comment
	UpdateTextComment(ctx context.Context, id model.QueryID, textComment string) error

	// UpdateTranslation sets the manual translation for one language
	UpdateTranslation(ctx context.Context, id model.QueryID, language model.Language, text string) error
}
