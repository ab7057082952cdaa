package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository/photo"
	"github.com/reitmaier/banjara-api/internal/repository/query"
	"github.com/reitmaier/banjara-api/internal/repository/result"
	"github.com/reitmaier/banjara-api/internal/repository/translationaudio"
	"github.com/reitmaier/banjara-api/internal/store"
)

// ResultOutcome is the per-element outcome of a speech-result batch
// ingest. Batch elements succeed or fail independently.
type ResultOutcome struct {
	Photo string
	Err   error
}

// QueryService defines operations for query ingestion, annotation and
// hydration
type QueryService interface {
	// CreateQuery persists a query recording under its client-supplied
	// UUID; duplicate ids are rejected, not overwritten
	CreateQuery(ctx context.Context, id model.QueryID, file io.Reader, extension string) (model.QueryID, error)

	// GetHydratedByID assembles a query with its results, translation
	// audio, and creation-order neighbors
	GetHydratedByID(ctx context.Context, id model.QueryID) (*model.HydratedQuery, error)

	// ResolveSampleID maps a sample number to its query's UUID
	ResolveSampleID(ctx context.Context, sampleID model.SampleID) (model.QueryID, error)

	// GetHydratedBySampleID assembles a query located by sample number;
	// navigation is sampleId±1, a missing neighbor is absent, not an error
	GetHydratedBySampleID(ctx context.Context, sampleID model.SampleID) (*model.HydratedQuery, error)

	// ListHydrated assembles every query for the overview page
	ListHydrated(ctx context.Context) ([]*model.HydratedQuery, error)

	// IngestResults ranks a batch of speech results by descending
	// confidence and inserts them; elements fail independently
	IngestResults(ctx context.Context, id model.QueryID, speechResults []model.SpeechResult) []ResultOutcome

	// RateResult updates the rating of an existing result row; it
	// never creates one
	RateResult(ctx context.Context, id model.QueryID, speechResult model.SpeechResult) error

	// SetInclude updates the query's corpus inclusion status
	SetInclude(ctx context.Context, id model.QueryID, include model.Include) (model.Include, error)

	// SetTranslation stores a human translation for one language
	SetTranslation(ctx context.Context, id model.QueryID, language model.Language, text string) error

	// SetTextComment stores the query's free-text comment
	SetTextComment(ctx context.Context, id model.QueryID, textComment string) error

	// AddComment persists a comment recording and appends its path to
	// the query's append-only comment list
	AddComment(ctx context.Context, id model.QueryID, file io.Reader, extension string) (model.QueryID, error)
}

// queryService implements QueryService
type queryService struct {
	queryStore      *store.Store
	commentStore    *store.Store
	queryRepo       query.Repository
	photoRepo       photo.Repository
	resultRepo      result.Repository
	translationRepo translationaudio.Repository
}

// NewQueryService creates a new QueryService
func NewQueryService(
	queryStore *store.Store,
	commentStore *store.Store,
	queryRepo query.Repository,
	photoRepo photo.Repository,
	resultRepo result.Repository,
	translationRepo translationaudio.Repository,
) QueryService {
	return &queryService{
		queryStore:      queryStore,
		commentStore:    commentStore,
		queryRepo:       queryRepo,
		photoRepo:       photoRepo,
		resultRepo:      resultRepo,
		translationRepo: translationRepo,
	}
}

// CreateQuery persists a query recording under its client-supplied UUID
func (s *queryService) CreateQuery(ctx context.Context, id model.QueryID, file io.Reader, extension string) (model.QueryID, error) {
	taken, err := s.queryRepo.Exists(ctx, id)
	if err != nil {
		return model.QueryID{}, err
	}
	if taken {
		return model.QueryID{}, errors.QueryAlreadyExists(id.String())
	}

	path, err := s.queryStore.SaveNamed(file, id.String()+"."+extension)
	if err != nil {
		return model.QueryID{}, err
	}

	created, err := s.queryRepo.Insert(ctx, id, path)
	if err != nil {
		// On a conflict the file belongs to the row that won the
		// race; removing it would orphan that row.
		if !errors.IsCode(err, errors.CodeConflict) {
			s.queryStore.Remove(path)
		}
		return model.QueryID{}, err
	}
	return created, nil
}

// GetHydratedByID assembles a query with creation-order neighbors
func (s *queryService) GetHydratedByID(ctx context.Context, id model.QueryID) (*model.HydratedQuery, error) {
	q, err := s.queryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, err := s.queryRepo.GetNext(ctx, id)
	if err != nil {
		return nil, err
	}
	previous, err := s.queryRepo.GetPrevious(ctx, id)
	if err != nil {
		return nil, err
	}

	hydrated, err := s.hydrate(ctx, q)
	if err != nil {
		return nil, err
	}
	if next != nil {
		hydrated.NextID = &next.ID
	}
	if previous != nil {
		hydrated.PreviousID = &previous.ID
	}
	return hydrated, nil
}

// ResolveSampleID maps a sample number to its query's UUID
func (s *queryService) ResolveSampleID(ctx context.Context, sampleID model.SampleID) (model.QueryID, error) {
	q, err := s.queryRepo.GetBySampleID(ctx, sampleID)
	if err != nil {
		return model.QueryID{}, err
	}
	return q.ID, nil
}

// GetHydratedBySampleID assembles a query located by sample number
func (s *queryService) GetHydratedBySampleID(ctx context.Context, sampleID model.SampleID) (*model.HydratedQuery, error) {
	q, err := s.queryRepo.GetBySampleID(ctx, sampleID)
	if err != nil {
		return nil, err
	}

	hydrated, err := s.hydrate(ctx, q)
	if err != nil {
		return nil, err
	}

	// Sample navigation is sampleId±1; a gap in the sequence simply
	// means no neighbor at that step.
	if next, err := s.neighborBySampleID(ctx, sampleID.Next()); err != nil {
		return nil, err
	} else if next != nil {
		hydrated.NextID = &next.ID
	}
	if prev, err := s.neighborBySampleID(ctx, sampleID.Prev()); err != nil {
		return nil, err
	} else if prev != nil {
		hydrated.PreviousID = &prev.ID
	}
	return hydrated, nil
}

// neighborBySampleID resolves an adjacent sample number to its query,
// treating invalid and unassigned numbers as absent
func (s *queryService) neighborBySampleID(ctx context.Context, sampleID model.SampleID) (*model.Query, error) {
	if !sampleID.Valid() {
		return nil, nil
	}
	q, err := s.queryRepo.GetBySampleID(ctx, sampleID)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return q, nil
}

// hydrate attaches results and translation audio to a query
func (s *queryService) hydrate(ctx context.Context, q *model.Query) (*model.HydratedQuery, error) {
	results, err := s.resultRepo.HydratedByQueryID(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	translations, err := s.translationRepo.GetByQueryID(ctx, q.ID)
	if err != nil {
		return nil, err
	}

	return &model.HydratedQuery{
		Query:            *q,
		Results:          results,
		TranslationAudio: translations,
	}, nil
}

// ListHydrated assembles every query for the overview page
func (s *queryService) ListHydrated(ctx context.Context) ([]*model.HydratedQuery, error) {
	queries, err := s.queryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	hydrated := make([]*model.HydratedQuery, 0, len(queries))
	for _, q := range queries {
		item, err := s.hydrate(ctx, q)
		if err != nil {
			return nil, err
		}
		hydrated = append(hydrated, item)
	}
	return hydrated, nil
}

// IngestResults ranks a batch of speech results and inserts them.
// Ranking is the 1-based position after sorting by descending
// confidence, assigned once and never recomputed. This is not a
// transaction: each element succeeds or fails on its own.
func (s *queryService) IngestResults(ctx context.Context, id model.QueryID, speechResults []model.SpeechResult) []ResultOutcome {
	sorted := make([]model.SpeechResult, len(speechResults))
	copy(sorted, speechResults)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	outcomes := make([]ResultOutcome, 0, len(sorted))
	for i, speechResult := range sorted {
		outcomes = append(outcomes, ResultOutcome{
			Photo: speechResult.Photo,
			Err:   s.ingestOne(ctx, id, speechResult, i+1),
		})
	}
	return outcomes
}

// ingestOne resolves one alias and inserts its ranked result row
func (s *queryService) ingestOne(ctx context.Context, id model.QueryID, speechResult model.SpeechResult, ranking int) error {
	photoID, err := s.photoRepo.GetIDByAlias(ctx, speechResult.Photo)
	if err != nil {
		return err
	}
	return s.resultRepo.Insert(ctx, &model.QueryResult{
		QueryID:    id,
		PhotoID:    photoID,
		Confidence: speechResult.Confidence,
		Rating:     speechResult.Rating,
		Ranking:    ranking,
	})
}

// RateResult updates the rating of an existing result row
func (s *queryService) RateResult(ctx context.Context, id model.QueryID, speechResult model.SpeechResult) error {
	photoID, err := s.photoRepo.GetIDByAlias(ctx, speechResult.Photo)
	if err != nil {
		return err
	}
	return s.resultRepo.Rate(ctx, id, photoID, speechResult.Rating)
}

// SetInclude updates the query's corpus inclusion status
func (s *queryService) SetInclude(ctx context.Context, id model.QueryID, include model.Include) (model.Include, error) {
	if err := s.queryRepo.UpdateInclude(ctx, id, include); err != nil {
		return model.IncludeUnknown, err
	}
	return include, nil
}

// SetTranslation stores a human translation for one language
func (s *queryService) SetTranslation(ctx context.Context, id model.QueryID, language model.Language, text string) error {
	return s.queryRepo.UpdateTranslation(ctx, id, language, text)
}

// SetTextComment stores the query's free-text comment
func (s *queryService) SetTextComment(ctx context.Context, id model.QueryID, textComment string) error {
	return s.queryRepo.UpdateTextComment(ctx, id, textComment)
}

// AddComment persists a comment recording and appends its path to the
// query's comment list
func (s *queryService) AddComment(ctx context.Context, id model.QueryID, file io.Reader, extension string) (model.QueryID, error) {
	taken, err := s.queryRepo.Exists(ctx, id)
	if err != nil {
		return model.QueryID{}, err
	}
	if !taken {
		return model.QueryID{}, errors.QueryIDInvalid()
	}

	name := fmt.Sprintf("%s-%d.%s", id.String(), time.Now().UnixMilli(), extension)
	path, err := s.commentStore.SaveNamed(file, name)
	if err != nil {
		return model.QueryID{}, err
	}

	if err := s.queryRepo.AppendCommentPath(ctx, id, path); err != nil {
		s.commentStore.Remove(path)
		return model.QueryID{}, err
	}
	return id, nil
}
