package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/reitmaier/banjara-api/internal/model"
)

// mockPhotoRepository for testing
type mockPhotoRepository struct {
	mock.Mock
}

func (m *mockPhotoRepository) Insert(ctx context.Context, path, hash, alias string) (model.PhotoID, error) {
	args := m.Called(ctx, path, hash, alias)
	return args.Get(0).(model.PhotoID), args.Error(1)
}

func (m *mockPhotoRepository) ExistsByHash(ctx context.Context, hash string) (*model.PhotoID, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PhotoID), args.Error(1)
}

func (m *mockPhotoRepository) GetByID(ctx context.Context, id model.PhotoID) (*model.Photo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Photo), args.Error(1)
}

func (m *mockPhotoRepository) GetIDByAlias(ctx context.Context, alias string) (model.PhotoID, error) {
	args := m.Called(ctx, alias)
	return args.Get(0).(model.PhotoID), args.Error(1)
}

func (m *mockPhotoRepository) List(ctx context.Context) ([]*model.Photo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Photo), args.Error(1)
}

// mockAudioRepository for testing
type mockAudioRepository struct {
	mock.Mock
}

func (m *mockAudioRepository) Insert(ctx context.Context, photoID model.PhotoID, path, hash string, lengthMillis int64) (model.AudioID, error) {
	args := m.Called(ctx, photoID, path, hash, lengthMillis)
	return args.Get(0).(model.AudioID), args.Error(1)
}

func (m *mockAudioRepository) ExistsByHash(ctx context.Context, hash string) (*model.AudioID, error) {
	args := m.Called(ctx, hash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AudioID), args.Error(1)
}

func (m *mockAudioRepository) GetByPhotoID(ctx context.Context, photoID model.PhotoID) ([]*model.Audio, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Audio), args.Error(1)
}

func (m *mockAudioRepository) TotalLength(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

// mockQueryRepository for testing
type mockQueryRepository struct {
	mock.Mock
}

func (m *mockQueryRepository) Insert(ctx context.Context, id model.QueryID, path string) (model.QueryID, error) {
	args := m.Called(ctx, id, path)
	return args.Get(0).(model.QueryID), args.Error(1)
}

func (m *mockQueryRepository) Exists(ctx context.Context, id model.QueryID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockQueryRepository) GetByID(ctx context.Context, id model.QueryID) (*model.Query, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Query), args.Error(1)
}

func (m *mockQueryRepository) GetBySampleID(ctx context.Context, sampleID model.SampleID) (*model.Query, error) {
	args := m.Called(ctx, sampleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Query), args.Error(1)
}

func (m *mockQueryRepository) GetNext(ctx context.Context, id model.QueryID) (*model.Query, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Query), args.Error(1)
}

func (m *mockQueryRepository) GetPrevious(ctx context.Context, id model.QueryID) (*model.Query, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Query), args.Error(1)
}

func (m *mockQueryRepository) List(ctx context.Context) ([]*model.Query, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Query), args.Error(1)
}

func (m *mockQueryRepository) GetByPhotoID(ctx context.Context, photoID model.PhotoID) ([]*model.QueryWithRank, error) {
	args := m.Called(ctx, photoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QueryWithRank), args.Error(1)
}

func (m *mockQueryRepository) AppendCommentPath(ctx context.Context, id model.QueryID, commentPath string) error {
	args := m.Called(ctx, id, commentPath)
	return args.Error(0)
}

func (m *mockQueryRepository) UpdateInclude(ctx context.Context, id model.QueryID, include model.Include) error {
	args := m.Called(ctx, id, include)
	return args.Error(0)
}

func (m *mockQueryRepository) UpdateTextComment(ctx context.Context, id model.QueryID, textComment string) error {
	args := m.Called(ctx, id, textComment)
	return args.Error(0)
}

func (m *mockQueryRepository) UpdateTranslation(ctx context.Context, id model.QueryID, language model.Language, text string) error {
	args := m.Called(ctx, id, language, text)
	return args.Error(0)
}

// mockResultRepository for testing
type mockResultRepository struct {
	mock.Mock
}

func (m *mockResultRepository) Insert(ctx context.Context, result *model.QueryResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *mockResultRepository) Exists(ctx context.Context, queryID model.QueryID, photoID model.PhotoID) (bool, error) {
	args := m.Called(ctx, queryID, photoID)
	return args.Bool(0), args.Error(1)
}

func (m *mockResultRepository) Rate(ctx context.Context, queryID model.QueryID, photoID model.PhotoID, rating model.Rating) error {
	args := m.Called(ctx, queryID, photoID, rating)
	return args.Error(0)
}

func (m *mockResultRepository) GetByQueryID(ctx context.Context, queryID model.QueryID) ([]*model.QueryResult, error) {
	args := m.Called(ctx, queryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QueryResult), args.Error(1)
}

func (m *mockResultRepository) HydratedByQueryID(ctx context.Context, queryID model.QueryID) ([]model.HydratedResult, error) {
	args := m.Called(ctx, queryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.HydratedResult), args.Error(1)
}

// mockTranslationAudioRepository for testing
type mockTranslationAudioRepository struct {
	mock.Mock
}

func (m *mockTranslationAudioRepository) Insert(ctx context.Context, queryID model.QueryID, language model.Language, path string) (model.TranslationAudioID, error) {
	args := m.Called(ctx, queryID, language, path)
	return args.Get(0).(model.TranslationAudioID), args.Error(1)
}

func (m *mockTranslationAudioRepository) GetByID(ctx context.Context, id model.TranslationAudioID) (*model.TranslationAudio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TranslationAudio), args.Error(1)
}

func (m *mockTranslationAudioRepository) GetByQueryID(ctx context.Context, queryID model.QueryID) ([]model.TranslationAudio, error) {
	args := m.Called(ctx, queryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TranslationAudio), args.Error(1)
}

func (m *mockTranslationAudioRepository) UpdateStatus(ctx context.Context, id model.TranslationAudioID, status model.TranscriptionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *mockTranslationAudioRepository) UpdateTranscript(ctx context.Context, id model.TranslationAudioID, transcript string) error {
	args := m.Called(ctx, id, transcript)
	return args.Error(0)
}

func (m *mockTranslationAudioRepository) UpdateTranslation(ctx context.Context, id model.TranslationAudioID, translation string) error {
	args := m.Called(ctx, id, translation)
	return args.Error(0)
}

// mockTranscriber for testing
type mockTranscriber struct {
	mock.Mock
}

func (m *mockTranscriber) Transcribe(ctx context.Context, audioPath string, language model.Language) (string, error) {
	args := m.Called(ctx, audioPath, language)
	return args.String(0), args.Error(1)
}

// mockTranslator for testing
type mockTranslator struct {
	mock.Mock
}

func (m *mockTranslator) Translate(ctx context.Context, text string, from, to model.Language) (string, error) {
	args := m.Called(ctx, text, from, to)
	return args.String(0), args.Error(1)
}
