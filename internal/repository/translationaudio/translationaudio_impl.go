package translationaudio

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	apperrors "github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository"
)

const columns = "id, query_id, language, path, created_at, transcript, transcription_status, translation_google_en"

// translationAudioRepository implements Repository using PostgreSQL
type translationAudioRepository struct {
	pool repository.Pool
}

// NewRepository creates a new instance of Repository
func NewRepository(pool repository.Pool) Repository {
	return &translationAudioRepository{
		pool: pool,
	}
}

// Insert creates a translation audio record and returns its id
func (r *translationAudioRepository) Insert(ctx context.Context, queryID model.QueryID, language model.Language, path string) (model.TranslationAudioID, error) {
	sql := "INSERT INTO translation_audio (query_id, language, path) VALUES ($1, $2, $3) RETURNING id"

	var id int64
	err := r.pool.QueryRow(ctx, sql, queryID.UUID(), string(language), path).Scan(&id)
	if err != nil {
		return 0, repository.HandlePostgresError(err, "failed to create translation audio")
	}
	return model.TranslationAudioID(id), nil
}

// GetByID retrieves a translation audio row
func (r *translationAudioRepository) GetByID(ctx context.Context, id model.TranslationAudioID) (*model.TranslationAudio, error) {
	sql := "SELECT " + columns + " FROM translation_audio WHERE id = $1"

	item, err := scanTranslationAudio(r.pool.QueryRow(ctx, sql, int64(id)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(err, apperrors.CodeNotFound, "translation audio not found")
		}
		return nil, repository.HandlePostgresError(err, "failed to get translation audio")
	}
	return item, nil
}

// GetByQueryID retrieves a query's translation audio rows
func (r *translationAudioRepository) GetByQueryID(ctx context.Context, queryID model.QueryID) ([]model.TranslationAudio, error) {
	sql := "SELECT " + columns + " FROM translation_audio WHERE query_id = $1 ORDER BY id"

	rows, err := r.pool.Query(ctx, sql, queryID.UUID())
	if err != nil {
		return nil, repository.HandlePostgresError(err, "failed to list translation audio")
	}
	defer rows.Close()

	var items []model.TranslationAudio
	for rows.Next() {
		item, err := scanTranslationAudio(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to scan translation audio row")
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to iterate translation audio rows")
	}

	return items, nil
}

// UpdateStatus sets the transcription lifecycle state
func (r *translationAudioRepository) UpdateStatus(ctx context.Context, id model.TranslationAudioID, status model.TranscriptionStatus) error {
	sql := "UPDATE translation_audio SET transcription_status = $1 WHERE id = $2"
	_, err := r.pool.Exec(ctx, sql, string(status), int64(id))
	if err != nil {
		return repository.HandlePostgresError(err, "failed to update transcription status")
	}
	return nil
}

// UpdateTranscript stores the transcription output and marks the row
// Completed in the same statement
func (r *translationAudioRepository) UpdateTranscript(ctx context.Context, id model.TranslationAudioID, transcript string) error {
	sql := "UPDATE translation_audio SET transcript = $1, transcription_status = 'Completed' WHERE id = $2"
	_, err := r.pool.Exec(ctx, sql, transcript, int64(id))
	if err != nil {
		return repository.HandlePostgresError(err, "failed to update transcript")
	}
	return nil
}

// UpdateTranslation stores the machine translation output
func (r *translationAudioRepository) UpdateTranslation(ctx context.Context, id model.TranslationAudioID, translation string) error {
	sql := "UPDATE translation_audio SET translation_google_en = $1 WHERE id = $2"
	_, err := r.pool.Exec(ctx, sql, translation, int64(id))
	if err != nil {
		return repository.HandlePostgresError(err, "failed to update translation")
	}
	return nil
}

// scanTranslationAudio reads one translation audio row
func scanTranslationAudio(row pgx.Row) (*model.TranslationAudio, error) {
	var (
		item     model.TranslationAudio
		id       int64
		queryID  uuid.UUID
		language string
		status   string
	)
	err := row.Scan(&id, &queryID, &language, &item.Path, &item.CreatedAt, &item.Transcript, &status, &item.GoogleTranslation)
	if err != nil {
		return nil, err
	}
	item.ID = model.TranslationAudioID(id)
	item.QueryID = model.QueryID(queryID)
	lang, langErr := model.LanguageFromValue(language)
	if langErr != nil {
		lang = model.LanguageUnknown
	}
	item.Language = lang
	item.TranscriptionStatus = model.TranscriptionStatusFromString(status)
	return &item, nil
}
