package translationaudio

import (
	"context"

	"github.com/reitmaier/banjara-api/internal/model"
)

// Repository defines operations for TranslationAudio persistence
type Repository interface {
	// Insert creates a translation audio record and returns its id
	Insert(ctx context.Context, queryID model.QueryID, language model.Language, path string) (model.TranslationAudioID, error)

	// GetByID retrieves a translation audio row
	GetByID(ctx context.Context, id model.TranslationAudioID) (*model.TranslationAudio, error)

	// GetByQueryID retrieves a query's translation audio rows
	GetByQueryID(ctx context.Context, queryID model.QueryID) ([]model.TranslationAudio, error)

	// UpdateStatus sets the transcription lifecycle state
	UpdateStatus(ctx context.Context, id model.TranslationAudioID, status model.TranscriptionStatus) error

	// UpdateTranscript stores the transcription output and marks the
	// row Completed in the same statement, so a Completed row always
	// carries a transcript
	UpdateTranscript(ctx context.Context, id model.TranslationAudioID, transcript string) error

	// UpdateTranslation stores the machine translation output
	UpdateTranslation(ctx context.Context, id model.TranslationAudioID, translation string) error
}
