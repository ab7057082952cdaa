package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
	"github.com/reitmaier/banjara-api/internal/repository/translationaudio"
	"github.com/reitmaier/banjara-api/internal/service/speech"
	"github.com/reitmaier/banjara-api/internal/store"
)

// PipelineService runs the transcribe→translate pipeline for
// translation audio. The pipeline is fire-and-forget: it is detached
// from the uploading request and runs to completion or failure, with
// its state recorded on the owning row rather than surfaced to the
// uploader.
type PipelineService interface {
	// AttachTranslationAudio persists a translation recording and
	// starts its background transcription
	AttachTranslationAudio(ctx context.Context, queryID model.QueryID, language model.Language, file io.Reader, extension string) (model.TranslationAudioID, error)

	// RetryTranslation re-runs translation from the stored transcript
	// and returns the owning query id for redirecting
	RetryTranslation(ctx context.Context, id model.TranslationAudioID) (model.QueryID, error)

	// Wait blocks until all in-flight background pipelines finish
	Wait()
}

// pipelineService implements PipelineService
type pipelineService struct {
	translationStore *store.Store
	translationRepo  translationaudio.Repository
	transcriber      speech.Transcriber
	translator       speech.Translator
	logger           *slog.Logger

	// inflight guards against concurrent transcriptions of the same row
	mu       sync.Mutex
	inflight map[model.TranslationAudioID]struct{}
	wg       sync.WaitGroup
}

// NewPipelineService creates a new PipelineService
func NewPipelineService(
	translationStore *store.Store,
	translationRepo translationaudio.Repository,
	transcriber speech.Transcriber,
	translator speech.Translator,
	logger *slog.Logger,
) PipelineService {
	return &pipelineService{
		translationStore: translationStore,
		translationRepo:  translationRepo,
		transcriber:      transcriber,
		translator:       translator,
		logger:           logger,
		inflight:         make(map[model.TranslationAudioID]struct{}),
	}
}

// AttachTranslationAudio persists a translation recording and starts
// its background transcription
func (s *pipelineService) AttachTranslationAudio(ctx context.Context, queryID model.QueryID, language model.Language, file io.Reader, extension string) (model.TranslationAudioID, error) {
	name := fmt.Sprintf("%s_%s_%d.%s", queryID.String(), language, time.Now().UnixMilli(), extension)
	path, err := s.translationStore.SaveNamed(file, name)
	if err != nil {
		return 0, err
	}

	id, err := s.translationRepo.Insert(ctx, queryID, language, path)
	if err != nil {
		s.translationStore.Remove(path)
		return 0, err
	}

	// Detached from the request: the upload response returns while the
	// pipeline is still running.
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.process(context.Background(), id, language, path)
	}()

	return id, nil
}

// process runs one row's transcription and, on success, its
// translation. Serialized per row: a second attempt while one is
// running is dropped.
func (s *pipelineService) process(ctx context.Context, id model.TranslationAudioID, language model.Language, audioPath string) {
	if !s.acquire(id) {
		s.logger.Warn("transcription already in flight", "translation_audio_id", id)
		return
	}
	defer s.release(id)

	// Readers see Pending while the external call is running
	if err := s.translationRepo.UpdateStatus(ctx, id, model.TranscriptionPending); err != nil {
		s.logger.Error("failed to mark transcription pending", "translation_audio_id", id, "error", err)
		return
	}

	transcript, err := s.transcriber.Transcribe(ctx, audioPath, language)
	if err != nil {
		s.logger.Error("transcription failed", "translation_audio_id", id, "error", err)
		if statusErr := s.translationRepo.UpdateStatus(ctx, id, model.TranscriptionFailed); statusErr != nil {
			s.logger.Error("failed to mark transcription failed", "translation_audio_id", id, "error", statusErr)
		}
		return
	}

	if err := s.translationRepo.UpdateTranscript(ctx, id, transcript); err != nil {
		s.logger.Error("failed to store transcript", "translation_audio_id", id, "error", err)
		if statusErr := s.translationRepo.UpdateStatus(ctx, id, model.TranscriptionFailed); statusErr != nil {
			s.logger.Error("failed to mark transcription failed", "translation_audio_id", id, "error", statusErr)
		}
		return
	}

	// English recordings need no translation. A translation failure
	// does not revert the completed transcription; translation can be
	// retried later from the stored transcript.
	if language == model.LanguageEnglish {
		return
	}
	if err := s.translate(ctx, id, transcript); err != nil {
		s.logger.Error("translation failed", "translation_audio_id", id, "error", err)
	}
}

// translate runs the machine translation and stores its output. The
// current deployment only translates Hindi to English; other source
// languages go through the same pair until more pairs are configured.
func (s *pipelineService) translate(ctx context.Context, id model.TranslationAudioID, transcript string) error {
	translated, err := s.translator.Translate(ctx, transcript, model.LanguageHindi, model.LanguageEnglish)
	if err != nil {
		return err
	}
	return s.translationRepo.UpdateTranslation(ctx, id, translated)
}

// RetryTranslation re-runs translation from the stored transcript
func (s *pipelineService) RetryTranslation(ctx context.Context, id model.TranslationAudioID) (model.QueryID, error) {
	row, err := s.translationRepo.GetByID(ctx, id)
	if err != nil {
		return model.QueryID{}, err
	}
	if row.Transcript == nil {
		return model.QueryID{}, errors.TranslationError(fmt.Errorf("translation audio %s has no transcript", id))
	}

	// A retry while the row's pipeline is still running is a no-op;
	// the caller is redirected back to the query either way.
	if !s.acquire(id) {
		s.logger.Warn("pipeline already in flight", "translation_audio_id", id)
		return row.QueryID, nil
	}
	defer s.release(id)

	if err := s.translate(ctx, id, *row.Transcript); err != nil {
		return model.QueryID{}, err
	}
	return row.QueryID, nil
}

// Wait blocks until all background pipelines finish
func (s *pipelineService) Wait() {
	s.wg.Wait()
}

func (s *pipelineService) acquire(id model.TranslationAudioID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.inflight[id]; running {
		return false
	}
	s.inflight[id] = struct{}{}
	return true
}

func (s *pipelineService) release(id model.TranslationAudioID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}
