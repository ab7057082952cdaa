package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reitmaier/banjara-api/internal/model"
)

// resolveQueryID resolves a path segment as a query UUID, falling back
// to a sample id lookup, mirroring GetQuery
func (h *Handler) resolveQueryID(ctx context.Context, param string) (model.QueryID, error) {
	if id, err := model.ParseQueryID(param); err == nil {
		return id, nil
	}
	sampleID, err := model.ParseSampleID(param)
	if err != nil {
		return model.QueryID{}, err
	}
	return h.queries.ResolveSampleID(ctx, sampleID)
}

// CreateTranslationAudio handles POST /query/{queryID}/translationAudio
// with multipart(file, lang). Transcription and translation continue in
// the background after the redirect.
func (h *Handler) CreateTranslationAudio(w http.ResponseWriter, r *http.Request) {
	file, extension, err := readUpload(r, "mp3")
	if err != nil {
		h.respondError(w, err)
		return
	}
	defer file.Close()

	id, err := h.resolveQueryID(r.Context(), chi.URLParam(r, "queryID"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	language, err := model.LanguageFromValue(r.FormValue("lang"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	if _, err := h.pipeline.AttachTranslationAudio(r.Context(), id, language, file, extension); err != nil {
		h.respondError(w, err)
		return
	}
	http.Redirect(w, r, "/query/"+id.String(), http.StatusFound)
}

// RetryTranslation handles POST /translationAudio/{translationAudioID}/translate,
// re-running translation from the stored transcript
func (h *Handler) RetryTranslation(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseTranslationAudioID(chi.URLParam(r, "translationAudioID"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	queryID, err := h.pipeline.RetryTranslation(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	http.Redirect(w, r, "/query/"+queryID.String(), http.StatusFound)
}
