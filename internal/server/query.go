package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reitmaier/banjara-api/internal/errors"
	"github.com/reitmaier/banjara-api/internal/model"
)

// CreateQuery handles POST /query with multipart(file, id). The client
// supplies the query's UUID so it can correlate the upload with its own
// records.
func (h *Handler) CreateQuery(w http.ResponseWriter, r *http.Request) {
	file, extension, err := readUpload(r, "wav")
	if err != nil {
		h.respondError(w, err)
		return
	}
	defer file.Close()

	id, err := model.ParseQueryID(r.FormValue("id"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	created, err := h.queries.CreateQuery(r.Context(), id, file, extension)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondText(w, created.String())
}

// GetQuery handles GET /query/{queryID}. The path segment is resolved
// as a UUID first, falling back to a sample id; navigation adjacency
// follows the lookup mode.
func (h *Handler) GetQuery(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "queryID")

	if id, err := model.ParseQueryID(param); err == nil {
		hydrated, err := h.queries.GetHydratedByID(r.Context(), id)
		if err != nil {
			h.respondError(w, err)
			return
		}
		h.respondJSON(w, hydrated)
		return
	}

	sampleID, err := model.ParseSampleID(param)
	if err != nil {
		h.respondError(w, err)
		return
	}
	hydrated, err := h.queries.GetHydratedBySampleID(r.Context(), sampleID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, hydrated)
}

// ListQueries handles GET /query
func (h *Handler) ListQueries(w http.ResponseWriter, r *http.Request) {
	hydrated, err := h.queries.ListHydrated(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, hydrated)
}

// IngestResults handles POST /query/{queryID}/results with a JSON list
// of speech results. Elements succeed or fail independently and the
// response reports each outcome.
func (h *Handler) IngestResults(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseQueryID(chi.URLParam(r, "queryID"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	var speechResults []model.SpeechResult
	if err := json.NewDecoder(r.Body).Decode(&speechResults); err != nil {
		h.respondError(w, errors.SpeechResultsInvalid())
		return
	}

	outcomes := h.queries.IngestResults(r.Context(), id, speechResults)
	report := make([]string, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			_, message := errors.HTTPStatus(outcome.Err)
			report = append(report, fmt.Sprintf("%s -> %s", outcome.Photo, message))
		} else {
			report = append(report, fmt.Sprintf("%s -> inserted", outcome.Photo))
		}
	}
	h.respondJSON(w, report)
}

// RateResult handles POST /query/{queryID}/rating with a JSON speech
// result identifying the photo to rate
func (h *Handler) RateResult(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseQueryID(chi.URLParam(r, "queryID"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	var speechResult model.SpeechResult
	if err := json.NewDecoder(r.Body).Decode(&speechResult); err != nil {
		h.respondError(w, errors.SpeechResultInvalid())
		return
	}

	if err := h.queries.RateResult(r.Context(), id, speechResult); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondText(w, speechResult.Rating.String())
}

// SetInclude handles POST /query/{queryID}/include, echoing the
// resolved inclusion value
func (h *Handler) SetInclude(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseQueryID(chi.URLParam(r, "queryID"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	include, err := h.queries.SetInclude(r.Context(), id, model.IncludeFromString(r.FormValue("include")))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondText(w, string(include))
}

// SetTranslation handles POST /query/{queryID}/translation with
// form(lang, translation)
func (h *Handler) SetTranslation(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseQueryID(chi.URLParam(r, "queryID"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	language, err := model.LanguageFromValue(r.FormValue("lang"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	translation := r.FormValue("translation")
	if err := h.queries.SetTranslation(r.Context(), id, language, translation); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondText(w, translation)
}

// SetTextComment handles POST /query/{queryID}/textComment, echoing the
// stored text
func (h *Handler) SetTextComment(w http.ResponseWriter, r *http.Request) {
	id, err := model.ParseQueryID(chi.URLParam(r, "queryID"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	textComment := r.FormValue("textComment")
	if err := h.queries.SetTextComment(r.Context(), id, textComment); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondText(w, textComment)
}

// AddComment handles POST /query/{queryID}/comment with a multipart
// audio upload
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	file, extension, err := readUpload(r, "mp3")
	if err != nil {
		h.respondError(w, err)
		return
	}
	defer file.Close()

	id, err := model.ParseQueryID(chi.URLParam(r, "queryID"))
	if err != nil {
		h.respondError(w, err)
		return
	}

	commented, err := h.queries.AddComment(r.Context(), id, file, extension)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondText(w, commented.String())
}
