package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/reitmaier/banjara-api/internal/service"
)

// Handler carries the services the HTTP surface is built on
type Handler struct {
	photos   service.PhotoService
	audio    service.AudioService
	queries  service.QueryService
	pipeline service.PipelineService
	logger   *slog.Logger
}

// NewHandler creates a new Handler
func NewHandler(
	photos service.PhotoService,
	audio service.AudioService,
	queries service.QueryService,
	pipeline service.PipelineService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		photos:   photos,
		audio:    audio,
		queries:  queries,
		pipeline: pipeline,
		logger:   logger,
	}
}

// NewRouter wires the HTTP surface
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)

	r.Route("/photo", func(r chi.Router) {
		r.Get("/", h.ListPhotos)
		r.Post("/", h.CreatePhoto)
		r.Get("/{photoID}", h.GetPhoto)
	})

	r.Route("/audio", func(r chi.Router) {
		r.Post("/", h.CreateAudio)
	})

	r.Route("/query", func(r chi.Router) {
		r.Get("/", h.ListQueries)
		r.Post("/", h.CreateQuery)
		r.Route("/{queryID}", func(r chi.Router) {
			r.Get("/", h.GetQuery)
			r.Post("/rating", h.RateResult)
			r.Post("/include", h.SetInclude)
			r.Post("/translation", h.SetTranslation)
			r.Post("/translationAudio", h.CreateTranslationAudio)
			r.Post("/textComment", h.SetTextComment)
			r.Post("/results", h.IngestResults)
			r.Post("/comment", h.AddComment)
		})
	})

	r.Route("/translationAudio", func(r chi.Router) {
		r.Post("/{translationAudioID}/translate", h.RetryTranslation)
	})

	return r
}
