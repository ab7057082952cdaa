package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/reitmaier/banjara-api/internal/model"
)

// photoListResponse is the payload of GET /photo
type photoListResponse struct {
	Photos               []*model.Photo `json:"photos"`
	TotalAudioLengthSecs float64        `json:"totalAudioLengthSeconds"`
}

// CreatePhoto handles POST /photo with multipart(file, alias?)
func (h *Handler) CreatePhoto(w http.ResponseWriter, r *http.Request) {
	file, extension, err := readUpload(r, "jpg")
	if err != nil {
		h.respondError(w, err)
		return
	}
	defer file.Close()

	alias := r.FormValue("alias")

	id, err := h.photos.CreatePhoto(r.Context(), file, extension, alias)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondText(w, id.String())
}

// GetPhoto handles GET /photo/{photoID}, accepting either a numeric id
// or an alias
func (h *Handler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	detail, err := h.photos.GetPhotoDetail(r.Context(), chi.URLParam(r, "photoID"))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, detail)
}

// ListPhotos handles GET /photo
func (h *Handler) ListPhotos(w http.ResponseWriter, r *http.Request) {
	photos, totalSeconds, err := h.photos.ListPhotos(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, photoListResponse{
		Photos:               photos,
		TotalAudioLengthSecs: totalSeconds,
	})
}
