package server

import (
	"net/http"
	"strconv"

	"github.com/reitmaier/banjara-api/internal/errors"
)

// CreateAudio handles POST /audio with multipart(file, photo, length).
// The photo field carries the owning photo's content hash and length is
// the recording duration in seconds.
func (h *Handler) CreateAudio(w http.ResponseWriter, r *http.Request) {
	file, extension, err := readUpload(r, "mp3")
	if err != nil {
		h.respondError(w, err)
		return
	}
	defer file.Close()

	photoHash := r.FormValue("photo")
	if photoHash == "" {
		h.respondError(w, errors.PhotoHashMissing())
		return
	}

	lengthSeconds, err := strconv.ParseFloat(r.FormValue("length"), 64)
	if err != nil {
		h.respondError(w, errors.AudioLengthMissing())
		return
	}
	lengthMillis := int64(lengthSeconds * 1000)

	id, err := h.audio.AttachAudio(r.Context(), photoHash, file, extension, lengthMillis)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondText(w, id.String())
}
