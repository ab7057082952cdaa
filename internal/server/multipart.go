package server

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/reitmaier/banjara-api/internal/errors"
)

// uploads are bounded in memory; larger files spill to disk
const maxMultipartMemory = 32 << 20

// readUpload extracts the file part of a multipart request and derives
// the stored extension from its filename
func readUpload(r *http.Request, defaultExtension string) (multipart.File, string, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, "", errors.RequestFileMissing()
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", errors.RequestFileMissing()
	}

	if header.Filename == "" {
		file.Close()
		return nil, "", errors.FileNameMissing()
	}

	extension := strings.TrimPrefix(filepath.Ext(header.Filename), ".")
	if extension == "" {
		extension = defaultExtension
	}
	return file, extension, nil
}
