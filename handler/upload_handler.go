package handler

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

const maxUploadBytes = 32 << 20

// UploadFile stores one earnings export under the upload directory and
// returns the server-side path for a later /process_batch call.
func (h *PayrollHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	base := filepath.Base(header.Filename)
	if !strings.EqualFold(filepath.Ext(base), ".csv") {
		respondError(w, http.StatusBadRequest, "only .csv files are accepted")
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		log.Errorf("[Upload] mkdir %s: %s", h.UploadDir, err)
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	// Prefix with a fresh id so concurrent uploads of same-named exports
	// never clobber each other.
	path := filepath.Join(h.UploadDir, fmt.Sprintf("%s_%s", uuid.NewString(), base))
	dst, err := os.Create(path)
	if err != nil {
		log.Errorf("[Upload] create %s: %s", path, err)
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		log.Errorf("[Upload] write %s: %s", path, err)
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	log.Infof("[Upload] Stored %s (%d bytes)", path, written)
	respondSuccess(w, map[string]interface{}{
		"file_path": path,
		"size":      written,
	})
}
