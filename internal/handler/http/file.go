package http

import (
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// FileHandler stores loose attachments (justification evidence, diary
// attachments). The returned key goes into evidencia_url / anexo_url.
type FileHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type FileHandlerImpl struct {
	files storage.FileStorage
}

func NewFileHandler(files storage.FileStorage) FileHandler {
	return &FileHandlerImpl{files: files}
}

type uploadedFileResponse struct {
	Key string `json:"chave"`
}

// Upload implements FileHandler.
func (h *FileHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("arquivo")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'arquivo' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	key := storage.ObjectKey("anexos", fileHeader.Filename)
	storedKey, err := h.files.Upload(r.Context(), file, key, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		slog.Error("Failed to store attachment", "error", err)
		response.InternalServerError(w, "Failed to store file")
		return
	}

	response.Created(w, "File uploaded successfully", uploadedFileResponse{Key: storedKey})
}

// Download implements FileHandler. Only keys under anexos/ are served here.
func (h *FileHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	key := path.Join("anexos", chi.URLParam(r, "nome"))
	if strings.Contains(chi.URLParam(r, "nome"), "..") {
		response.BadRequest(w, "Invalid file name", nil)
		return
	}

	reader, err := h.files.Download(r.Context(), key)
	if err != nil {
		response.NotFound(w, "File not found")
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Failed to stream file", "key", key, "error", err)
	}
}
