package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/document"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
)

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type DocumentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &DocumentHandlerImpl{documentService: documentService}
}

// Upload implements DocumentHandler.
func (h *DocumentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	var req document.UploadDocumentRequest

	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	dataJSON := r.FormValue("data")
	if dataJSON == "" {
		response.BadRequest(w, "Field 'data' is required", nil)
		return
	}

	if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
		slog.Error("Failed to unmarshal JSON data", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
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

	req.File = file
	req.FileHeader = fileHeader

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.documentService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Document uploaded", "document_id", result.ID, "contract_id", result.ContractID)
	response.Created(w, "Document uploaded successfully", result)
}

// Review implements DocumentHandler.
func (h *DocumentHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid document id", nil)
		return
	}

	var req document.ReviewDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review document decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.documentService.Review(r.Context(), reviewerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements DocumentHandler.
func (h *DocumentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid document id", nil)
		return
	}

	result, err := h.documentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DocumentHandler.
func (h *DocumentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := document.ListFilter{}
	filter.Offset, filter.Limit = pagination(r)
	filter.ContractID = queryInt64(r, "id_contrato")

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := document.Status(statusStr)
		if !status.IsValid() {
			response.BadRequest(w, "status must be pendente, aprovado or rejeitado", nil)
			return
		}
		filter.Status = &status
	}

	results, err := h.documentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Download implements DocumentHandler. Streams the stored file.
func (h *DocumentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid document id", nil)
		return
	}

	result, reader, err := h.documentService.Download(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Name))
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Failed to stream document", "document_id", id, "error", err)
	}
}
