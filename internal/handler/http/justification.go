package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/justification"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
)

type JustificationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Logs(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type JustificationHandlerImpl struct {
	justificationService justification.JustificationService
}

func NewJustificationHandler(justificationService justification.JustificationService) JustificationHandler {
	return &JustificationHandlerImpl{justificationService: justificationService}
}

// Create implements JustificationHandler.
func (h *JustificationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req justification.CreateJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create justification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.justificationService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Justification created successfully", result)
}

// Review implements JustificationHandler.
func (h *JustificationHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid justification id", nil)
		return
	}

	var req justification.ReviewJustificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review justification decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.justificationService.Review(r.Context(), reviewerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Justification reviewed", "justification_id", id, "status", result.Status, "reviewer_id", reviewerID)
	response.Success(w, result)
}

// Get implements JustificationHandler. Students only see their own.
func (h *JustificationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid justification id", nil)
		return
	}

	result, err := h.justificationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !roleFromRequest(r).IsStaff() {
		userID, ok := userIDFromRequest(r)
		if !ok || result.StudentID != userID {
			response.HandleError(w, justification.ErrJustificationNotFound)
			return
		}
	}

	response.Success(w, result)
}

// Logs implements JustificationHandler.
func (h *JustificationHandlerImpl) Logs(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid justification id", nil)
		return
	}

	result, err := h.justificationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if !roleFromRequest(r).IsStaff() {
		userID, ok := userIDFromRequest(r)
		if !ok || result.StudentID != userID {
			response.HandleError(w, justification.ErrJustificationNotFound)
			return
		}
	}

	logs, err := h.justificationService.Logs(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, logs)
}

// List implements JustificationHandler. Students are scoped to their own
// justifications regardless of query parameters.
func (h *JustificationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := justification.ListFilter{}
	filter.Offset, filter.Limit = pagination(r)
	filter.ContractID = queryInt64(r, "id_contrato")
	filter.StudentID = queryInt64(r, "id_aluno")

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := justification.Status(statusStr)
		if !status.IsValid() {
			response.HandleError(w, justification.ErrInvalidStatus)
			return
		}
		filter.Status = &status
	}

	if !roleFromRequest(r).IsStaff() {
		userID, ok := userIDFromRequest(r)
		if !ok {
			response.Unauthorized(w, "Invalid token claims")
			return
		}
		filter.StudentID = &userID
	}

	results, err := h.justificationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
