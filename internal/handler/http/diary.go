package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/diary"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
)

type DiaryHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Review(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type DiaryHandlerImpl struct {
	diaryService diary.DiaryService
}

func NewDiaryHandler(diaryService diary.DiaryService) DiaryHandler {
	return &DiaryHandlerImpl{diaryService: diaryService}
}

// Create implements DiaryHandler.
func (h *DiaryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req diary.CreateDiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create diary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.diaryService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Diary entry created successfully", result)
}

// Review implements DiaryHandler.
func (h *DiaryHandlerImpl) Review(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid diary id", nil)
		return
	}

	var req diary.ReviewDiaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Review diary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.diaryService.Review(r.Context(), reviewerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements DiaryHandler. Students only see their own entries.
func (h *DiaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid diary id", nil)
		return
	}

	result, err := h.diaryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if !roleFromRequest(r).IsStaff() {
		userID, ok := userIDFromRequest(r)
		if !ok || result.StudentID != userID {
			response.HandleError(w, diary.ErrDiaryNotFound)
			return
		}
	}

	response.Success(w, result)
}

// List implements DiaryHandler. Students are scoped to their own entries.
func (h *DiaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := diary.ListFilter{}
	filter.Offset, filter.Limit = pagination(r)
	filter.ContractID = queryInt64(r, "id_contrato")
	filter.StudentID = queryInt64(r, "id_aluno")

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := diary.Status(statusStr)
		if !status.IsValid() {
			response.HandleError(w, diary.ErrInvalidStatus)
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

	results, err := h.diaryService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
