package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/evaluation"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
)

type EvaluationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type EvaluationHandlerImpl struct {
	evaluationService evaluation.EvaluationService
}

func NewEvaluationHandler(evaluationService evaluation.EvaluationService) EvaluationHandler {
	return &EvaluationHandlerImpl{evaluationService: evaluationService}
}

// Create implements EvaluationHandler.
func (h *EvaluationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	evaluatorID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req evaluation.CreateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create evaluation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.evaluationService.Create(r.Context(), evaluatorID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Evaluation created successfully", result)
}

// Update implements EvaluationHandler.
func (h *EvaluationHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid evaluation id", nil)
		return
	}

	var req evaluation.UpdateEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update evaluation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.evaluationService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements EvaluationHandler.
func (h *EvaluationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid evaluation id", nil)
		return
	}

	result, err := h.evaluationService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements EvaluationHandler.
func (h *EvaluationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := evaluation.ListFilter{}
	filter.Offset, filter.Limit = pagination(r)
	filter.ContractID = queryInt64(r, "id_contrato")
	filter.EvaluatorID = queryInt64(r, "id_avaliador")

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := evaluation.Status(statusStr)
		if status != evaluation.StatusPending && status != evaluation.StatusDone {
			response.BadRequest(w, "status must be pendente or concluida", nil)
			return
		}
		filter.Status = &status
	}

	results, err := h.evaluationService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}
