package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
)

type ContractHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ContractHandlerImpl struct {
	contractService contract.ContractService
}

func NewContractHandler(contractService contract.ContractService) ContractHandler {
	return &ContractHandlerImpl{contractService: contractService}
}

// Create implements ContractHandler.
func (h *ContractHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateContractRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create contract decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.contractService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Contract created", "contract_id", result.ID, "student_id", result.StudentID)
	response.Created(w, "Contract created successfully", result)
}

// Get implements ContractHandler.
func (h *ContractHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid contract id", nil)
		return
	}

	result, err := h.contractService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMine implements ContractHandler. Returns the caller's active contract.
func (h *ContractHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.contractService.GetActiveByStudent(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ContractHandler.
func (h *ContractHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := contract.ListFilter{}
	filter.Offset, filter.Limit = pagination(r)
	filter.StudentID = queryInt64(r, "id_aluno")
	filter.ProfessorID = queryInt64(r, "id_professor")

	if status := r.URL.Query().Get("status"); status != "" {
		if active, err := strconv.ParseBool(status); err == nil {
			filter.Active = &active
		}
	}

	results, err := h.contractService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Update implements ContractHandler.
func (h *ContractHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid contract id", nil)
		return
	}

	var req contract.UpdateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update contract decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.contractService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
