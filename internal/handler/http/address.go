package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
)

type AddressHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
}

type AddressHandlerImpl struct {
	addressService address.AddressService
}

func NewAddressHandler(addressService address.AddressService) AddressHandler {
	return &AddressHandlerImpl{addressService: addressService}
}

// Create implements AddressHandler.
func (h *AddressHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req address.CreateAddressRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create address decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.addressService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Address created successfully", result)
}

// Get implements AddressHandler.
func (h *AddressHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid address id", nil)
		return
	}

	result, err := h.addressService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
