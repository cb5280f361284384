package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/handler/http/response"
)

type ClockHandler interface {
	Toggle(w http.ResponseWriter, r *http.Request)
	CloseOpen(w http.ResponseWriter, r *http.Request)
	GetOpen(w http.ResponseWriter, r *http.Request)
	CheckLocation(w http.ResponseWriter, r *http.Request)
	Timeline(w http.ResponseWriter, r *http.Request)
}

type ClockHandlerImpl struct {
	clockService clock.ClockService
}

func NewClockHandler(clockService clock.ClockService) ClockHandler {
	return &ClockHandlerImpl{clockService: clockService}
}

// Toggle implements ClockHandler. One endpoint opens or closes depending on
// whether the student already has an active entry.
func (h *ClockHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req clock.ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Toggle decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.clockService.Toggle(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if result.Action == clock.ActionOpened {
		response.Created(w, "Clock in successful", result)
		return
	}
	response.SuccessWithMessage(w, "Clock out successful", result)
}

// CloseOpen implements ClockHandler.
func (h *ClockHandlerImpl) CloseOpen(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.clockService.CloseOpen(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Clock out successful", result)
}

// GetOpen implements ClockHandler.
func (h *ClockHandlerImpl) GetOpen(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	result, err := h.clockService.GetOpen(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckLocation implements ClockHandler. Read-only geofence probe.
func (h *ClockHandlerImpl) CheckLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var req clock.CheckLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CheckLocation decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.clockService.CheckLocation(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Timeline implements ClockHandler.
func (h *ClockHandlerImpl) Timeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	date := time.Now().UTC()
	if raw := r.URL.Query().Get("data"); raw != "" {
		var err error
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(w, "Query parameter 'data' must be YYYY-MM-DD", nil)
			return
		}
	}

	result, err := h.clockService.Timeline(r.Context(), userID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
