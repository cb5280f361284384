package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/user"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClockService struct {
	toggleResult clock.ToggleResponse
	toggleErr    error
	openResult   clock.ClockEntryResponse
	openErr      error
}

func (f *fakeClockService) Toggle(ctx context.Context, studentID int64, req clock.ToggleRequest) (clock.ToggleResponse, error) {
	if f.toggleErr != nil {
		return clock.ToggleResponse{}, f.toggleErr
	}
	return f.toggleResult, nil
}

func (f *fakeClockService) CloseOpen(ctx context.Context, studentID int64) (clock.ClockEntryResponse, error) {
	return f.openResult, f.openErr
}

func (f *fakeClockService) GetOpen(ctx context.Context, studentID int64) (clock.ClockEntryResponse, error) {
	return f.openResult, f.openErr
}

func (f *fakeClockService) CheckLocation(ctx context.Context, studentID int64, req clock.CheckLocationRequest) (clock.LocationCheckResult, error) {
	return clock.LocationCheckResult{Inside: true, Validated: true}, nil
}

func (f *fakeClockService) Timeline(ctx context.Context, studentID int64, date time.Time) (clock.TimelineResponse, error) {
	return clock.TimelineResponse{Date: date.Format("2006-01-02")}, nil
}

func newTestRouter(t *testing.T, clockService clock.ClockService) (http.Handler, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService("router-test-secret", "1h", "24h")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handlers := Handlers{
		Auth:          NewAuthHandler(jwtService, nil),
		User:          NewUserHandler(nil),
		Address:       NewAddressHandler(nil),
		Contract:      NewContractHandler(nil),
		Clock:         NewClockHandler(clockService),
		Justification: NewJustificationHandler(nil),
		Diary:         NewDiaryHandler(nil),
		Evaluation:    NewEvaluationHandler(nil),
		Document:      NewDocumentHandler(nil),
		Report:        NewReportHandler(nil),
		File:          NewFileHandler(nil),
	}
	return NewRouter(logger, jwtService, []string{"http://localhost:3000"}, handlers), jwtService
}

func accessToken(t *testing.T, jwtService jwt.Service, userID int64, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken(userID, "2021001", role)
	require.NoError(t, err)
	return token
}

func TestRouter_RejectsMissingToken(t *testing.T) {
	router, _ := newTestRouter(t, &fakeClockService{})

	req := httptest.NewRequest(http.MethodGet, "/ponto/aberto", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsRefreshTokenOnAPIRoutes(t *testing.T) {
	router, jwtService := newTestRouter(t, &fakeClockService{})

	refresh, _, err := jwtService.GenerateRefreshToken(1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/ponto/aberto", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Access token required", body.Error.Message)
}

func TestRouter_NoOpenEntryIsNotFound(t *testing.T) {
	svc := &fakeClockService{openErr: clock.ErrNoOpenEntry}
	router, jwtService := newTestRouter(t, svc)

	for _, tc := range []struct {
		method string
		target string
	}{
		{http.MethodGet, "/ponto/aberto"},
		{http.MethodPatch, "/ponto/saida"},
	} {
		req := httptest.NewRequest(tc.method, tc.target, nil)
		req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, 1, user.RoleStudent))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code, tc.target)

		var body struct {
			Success bool `json:"success"`
			Error   struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success, tc.target)
		assert.Equal(t, "NOT_FOUND", body.Error.Code, tc.target)
	}
}

func TestRouter_GetOpenEntry(t *testing.T) {
	svc := &fakeClockService{
		openResult: clock.ClockEntryResponse{ID: 7, ContractID: 10, Active: true},
	}
	router, jwtService := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/ponto/aberto", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, 1, user.RoleStudent))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool                     `json:"success"`
		Data    clock.ClockEntryResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(7), body.Data.ID)
}

func TestRouter_ToggleGeofenceViolation(t *testing.T) {
	svc := &fakeClockService{
		toggleErr: &clock.GeofenceViolationError{
			JustificationID: 42,
			DistanceMeters:  137.2,
			AllowedRadius:   100,
		},
	}
	router, jwtService := newTestRouter(t, svc)

	payload, _ := json.Marshal(map[string]float64{
		"latitude_atual":  -23.5505,
		"longitude_atual": -46.6333,
	})
	req := httptest.NewRequest(http.MethodPost, "/ponto/entrada", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, 1, user.RoleStudent))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
			Data struct {
				JustificationID int64 `json:"id_justificativa"`
			} `json:"data"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "LOCATION_OUT_OF_RANGE", body.Error.Code)
	assert.Equal(t, int64(42), body.Error.Data.JustificationID)
}

func TestRouter_ToggleValidatesCoordinates(t *testing.T) {
	router, jwtService := newTestRouter(t, &fakeClockService{})

	payload, _ := json.Marshal(map[string]float64{
		"latitude_atual":  120,
		"longitude_atual": -46.6333,
	})
	req := httptest.NewRequest(http.MethodPost, "/ponto/entrada", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, 1, user.RoleStudent))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "latitude_atual")
}

func TestRouter_StaffRoutesRejectStudents(t *testing.T) {
	router, jwtService := newTestRouter(t, &fakeClockService{})

	for _, target := range []string{"/relatorios/frequencia", "/usuarios/"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Authorization", "Bearer "+accessToken(t, jwtService, 1, user.RoleStudent))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code, target)
	}
}

func TestRouter_Heartbeat(t *testing.T) {
	router, _ := newTestRouter(t, &fakeClockService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
