package clock

import (
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/diary"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/evaluation"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/justification"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type ToggleRequest struct {
	Latitude       float64  `json:"latitude_atual"`
	Longitude      float64  `json:"longitude_atual"`
	AccuracyMeters *float64 `json:"precisao_metros,omitempty"`
}

func (r *ToggleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude_atual", Message: "latitude_atual must be between -90 and 90"})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude_atual", Message: "longitude_atual must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckLocationRequest struct {
	Latitude  float64 `json:"latitude_atual"`
	Longitude float64 `json:"longitude_atual"`
}

func (r *CheckLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude_atual", Message: "latitude_atual must be between -90 and 90"})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude_atual", Message: "longitude_atual must be between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// LocationCheckResult is the structured geofence verdict. Validated=false
// with Inside=true means the address has no coordinates and the check was
// waved through for manual review.
type LocationCheckResult struct {
	Inside         bool     `json:"dentro_area"`
	DistanceMeters *float64 `json:"distancia_m"`
	AllowedRadius  int      `json:"raio_permitido_m"`
	Message        string   `json:"mensagem"`
	Alert          *string  `json:"alerta"`
	Validated      bool     `json:"validado"`
}

type ClockEntryResponse struct {
	ID                int64    `json:"id"`
	ContractID        int64    `json:"id_contrato"`
	Date              string   `json:"data"`
	EntryTime         string   `json:"hora_entrada"`
	ExitTime          *string  `json:"hora_saida"`
	WorkedMinutes     *int     `json:"tempo_trabalhado_minutos"`
	Active            bool     `json:"ativo"`
	EntryLatitude     *float64 `json:"entrada_latitude,omitempty"`
	EntryLongitude    *float64 `json:"entrada_longitude,omitempty"`
	ExitLatitude      *float64 `json:"saida_latitude,omitempty"`
	ExitLongitude     *float64 `json:"saida_longitude,omitempty"`
	GeofenceValidated bool     `json:"validado_localizacao"`
	Alert             *string  `json:"alerta"`
}

const (
	ActionOpened = "aberto"
	ActionClosed = "fechado"
)

// ToggleResponse reports which side of the toggle ran.
type ToggleResponse struct {
	Action string             `json:"acao"`
	Entry  ClockEntryResponse `json:"ponto"`
}

// TimelineResponse aggregates one calendar day for a student.
type TimelineResponse struct {
	Date               string                                `json:"data"`
	ContractID         *int64                                `json:"id_contrato"`
	Entries            []ClockEntryResponse                  `json:"pontos"`
	Justifications     []justification.JustificationResponse `json:"justificativas"`
	DiaryEntries       []diary.DiaryResponse                 `json:"diarios"`
	Evaluations        []evaluation.EvaluationResponse       `json:"avaliacoes"`
	TotalWorkedMinutes int                                   `json:"total_trabalhado_minutos"`
	ExpectedMinutes    *int                                  `json:"previsto_minutos"`
	BalanceMinutes     *int                                  `json:"saldo_minutos"`
}

func ToResponse(e ClockEntry) ClockEntryResponse {
	resp := ClockEntryResponse{
		ID:                e.ID,
		ContractID:        e.ContractID,
		Date:              e.Date.Format("2006-01-02"),
		EntryTime:         e.EntryTime.UTC().Format(time.RFC3339),
		WorkedMinutes:     e.WorkedMinutes,
		Active:            e.Active,
		EntryLatitude:     e.EntryLatitude,
		EntryLongitude:    e.EntryLongitude,
		ExitLatitude:      e.ExitLatitude,
		ExitLongitude:     e.ExitLongitude,
		GeofenceValidated: e.GeofenceValidated,
		Alert:             e.Alert,
	}
	if e.ExitTime != nil {
		s := e.ExitTime.UTC().Format(time.RFC3339)
		resp.ExitTime = &s
	}
	return resp
}
