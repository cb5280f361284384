package justification

import (
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type CreateJustificationRequest struct {
	ContractID    int64   `json:"id_contrato"`
	PontoID       *int64  `json:"id_ponto,omitempty"`
	Type          string  `json:"tipo"`
	Reason        string  `json:"motivo"`
	ReferenceDate *string `json:"data_referencia,omitempty"`
	EvidenceURL   *string `json:"evidencia_url,omitempty"`
}

func (r *CreateJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ContractID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id_contrato", Message: "id_contrato is required"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "tipo", Message: "tipo is required"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "motivo", Message: "motivo is required"})
	}
	if r.ReferenceDate != nil {
		if _, ok := validator.IsValidDate(*r.ReferenceDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "data_referencia", Message: "data_referencia must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewJustificationRequest struct {
	ID      int64   `json:"-"`
	Status  string  `json:"status"`
	Comment *string `json:"comentario,omitempty"`
}

func (r *ReviewJustificationRequest) Validate() error {
	var errs validator.ValidationErrors

	status := Status(r.Status)
	if status != StatusApproved && status != StatusRejected {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be aprovada or rejeitada"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type JustificationResponse struct {
	ID                int64   `json:"id"`
	StudentID         int64   `json:"id_aluno"`
	ContractID        int64   `json:"id_contrato"`
	PontoID           *int64  `json:"id_ponto,omitempty"`
	Type              string  `json:"tipo"`
	Reason            string  `json:"motivo"`
	Status            string  `json:"status"`
	ResolutionComment *string `json:"comentario_resolucao,omitempty"`
	EvidenceURL       *string `json:"evidencia_url,omitempty"`
	ReferenceDate     string  `json:"data_referencia"`
	ResponseDeadline  string  `json:"prazo_resposta"`
	ResolvedAt        *string `json:"resolvido_em,omitempty"`
	AutoCreated       bool    `json:"criado_automaticamente"`
	CreatedAt         string  `json:"criado_em"`
}

type LogResponse struct {
	ID        int64   `json:"id"`
	Status    string  `json:"status"`
	Message   *string `json:"mensagem,omitempty"`
	CreatedAt string  `json:"criado_em"`
}

func LogToResponse(l Log) LogResponse {
	return LogResponse{
		ID:        l.ID,
		Status:    string(l.Status),
		Message:   l.Message,
		CreatedAt: l.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToResponse(j Justification) JustificationResponse {
	resp := JustificationResponse{
		ID:                j.ID,
		StudentID:         j.StudentID,
		ContractID:        j.ContractID,
		PontoID:           j.PontoID,
		Type:              j.Type,
		Reason:            j.Reason,
		Status:            string(j.Status),
		ResolutionComment: j.ResolutionComment,
		EvidenceURL:       j.EvidenceURL,
		ReferenceDate:     j.ReferenceDate.Format("2006-01-02"),
		ResponseDeadline:  j.ResponseDeadline.UTC().Format(time.RFC3339),
		AutoCreated:       j.AutoCreated,
		CreatedAt:         j.CreatedAt.UTC().Format(time.RFC3339),
	}
	if j.ResolvedAt != nil {
		s := j.ResolvedAt.UTC().Format(time.RFC3339)
		resp.ResolvedAt = &s
	}
	return resp
}
