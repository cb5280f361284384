package diary

import (
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type CreateDiaryRequest struct {
	ContractID    int64   `json:"id_contrato"`
	ReferenceDate string  `json:"data_referencia"`
	Summary       string  `json:"resumo"`
	Details       *string `json:"detalhes,omitempty"`
	AttachmentURL *string `json:"anexo_url,omitempty"`
}

func (r *CreateDiaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ContractID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id_contrato", Message: "id_contrato is required"})
	}
	if _, ok := validator.IsValidDate(r.ReferenceDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "data_referencia", Message: "data_referencia must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Summary) {
		errs = append(errs, validator.ValidationError{Field: "resumo", Message: "resumo is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewDiaryRequest struct {
	ID      int64   `json:"-"`
	Status  string  `json:"status"`
	Comment *string `json:"comentario_avaliador,omitempty"`
}

func (r *ReviewDiaryRequest) Validate() error {
	var errs validator.ValidationErrors

	status := Status(r.Status)
	if status != StatusApproved && status != StatusRejected {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be aprovado or rejeitado"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DiaryResponse struct {
	ID              int64   `json:"id"`
	StudentID       int64   `json:"id_aluno"`
	ContractID      int64   `json:"id_contrato"`
	ReferenceDate   string  `json:"data_referencia"`
	Summary         string  `json:"resumo"`
	Details         *string `json:"detalhes,omitempty"`
	AttachmentURL   *string `json:"anexo_url,omitempty"`
	Status          string  `json:"status"`
	ReviewerComment *string `json:"comentario_avaliador,omitempty"`
	CreatedAt       string  `json:"criado_em"`
}

func ToResponse(d DiaryEntry) DiaryResponse {
	return DiaryResponse{
		ID:              d.ID,
		StudentID:       d.StudentID,
		ContractID:      d.ContractID,
		ReferenceDate:   d.ReferenceDate.Format("2006-01-02"),
		Summary:         d.Summary,
		Details:         d.Details,
		AttachmentURL:   d.AttachmentURL,
		Status:          string(d.Status),
		ReviewerComment: d.ReviewerComment,
		CreatedAt:       d.CreatedAt.UTC().Format(time.RFC3339),
	}
}
