package evaluation

import (
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type CreateEvaluationRequest struct {
	ContractID    int64   `json:"id_contrato"`
	Period        *string `json:"periodo,omitempty"`
	Grades        *string `json:"notas,omitempty"`
	Feedback      *string `json:"feedback,omitempty"`
	ActionPlan    *string `json:"plano_acao,omitempty"`
	ReferenceDate *string `json:"data_referencia,omitempty"`
}

func (r *CreateEvaluationRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ContractID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id_contrato", Message: "id_contrato is required"})
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

type UpdateEvaluationRequest struct {
	ID         int64   `json:"-"`
	Grades     *string `json:"notas,omitempty"`
	Feedback   *string `json:"feedback,omitempty"`
	ActionPlan *string `json:"plano_acao,omitempty"`
	Conclude   bool    `json:"concluir,omitempty"`
}

type EvaluationResponse struct {
	ID            int64   `json:"id"`
	ContractID    int64   `json:"id_contrato"`
	EvaluatorID   int64   `json:"id_avaliador"`
	Period        *string `json:"periodo,omitempty"`
	Grades        *string `json:"notas,omitempty"`
	Feedback      *string `json:"feedback,omitempty"`
	ActionPlan    *string `json:"plano_acao,omitempty"`
	Status        string  `json:"status"`
	Exported      bool    `json:"exportado"`
	ReferenceDate *string `json:"data_referencia,omitempty"`
	CreatedAt     string  `json:"criado_em"`
}

func ToResponse(e Evaluation) EvaluationResponse {
	resp := EvaluationResponse{
		ID:          e.ID,
		ContractID:  e.ContractID,
		EvaluatorID: e.EvaluatorID,
		Period:      e.Period,
		Grades:      e.Grades,
		Feedback:    e.Feedback,
		ActionPlan:  e.ActionPlan,
		Status:      string(e.Status),
		Exported:    e.Exported,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
	}
	if e.ReferenceDate != nil {
		s := e.ReferenceDate.Format("2006-01-02")
		resp.ReferenceDate = &s
	}
	return resp
}
