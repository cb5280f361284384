package contract

import (
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type CreateContractRequest struct {
	StudentID            int64   `json:"id_aluno"`
	ProfessorID          int64   `json:"id_professor"`
	AddressID            int64   `json:"id_endereco"`
	ClassID              *int64  `json:"id_turma,omitempty"`
	AgreementID          *int64  `json:"id_convenio,omitempty"`
	ExternalSupervisorID *int64  `json:"id_supervisor_externo,omitempty"`
	StartDate            *string `json:"data_inicio,omitempty"`
	EndDate              *string `json:"data_final,omitempty"`
	ExpectedStart        *string `json:"hora_inicio_prevista,omitempty"`
	ExpectedEnd          *string `json:"hora_fim_prevista,omitempty"`
	ToleranceMinutes     *int    `json:"tolerancia_minutos,omitempty"`
	AllowedRadiusMeters  *int    `json:"raio_permitido_metros,omitempty"`
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StudentID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id_aluno", Message: "id_aluno is required"})
	}
	if r.ProfessorID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id_professor", Message: "id_professor is required"})
	}
	if r.AddressID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id_endereco", Message: "id_endereco is required"})
	}

	var start, end time.Time
	if r.StartDate != nil {
		var ok bool
		if start, ok = validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "data_inicio", Message: "data_inicio must be YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		var ok bool
		if end, ok = validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "data_final", Message: "data_final must be YYYY-MM-DD"})
		}
	}
	if r.StartDate != nil && r.EndDate != nil && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "data_final", Message: "data_final must not be before data_inicio"})
	}

	if r.ExpectedStart != nil && !validator.IsValidTimeOfDay(*r.ExpectedStart) {
		errs = append(errs, validator.ValidationError{Field: "hora_inicio_prevista", Message: "hora_inicio_prevista must be HH:MM"})
	}
	if r.ExpectedEnd != nil && !validator.IsValidTimeOfDay(*r.ExpectedEnd) {
		errs = append(errs, validator.ValidationError{Field: "hora_fim_prevista", Message: "hora_fim_prevista must be HH:MM"})
	}

	if r.ToleranceMinutes != nil && *r.ToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "tolerancia_minutos", Message: "tolerancia_minutos must not be negative"})
	}
	if r.AllowedRadiusMeters != nil && *r.AllowedRadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{Field: "raio_permitido_metros", Message: "raio_permitido_metros must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateContractRequest struct {
	ID                  int64   `json:"-"`
	Active              *bool   `json:"status,omitempty"`
	EndDate             *string `json:"data_final,omitempty"`
	ExpectedStart       *string `json:"hora_inicio_prevista,omitempty"`
	ExpectedEnd         *string `json:"hora_fim_prevista,omitempty"`
	ToleranceMinutes    *int    `json:"tolerancia_minutos,omitempty"`
	AllowedRadiusMeters *int    `json:"raio_permitido_metros,omitempty"`
}

func (r *UpdateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "data_final", Message: "data_final must be YYYY-MM-DD"})
		}
	}
	if r.ExpectedStart != nil && !validator.IsValidTimeOfDay(*r.ExpectedStart) {
		errs = append(errs, validator.ValidationError{Field: "hora_inicio_prevista", Message: "hora_inicio_prevista must be HH:MM"})
	}
	if r.ExpectedEnd != nil && !validator.IsValidTimeOfDay(*r.ExpectedEnd) {
		errs = append(errs, validator.ValidationError{Field: "hora_fim_prevista", Message: "hora_fim_prevista must be HH:MM"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContractResponse struct {
	ID                   int64                    `json:"id"`
	StudentID            int64                    `json:"id_aluno"`
	ProfessorID          int64                    `json:"id_professor"`
	AddressID            int64                    `json:"id_endereco"`
	ClassID              *int64                   `json:"id_turma,omitempty"`
	AgreementID          *int64                   `json:"id_convenio,omitempty"`
	ExternalSupervisorID *int64                   `json:"id_supervisor_externo,omitempty"`
	StartDate            *string                  `json:"data_inicio"`
	EndDate              *string                  `json:"data_final"`
	Active               bool                     `json:"status"`
	ExpectedStart        *string                  `json:"hora_inicio_prevista"`
	ExpectedEnd          *string                  `json:"hora_fim_prevista"`
	ToleranceMinutes     *int                     `json:"tolerancia_minutos"`
	AllowedRadiusMeters  *int                     `json:"raio_permitido_metros"`
	StudentName          *string                  `json:"nome_aluno,omitempty"`
	ProfessorName        *string                  `json:"nome_professor,omitempty"`
	Address              *address.AddressResponse `json:"endereco,omitempty"`
}

func ToResponse(c Contract, addr *address.Address) ContractResponse {
	resp := ContractResponse{
		ID:                   c.ID,
		StudentID:            c.StudentID,
		ProfessorID:          c.ProfessorID,
		AddressID:            c.AddressID,
		ClassID:              c.ClassID,
		AgreementID:          c.AgreementID,
		ExternalSupervisorID: c.ExternalSupervisorID,
		Active:               c.Active,
		ExpectedStart:        c.ExpectedStart,
		ExpectedEnd:          c.ExpectedEnd,
		ToleranceMinutes:     c.ToleranceMinutes,
		AllowedRadiusMeters:  c.AllowedRadiusMeters,
		StudentName:          c.StudentName,
		ProfessorName:        c.ProfessorName,
	}
	if c.StartDate != nil {
		s := c.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if c.EndDate != nil {
		s := c.EndDate.Format("2006-01-02")
		resp.EndDate = &s
	}
	if addr != nil {
		a := address.ToResponse(*addr)
		resp.Address = &a
	}
	return resp
}
