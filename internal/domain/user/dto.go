package user

import (
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name      string  `json:"nome"`
	Matricula string  `json:"matricula"`
	Password  string  `json:"senha"`
	Contact   *string `json:"contato,omitempty"`
	Email     string  `json:"email"`
	Class     *string `json:"turma,omitempty"`
	Period    *string `json:"periodo,omitempty"`
	Role      string  `json:"tipo_acesso"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "nome", Message: "nome is required"})
	}

	if !validator.IsValidMatricula(r.Matricula) {
		errs = append(errs, validator.ValidationError{Field: "matricula", Message: "matricula must be 3-50 characters (letters, digits, dots, dashes)"})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "senha", Message: "senha must have at least 8 characters"})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is invalid"})
	}

	if r.Role == "" {
		r.Role = string(RoleStudent)
	}
	if !Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "tipo_acesso", Message: "tipo_acesso must be aluno, professor, admin or coordenador"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"nome"`
	Matricula string  `json:"matricula"`
	Contact   *string `json:"contato,omitempty"`
	Email     string  `json:"email"`
	Class     *string `json:"turma,omitempty"`
	Period    *string `json:"periodo,omitempty"`
	Role      string  `json:"tipo_acesso"`
}

// ToResponse maps an entity to its public shape (never the password hash).
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Matricula: u.Matricula,
		Contact:   u.Contact,
		Email:     u.Email,
		Class:     u.Class,
		Period:    u.Period,
		Role:      string(u.Role),
	}
}
