package auth

import (
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Matricula string `json:"matricula"`
	Password  string `json:"senha"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricula) {
		errs = append(errs, validator.ValidationError{Field: "matricula", Message: "matricula is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "senha", Message: "senha is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	TokenType             string `json:"token_type"`
	AccessTokenExpiresAt  int64  `json:"access_token_expires_at"`
	RefreshToken          string `json:"-"`
	RefreshTokenExpiresAt int64  `json:"-"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
