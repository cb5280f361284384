package address

import (
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type CreateAddressRequest struct {
	CEP          *string `json:"cep,omitempty"`
	Street       string  `json:"logradouro"`
	City         string  `json:"cidade"`
	State        string  `json:"estado"`
	Number       *string `json:"numero,omitempty"`
	Neighborhood *string `json:"bairro,omitempty"`
}

func (r *CreateAddressRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Street) {
		errs = append(errs, validator.ValidationError{Field: "logradouro", Message: "logradouro is required"})
	}
	if validator.IsEmpty(r.City) {
		errs = append(errs, validator.ValidationError{Field: "cidade", Message: "cidade is required"})
	}
	if validator.IsEmpty(r.State) {
		errs = append(errs, validator.ValidationError{Field: "estado", Message: "estado is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddressResponse struct {
	ID           int64    `json:"id"`
	CEP          *string  `json:"cep,omitempty"`
	Street       string   `json:"logradouro"`
	City         string   `json:"cidade"`
	State        string   `json:"estado"`
	Number       *string  `json:"numero,omitempty"`
	Neighborhood *string  `json:"bairro,omitempty"`
	Latitude     *float64 `json:"lat"`
	Longitude    *float64 `json:"long"`
}

func ToResponse(a Address) AddressResponse {
	return AddressResponse{
		ID:           a.ID,
		CEP:          a.CEP,
		Street:       a.Street,
		City:         a.City,
		State:        a.State,
		Number:       a.Number,
		Neighborhood: a.Neighborhood,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
	}
}
