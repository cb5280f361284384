package document

import (
	"mime/multipart"
	"strings"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type UploadDocumentRequest struct {
	ContractID int64                 `json:"id_contrato"`
	Name       string                `json:"nome"`
	Type       *string               `json:"tipo,omitempty"`
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r *UploadDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ContractID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "id_contrato", Message: "id_contrato is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "nome", Message: "nome is required"})
	}

	if r.FileHeader == nil {
		errs = append(errs, validator.ValidationError{Field: "arquivo", Message: "document file is required"})
	} else {
		filename := r.FileHeader.Filename
		idx := strings.LastIndex(filename, ".")
		ext := ""
		if idx >= 0 {
			ext = strings.ToLower(filename[idx:])
		}
		if ext != ".pdf" && ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			errs = append(errs, validator.ValidationError{Field: "arquivo", Message: "invalid file type: only pdf, jpg, jpeg, png allowed"})
		} else if r.FileHeader.Size > 10<<20 { // 10MB
			errs = append(errs, validator.ValidationError{Field: "arquivo", Message: "document file size must not exceed 10MB"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewDocumentRequest struct {
	ID      int64   `json:"-"`
	Status  string  `json:"status"`
	Comment *string `json:"comentario,omitempty"`
}

func (r *ReviewDocumentRequest) Validate() error {
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

type DocumentResponse struct {
	ID                int64   `json:"id"`
	ContractID        int64   `json:"id_contrato"`
	Name              string  `json:"nome"`
	FileURL           string  `json:"arquivo_url"`
	Type              *string `json:"tipo,omitempty"`
	Status            string  `json:"status"`
	ResolutionComment *string `json:"comentario_resolucao,omitempty"`
	SubmittedAt       string  `json:"enviado_em"`
}

func ToResponse(d Document) DocumentResponse {
	return DocumentResponse{
		ID:                d.ID,
		ContractID:        d.ContractID,
		Name:              d.Name,
		FileURL:           d.FileURL,
		Type:              d.Type,
		Status:            string(d.Status),
		ResolutionComment: d.ResolutionComment,
		SubmittedAt:       d.SubmittedAt.UTC().Format(time.RFC3339),
	}
}
