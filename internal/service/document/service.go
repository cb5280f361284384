package document

import (
	"context"
	"fmt"
	"io"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/document"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/storage"
)

type DocumentServiceImpl struct {
	documents document.DocumentRepository
	contracts contract.ContractRepository
	files     storage.FileStorage
}

func NewDocumentService(
	documentRepository document.DocumentRepository,
	contractRepository contract.ContractRepository,
	fileStorage storage.FileStorage,
) document.DocumentService {
	return &DocumentServiceImpl{
		documents: documentRepository,
		contracts: contractRepository,
		files:     fileStorage,
	}
}

// Upload implements document.DocumentService.
func (s *DocumentServiceImpl) Upload(ctx context.Context, req document.UploadDocumentRequest) (document.DocumentResponse, error) {
	if _, err := s.contracts.GetByID(ctx, req.ContractID); err != nil {
		return document.DocumentResponse{}, err
	}

	key := storage.ObjectKey(fmt.Sprintf("documentos/%d", req.ContractID), req.FileHeader.Filename)
	storedKey, err := s.files.Upload(ctx, req.File, key, req.FileHeader.Header.Get("Content-Type"))
	if err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to store document file: %w", err)
	}

	created, err := s.documents.Create(ctx, document.Document{
		ContractID: req.ContractID,
		Name:       req.Name,
		FileURL:    storedKey,
		Type:       req.Type,
		Status:     document.StatusPending,
	})
	if err != nil {
		// Best effort cleanup of the orphaned file.
		_ = s.files.Delete(ctx, storedKey)
		return document.DocumentResponse{}, fmt.Errorf("failed to create document: %w", err)
	}

	return document.ToResponse(created), nil
}

// Review implements document.DocumentService.
func (s *DocumentServiceImpl) Review(ctx context.Context, reviewerID int64, req document.ReviewDocumentRequest) (document.DocumentResponse, error) {
	existing, err := s.documents.GetByID(ctx, req.ID)
	if err != nil {
		return document.DocumentResponse{}, err
	}
	if existing.Status != document.StatusPending {
		return document.DocumentResponse{}, document.ErrAlreadyReviewed
	}

	existing.Status = document.Status(req.Status)
	existing.ResolutionComment = req.Comment

	if err := s.documents.Update(ctx, existing); err != nil {
		return document.DocumentResponse{}, fmt.Errorf("failed to update document: %w", err)
	}

	return document.ToResponse(existing), nil
}

// Get implements document.DocumentService.
func (s *DocumentServiceImpl) Get(ctx context.Context, id int64) (document.DocumentResponse, error) {
	found, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return document.DocumentResponse{}, err
	}
	return document.ToResponse(found), nil
}

// List implements document.DocumentService.
func (s *DocumentServiceImpl) List(ctx context.Context, filter document.ListFilter) ([]document.DocumentResponse, error) {
	documents, err := s.documents.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	responses := make([]document.DocumentResponse, 0, len(documents))
	for _, d := range documents {
		responses = append(responses, document.ToResponse(d))
	}
	return responses, nil
}

// Download implements document.DocumentService.
func (s *DocumentServiceImpl) Download(ctx context.Context, id int64) (document.DocumentResponse, io.ReadCloser, error) {
	found, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return document.DocumentResponse{}, nil, err
	}

	reader, err := s.files.Download(ctx, found.FileURL)
	if err != nil {
		return document.DocumentResponse{}, nil, fmt.Errorf("failed to open document file: %w", err)
	}

	return document.ToResponse(found), reader, nil
}
