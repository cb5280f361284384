package document

import (
	"context"
	"io"
)

// DocumentService manages uploaded contract documents and their review.
type DocumentService interface {
	Upload(ctx context.Context, req UploadDocumentRequest) (DocumentResponse, error)

	// Review approves or rejects a pending document. Resolved documents are
	// final.
	Review(ctx context.Context, reviewerID int64, req ReviewDocumentRequest) (DocumentResponse, error)

	Get(ctx context.Context, id int64) (DocumentResponse, error)
	List(ctx context.Context, filter ListFilter) ([]DocumentResponse, error)

	// Download streams the stored file. Callers must close the reader.
	Download(ctx context.Context, id int64) (DocumentResponse, io.ReadCloser, error)
}
