package document

import "context"

// DocumentRepository defines data access methods for contract documents.
type DocumentRepository interface {
	Create(ctx context.Context, d Document) (Document, error)
	GetByID(ctx context.Context, id int64) (Document, error)
	Update(ctx context.Context, d Document) error
	List(ctx context.Context, filter ListFilter) ([]Document, error)
}

// ListFilter narrows document listings.
type ListFilter struct {
	ContractID *int64
	Status     *Status
	Offset     int
	Limit      int
}
