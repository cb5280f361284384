package evaluation

import (
	"context"
	"time"
)

// EvaluationRepository defines data access methods for evaluations.
type EvaluationRepository interface {
	Create(ctx context.Context, e Evaluation) (Evaluation, error)
	GetByID(ctx context.Context, id int64) (Evaluation, error)
	Update(ctx context.Context, e Evaluation) error
	List(ctx context.Context, filter ListFilter) ([]Evaluation, error)
	ListByContractAndDate(ctx context.Context, contractID int64, date time.Time) ([]Evaluation, error)
}

// ListFilter narrows evaluation listings.
type ListFilter struct {
	ContractID  *int64
	EvaluatorID *int64
	Status      *Status
	Offset      int
	Limit       int
}
