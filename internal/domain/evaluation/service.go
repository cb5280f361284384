package evaluation

import "context"

// EvaluationService manages staff evaluations of internship periods.
type EvaluationService interface {
	Create(ctx context.Context, evaluatorID int64, req CreateEvaluationRequest) (EvaluationResponse, error)

	// Update amends a pending evaluation and can conclude it. Concluded
	// evaluations are final.
	Update(ctx context.Context, req UpdateEvaluationRequest) (EvaluationResponse, error)

	Get(ctx context.Context, id int64) (EvaluationResponse, error)
	List(ctx context.Context, filter ListFilter) ([]EvaluationResponse, error)
}
