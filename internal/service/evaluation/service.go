package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/evaluation"
)

type EvaluationServiceImpl struct {
	evaluations evaluation.EvaluationRepository
}

func NewEvaluationService(evaluationRepository evaluation.EvaluationRepository) evaluation.EvaluationService {
	return &EvaluationServiceImpl{evaluations: evaluationRepository}
}

// Create implements evaluation.EvaluationService.
func (s *EvaluationServiceImpl) Create(ctx context.Context, evaluatorID int64, req evaluation.CreateEvaluationRequest) (evaluation.EvaluationResponse, error) {
	newEvaluation := evaluation.Evaluation{
		ContractID:  req.ContractID,
		EvaluatorID: evaluatorID,
		Period:      req.Period,
		Grades:      req.Grades,
		Feedback:    req.Feedback,
		ActionPlan:  req.ActionPlan,
		Status:      evaluation.StatusPending,
	}
	if req.ReferenceDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.ReferenceDate)
		if err != nil {
			return evaluation.EvaluationResponse{}, fmt.Errorf("invalid data_referencia: %w", err)
		}
		newEvaluation.ReferenceDate = &parsed
	}

	created, err := s.evaluations.Create(ctx, newEvaluation)
	if err != nil {
		return evaluation.EvaluationResponse{}, fmt.Errorf("failed to create evaluation: %w", err)
	}

	return evaluation.ToResponse(created), nil
}

// Update implements evaluation.EvaluationService.
func (s *EvaluationServiceImpl) Update(ctx context.Context, req evaluation.UpdateEvaluationRequest) (evaluation.EvaluationResponse, error) {
	existing, err := s.evaluations.GetByID(ctx, req.ID)
	if err != nil {
		return evaluation.EvaluationResponse{}, err
	}
	if existing.Status == evaluation.StatusDone {
		return evaluation.EvaluationResponse{}, evaluation.ErrAlreadyDone
	}

	if req.Grades != nil {
		existing.Grades = req.Grades
	}
	if req.Feedback != nil {
		existing.Feedback = req.Feedback
	}
	if req.ActionPlan != nil {
		existing.ActionPlan = req.ActionPlan
	}
	if req.Conclude {
		existing.Status = evaluation.StatusDone
	}

	if err := s.evaluations.Update(ctx, existing); err != nil {
		return evaluation.EvaluationResponse{}, fmt.Errorf("failed to update evaluation: %w", err)
	}

	return evaluation.ToResponse(existing), nil
}

// Get implements evaluation.EvaluationService.
func (s *EvaluationServiceImpl) Get(ctx context.Context, id int64) (evaluation.EvaluationResponse, error) {
	found, err := s.evaluations.GetByID(ctx, id)
	if err != nil {
		return evaluation.EvaluationResponse{}, err
	}
	return evaluation.ToResponse(found), nil
}

// List implements evaluation.EvaluationService.
func (s *EvaluationServiceImpl) List(ctx context.Context, filter evaluation.ListFilter) ([]evaluation.EvaluationResponse, error) {
	items, err := s.evaluations.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	responses := make([]evaluation.EvaluationResponse, 0, len(items))
	for _, e := range items {
		responses = append(responses, evaluation.ToResponse(e))
	}
	return responses, nil
}
