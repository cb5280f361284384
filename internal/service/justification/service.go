package justification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/justification"
)

type JustificationServiceImpl struct {
	justifications justification.JustificationRepository
	contracts      contract.ContractRepository
	slaHours       int
	logger         *slog.Logger
	now            func() time.Time
}

func NewJustificationService(
	justificationRepository justification.JustificationRepository,
	contractRepository contract.ContractRepository,
	slaHours int,
	logger *slog.Logger,
) justification.JustificationService {
	return &JustificationServiceImpl{
		justifications: justificationRepository,
		contracts:      contractRepository,
		slaHours:       slaHours,
		logger:         logger,
		now:            time.Now,
	}
}

// Create implements justification.JustificationService.
func (s *JustificationServiceImpl) Create(ctx context.Context, studentID int64, req justification.CreateJustificationRequest) (justification.JustificationResponse, error) {
	contractData, err := s.contracts.GetByID(ctx, req.ContractID)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	if contractData.StudentID != studentID {
		return justification.JustificationResponse{}, contract.ErrContractNotFound
	}

	now := s.now().UTC()
	referenceDate := now.Truncate(24 * time.Hour)
	if req.ReferenceDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.ReferenceDate)
		if err != nil {
			return justification.JustificationResponse{}, fmt.Errorf("invalid data_referencia: %w", err)
		}
		referenceDate = parsed
	}

	created, err := s.justifications.Create(ctx, justification.Justification{
		StudentID:        studentID,
		ContractID:       req.ContractID,
		PontoID:          req.PontoID,
		Type:             req.Type,
		Reason:           req.Reason,
		Status:           justification.StatusPending,
		EvidenceURL:      req.EvidenceURL,
		ReferenceDate:    referenceDate,
		ResponseDeadline: now.Add(time.Duration(s.slaHours) * time.Hour),
	})
	if err != nil {
		return justification.JustificationResponse{}, fmt.Errorf("failed to create justification: %w", err)
	}

	if err := s.appendLog(ctx, created.ID, justification.StatusPending, "justification submitted"); err != nil {
		return justification.JustificationResponse{}, err
	}

	return justification.ToResponse(created), nil
}

// CreateAutomatic implements justification.JustificationService.
func (s *JustificationServiceImpl) CreateAutomatic(ctx context.Context, studentID, contractID int64, reason string) (justification.Justification, error) {
	now := s.now().UTC()

	created, err := s.justifications.Create(ctx, justification.Justification{
		StudentID:        studentID,
		ContractID:       contractID,
		Type:             justification.TypeLocationAdjustment,
		Reason:           reason,
		Status:           justification.StatusPending,
		ReferenceDate:    now.Truncate(24 * time.Hour),
		ResponseDeadline: now.Add(time.Duration(s.slaHours) * time.Hour),
		AutoCreated:      true,
	})
	if err != nil {
		return justification.Justification{}, fmt.Errorf("failed to create automatic justification: %w", err)
	}

	if err := s.appendLog(ctx, created.ID, justification.StatusPending, "opened automatically after geofence violation"); err != nil {
		return justification.Justification{}, err
	}

	s.logger.Info("automatic justification opened",
		"justification_id", created.ID, "student_id", studentID, "contract_id", contractID)

	return created, nil
}

// Review implements justification.JustificationService. A pending
// justification whose deadline already passed is expired on the spot
// instead of being reviewed.
func (s *JustificationServiceImpl) Review(ctx context.Context, reviewerID int64, req justification.ReviewJustificationRequest) (justification.JustificationResponse, error) {
	existing, err := s.justifications.GetByID(ctx, req.ID)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	if existing.Status.IsResolved() {
		return justification.JustificationResponse{}, justification.ErrAlreadyResolved
	}

	now := s.now().UTC()
	if now.After(existing.ResponseDeadline) {
		existing.Status = justification.StatusExpired
		if err := s.justifications.Update(ctx, existing); err != nil {
			return justification.JustificationResponse{}, fmt.Errorf("failed to expire justification: %w", err)
		}
		if err := s.appendLog(ctx, existing.ID, justification.StatusExpired, "response deadline expired"); err != nil {
			return justification.JustificationResponse{}, err
		}
		return justification.JustificationResponse{}, justification.ErrAlreadyResolved
	}

	status := justification.Status(req.Status)
	existing.Status = status
	existing.ResolutionComment = req.Comment
	existing.ResolvedAt = &now

	if err := s.justifications.Update(ctx, existing); err != nil {
		return justification.JustificationResponse{}, fmt.Errorf("failed to update justification: %w", err)
	}

	message := fmt.Sprintf("reviewed by user %d", reviewerID)
	if req.Comment != nil {
		message = fmt.Sprintf("reviewed by user %d: %s", reviewerID, *req.Comment)
	}
	if err := s.appendLog(ctx, existing.ID, status, message); err != nil {
		return justification.JustificationResponse{}, err
	}

	return justification.ToResponse(existing), nil
}

// Get implements justification.JustificationService.
func (s *JustificationServiceImpl) Get(ctx context.Context, id int64) (justification.JustificationResponse, error) {
	found, err := s.justifications.GetByID(ctx, id)
	if err != nil {
		return justification.JustificationResponse{}, err
	}
	return justification.ToResponse(found), nil
}

// Logs implements justification.JustificationService.
func (s *JustificationServiceImpl) Logs(ctx context.Context, id int64) ([]justification.LogResponse, error) {
	if _, err := s.justifications.GetByID(ctx, id); err != nil {
		return nil, err
	}

	logs, err := s.justifications.ListLogs(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list justification logs: %w", err)
	}

	responses := make([]justification.LogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, justification.LogToResponse(l))
	}
	return responses, nil
}

// List implements justification.JustificationService. The SLA sweep runs
// first so callers never see a pending justification past its deadline.
func (s *JustificationServiceImpl) List(ctx context.Context, filter justification.ListFilter) ([]justification.JustificationResponse, error) {
	if _, err := s.ExpireOverdue(ctx, s.now().UTC()); err != nil {
		return nil, err
	}

	items, err := s.justifications.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications: %w", err)
	}

	responses := make([]justification.JustificationResponse, 0, len(items))
	for _, j := range items {
		responses = append(responses, justification.ToResponse(j))
	}
	return responses, nil
}

// ListForDay implements justification.JustificationService.
func (s *JustificationServiceImpl) ListForDay(ctx context.Context, studentID int64, date time.Time) ([]justification.JustificationResponse, error) {
	if _, err := s.ExpireOverdue(ctx, s.now().UTC()); err != nil {
		return nil, err
	}

	items, err := s.justifications.ListByStudentAndDate(ctx, studentID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list justifications for day: %w", err)
	}

	responses := make([]justification.JustificationResponse, 0, len(items))
	for _, j := range items {
		responses = append(responses, justification.ToResponse(j))
	}
	return responses, nil
}

// ExpireOverdue implements justification.JustificationService.
func (s *JustificationServiceImpl) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	ids, err := s.justifications.ExpireOverdue(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire overdue justifications: %w", err)
	}
	if len(ids) > 0 {
		s.logger.Info("expired overdue justifications", "count", len(ids))
	}
	return len(ids), nil
}

func (s *JustificationServiceImpl) appendLog(ctx context.Context, id int64, status justification.Status, message string) error {
	if err := s.justifications.AppendLog(ctx, justification.Log{
		JustificationID: id,
		Status:          status,
		Message:         &message,
	}); err != nil {
		return fmt.Errorf("failed to append justification log: %w", err)
	}
	return nil
}
