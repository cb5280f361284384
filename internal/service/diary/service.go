package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/diary"
)

type DiaryServiceImpl struct {
	diaries   diary.DiaryRepository
	contracts contract.ContractRepository
	now       func() time.Time
}

func NewDiaryService(diaryRepository diary.DiaryRepository, contractRepository contract.ContractRepository) diary.DiaryService {
	return &DiaryServiceImpl{
		diaries:   diaryRepository,
		contracts: contractRepository,
		now:       time.Now,
	}
}

// Create implements diary.DiaryService.
func (s *DiaryServiceImpl) Create(ctx context.Context, studentID int64, req diary.CreateDiaryRequest) (diary.DiaryResponse, error) {
	contractData, err := s.contracts.GetByID(ctx, req.ContractID)
	if err != nil {
		return diary.DiaryResponse{}, err
	}
	if contractData.StudentID != studentID {
		return diary.DiaryResponse{}, contract.ErrContractNotFound
	}

	referenceDate, err := time.Parse("2006-01-02", req.ReferenceDate)
	if err != nil {
		return diary.DiaryResponse{}, fmt.Errorf("invalid data_referencia: %w", err)
	}

	created, err := s.diaries.Create(ctx, diary.DiaryEntry{
		StudentID:     studentID,
		ContractID:    req.ContractID,
		ReferenceDate: referenceDate,
		Summary:       req.Summary,
		Details:       req.Details,
		AttachmentURL: req.AttachmentURL,
		Status:        diary.StatusPending,
	})
	if err != nil {
		return diary.DiaryResponse{}, fmt.Errorf("failed to create diary entry: %w", err)
	}

	return diary.ToResponse(created), nil
}

// Review implements diary.DiaryService.
func (s *DiaryServiceImpl) Review(ctx context.Context, reviewerID int64, req diary.ReviewDiaryRequest) (diary.DiaryResponse, error) {
	existing, err := s.diaries.GetByID(ctx, req.ID)
	if err != nil {
		return diary.DiaryResponse{}, err
	}
	if existing.Status != diary.StatusPending {
		return diary.DiaryResponse{}, diary.ErrAlreadyReviewed
	}

	existing.Status = diary.Status(req.Status)
	existing.ReviewerComment = req.Comment

	if err := s.diaries.Update(ctx, existing); err != nil {
		return diary.DiaryResponse{}, fmt.Errorf("failed to update diary entry: %w", err)
	}

	return diary.ToResponse(existing), nil
}

// Get implements diary.DiaryService.
func (s *DiaryServiceImpl) Get(ctx context.Context, id int64) (diary.DiaryResponse, error) {
	found, err := s.diaries.GetByID(ctx, id)
	if err != nil {
		return diary.DiaryResponse{}, err
	}
	return diary.ToResponse(found), nil
}

// List implements diary.DiaryService.
func (s *DiaryServiceImpl) List(ctx context.Context, filter diary.ListFilter) ([]diary.DiaryResponse, error) {
	entries, err := s.diaries.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}

	responses := make([]diary.DiaryResponse, 0, len(entries))
	for _, d := range entries {
		responses = append(responses, diary.ToResponse(d))
	}
	return responses, nil
}
