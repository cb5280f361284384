package diary

import "context"

// DiaryService manages activity-diary submissions and their review.
type DiaryService interface {
	Create(ctx context.Context, studentID int64, req CreateDiaryRequest) (DiaryResponse, error)

	// Review approves or rejects a pending entry. Resolved entries are final.
	Review(ctx context.Context, reviewerID int64, req ReviewDiaryRequest) (DiaryResponse, error)

	Get(ctx context.Context, id int64) (DiaryResponse, error)
	List(ctx context.Context, filter ListFilter) ([]DiaryResponse, error)
}
