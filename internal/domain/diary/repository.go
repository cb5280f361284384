package diary

import (
	"context"
	"time"
)

// DiaryRepository defines data access methods for activity diaries.
type DiaryRepository interface {
	Create(ctx context.Context, d DiaryEntry) (DiaryEntry, error)
	GetByID(ctx context.Context, id int64) (DiaryEntry, error)
	Update(ctx context.Context, d DiaryEntry) error
	List(ctx context.Context, filter ListFilter) ([]DiaryEntry, error)
	ListByStudentAndDate(ctx context.Context, studentID int64, date time.Time) ([]DiaryEntry, error)
}

// ListFilter narrows diary listings.
type ListFilter struct {
	StudentID  *int64
	ContractID *int64
	Status     *Status
	Offset     int
	Limit      int
}
