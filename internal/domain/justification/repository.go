package justification

import (
	"context"
	"time"
)

// JustificationRepository defines data access methods for justifications
// and their audit log.
type JustificationRepository interface {
	Create(ctx context.Context, j Justification) (Justification, error)
	GetByID(ctx context.Context, id int64) (Justification, error)
	Update(ctx context.Context, j Justification) error
	List(ctx context.Context, filter ListFilter) ([]Justification, error)
	ListByStudentAndDate(ctx context.Context, studentID int64, date time.Time) ([]Justification, error)

	// ExpireOverdue transitions every pending justification whose deadline
	// has passed to expired, appending one audit row each, in one batch.
	// Returns the ids that changed.
	ExpireOverdue(ctx context.Context, now time.Time) ([]int64, error)

	AppendLog(ctx context.Context, log Log) error
	ListLogs(ctx context.Context, justificationID int64) ([]Log, error)
}

// ListFilter narrows justification listings.
type ListFilter struct {
	StudentID  *int64
	ContractID *int64
	Status     *Status
	Offset     int
	Limit      int
}
