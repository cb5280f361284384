package diary

import "time"

type Status string

const (
	StatusPending  Status = "pendente"
	StatusApproved Status = "aprovado"
	StatusRejected Status = "rejeitado"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// DiaryEntry is one activity-diary record submitted by a student and
// reviewed by staff.
type DiaryEntry struct {
	ID              int64
	StudentID       int64
	ContractID      int64
	ReferenceDate   time.Time
	Summary         string
	Details         *string
	AttachmentURL   *string
	Status          Status
	ReviewerComment *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
