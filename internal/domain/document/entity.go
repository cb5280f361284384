package document

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

// Document is an uploaded internship document (term of commitment, reports)
// tied to a contract and subject to staff review.
type Document struct {
	ID                int64
	ContractID        int64
	Name              string
	FileURL           string
	Type              *string
	Status            Status
	ResolutionComment *string
	SubmittedAt       time.Time
	UpdatedAt         time.Time
}
