package evaluation

import "time"

type Status string

const (
	StatusPending Status = "pendente"
	StatusDone    Status = "concluida"
)

// Evaluation is a staff assessment of an internship period.
type Evaluation struct {
	ID            int64
	ContractID    int64
	EvaluatorID   int64
	Period        *string
	Grades        *string
	Feedback      *string
	ActionPlan    *string
	Status        Status
	Exported      bool
	ReferenceDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
