package justification

import "time"

// Status is the review state of a justification.
type Status string

const (
	StatusPending  Status = "pendente"
	StatusApproved Status = "aprovada"
	StatusRejected Status = "rejeitada"
	StatusExpired  Status = "expirada"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusExpired:
		return true
	}
	return false
}

// IsResolved reports whether the justification left the pending state.
func (s Status) IsResolved() bool {
	return s != StatusPending
}

// TypeLocationAdjustment marks justifications opened automatically when a
// clock-in fails the geofence check.
const TypeLocationAdjustment = "location_adjustment"

// Justification is a student- or system-submitted explanation for an
// attendance anomaly, reviewed against an SLA deadline.
type Justification struct {
	ID                int64
	StudentID         int64
	ContractID        int64
	PontoID           *int64
	Type              string
	Reason            string
	Status            Status
	ResolutionComment *string
	EvidenceURL       *string
	ReferenceDate     time.Time
	ResponseDeadline  time.Time
	ResolvedAt        *time.Time
	AutoCreated       bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Log is one append-only audit row recording a status transition.
type Log struct {
	ID              int64
	JustificationID int64
	Status          Status
	Message         *string
	CreatedAt       time.Time
}
