package contract

import "context"

// ContractRepository defines data access methods for internship contracts.
type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	GetByID(ctx context.Context, id int64) (Contract, error)

	// GetActiveByStudent returns the student's single active contract.
	// Lookup logic assumes at most one active contract per student.
	GetActiveByStudent(ctx context.Context, studentID int64) (Contract, error)

	List(ctx context.Context, filter ListFilter) ([]Contract, error)
	Update(ctx context.Context, c Contract) error
}

// ListFilter narrows contract listings.
type ListFilter struct {
	StudentID   *int64
	ProfessorID *int64
	Active      *bool
	Offset      int
	Limit       int
}
