package contract

import "context"

// ContractService manages internship contracts.
type ContractService interface {
	// Create validates the student and professor roles before persisting.
	Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error)

	Get(ctx context.Context, id int64) (ContractResponse, error)
	GetActiveByStudent(ctx context.Context, studentID int64) (ContractResponse, error)
	List(ctx context.Context, filter ListFilter) ([]ContractResponse, error)
	Update(ctx context.Context, req UpdateContractRequest) (ContractResponse, error)
}
