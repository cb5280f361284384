package contract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/user"
)

type ContractServiceImpl struct {
	contract.ContractRepository
	address.AddressRepository
	user.UserRepository
}

func NewContractService(
	contractRepository contract.ContractRepository,
	addressRepository address.AddressRepository,
	userRepository user.UserRepository,
) contract.ContractService {
	return &ContractServiceImpl{
		ContractRepository: contractRepository,
		AddressRepository:  addressRepository,
		UserRepository:     userRepository,
	}
}

// Create implements contract.ContractService.
func (s *ContractServiceImpl) Create(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	student, err := s.UserRepository.GetByID(ctx, req.StudentID)
	if err != nil || student.Role != user.RoleStudent {
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return contract.ContractResponse{}, fmt.Errorf("failed to get student: %w", err)
		}
		return contract.ContractResponse{}, contract.ErrStudentInvalid
	}

	professor, err := s.UserRepository.GetByID(ctx, req.ProfessorID)
	if err != nil || !professor.Role.IsStaff() {
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return contract.ContractResponse{}, fmt.Errorf("failed to get professor: %w", err)
		}
		return contract.ContractResponse{}, contract.ErrProfessorInvalid
	}

	addr, err := s.AddressRepository.GetByID(ctx, req.AddressID)
	if err != nil {
		return contract.ContractResponse{}, err
	}

	newContract := contract.Contract{
		StudentID:            req.StudentID,
		ProfessorID:          req.ProfessorID,
		AddressID:            req.AddressID,
		ClassID:              req.ClassID,
		AgreementID:          req.AgreementID,
		ExternalSupervisorID: req.ExternalSupervisorID,
		Active:               true,
		ExpectedStart:        req.ExpectedStart,
		ExpectedEnd:          req.ExpectedEnd,
		ToleranceMinutes:     req.ToleranceMinutes,
		AllowedRadiusMeters:  req.AllowedRadiusMeters,
	}
	if req.StartDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return contract.ContractResponse{}, fmt.Errorf("invalid data_inicio: %w", err)
		}
		newContract.StartDate = &parsed
	}
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return contract.ContractResponse{}, fmt.Errorf("invalid data_final: %w", err)
		}
		newContract.EndDate = &parsed
	}

	created, err := s.ContractRepository.Create(ctx, newContract)
	if err != nil {
		return contract.ContractResponse{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return contract.ToResponse(created, &addr), nil
}

// Get implements contract.ContractService.
func (s *ContractServiceImpl) Get(ctx context.Context, id int64) (contract.ContractResponse, error) {
	found, err := s.ContractRepository.GetByID(ctx, id)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return s.withAddress(ctx, found)
}

// GetActiveByStudent implements contract.ContractService.
func (s *ContractServiceImpl) GetActiveByStudent(ctx context.Context, studentID int64) (contract.ContractResponse, error) {
	found, err := s.ContractRepository.GetActiveByStudent(ctx, studentID)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return s.withAddress(ctx, found)
}

// List implements contract.ContractService.
func (s *ContractServiceImpl) List(ctx context.Context, filter contract.ListFilter) ([]contract.ContractResponse, error) {
	contracts, err := s.ContractRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, contract.ToResponse(c, nil))
	}
	return responses, nil
}

// Update implements contract.ContractService. Only policy fields and the
// active flag can change; parties and address are fixed at creation.
func (s *ContractServiceImpl) Update(ctx context.Context, req contract.UpdateContractRequest) (contract.ContractResponse, error) {
	existing, err := s.ContractRepository.GetByID(ctx, req.ID)
	if err != nil {
		return contract.ContractResponse{}, err
	}

	if req.Active != nil {
		existing.Active = *req.Active
	}
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return contract.ContractResponse{}, fmt.Errorf("invalid data_final: %w", err)
		}
		existing.EndDate = &parsed
	}
	if req.ExpectedStart != nil {
		existing.ExpectedStart = req.ExpectedStart
	}
	if req.ExpectedEnd != nil {
		existing.ExpectedEnd = req.ExpectedEnd
	}
	if req.ToleranceMinutes != nil {
		existing.ToleranceMinutes = req.ToleranceMinutes
	}
	if req.AllowedRadiusMeters != nil {
		existing.AllowedRadiusMeters = req.AllowedRadiusMeters
	}

	if err := s.ContractRepository.Update(ctx, existing); err != nil {
		return contract.ContractResponse{}, fmt.Errorf("failed to update contract: %w", err)
	}

	return s.withAddress(ctx, existing)
}

func (s *ContractServiceImpl) withAddress(ctx context.Context, c contract.Contract) (contract.ContractResponse, error) {
	addr, err := s.AddressRepository.GetByID(ctx, c.AddressID)
	if err != nil {
		if errors.Is(err, address.ErrAddressNotFound) {
			return contract.ToResponse(c, nil), nil
		}
		return contract.ContractResponse{}, fmt.Errorf("failed to get address: %w", err)
	}
	return contract.ToResponse(c, &addr), nil
}
