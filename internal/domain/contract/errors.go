package contract

import "errors"

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrNoActiveContract = errors.New("student has no active contract")
	ErrStudentInvalid   = errors.New("student not found or not an aluno account")
	ErrProfessorInvalid = errors.New("professor not found or not a professor account")
)
