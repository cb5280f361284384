package user

import "time"

// Role is the access profile of an account.
type Role string

const (
	RoleStudent     Role = "aluno"
	RoleProfessor   Role = "professor"
	RoleAdmin       Role = "admin"
	RoleCoordinator Role = "coordenador"
)

// IsValid reports whether the role is one of the known profiles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleProfessor, RoleAdmin, RoleCoordinator:
		return true
	}
	return false
}

// IsStaff reports whether the role can review student submissions.
func (r Role) IsStaff() bool {
	return r == RoleProfessor || r == RoleAdmin || r == RoleCoordinator
}

type User struct {
	ID           int64
	Name         string
	Matricula    string
	PasswordHash string
	Contact      *string
	Email        string
	Class        *string
	Period       *string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
