package user

import "context"

// UserRepository defines data access methods for accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByMatricula(ctx context.Context, matricula string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, filter ListFilter) ([]User, error)
}

// ListFilter narrows user listings.
type ListFilter struct {
	Role   *Role
	Offset int
	Limit  int
}
