package user

import "context"

// UserService exposes account lookups to staff and profile reads.
type UserService interface {
	Get(ctx context.Context, id int64) (UserResponse, error)
	List(ctx context.Context, filter ListFilter) ([]UserResponse, error)
}
