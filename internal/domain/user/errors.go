package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrMatriculaExists     = errors.New("matricula already registered")
	ErrEmailExists         = errors.New("email already registered")
	ErrStaffAccessRequired = errors.New("staff access required")
	ErrInvalidRole         = errors.New("invalid access profile")
)
