package justification

import "errors"

var (
	ErrJustificationNotFound = errors.New("justification not found")
	ErrAlreadyResolved       = errors.New("justification has already been resolved")
	ErrInvalidStatus         = errors.New("invalid justification status")
)
