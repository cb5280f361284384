package evaluation

import "errors"

var (
	ErrEvaluationNotFound = errors.New("evaluation not found")
	ErrAlreadyDone        = errors.New("evaluation has already been concluded")
)
