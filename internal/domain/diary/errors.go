package diary

import "errors"

var (
	ErrDiaryNotFound   = errors.New("diary entry not found")
	ErrAlreadyReviewed = errors.New("diary entry has already been reviewed")
	ErrInvalidStatus   = errors.New("invalid diary status")
)
