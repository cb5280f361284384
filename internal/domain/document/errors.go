package document

import "errors"

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrAlreadyReviewed  = errors.New("document has already been reviewed")
)
