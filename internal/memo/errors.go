package memo

import "errors"

var (
	ErrValidation           = errors.New("title and content are both required")
	ErrConfirmationDeclined = errors.New("confirmation declined")
	ErrMemoNotFound         = errors.New("memo not found")
)
