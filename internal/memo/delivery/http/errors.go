package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"memo-manager/internal/memo"
	pkgErrors "memo-manager/pkg/errors"
)

const (
	maxTitleBytes   = 1 << 10
	maxContentBytes = 1 << 20
)

var (
	errFieldTooLong  = errors.New("title or content too long")
	errUnknownAction = errors.New("unknown list action")
)

// mapError translates request and domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid action request")
	case errors.Is(err, errFieldTooLong):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, errUnknownAction), errors.Is(err, memo.ErrMemoNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.ErrBadRequest
	}
}
