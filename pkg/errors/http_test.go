package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	pkgErrors "memo-manager/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	if got := pkgErrors.StatusCode(pkgErrors.ErrNotFound); got != http.StatusNotFound {
		t.Errorf("expected 404, got %d", got)
	}
	wrapped := fmt.Errorf("handler: %w", pkgErrors.NewHTTPError(http.StatusConflict, "conflict"))
	if got := pkgErrors.StatusCode(wrapped); got != http.StatusConflict {
		t.Errorf("expected 409 through wrapping, got %d", got)
	}
	if got := pkgErrors.StatusCode(errors.New("plain")); got != http.StatusBadRequest {
		t.Errorf("expected 400 for plain errors, got %d", got)
	}
	if pkgErrors.ErrBadRequest.Error() != "bad request" {
		t.Errorf("unexpected message %q", pkgErrors.ErrBadRequest.Error())
	}
}
