package repository

import (
	"errors"
	"fmt"
)

// Remote operations, used in RemoteError and metrics labels.
const (
	OpList   = "list"
	OpCreate = "create"
	OpUpdate = "update"
	OpRemove = "remove"
)

var ErrFailedToPersist = errors.New("failed to persist fallback memos")

// RemoteError is any failed call to the remote memo API: a transport error
// (StatusCode 0), a non-2xx status or an unreadable body.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("remote %s: status %d: %s", e.Op, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("remote %s: status %d", e.Op, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("remote %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("remote %s failed", e.Op)
	}
}

func (e *RemoteError) Unwrap() error { return e.Err }
