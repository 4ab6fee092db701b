package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned on any 401. By the time a caller sees it
// the session store has already been cleared.
var ErrUnauthorized = errors.New("session rejected by backend")

// Error is a failure reported by the backend with a response body. For
// validation failures (4xx) Message carries the backend's wording
// verbatim, to be shown to the user untouched.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return e.Message
}

// IsValidation reports whether the error is a backend validation
// failure whose message should be surfaced verbatim.
func IsValidation(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500
}
