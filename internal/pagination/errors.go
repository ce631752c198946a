package pagination

import (
	"errors"
	"fmt"
)

// ErrValidation is the parent of every error returned by New and Validate.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// Each sentinel below wraps ErrValidation, so errors.Is(err, ErrValidation)
// holds for all of them.
var (
	ErrInvalidPage     = fmt.Errorf("%w: page must be at least 1", ErrValidation)
	ErrInvalidLimit    = fmt.Errorf("%w: per-page limit must be at least 1", ErrValidation)
	ErrInvalidTotal    = fmt.Errorf("%w: total rows must not be negative", ErrValidation)
	ErrInvalidWindow   = fmt.Errorf("%w: window size must not be negative", ErrValidation)
	ErrInvalidTemplate = fmt.Errorf("%w: link template must contain %s", ErrValidation, PagePlaceholder)
	ErrPageOutOfRange  = fmt.Errorf("%w: page is too large for the per-page limit and window size", ErrValidation)
)
