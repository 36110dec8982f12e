package console

import "errors"

var (
	// ErrValidation means required fields were missing; no gateway call
	// was made and the edit state is preserved.
	ErrValidation = errors.New("validation failed")
)
