package utils

import "errors"

// ErrUserInitiatedExit is returned when the user asks to leave. It is not a failure.
var ErrUserInitiatedExit = errors.New("user exit")
