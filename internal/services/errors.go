package services

import "errors"

// ErrInvalidInput marks a request the caller can fix: missing message,
// non-positive timeline, negative amounts. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid input")
