package singleton

import "errors"

var (
	// ErrAlreadyInitialized is returned by GetStaticInstance for every call after the first one.
	ErrAlreadyInitialized = errors.New("instance already initialized")
)
