package session

import "errors"

var (
	// ErrUnknownHandle is returned for a handle this session never issued,
	// or issued before the last Configure.
	ErrUnknownHandle = errors.New("session: unknown handle")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("session: invalid config")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("session: unknown algorithm")
)
