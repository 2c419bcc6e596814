package ps2

import "errors"

var (
	// ErrCommandRetry means the device answered 0xFE and wants the byte
	// again. retry consumes it.
	ErrCommandRetry = errors.New("command retry requested")
	// ErrNoMoreTries means a retried operation failed on every attempt.
	ErrNoMoreTries = errors.New("no more tries")
	// ErrReadTimeout means the output buffer never filled.
	ErrReadTimeout = errors.New("read timeout")
	// ErrWriteTimeout means the input buffer never drained.
	ErrWriteTimeout = errors.New("write timeout")
	// ErrInitFailed means a required self-test or acknowledgement byte did
	// not match.
	ErrInitFailed = errors.New("initialization failed")
)
