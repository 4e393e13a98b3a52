// Package common provides shared constants, types, and utilities
// used across the tray application.
package common

import "errors"

// Sentinel errors for the tray application.
// These can be checked with errors.Is() for proper error handling.
var (
	// Tray errors.
	ErrTrayCreate      = errors.New("failed to create tray icon")
	ErrTrayInstalled   = errors.New("tray already installed")
	ErrTrayUnavailable = errors.New("no system tray host available")

	// Window errors.
	ErrWindowCreate = errors.New("failed to create window")

	// Scheduling errors.
	ErrLoopClosed    = errors.New("ui loop closed")
	ErrRuntimeClosed = errors.New("background runtime closed")

	// Asset errors.
	ErrIconDecode = errors.New("failed to decode icon")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
