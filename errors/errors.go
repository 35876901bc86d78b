package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types for categorization and handling

var (
	// ErrNotFound indicates a requested resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates user input rejected before it reaches the
	// retrieval pipeline
	ErrInvalidInput = errors.New("invalid input")

	// ErrOracleUnavailable indicates the external answer oracle could not be
	// reached or did not produce a usable response. Recoverable: callers
	// degrade to the next decision tier instead of failing.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrIndexInconsistent indicates the knowledge index failed its
	// construction invariants. Startup-only and fatal.
	ErrIndexInconsistent = errors.New("knowledge index inconsistent")
)

// WrapError wraps an error with context message
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapErrorf wraps an error with formatted context message
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Message returns the human-readable context the error was wrapped with,
// without the trailing sentinel text added by WrapError. Used for replies
// shown directly to the user.
func Message(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{ErrNotFound, ErrInvalidInput, ErrOracleUnavailable, ErrIndexInconsistent} {
		suffix := ": " + sentinel.Error()
		if strings.HasSuffix(msg, suffix) {
			return strings.TrimSuffix(msg, suffix)
		}
	}
	return msg
}

// IsNotFound checks if error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidInput checks if error is an invalid input error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsOracleUnavailable checks if error is an oracle availability error
func IsOracleUnavailable(err error) bool {
	return errors.Is(err, ErrOracleUnavailable)
}

// IsIndexInconsistent checks if error is a knowledge index construction error
func IsIndexInconsistent(err error) bool {
	return errors.Is(err, ErrIndexInconsistent)
}
