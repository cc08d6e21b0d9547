// Package common provides shared constants, types, and utilities
// used across seccli.
package common

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Sentinel errors for VPN operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Locator errors.
	ErrExecutableNotFound = errors.New("could not locate Cisco Secure Client/AnyConnect executable")

	// Connection errors.
	ErrAlreadyConnected = errors.New("VPN is already connected")
	ErrNotConnected     = errors.New("VPN is not connected")
	ErrConnectFailed    = errors.New("VPN connection failed")
	ErrDisconnectFailed = errors.New("VPN disconnection failed")
	ErrPasswordPrompt   = errors.New("failed to read password")

	// Dispatcher errors.
	ErrUnrecognizedCommand = errors.New("unrecognized command")
	ErrMissingArgument     = errors.New("missing required argument")

	// Configuration errors.
	ErrConfigLoad    = errors.New("failed to load configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// WrapError wraps an error with additional context.
// It returns nil when err is nil.
func WrapError(err error, message string) error {
	return errors.Wrap(err, message)
}

// WithCause attaches cause to sentinel. The result reads "sentinel: cause"
// and matches both with errors.Is. It returns sentinel when cause is nil.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return &causedError{sentinel: sentinel, cause: cause}
}

type causedError struct {
	sentinel error
	cause    error
}

func (e *causedError) Error() string {
	return e.sentinel.Error() + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() []error {
	return []error{e.sentinel, e.cause}
}

// Format prints the cause with its stack for %+v.
func (e *causedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s: %+v", e.sentinel, e.cause)
		return
	}
	_, _ = io.WriteString(s, e.Error())
}
