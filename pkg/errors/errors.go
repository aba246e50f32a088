// Package errors provides structured error handling for mnconnect.
// It defines sentinel errors, exit codes, and helpers for adding
// context, details, and suggestions to errors.
//
//nolint:revive // Package name intentionally shadows stdlib for domain-specific error handling
package errors

import (
	"errors"
	"fmt"
	"sort"
)

// Exit codes.
const (
	ExitSuccess  = 0 // Successful execution
	ExitGeneral  = 1 // General/unknown error
	ExitInput    = 2 // Invalid input
	ExitDenied   = 3 // Connection denied by the wallet or its user
	ExitNotFound = 4 // Wallet capability not found
)

// ConnectError is the structured error type for mnconnect.
type ConnectError struct {
	Code       string            // Machine-readable error code
	Message    string            // Human-readable message
	Details    map[string]string // Additional context
	Suggestion string            // Actionable suggestion for user
	Cause      error             // Underlying error
	ExitCode   int               // Exit code for CLI
}

func (e *ConnectError) Error() string {
	msg := e.Message

	// Include details in error message (sorted for deterministic output)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConnectError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for ConnectError.
func (e *ConnectError) Is(target error) bool {
	var t *ConnectError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors.
var (
	ErrGeneral = &ConnectError{
		Code:     "GENERAL_ERROR",
		Message:  "an error occurred",
		ExitCode: ExitGeneral,
	}

	ErrInvalidInput = &ConnectError{
		Code:     "INVALID_INPUT",
		Message:  "invalid input",
		ExitCode: ExitInput,
	}

	// Handshake failure classes. These map one-to-one onto the outcomes
	// the negotiator distinguishes for diagnostics; the UI never sees them.

	ErrWalletNotFound = &ConnectError{
		Code:     "WALLET_NOT_FOUND",
		Message:  "wallet capability not found",
		ExitCode: ExitNotFound,
	}

	ErrEnableRejected = &ConnectError{
		Code:     "ENABLE_REJECTED",
		Message:  "wallet refused to enable the connection",
		ExitCode: ExitDenied,
	}

	ErrNotEnabled = &ConnectError{
		Code:     "NOT_ENABLED",
		Message:  "wallet reports the connection as not enabled",
		ExitCode: ExitDenied,
	}

	ErrStateUnavailable = &ConnectError{
		Code:     "STATE_UNAVAILABLE",
		Message:  "wallet state could not be retrieved",
		ExitCode: ExitGeneral,
	}

	ErrInvalidAddress = &ConnectError{
		Code:     "INVALID_ADDRESS",
		Message:  "wallet returned an invalid address",
		ExitCode: ExitGeneral,
	}

	// Bridge-specific errors.

	ErrBridgeRequest = &ConnectError{
		Code:     "BRIDGE_REQUEST_FAILED",
		Message:  "wallet bridge request failed",
		ExitCode: ExitGeneral,
	}

	ErrBridgeResponse = &ConnectError{
		Code:     "BRIDGE_INVALID_RESPONSE",
		Message:  "invalid wallet bridge response",
		ExitCode: ExitGeneral,
	}

	// Config-specific errors.

	ErrConfigNotFound = &ConnectError{
		Code:     "CONFIG_NOT_FOUND",
		Message:  "configuration file not found",
		ExitCode: ExitNotFound,
	}

	ErrConfigInvalid = &ConnectError{
		Code:     "CONFIG_INVALID",
		Message:  "configuration file is invalid",
		ExitCode: ExitInput,
	}

	// UI-specific errors.

	ErrNoTerminal = &ConnectError{
		Code:     "NO_TERMINAL",
		Message:  "standard output is not a terminal",
		ExitCode: ExitInput,
	}
)

// New creates a new ConnectError with the given code and message.
func New(code, message string) *ConnectError {
	return &ConnectError{
		Code:     code,
		Message:  message,
		ExitCode: ExitGeneral,
	}
}

// Wrap wraps an error with additional context. If err is a ConnectError,
// the code and exit code are preserved.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, args...)

	var ce *ConnectError
	if errors.As(err, &ce) {
		return &ConnectError{
			Code:       ce.Code,
			Message:    msg,
			Details:    ce.Details,
			Suggestion: ce.Suggestion,
			Cause:      err,
			ExitCode:   ce.ExitCode,
		}
	}

	return &ConnectError{
		Code:     "GENERAL_ERROR",
		Message:  msg,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithDetails attaches key/value context to an error.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var ce *ConnectError
	if errors.As(err, &ce) {
		merged := make(map[string]string, len(ce.Details)+len(details))
		for k, v := range ce.Details {
			merged[k] = v
		}
		for k, v := range details {
			merged[k] = v
		}
		return &ConnectError{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    merged,
			Suggestion: ce.Suggestion,
			Cause:      err,
			ExitCode:   ce.ExitCode,
		}
	}

	return &ConnectError{
		Code:     "GENERAL_ERROR",
		Message:  err.Error(),
		Details:  details,
		Cause:    err,
		ExitCode: ExitGeneral,
	}
}

// WithSuggestion attaches an actionable suggestion to an error.
func WithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}

	var ce *ConnectError
	if errors.As(err, &ce) {
		return &ConnectError{
			Code:       ce.Code,
			Message:    ce.Message,
			Details:    ce.Details,
			Suggestion: suggestion,
			Cause:      err,
			ExitCode:   ce.ExitCode,
		}
	}

	return &ConnectError{
		Code:       "GENERAL_ERROR",
		Message:    err.Error(),
		Suggestion: suggestion,
		Cause:      err,
		ExitCode:   ExitGeneral,
	}
}

// ExitCode returns the exit code for an error. Nil yields ExitSuccess,
// unstructured errors yield ExitGeneral.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ce *ConnectError
	if errors.As(err, &ce) {
		return ce.ExitCode
	}
	return ExitGeneral
}

// Code returns the machine-readable code for an error, or "GENERAL_ERROR"
// for unstructured errors.
func Code(err error) string {
	var ce *ConnectError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return "GENERAL_ERROR"
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
