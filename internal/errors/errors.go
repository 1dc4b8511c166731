package errors

import (
	"errors"
	"strings"
)

// Error codes. Each code maps to a process exit status via ExitCode.
const (
	ErrConfig   = "CONFIG"
	ErrTerminal = "TERMINAL"
	ErrMetrics  = "METRICS"
)

// Exit statuses for fatal errors.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// Error is a fatal ptop error. It prints as
//
//	✗ <message>
//
//	  <cause>
//
//	  <suggestion>
//
// with the cause and suggestion blocks omitted when empty.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New returns an error without an underlying cause.
func New(code, message, suggestion string) *Error {
	return WrapWithCode(nil, code, message, suggestion)
}

// Wrap attaches message to err under ErrMetrics, the code for anything
// read from the proc filesystem.
func Wrap(err error, message string) *Error {
	return WrapWithCode(err, ErrMetrics, message, "")
}

// WrapWithCode attaches a code, message and suggestion to err.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion, Cause: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("✗ " + e.Message + "\n")
	for _, block := range []string{causeText(e.Cause), e.Suggestion} {
		if block != "" {
			b.WriteString("\n  " + block + "\n")
		}
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func causeText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// IsCode reports whether err or anything it wraps is an *Error with code.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// ExitCode picks the process exit status for err. Configuration mistakes
// are usage errors; everything else is a plain failure.
func ExitCode(err error) int {
	if IsCode(err, ErrConfig) {
		return ExitUsage
	}
	return ExitFailure
}
