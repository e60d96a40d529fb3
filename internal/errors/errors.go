// Package errors provides structured error types for Teacher Bob.
// These errors carry the operation that failed and a coarse category, so callers
// can decide how to present a failure without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindIO
	KindNetwork
	KindService
	KindDecode
	KindConfig
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindService:
		return "service error"
	case KindDecode:
		return "decode error"
	case KindConfig:
		return "configuration error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for Teacher Bob.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Answer service errors

func AnswerRequestFailed(endpoint string, err error) error {
	return E(Op("answer.Ask"), KindNetwork, fmt.Sprintf("request to %s failed", endpoint), err)
}

func AnswerTimeout(endpoint string, err error) error {
	return E(Op("answer.Ask"), KindTimeout, fmt.Sprintf("request to %s timed out", endpoint), err)
}

// AnswerStatus reports a non-2xx response. detail is the service's own
// explanation, when it sent one.
func AnswerStatus(status int, detail string) error {
	msg := fmt.Sprintf("answer service returned status %d", status)
	if detail != "" {
		msg += ": " + detail
	}
	return E(Op("answer.Ask"), KindService, msg)
}

func AnswerDecodeFailed(err error) error {
	return E(Op("answer.Ask"), KindDecode, "malformed answer body", err)
}

// Config errors

func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Attachment errors

func AttachmentUnreadable(path string, err error) error {
	return E(Op("chat.Attach"), KindIO, fmt.Sprintf("cannot inspect %s", path), err)
}
