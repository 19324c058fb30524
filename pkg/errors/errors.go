// Package errors provides structured error handling for the props library.
//
// The property registry itself never returns errors: recoverable misses
// surface as false results and programmer errors panic at the violation
// site. This package serves the surrounding machinery — definition
// loading, validation, and the CLI — with one structured error type and a
// pluggable reporting handler.
package errors

import (
	"fmt"
	"time"
)

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindIO indicates a failure reading a definition file.
	KindIO
	// KindDecode indicates a YAML or TOML decoding failure.
	KindDecode
	// KindDefinition indicates a sheet definition that decoded cleanly
	// but describes an invalid panel.
	KindDefinition
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindDecode:
		return "decode"
	case KindDefinition:
		return "definition"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the props library.
type Error struct {
	// Op is the operation that failed (e.g., "sheetdef.Load").
	Op string
	// Kind categorizes the error.
	Kind Kind
	// Path is the definition file involved, if any.
	Path string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E constructs an Error.
func E(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err, Timestamp: time.Now()}
}

// Pathf constructs an Error carrying a file path and a formatted message.
func Pathf(op string, kind Kind, path, format string, args ...any) *Error {
	return &Error{
		Op:        op,
		Kind:      kind,
		Path:      path,
		Err:       fmt.Errorf(format, args...),
		Timestamp: time.Now(),
	}
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
