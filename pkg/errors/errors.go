// Package errors provides structured error handling for the Buzz toolkit.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindRender indicates a failure while resolving or attaching a render chain.
	KindRender
	// KindStyle indicates a failure while applying style to a surface.
	KindStyle
	// KindLifecycle indicates misuse of the mount/unmount/remove lifecycle.
	KindLifecycle
	// KindConfig indicates a configuration error.
	KindConfig
	// KindParsing indicates a markup or document parsing failure.
	KindParsing
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindRender:
		return "render"
	case KindStyle:
		return "style"
	case KindLifecycle:
		return "lifecycle"
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BuzzError represents a structured, recoverable error in the toolkit.
type BuzzError struct {
	// Op is the operation that failed (e.g., "core.BeforeRender").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Widget is the key of the widget involved, if any.
	Widget string
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuzzError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BuzzError) Unwrap() error {
	return e.Err
}

// FatalError is the panic payload for programmer errors: misuse of the
// core that cannot be recovered from within the current render pass.
type FatalError struct {
	// Op is the operation that detected the defect.
	Op string
	// Kind categorizes the defect.
	Kind ErrorKind
	// Msg describes the defect.
	Msg string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Msg)
}

// Fatal aborts the current operation by panicking with a *FatalError.
func Fatal(op string, kind ErrorKind, format string, args ...any) {
	panic(&FatalError{Op: op, Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.BeforeRender").
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

// ErrorHandler receives what the toolkit cannot return to a caller:
// errors from detached hooks and parsing, fatal misuse caught on a
// detached goroutine, and other recovered panics.
type ErrorHandler interface {
	HandleError(err *BuzzError)
	// HandleFatal receives a *FatalError recovered where no caller can
	// receive it, such as inside a BeforeRender hook.
	HandleFatal(err *FatalError)
	HandlePanic(err *PanicError)
}
