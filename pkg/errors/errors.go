// Package errors provides structured error reporting for hovertip.
//
// Nothing in the tooltip core fails loudly: faults in collaborators (a
// panicking hit-test capability, a dispatch function that refuses work) are
// reported here and then degraded to "tooltip hidden". Superseded timers are
// expected control flow and are never reported.
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
	// KindHitTest indicates a failure inside the external hit-test capability.
	KindHitTest
	// KindSchedule indicates a timer could not be handed to the UI thread.
	KindSchedule
	// KindConfig indicates an invalid or unreadable configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindHitTest:
		return "hittest"
	case KindSchedule:
		return "schedule"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured, non-fatal error in hovertip.
type Error struct {
	// Op is the operation that failed (e.g., "hittest.Dispatcher.Query").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "hittest.Scene.HitTest").
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

// ErrorHandler receives errors reported by hovertip.
type ErrorHandler interface {
	// HandleError is called when a collaborator fails.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
