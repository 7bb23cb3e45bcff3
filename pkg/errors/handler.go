package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
	muted     = map[ErrorKind]bool{}
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		h = &LogHandler{}
	}
	DefaultHandler = h
}

// Mute stops errors of the given kinds from reaching the handler until the
// returned function is called. Panics are never muted.
func Mute(kinds ...ErrorKind) (restore func()) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := make(map[ErrorKind]bool, len(muted))
	for k, v := range muted {
		prev[k] = v
	}
	for _, k := range kinds {
		muted[k] = true
	}
	return func() {
		handlerMu.Lock()
		defer handlerMu.Unlock()
		muted = prev
	}
}

// Muted reports whether errors of kind are currently dropped.
func Muted(kind ErrorKind) bool {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return muted[kind]
}

// handlerFor returns the handler for kind, or nil when the kind is muted.
func handlerFor(kind ErrorKind) ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	if muted[kind] {
		return nil
	}
	return DefaultHandler
}

// Report sends an error to the global handler unless its kind is muted.
// A zero Timestamp is set to now. Errors from collaborators get a stack
// trace when they carry none; config errors describe user input and never
// do.
func Report(err *Error) {
	if err == nil {
		return
	}
	h := handlerFor(err.Kind)
	if h == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.StackTrace == "" && err.Kind != KindConfig {
		err.StackTrace = CaptureStack()
	}
	h.HandleError(err)
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := handlerFor(KindPanic); h != nil {
		h.HandlePanic(err)
	}
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover("operation.name")
func Recover(op string) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
	}
}

// RecoverWithCallback is like Recover but also calls the provided callback
// with the panic value after reporting it.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		reportRecovered(op, r)
		if callback != nil {
			callback(r)
		}
	}
}

func reportRecovered(op string, r any) {
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack returns the caller's call stack as a string, without the
// frames of this package.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, pkgPrefix) || strings.HasSuffix(frame.File, "_test.go") {
			sb.WriteString(frame.Function)
			sb.WriteString("\n\t")
			sb.WriteString(frame.File)
			sb.WriteString(":")
			sb.WriteString(strconv.Itoa(frame.Line))
			sb.WriteString("\n")
		}
		if !more {
			break
		}
	}
	return sb.String()
}

const pkgPrefix = "github.com/go-drift/hovertip/pkg/errors."
