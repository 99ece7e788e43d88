package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler installs h as the process-wide handler. Nil restores a
// LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

// Handler returns the installed handler.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report hands err to the installed handler, stamping it first.
func Report(err *BuzzError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportFatal hands a recovered fatal error to the installed handler.
func ReportFatal(err *FatalError) {
	if err != nil {
		Handler().HandleFatal(err)
	}
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err != nil {
		Handler().HandlePanic(err)
	}
}

// Recover must be deferred directly. A *FatalError goes to HandleFatal;
// any other panic value is wrapped with op and the stack and goes to
// HandlePanic.
//
//	defer errors.Recover("core.BeforeRender")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	if fe, ok := AsFatal(r); ok {
		ReportFatal(fe)
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// AsFatal reports whether v, typically a recovered panic value, is a
// *FatalError and returns it.
func AsFatal(v any) (*FatalError, bool) {
	fe, ok := v.(*FatalError)
	return fe, ok
}

// CaptureStack formats the stack of its caller's caller, one frame per
// function/file:line pair.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
