package errors

import (
	"fmt"
	"io"
	"os"
)

// LogHandler is an ErrorHandler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool
	// Out overrides the destination; nil means os.Stderr.
	Out io.Writer
}

func (h *LogHandler) out() io.Writer {
	if h.Out != nil {
		return h.Out
	}
	return os.Stderr
}

// HandleError logs a BuzzError.
func (h *LogHandler) HandleError(err *BuzzError) {
	if err == nil {
		return
	}
	w := h.out()
	if h.Verbose {
		fmt.Fprintf(w, "[buzz error] %s [%s]", err.Op, err.Kind)
		if err.Widget != "" {
			fmt.Fprintf(w, " widget=%s", err.Widget)
		}
		fmt.Fprintf(w, ": %v\n", err.Err)
		if err.StackTrace != "" {
			fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
		}
	} else {
		fmt.Fprintf(w, "[buzz error] %s: %v\n", err.Op, err.Err)
	}
}

// HandleFatal logs a FatalError.
func (h *LogHandler) HandleFatal(err *FatalError) {
	if err == nil {
		return
	}
	fmt.Fprintf(h.out(), "[buzz fatal] %s [%s]: %s\n", err.Op, err.Kind, err.Msg)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	w := h.out()
	if err.Op != "" {
		fmt.Fprintf(w, "[buzz panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(w, "[buzz panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(w, "Stack trace:\n%s\n", err.StackTrace)
	}
}
