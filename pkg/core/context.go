package core

import (
	"fmt"
	"log"
	"os"

	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/registry"
	"github.com/buzzkit/buzz/pkg/surface"
	"github.com/buzzkit/buzz/pkg/theme"
)

// DebugLevel controls diagnostic output.
type DebugLevel int

const (
	// DebugNone disables diagnostics.
	DebugNone DebugLevel = iota
	// DebugLog enables verbose lifecycle logging.
	DebugLog
)

func (l DebugLevel) String() string {
	switch l {
	case DebugNone:
		return "none"
	case DebugLog:
		return "verbose"
	default:
		return fmt.Sprintf("DebugLevel(%d)", int(l))
	}
}

// ParseDebugLevel maps "none"/"" and "verbose" to a DebugLevel.
func ParseDebugLevel(s string) (DebugLevel, error) {
	switch s {
	case "", "none":
		return DebugNone, nil
	case "verbose", "log":
		return DebugLog, nil
	default:
		return DebugNone, fmt.Errorf("unknown debug level %q", s)
	}
}

// Context is passed explicitly through every lifecycle call. It carries
// the identity registry, the surface provider and the theme of one tree.
type Context struct {
	Theme      *theme.ThemeData
	DebugLevel DebugLevel
	Registry   *registry.Registry[Widget]
	Surfaces   surface.Provider
	Logger     *log.Logger

	// Go runs detached work such as BeforeRender hooks. Nil starts a new
	// goroutine per call. Tests install a synchronous runner.
	Go func(fn func())
}

// NewContext returns a context with a fresh registry, the light theme and
// a logger writing to stderr.
func NewContext(provider surface.Provider) *Context {
	return &Context{
		Theme:    theme.DefaultLightTheme(),
		Registry: registry.New[Widget](),
		Surfaces: provider,
		Logger:   log.New(os.Stderr, "buzz: ", log.LstdFlags),
	}
}

// Verbose reports whether verbose diagnostics are enabled.
func (c *Context) Verbose() bool {
	return c.DebugLevel == DebugLog
}

// Debugf logs only when verbose diagnostics are enabled.
func (c *Context) Debugf(format string, args ...any) {
	if !c.Verbose() {
		return
	}
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

func (c *Context) spawn(op string, fn func()) {
	guarded := func() {
		defer errors.Recover(op)
		fn()
	}
	if c.Go != nil {
		c.Go(guarded)
		return
	}
	go guarded()
}

func mustContext(op string, ctx *Context) {
	if ctx == nil {
		errors.Fatal(op, errors.KindLifecycle, "unexpected nil context")
	}
	if ctx.Registry == nil {
		errors.Fatal(op, errors.KindLifecycle, "context has no registry")
	}
}
