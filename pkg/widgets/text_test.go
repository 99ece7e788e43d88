package widgets_test

import (
	"strings"
	"testing"

	"github.com/buzzkit/buzz/pkg/core"
	"github.com/buzzkit/buzz/pkg/errors"
	"github.com/buzzkit/buzz/pkg/graphics"
	"github.com/buzzkit/buzz/pkg/surface"
	buzztest "github.com/buzzkit/buzz/pkg/testing"
	"github.com/buzzkit/buzz/pkg/widgets"
)

func TestText_Content(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	text := widgets.NewText(ctx, "Hello")
	tester.PumpWidget(text)

	node := tester.Find(buzztest.ByText("Hello"))
	if node.Count() != 1 || node.First().Tag() != "span" {
		t.Fatalf("expected one span, got %d nodes", node.Count())
	}
	if got := property(t, text, surface.PropColor); got != ctx.Theme.ForegroundColor.CSS() {
		t.Errorf("color = %q, want theme foreground", got)
	}
}

func TestText_ColorOverride(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	text := widgets.NewText(tester.Context(), "warn")
	text.Color = graphics.ColorRed
	tester.PumpWidget(text)

	if got := property(t, text, surface.PropColor); got != "#ff0000" {
		t.Errorf("color = %q, want #ff0000", got)
	}
}

func TestHTML_Parses(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	h := widgets.NewHTML(tester.Context(), `<p class="lead" style="margin-top: 4px">Hi <b>there</b></p>`)
	tester.PumpWidget(h)

	p := tester.Find(buzztest.ByClass("lead"))
	if p.Count() != 1 || p.First().Tag() != "p" {
		t.Fatalf("expected the parsed paragraph, got %d", p.Count())
	}
	if got := p.Property("margin-top"); got != "4px" {
		t.Errorf("margin-top = %q", got)
	}
	if !tester.Find(buzztest.Descendant(buzztest.ByTag("p"), buzztest.ByText("there"))).Exists() {
		t.Error("expected nested bold text")
	}
}

type captureHandler struct {
	errs []*errors.BuzzError
}

func (h *captureHandler) HandleError(err *errors.BuzzError)  { h.errs = append(h.errs, err) }
func (h *captureHandler) HandleFatal(err *errors.FatalError) {}
func (h *captureHandler) HandlePanic(err *errors.PanicError) {}

func TestHTML_MalformedFallsBackToText(t *testing.T) {
	handler := &captureHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	tester := buzztest.NewWidgetTesterWithT(t)
	markup := "<p>unclosed"
	h := widgets.NewHTML(tester.Context(), markup)
	tester.PumpWidget(h)

	if len(handler.errs) != 1 || handler.errs[0].Kind != errors.KindParsing {
		t.Fatalf("expected one parsing error, got %v", handler.errs)
	}
	if h.Raw().Text() != markup {
		t.Errorf("expected the raw markup as text, got %q", h.Raw().Text())
	}
	if !h.IsMounted() {
		t.Error("a parse failure must not block mounting")
	}
}

func TestBuilder(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	ctx := tester.Context()
	calls := 0
	b := widgets.NewBuilder(ctx, func(ctx *core.Context) core.Widget {
		calls++
		return widgets.NewText(ctx, "built")
	})
	tester.PumpWidget(b)

	if b.Raw() != nil {
		t.Error("a builder is a ghost and owns no surface")
	}
	if !b.IsMounted() {
		t.Error("builder should be mounted")
	}
	if calls != 1 {
		t.Errorf("build ran %d times", calls)
	}
	if !strings.Contains(tester.HTML(), ">built</span>") {
		t.Errorf("unexpected HTML %q", tester.HTML())
	}
}

func TestBuilder_NilBuildIsFatal(t *testing.T) {
	tester := buzztest.NewWidgetTesterWithT(t)
	b := widgets.NewBuilder(tester.Context(), nil)
	fatal := mustFatal(t, func() { tester.PumpWidget(b) })
	if fatal.Msg != "attempted to render an undefined widget" {
		t.Errorf("unexpected message %q", fatal.Msg)
	}
}
