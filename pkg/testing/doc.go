// Package testing provides a widget testing harness for buzz.
//
// # Quick Start
//
// Create a tester, pump a widget, and make assertions on the physical
// tree:
//
//	func TestGreeting(t *testing.T) {
//	    tester := buzztest.NewWidgetTesterWithT(t)
//	    tester.PumpWidget(widgets.NewText(tester.Context(), "Hello"))
//
//	    if !tester.Find(buzztest.ByText("Hello")).Exists() {
//	        t.Error("expected greeting")
//	    }
//	}
//
// Every tester owns its own registry, surface document and root, so
// tests never share widget state. BeforeRender hooks run synchronously.
//
// # Snapshot Testing
//
// Capture and compare the physical tree:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/greeting.snapshot.json")
//
// Update snapshots with:
//
//	BUZZ_UPDATE_SNAPSHOTS=1 go test ./...
package testing
