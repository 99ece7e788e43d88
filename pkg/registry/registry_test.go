package registry

import (
	"strings"
	"testing"
	"time"
)

type entry struct{ name string }

func TestRegisterStoresEntry(t *testing.T) {
	r := New[*entry]()
	e := &entry{name: "a"}
	key := r.Register("Text", e)

	got, ok := r.Lookup(key)
	if !ok || got != e {
		t.Fatalf("Lookup(%q) = %v, %v; want registered entry", key, got, ok)
	}
	if !strings.HasPrefix(key, "buzz-text-") {
		t.Errorf("key %q should start with buzz-text-", key)
	}
	if parts := strings.Split(key, "-"); len(parts) != 4 {
		t.Errorf("key %q should have 4 dash-separated parts, got %d", key, len(parts))
	}
}

func TestKeysUniqueWithinSameTick(t *testing.T) {
	r := New[int]()
	frozen := time.UnixMilli(1_700_000_000_000)
	r.SetClock(func() time.Time { return frozen })

	seen := make(map[string]bool)
	for i := range 1000 {
		key := r.Register("Widget", i)
		if seen[key] {
			t.Fatalf("duplicate key %q at %d", key, i)
		}
		seen[key] = true
	}
	if r.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", r.Len())
	}
}

func TestUnregisterIdempotent(t *testing.T) {
	r := New[int]()
	key := r.Register("Widget", 7)

	r.Unregister(key)
	r.Unregister(key)
	r.Unregister("buzz-never-registered")

	if _, ok := r.Lookup(key); ok {
		t.Error("entry should be absent after Unregister")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestRegisterKey(t *testing.T) {
	r := New[string]()
	r.RegisterKey("buzz-container", "root")
	if got, ok := r.Lookup("buzz-container"); !ok || got != "root" {
		t.Errorf("Lookup = %q, %v", got, ok)
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := New[int]()
	b := New[int]()
	key := a.Register("Widget", 1)
	if _, ok := b.Lookup(key); ok {
		t.Error("entry leaked into another registry")
	}
}
