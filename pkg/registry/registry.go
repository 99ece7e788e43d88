// Package registry assigns process-unique keys to widgets and keeps a
// lookup table from key to widget.
//
// A Registry is an ordinary value: each widget tree owns one, so
// independent trees (and tests) never share identity state. Only the
// construction counter that feeds key generation is process-wide.
package registry

import (
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// KeyPrefix starts every generated key.
const KeyPrefix = "buzz-"

// constructed counts every key ever generated in this process.
var constructed atomic.Uint64

// Registry maps keys to entries of type T.
type Registry[T any] struct {
	mu      sync.Mutex
	entries map[string]T
	now     func() time.Time
}

// New creates an empty registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{
		entries: make(map[string]T),
		now:     time.Now,
	}
}

// SetClock replaces the time source used for key generation.
func (r *Registry[T]) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if now == nil {
		now = time.Now
	}
	r.now = now
}

// Register generates a key for entry and stores it.
//
// The key combines the entry's kind, the current time plus the global
// construction counter, and a random salt, so entries created within
// the same clock tick still get distinct keys.
func (r *Registry[T]) Register(kind string, entry T) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		key := r.generate(kind)
		if _, taken := r.entries[key]; taken {
			continue
		}
		r.entries[key] = entry
		return key
	}
}

// RegisterKey stores entry under a caller-chosen key, replacing any
// previous entry. Used for well-known roots.
func (r *Registry[T]) RegisterKey(key string, entry T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = entry
}

func (r *Registry[T]) generate(kind string) string {
	count := constructed.Add(1)
	stamp := uint64(r.now().UnixMilli()) + count
	salt := uuid.New().ID()

	var sb strings.Builder
	sb.WriteString(KeyPrefix)
	sb.WriteString(strings.ToLower(kind))
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatUint(stamp, 16))
	sb.WriteByte('-')
	sb.WriteString(strconv.FormatUint(uint64(salt), 16))
	return sb.String()
}

// Unregister clears the entry for key. Unknown keys are ignored.
func (r *Registry[T]) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// Lookup returns the entry stored under key.
func (r *Registry[T]) Lookup(key string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[key]
	return entry, ok
}

// Len returns the number of live entries.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
