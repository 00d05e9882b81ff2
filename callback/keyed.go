package callback

import (
	"sync"

	"github.com/obinnaokechukwu/sdlgo/internal/statics"
)

// Keyed is a process-wide map from keys to values, usually callbacks that
// native code identifies by a resource id or name instead of a userdata.
//
// Keyed is a zero-size accessor: every Keyed[K, V, Tag] value refers to the
// same shared table, created on first use and never destroyed. Tag is never
// instantiated; it only keeps two features that use the same K and V from
// sharing storage:
//
//	type timerTag struct{}
//	var timers callback.Keyed[TimerID, callback.Context, timerTag]
//
// Every method holds the table's mutex for its whole duration, which
// serializes all keys of one instantiation.
type Keyed[K comparable, V any, Tag any] struct{}

type keyedTable[K comparable, V any, Tag any] struct {
	mu      sync.Mutex
	entries map[K]*V
}

func (Keyed[K, V, Tag]) table() *keyedTable[K, V, Tag] {
	return statics.Get(func() *keyedTable[K, V, Tag] {
		return &keyedTable[K, V, Tag]{entries: make(map[K]*V)}
	})
}

// Wrap stores v under key, replacing and dropping any previous value.
// The returned pointer stays valid while the entry exists, whatever happens
// to other keys.
func (k Keyed[K, V, Tag]) Wrap(key K, v V) *V {
	t := k.table()
	t.mu.Lock()
	defer t.mu.Unlock()

	p := new(V)
	*p = v
	t.entries[key] = p
	return p
}

// Contains reports whether key has an entry.
func (k Keyed[K, V, Tag]) Contains(key K) bool {
	t := k.table()
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[key]
	return ok
}

// At returns the value stored under key. Callers are expected to know the
// key is present; an absent key yields the zero V.
func (k Keyed[K, V, Tag]) At(key K) V {
	v, _ := k.Load(key)
	return v
}

// Load returns the value stored under key and whether it was present.
func (k Keyed[K, V, Tag]) Load(key K) (V, bool) {
	t := k.table()
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.entries[key]; ok {
		return *p, true
	}
	var zero V
	return zero, false
}

// Release removes the entry for key and returns its value, or the zero V
// when there was none.
func (k Keyed[K, V, Tag]) Release(key K) V {
	t := k.table()
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.entries[key]
	if !ok {
		var zero V
		return zero
	}
	delete(t.entries, key)
	return *p
}

// Erase removes the entry for key and reports whether there was one.
func (k Keyed[K, V, Tag]) Erase(key K) bool {
	t := k.table()
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[key]; !ok {
		return false
	}
	delete(t.entries, key)
	return true
}

// Len returns the number of entries.
func (k Keyed[K, V, Tag]) Len() int {
	t := k.table()
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Keys returns a snapshot of the current keys in no particular order.
func (k Keyed[K, V, Tag]) Keys() []K {
	t := k.table()
	t.mu.Lock()
	defer t.mu.Unlock()
	keys := make([]K, 0, len(t.entries))
	for key := range t.entries {
		keys = append(keys, key)
	}
	return keys
}
