// Package handles is the arena behind every context pointer handed to SDL.
//
// C memory must not hold Go pointers, so a Go value that a native callback
// needs to reach is registered here and referred to by a small integer id.
// The id travels through the C API as the callback's userdata (void*) and
// is turned back into the Go value when the callback fires.
//
// Id 0 is never issued; it stands for a NULL userdata.
package handles

import (
	"sync"
)

var (
	mu      sync.RWMutex
	handles         = make(map[uintptr]any)
	nextID  uintptr = 1
)

// Register stores a Go value and returns its id.
// The value stays reachable until Take is called with the id.
//
// Thread-safe.
func Register(v any) uintptr {
	mu.Lock()
	defer mu.Unlock()
	id := nextID
	nextID++
	if nextID == 0 {
		// wrapped; skip the NULL id
		nextID = 1
	}
	handles[id] = v
	return id
}

// Lookup returns the value registered under id, or nil.
//
// Thread-safe.
func Lookup(id uintptr) any {
	if id == 0 {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	return handles[id]
}

// Take removes the value registered under id and returns it, letting the
// value be garbage collected once the caller drops it.
// Returns nil if id is not registered, so a second Take of the same id is harmless.
//
// Thread-safe.
func Take(id uintptr) any {
	if id == 0 {
		return nil
	}
	mu.Lock()
	defer mu.Unlock()
	v, ok := handles[id]
	if !ok {
		return nil
	}
	delete(handles, id)
	return v
}

// Count returns the number of currently registered handles.
// Useful for spotting leaked callbacks in tests.
//
// Thread-safe.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(handles)
}
