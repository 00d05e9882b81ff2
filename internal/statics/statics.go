// Package statics holds process-wide instances keyed by Go type.
//
// Go has no per-instantiation static variables for generic types, so a
// generic registry that needs one shared table per set of type arguments
// asks for it here. Instances are built on first use and never torn down.
package statics

import (
	"reflect"
	"sync"
)

var (
	instances sync.Map // map[reflect.Type]any
	initMu    sync.Mutex
)

// Get returns the process-wide *T, calling newT to build it on first use.
// newT runs at most once per T.
func Get[T any](newT func() *T) *T {
	key := reflect.TypeOf((*T)(nil))
	if v, ok := instances.Load(key); ok {
		return v.(*T)
	}

	initMu.Lock()
	defer initMu.Unlock()
	if v, ok := instances.Load(key); ok {
		return v.(*T)
	}
	v := newT()
	instances.Store(key, v)
	return v
}

// Count returns how many distinct instances exist.
func Count() int {
	n := 0
	instances.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
