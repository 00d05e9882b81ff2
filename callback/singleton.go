package callback

import (
	"sync"

	"github.com/obinnaokechukwu/sdlgo/internal/handles"
	"github.com/obinnaokechukwu/sdlgo/internal/statics"
	"go.uber.org/zap"
)

// Singleton holds at most one F for the whole process, for C APIs that
// expose a single global callback slot such as a log sink or an assertion
// handler.
//
// The slot owns one Context, reserved when the slot is first used and never
// released. Because that Context never changes, a userdata read back from
// the C library can be checked with Contains to tell our own registration
// apart from a default or foreign one. The Context also resolves through
// Load and the Call/Invoke trampolines to whatever the slot holds at the
// time of the call.
//
// Replacing the value runs nothing for the old one; it is simply dropped.
type Singleton[F any] struct{}

type slot[F any] struct {
	mu  sync.Mutex
	fn  F
	set bool
	ctx Context
}

func (s *slot[F]) value() (F, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn, s.set && !isNil(s.fn)
}

func (Singleton[F]) slot() *slot[F] {
	return statics.Get(func() *slot[F] {
		s := &slot[F]{}
		s.ctx = Context(handles.Register(s))
		return s
	})
}

// Wrap stores fn in the slot, replacing any previous value, and returns the
// slot's Context.
func (g Singleton[F]) Wrap(fn F) Context {
	s := g.slot()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
	s.set = true
	return s.ctx
}

// Context returns the slot's Context whether or not the slot holds a value.
func (g Singleton[F]) Context() Context {
	return g.slot().ctx
}

// Contains reports whether ctx is the slot's Context and the slot is not empty.
func (g Singleton[F]) Contains(ctx Context) bool {
	s := g.slot()
	s.mu.Lock()
	defer s.mu.Unlock()
	return ctx == s.ctx && s.set
}

// At returns the stored value if ctx is the slot's Context, or the zero F
// for any other Context.
func (g Singleton[F]) At(ctx Context) F {
	s := g.slot()
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx != s.ctx || !s.set {
		var zero F
		return zero
	}
	return s.fn
}

// Get returns the stored value, or the zero F when the slot is empty.
func (g Singleton[F]) Get() F {
	s := g.slot()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fn
}

// Release moves the value out of the slot and leaves it empty.
func (g Singleton[F]) Release() F {
	s := g.slot()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseLocked()
}

// ReleaseContext is Release for callers holding a Context, typically one
// read back from the C library. If ctx is not the slot's Context the slot
// is left untouched and the zero F and false are returned.
func (g Singleton[F]) ReleaseContext(ctx Context) (F, bool) {
	s := g.slot()
	s.mu.Lock()
	defer s.mu.Unlock()
	if ctx != s.ctx {
		Logger().Warn("callback: release with a context this slot did not issue",
			zap.Uintptr("context", uintptr(ctx)),
			zap.Uintptr("slot", uintptr(s.ctx)),
		)
		var zero F
		return zero, false
	}
	return s.releaseLocked(), true
}

// Erase empties the slot.
func (g Singleton[F]) Erase() {
	s := g.slot()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseLocked()
}

func (s *slot[F]) releaseLocked() F {
	fn := s.fn
	var zero F
	s.fn = zero
	s.set = false
	return fn
}
