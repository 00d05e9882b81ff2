package callback

import (
	"fmt"
	"reflect"

	"github.com/obinnaokechukwu/sdlgo/internal/handles"
	"go.uber.org/zap"
)

// Context is the opaque userdata passed through a C callback API.
// It is an id in the handle arena, never a Go pointer. Zero is NULL.
type Context uintptr

// Null is the Context C code sees as a NULL userdata.
const Null Context = 0

// source is implemented by every arena entry a trampoline can resolve:
// single-owner boxes and singleton slots.
type source[F any] interface {
	value() (F, bool)
}

// box is the heap allocation owned by a single-owner Context.
type box[F any] struct {
	fn F
}

func (b *box[F]) value() (F, bool) {
	return b.fn, !isNil(b.fn)
}

// Wrap moves fn into a new arena entry and returns its Context.
// The entry lives until Release or a CallOnce/InvokeOnce trampoline consumes it.
func Wrap[F any](fn F) Context {
	return Context(handles.Register(&box[F]{fn: fn}))
}

// Load returns the callable behind ctx.
// It resolves contexts issued by Wrap and by Singleton[F]. The result is
// false for Null, for a released or unknown Context, and for an empty
// singleton slot. A Context that holds a different callable type panics.
func Load[F any](ctx Context) (F, bool) {
	var zero F
	v := handles.Lookup(uintptr(ctx))
	if v == nil {
		return zero, false
	}
	src, ok := v.(source[F])
	if !ok {
		panic(misuse[F](ctx, v))
	}
	return src.value()
}

// Release takes ownership of the callable behind ctx back from the arena.
// Null and already released contexts return the zero F so callers can
// release unconditionally.
func Release[F any](ctx Context) F {
	fn, _ := take[F](ctx)
	return fn
}

// take removes a single-owner box from the arena.
func take[F any](ctx Context) (F, bool) {
	var zero F
	v := handles.Lookup(uintptr(ctx))
	if v == nil {
		return zero, false
	}
	b, ok := v.(*box[F])
	if !ok {
		panic(misuse[F](ctx, v))
	}
	if handles.Take(uintptr(ctx)) == nil {
		// lost a race with another release of the same context
		Logger().Warn("callback: context released twice", zap.Uintptr("context", uintptr(ctx)))
		return zero, false
	}
	return b.value()
}

func misuse[F any](ctx Context, v any) string {
	return fmt.Sprintf("callback: context %#x holds %T, not a %s", uintptr(ctx), v, reflect.TypeOf((*F)(nil)).Elem())
}

// isNil reports whether v is a nil func, pointer, map, chan, slice or interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Pointer, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
