package callback

import (
	"go.uber.org/zap"
)

// Guard recovers a panic raised while serving a native callback.
// It must be deferred directly:
//
//	defer callback.Guard(ctx, func(any) { status = fallback })
//
// onPanic may be nil. The panic is logged and never reaches C code.
func Guard(ctx Context, onPanic func(p any)) {
	p := recover()
	if p == nil {
		return
	}
	Logger().Error("callback: panic in native callback",
		zap.Uintptr("context", uintptr(ctx)),
		zap.Any("panic", p),
		zap.Stack("stack"),
	)
	if onPanic != nil {
		onPanic(p)
	}
}

// The trampolines below are meant to be turned into C function pointers
// with Trampoline. Each resolves the closure from ctx on every call and
// leaves it registered; an unresolvable context yields the zero result.

// Call0 serves R (*)(void *userdata).
func Call0[R any](ctx Context) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func() R](ctx); ok {
		r = fn()
	}
	return r
}

// Call1 serves R (*)(void *userdata, A).
func Call1[A, R any](ctx Context, a A) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A) R](ctx); ok {
		r = fn(a)
	}
	return r
}

// Call2 serves R (*)(void *userdata, A, B).
func Call2[A, B, R any](ctx Context, a A, b B) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A, B) R](ctx); ok {
		r = fn(a, b)
	}
	return r
}

// Call3 serves R (*)(void *userdata, A, B, C).
func Call3[A, B, C, R any](ctx Context, a A, b B, c C) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A, B, C) R](ctx); ok {
		r = fn(a, b, c)
	}
	return r
}

// CallSuffixed1 serves R (*)(A, void *userdata).
func CallSuffixed1[A, R any](a A, ctx Context) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A) R](ctx); ok {
		r = fn(a)
	}
	return r
}

// CallSuffixed2 serves R (*)(A, B, void *userdata).
func CallSuffixed2[A, B, R any](a A, b B, ctx Context) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A, B) R](ctx); ok {
		r = fn(a, b)
	}
	return r
}

// CallSuffixed3 serves R (*)(A, B, C, void *userdata).
func CallSuffixed3[A, B, C, R any](a A, b B, c C, ctx Context) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A, B, C) R](ctx); ok {
		r = fn(a, b, c)
	}
	return r
}

// Invoke0 serves void (*)(void *userdata).
func Invoke0(ctx Context) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func()](ctx); ok {
		fn()
	}
}

// Invoke1 serves void (*)(void *userdata, A).
func Invoke1[A any](ctx Context, a A) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A)](ctx); ok {
		fn(a)
	}
}

// Invoke2 serves void (*)(void *userdata, A, B).
func Invoke2[A, B any](ctx Context, a A, b B) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A, B)](ctx); ok {
		fn(a, b)
	}
}

// Invoke3 serves void (*)(void *userdata, A, B, C).
func Invoke3[A, B, C any](ctx Context, a A, b B, c C) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A, B, C)](ctx); ok {
		fn(a, b, c)
	}
}

// InvokeSuffixed1 serves void (*)(A, void *userdata).
func InvokeSuffixed1[A any](a A, ctx Context) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A)](ctx); ok {
		fn(a)
	}
}

// InvokeSuffixed2 serves void (*)(A, B, void *userdata).
func InvokeSuffixed2[A, B any](a A, b B, ctx Context) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A, B)](ctx); ok {
		fn(a, b)
	}
}

// InvokeSuffixed3 serves void (*)(A, B, C, void *userdata).
func InvokeSuffixed3[A, B, C any](a A, b B, c C, ctx Context) {
	defer Guard(ctx, nil)
	if fn, ok := Load[func(A, B, C)](ctx); ok {
		fn(a, b, c)
	}
}
