package callback

// Once trampolines free the closure before running it, so a context served
// by one of them is single-use. A second call finds nothing and returns the
// zero result. They only accept contexts from Wrap, never singleton contexts.

// CallOnce0 serves R (*)(void *userdata) for one call.
func CallOnce0[R any](ctx Context) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := take[func() R](ctx); ok {
		r = fn()
	}
	return r
}

// CallOnce1 serves R (*)(void *userdata, A) for one call.
func CallOnce1[A, R any](ctx Context, a A) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A) R](ctx); ok {
		r = fn(a)
	}
	return r
}

// CallOnce2 serves R (*)(void *userdata, A, B) for one call.
func CallOnce2[A, B, R any](ctx Context, a A, b B) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A, B) R](ctx); ok {
		r = fn(a, b)
	}
	return r
}

// CallOnce3 serves R (*)(void *userdata, A, B, C) for one call.
func CallOnce3[A, B, C, R any](ctx Context, a A, b B, c C) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A, B, C) R](ctx); ok {
		r = fn(a, b, c)
	}
	return r
}

// CallOnceSuffixed1 serves R (*)(A, void *userdata) for one call.
func CallOnceSuffixed1[A, R any](a A, ctx Context) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A) R](ctx); ok {
		r = fn(a)
	}
	return r
}

// CallOnceSuffixed2 serves R (*)(A, B, void *userdata) for one call.
func CallOnceSuffixed2[A, B, R any](a A, b B, ctx Context) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A, B) R](ctx); ok {
		r = fn(a, b)
	}
	return r
}

// CallOnceSuffixed3 serves R (*)(A, B, C, void *userdata) for one call.
func CallOnceSuffixed3[A, B, C, R any](a A, b B, c C, ctx Context) (r R) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A, B, C) R](ctx); ok {
		r = fn(a, b, c)
	}
	return r
}

// InvokeOnce0 serves void (*)(void *userdata) for one call.
func InvokeOnce0(ctx Context) {
	defer Guard(ctx, nil)
	if fn, ok := take[func()](ctx); ok {
		fn()
	}
}

// InvokeOnce1 serves void (*)(void *userdata, A) for one call.
func InvokeOnce1[A any](ctx Context, a A) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A)](ctx); ok {
		fn(a)
	}
}

// InvokeOnce2 serves void (*)(void *userdata, A, B) for one call.
func InvokeOnce2[A, B any](ctx Context, a A, b B) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A, B)](ctx); ok {
		fn(a, b)
	}
}

// InvokeOnce3 serves void (*)(void *userdata, A, B, C) for one call.
func InvokeOnce3[A, B, C any](ctx Context, a A, b B, c C) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A, B, C)](ctx); ok {
		fn(a, b, c)
	}
}

// InvokeOnceSuffixed1 serves void (*)(A, void *userdata) for one call.
func InvokeOnceSuffixed1[A any](a A, ctx Context) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A)](ctx); ok {
		fn(a)
	}
}

// InvokeOnceSuffixed2 serves void (*)(A, B, void *userdata) for one call.
func InvokeOnceSuffixed2[A, B any](a A, b B, ctx Context) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A, B)](ctx); ok {
		fn(a, b)
	}
}

// InvokeOnceSuffixed3 serves void (*)(A, B, C, void *userdata) for one call.
func InvokeOnceSuffixed3[A, B, C any](a A, b B, c C, ctx Context) {
	defer Guard(ctx, nil)
	if fn, ok := take[func(A, B, C)](ctx); ok {
		fn(a, b, c)
	}
}
