//go:build !ios && !android && (amd64 || arm64)

package sdlgo

import (
	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/obinnaokechukwu/sdlgo/internal/bindings"
)

// RunOnMainThread runs fn on the thread that initialized SDL. If wait is
// true it returns after fn has run. fn runs at most once.
func RunOnMainThread(fn func(), wait bool) error {
	if fn == nil {
		return ErrNilCallback
	}
	if err := Load(); err != nil {
		return err
	}

	ctx := callback.Wrap(fn)
	ok, err := bindings.RunOnMainThread(callback.Trampoline(callback.InvokeOnce0), uintptr(ctx), wait)
	if err != nil {
		callback.Release[func()](ctx)
		return err
	}
	if !ok {
		callback.Release[func()](ctx)
		return newError("SDL_RunOnMainThread")
	}
	return nil
}

// IsMainThread reports whether the calling thread is SDL's main thread.
// Call runtime.LockOSThread first for the answer to stay meaningful.
func IsMainThread() (bool, error) {
	if err := Load(); err != nil {
		return false, err
	}
	return bindings.IsMainThread()
}
