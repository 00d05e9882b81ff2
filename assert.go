//go:build !ios && !android && (amd64 || arm64)

package sdlgo

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/obinnaokechukwu/sdlgo/internal/bindings"
)

// AssertState is an assertion handler's verdict.
type AssertState int32

// Assertion verdicts matching SDL_ASSERTION_* values.
const (
	AssertionRetry        AssertState = iota // Retry the assert immediately
	AssertionBreak                           // Make the debugger trigger a breakpoint
	AssertionAbort                           // Terminate the program
	AssertionIgnore                          // Ignore the assert
	AssertionAlwaysIgnore                    // Ignore the assert from now on
)

// AssertData mirrors SDL_AssertData. It lives in SDL's memory; do not keep
// it after the handler returns.
type AssertData struct {
	AlwaysIgnore bool
	TriggerCount uint32
	condition    *byte
	filename     *byte
	LineNum      int32
	function     *byte
	next         *AssertData
}

// Condition returns the asserted expression as written in the source.
func (d *AssertData) Condition() string { return goString(d.condition) }

// Filename returns the source file of the assertion.
func (d *AssertData) Filename() string { return goString(d.filename) }

// Function returns the enclosing function of the assertion.
func (d *AssertData) Function() string { return goString(d.function) }

// Next returns the next assertion in SDL's report list, or nil.
func (d *AssertData) Next() *AssertData { return d.next }

// AssertionHandler decides what happens when an SDL assertion fails.
type AssertionHandler = func(data *AssertData) AssertState

var (
	assertionHandlers callback.Singleton[AssertionHandler]
	assertMu          sync.Mutex
)

// assertionTrampoline is what SDL calls. The userdata comes last here.
// Signature: SDL_AssertState (*)(const SDL_AssertData *data, void *userdata)
func assertionTrampoline(data *AssertData, ctx callback.Context) (state AssertState) {
	defer callback.Guard(ctx, func(any) { state = AssertionAbort })

	fn, ok := callback.Load[AssertionHandler](ctx)
	if !ok {
		return AssertionIgnore
	}
	return fn(data)
}

// SetAssertionHandler installs fn as SDL's assertion handler.
// A panic inside fn aborts, as SDL cannot unwind Go panics.
// Pass nil to restore the default handler.
func SetAssertionHandler(fn AssertionHandler) error {
	if err := Load(); err != nil {
		return err
	}

	assertMu.Lock()
	defer assertMu.Unlock()

	if fn == nil {
		if err := bindings.SetAssertionHandler(0, 0); err != nil {
			return err
		}
		assertionHandlers.Erase()
		return nil
	}

	ctx := assertionHandlers.Wrap(fn)
	if err := bindings.SetAssertionHandler(callback.Trampoline(assertionTrampoline), uintptr(ctx)); err != nil {
		assertionHandlers.Erase()
		return err
	}
	return nil
}

// GetAssertionHandler returns the handler SDL currently uses: the closure
// given to SetAssertionHandler, or a Go wrapper around SDL's default or
// foreign handler.
func GetAssertionHandler() (AssertionHandler, error) {
	if err := Load(); err != nil {
		return nil, err
	}

	assertMu.Lock()
	defer assertMu.Unlock()

	handler, userdata, err := bindings.GetAssertionHandler()
	if err != nil {
		return nil, err
	}
	if handler == 0 {
		return nil, nil
	}

	ctx := callback.Context(userdata)
	if handler == callback.Trampoline(assertionTrampoline) && assertionHandlers.Contains(ctx) {
		return assertionHandlers.At(ctx), nil
	}

	var native func(data *AssertData, userdata uintptr) AssertState
	purego.RegisterFunc(&native, handler)
	return func(data *AssertData) AssertState {
		return native(data, userdata)
	}, nil
}

// ResetAssertionHandler restores SDL's default assertion handler.
func ResetAssertionHandler() error {
	return SetAssertionHandler(nil)
}

// IsDefaultAssertionHandler reports whether SDL is using its built-in handler.
func IsDefaultAssertionHandler() (bool, error) {
	if err := Load(); err != nil {
		return false, err
	}

	assertMu.Lock()
	defer assertMu.Unlock()

	def, err := bindings.GetDefaultAssertionHandler()
	if err != nil {
		return false, err
	}
	cur, _, err := bindings.GetAssertionHandler()
	if err != nil {
		return false, err
	}
	return cur == def, nil
}
