//go:build !ios && !android && (amd64 || arm64)

package sdlgo

import (
	"sync"

	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/obinnaokechukwu/sdlgo/internal/bindings"
)

// Hint names used by the tests and the roundtrip command. Any SDL hint name works.
const (
	HintAppName          = "SDL_APP_NAME"
	HintAppID            = "SDL_APP_ID"
	HintTimerResolution  = "SDL_TIMER_RESOLUTION"
	HintMainCallbackRate = "SDL_MAIN_CALLBACK_RATE"
	HintLogging          = "SDL_LOGGING"
	HintVideoDriver      = "SDL_VIDEO_DRIVER"
	HintAudioDriver      = "SDL_AUDIO_DRIVER"
	HintNoSignalHandlers = "SDL_NO_SIGNAL_HANDLERS"
	HintQuitOnLastWindow = "SDL_QUIT_ON_LAST_WINDOW_CLOSE"
)

// HintCallback is called when a watched hint changes, and once with the
// current value when the watch is added. Unset values read as "".
type HintCallback = func(name, oldValue, newValue string)

type hintTag struct{}

var (
	// SDL is told about each name once; the Go side keeps one callback per name.
	hints  callback.Keyed[string, HintCallback, hintTag]
	hintMu sync.Mutex

	// native entry points; tests swap in ones that call back synchronously
	loadHints          = Load
	addHintCallback    = bindings.AddHintCallback
	removeHintCallback = bindings.RemoveHintCallback
)

// hintTrampoline is what SDL calls for every watched hint. The name is the
// key, so no userdata is needed.
// Signature: void (*)(void *userdata, const char *name, const char *oldValue, const char *newValue)
func hintTrampoline(_ uintptr, name, oldValue, newValue *byte) {
	defer callback.Guard(callback.Null, nil)

	key := goString(name)
	fn, ok := hints.Load(key)
	if !ok || fn == nil {
		return
	}
	fn(key, goString(oldValue), goString(newValue))
}

// AddHintCallback watches the hint called name. Adding a second callback
// for the same name replaces the first.
//
// fn is called with the current value before AddHintCallback returns, and
// may add or remove hint callbacks, itself included, from that call.
func AddHintCallback(name string, fn HintCallback) error {
	if fn == nil {
		return ErrNilCallback
	}
	if err := loadHints(); err != nil {
		return err
	}

	hintMu.Lock()
	if hints.Contains(name) {
		hints.Wrap(name, fn)
		hintMu.Unlock()
		return nil
	}
	// stored first: SDL reports the current value before returning
	hints.Wrap(name, fn)
	hintMu.Unlock()

	// unlocked, since SDL runs fn from inside this call
	ok, err := addHintCallback(name, callback.Trampoline(hintTrampoline), 0)
	if err == nil && !ok {
		err = newError("SDL_AddHintCallback")
	}
	if err != nil {
		hintMu.Lock()
		hints.Erase(name)
		hintMu.Unlock()
		return err
	}
	return nil
}

// RemoveHintCallback stops watching name. It reports whether a callback was
// registered.
func RemoveHintCallback(name string) (bool, error) {
	if err := loadHints(); err != nil {
		return false, err
	}

	hintMu.Lock()
	defer hintMu.Unlock()

	if !hints.Contains(name) {
		return false, nil
	}
	if err := removeHintCallback(name, callback.Trampoline(hintTrampoline), 0); err != nil {
		return false, err
	}
	return hints.Erase(name), nil
}

// WatchedHints returns the names that have a callback.
func WatchedHints() []string {
	return hints.Keys()
}

// SetHint sets a hint with normal priority.
func SetHint(name, value string) error {
	if err := Load(); err != nil {
		return err
	}
	ok, err := bindings.SetHint(name, value)
	if err != nil {
		return err
	}
	if !ok {
		return newError("SDL_SetHint")
	}
	return nil
}

// GetHint returns the value of a hint, or "" if it is not set.
func GetHint(name string) (string, error) {
	if err := Load(); err != nil {
		return "", err
	}
	return bindings.GetHint(name)
}
