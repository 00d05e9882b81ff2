//go:build !ios && !android && (amd64 || arm64)

package sdlgo

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/obinnaokechukwu/sdlgo/internal/bindings"
)

// Error is a failure reported by an SDL function.
// Message is SDL_GetError() at the time of the failure.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sdlgo: %s failed", e.Op)
	}
	return fmt.Sprintf("sdlgo: %s: %s", e.Op, e.Message)
}

// Common errors
var (
	// ErrNotLoaded indicates SDL3 is not loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrLibraryNotFound indicates SDL3 could not be found.
	ErrLibraryNotFound = bindings.ErrLibraryNotFound

	// ErrSymbolMissing indicates the loaded SDL3 is too old for the call.
	ErrSymbolMissing = bindings.ErrSymbolMissing

	// ErrUnsupportedPlatform indicates purego cannot bridge callbacks here.
	ErrUnsupportedPlatform = errors.New("sdlgo: platform does not support callbacks")

	// ErrNilCallback indicates a nil Go callback where one is required.
	ErrNilCallback = errors.New("sdlgo: callback cannot be nil")
)

func newError(op string) error {
	return &Error{Op: op, Message: bindings.GetError()}
}

// goString copies a NUL-terminated C string.
func goString(p *byte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}
