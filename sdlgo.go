//go:build !ios && !android && (amd64 || arm64)

// Package sdlgo binds the callback-taking parts of SDL3 without cgo, using
// purego.
//
// SDL reports back to the application through C function pointers paired
// with a void* userdata: the log output function, the assertion handler,
// timers, hint watchers and main-thread calls. sdlgo accepts plain Go
// closures for all of them and routes them through package callback, which
// keeps the closures alive for as long as SDL may call them.
//
// SDL3 is loaded on first use. Set SDLGO_LIBRARY to a full path, or
// SDLGO_LIBRARY_DIR to a directory, to point at a specific build.
package sdlgo

import (
	"fmt"
	"runtime"

	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/obinnaokechukwu/sdlgo/internal/bindings"
	"github.com/obinnaokechukwu/sdlgo/internal/platform"
	"go.uber.org/zap"
)

// InitFlags selects SDL subsystems for Init.
type InitFlags uint32

// Subsystem flags matching SDL_INIT_*.
const (
	InitAudio    InitFlags = 0x00000010
	InitVideo    InitFlags = 0x00000020 // implies InitEvents
	InitJoystick InitFlags = 0x00000200 // implies InitEvents
	InitHaptic   InitFlags = 0x00001000
	InitGamepad  InitFlags = 0x00002000 // implies InitJoystick
	InitEvents   InitFlags = 0x00004000
	InitSensor   InitFlags = 0x00008000 // implies InitEvents
	InitCamera   InitFlags = 0x00010000 // implies InitEvents
)

// Load locates and loads SDL3. Every other function calls it as needed,
// so calling it explicitly is only useful to check for errors early.
// It is safe to call multiple times.
func Load() error {
	if err := checkPlatform(platform.SupportsCallbacks, platform.Is64Bit); err != nil {
		return err
	}
	return bindings.Load()
}

// checkPlatform rejects targets where purego cannot export callbacks or a
// context does not fit in SDL's void* userdata.
func checkPlatform(callbacks, is64Bit bool) error {
	switch {
	case !callbacks:
		return fmt.Errorf("%w: purego cannot create callbacks on %s/%s", ErrUnsupportedPlatform, runtime.GOOS, runtime.GOARCH)
	case !is64Bit:
		return fmt.Errorf("%w: %s is not 64-bit", ErrUnsupportedPlatform, runtime.GOARCH)
	}
	return nil
}

// FindLibrary searches for SDL3 the way Load does, without loading it.
func FindLibrary() (string, error) {
	return bindings.FindLibrary()
}

// SetLibraryPath makes Load open the SDL3 library at path instead of
// searching for one. It must be called before anything loads SDL3.
func SetLibraryPath(path string) {
	bindings.SetLibraryPath(path)
}

// LibraryPath returns the path SDL3 was loaded from, or "" before Load.
func LibraryPath() string {
	return bindings.LibraryPath()
}

// IsLoaded returns true if SDL3 has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// Init loads SDL3 and initializes the requested subsystems.
func Init(flags InitFlags) error {
	if err := Load(); err != nil {
		return err
	}
	ok, err := bindings.Init(uint32(flags))
	if err != nil {
		return err
	}
	if !ok {
		return newError("SDL_Init")
	}
	return nil
}

// Quit shuts down all SDL subsystems. Registered callbacks stay registered
// on the Go side; remove them first if SDL will be initialized again.
func Quit() {
	bindings.Quit()
}

// Version returns the linked SDL version split into its parts,
// or zeros if SDL3 is not loaded.
func Version() (major, minor, micro int) {
	v := int(bindings.Version())
	return v / 1000000, (v / 1000) % 1000, v % 1000
}

// GetError returns SDL's last error message for the calling thread.
func GetError() string {
	return bindings.GetError()
}

// SetLogger sets the logger used for diagnostics, including panics
// recovered from callbacks. sdlgo logs nothing by default.
func SetLogger(l *zap.Logger) {
	callback.SetLogger(l)
}

// Logger returns the logger set with SetLogger.
func Logger() *zap.Logger {
	return callback.Logger()
}
