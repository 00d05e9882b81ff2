//go:build !ios && !android && (amd64 || arm64)

// Package bindings loads the SDL3 shared library and registers the C entry
// points sdlgo needs using purego.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/sdlgo/internal/platform"
)

// ErrNotLoaded is returned when SDL functions are called before Load().
var ErrNotLoaded = errors.New("sdlgo: SDL3 library not loaded; call sdlgo.Load() first")

// ErrLibraryNotFound is returned when the SDL3 library cannot be found.
var ErrLibraryNotFound = errors.New("sdlgo: SDL3 library not found")

// ErrSymbolMissing is returned when the loaded library lacks an entry point.
var ErrSymbolMissing = errors.New("sdlgo: symbol not available in loaded SDL3")

// Environment variables consulted by Load.
const (
	EnvLibrary    = "SDLGO_LIBRARY"     // full path to the SDL3 shared library
	EnvLibraryDir = "SDLGO_LIBRARY_DIR" // directory searched first
)

// sonameVersions lists the SDL3 ABI versions tried, newest first; -1 is unversioned.
var sonameVersions = []int{0, -1}

var (
	libSDL   uintptr
	libPath  string
	override string

	loaded   bool
	loadOnce sync.Once
	loadErr  error
)

// C entry points. Optional ones stay nil when the library predates them.
var (
	sdlInit       func(flags uint32) bool
	sdlQuit       func()
	sdlGetError   func() string
	sdlGetVersion func() int32

	sdlSetLogOutputFunction        func(cb, userdata uintptr)
	sdlGetLogOutputFunction        func(cb, userdata *uintptr)
	sdlGetDefaultLogOutputFunction func() uintptr
	sdlSetLogPriorities            func(priority int32)
	sdlSetLogPriority              func(category, priority int32)

	sdlSetAssertionHandler        func(handler, userdata uintptr)
	sdlGetAssertionHandler        func(userdata *uintptr) uintptr
	sdlGetDefaultAssertionHandler func() uintptr

	sdlAddTimer    func(interval uint32, cb, userdata uintptr) uint32
	sdlRemoveTimer func(id uint32) bool

	sdlAddHintCallback    func(name string, cb, userdata uintptr) bool
	sdlRemoveHintCallback func(name string, cb, userdata uintptr)
	sdlSetHint            func(name, value string) bool
	sdlGetHint            func(name string) string

	sdlRunOnMainThread func(cb, userdata uintptr, wait bool) bool
	sdlIsMainThread    func() bool
)

// SetLibraryPath makes Load open path instead of searching.
// It has no effect once Load has run.
func SetLibraryPath(path string) {
	override = path
}

// IsLoaded returns true if SDL3 has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// LibraryPath returns the path SDL3 was loaded from, or "".
func LibraryPath() string {
	return libPath
}

// Load loads SDL3 and registers all function bindings.
// It is safe to call multiple times; subsequent calls return the first result.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	path, lib, err := openSDL()
	if err != nil {
		return fmt.Errorf("loading SDL3: %w", err)
	}
	libSDL = lib
	libPath = path

	// Required since SDL 3.2.0.
	for _, fn := range []struct {
		ptr  any
		name string
	}{
		{&sdlInit, "SDL_Init"},
		{&sdlQuit, "SDL_Quit"},
		{&sdlGetError, "SDL_GetError"},
		{&sdlGetVersion, "SDL_GetVersion"},
		{&sdlSetLogOutputFunction, "SDL_SetLogOutputFunction"},
		{&sdlGetLogOutputFunction, "SDL_GetLogOutputFunction"},
		{&sdlSetLogPriorities, "SDL_SetLogPriorities"},
		{&sdlSetLogPriority, "SDL_SetLogPriority"},
		{&sdlSetAssertionHandler, "SDL_SetAssertionHandler"},
		{&sdlGetAssertionHandler, "SDL_GetAssertionHandler"},
		{&sdlGetDefaultAssertionHandler, "SDL_GetDefaultAssertionHandler"},
		{&sdlAddTimer, "SDL_AddTimer"},
		{&sdlRemoveTimer, "SDL_RemoveTimer"},
		{&sdlAddHintCallback, "SDL_AddHintCallback"},
		{&sdlRemoveHintCallback, "SDL_RemoveHintCallback"},
		{&sdlSetHint, "SDL_SetHint"},
		{&sdlGetHint, "SDL_GetHint"},
	} {
		if err := registerLibFunc(fn.ptr, lib, fn.name); err != nil {
			return err
		}
	}

	registerOptionalLibFunc(&sdlGetDefaultLogOutputFunction, lib, "SDL_GetDefaultLogOutputFunction")
	registerOptionalLibFunc(&sdlRunOnMainThread, lib, "SDL_RunOnMainThread")
	registerOptionalLibFunc(&sdlIsMainThread, lib, "SDL_IsMainThread")
	return nil
}

func openSDL() (string, uintptr, error) {
	if override != "" {
		lib, err := tryOpen(override)
		return override, lib, err
	}
	if p := os.Getenv(EnvLibrary); p != "" {
		lib, err := tryOpen(p)
		return p, lib, err
	}

	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range sonameVersions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName("SDL3", ver))
			if lib, err := tryOpen(fullPath); err == nil {
				return fullPath, lib, nil
			}
		}
	}

	// Let the system loader find it
	for _, ver := range sonameVersions {
		name := platform.FormatLibraryName("SDL3", ver)
		if lib, err := tryOpen(name); err == nil {
			return name, lib, nil
		}
	}

	return "", 0, ErrLibraryNotFound
}

// tryOpen opens a library with RTLD_NOW | RTLD_GLOBAL.
func tryOpen(path string) (uintptr, error) {
	return purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
}

func registerLibFunc(fptr any, handle uintptr, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s", ErrSymbolMissing, name)
		}
	}()
	purego.RegisterLibFunc(fptr, handle, name)
	return nil
}

func registerOptionalLibFunc(fptr any, handle uintptr, name string) {
	defer func() {
		_ = recover() // purego.RegisterLibFunc panics if symbol is missing
	}()
	purego.RegisterLibFunc(fptr, handle, name)
}

// FindLibrary searches for SDL3 and returns its full path without loading it.
// This is useful for diagnostics.
func FindLibrary() (string, error) {
	if p := os.Getenv(EnvLibrary); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	for _, searchPath := range LibrarySearchPaths() {
		for _, ver := range sonameVersions {
			fullPath := filepath.Join(searchPath, platform.FormatLibraryName("SDL3", ver))
			if _, err := os.Stat(fullPath); err == nil {
				return fullPath, nil
			}
		}
	}
	return "", ErrLibraryNotFound
}

// LibrarySearchPaths returns platform-specific library search paths.
func LibrarySearchPaths() []string {
	var paths []string

	if dir := os.Getenv(EnvLibraryDir); dir != "" {
		paths = append(paths, dir)
	}

	switch runtime.GOOS {
	case "linux", "freebsd":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib64",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib", // Apple Silicon
			"/usr/local/lib",    // Intel
			"/opt/homebrew/opt/sdl3/lib",
			"/usr/local/opt/sdl3/lib",
			"/Library/Frameworks/SDL3.framework",
		)

	case "windows":
		if exe, err := os.Executable(); err == nil {
			paths = append(paths, filepath.Dir(exe))
		}
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
	}

	return paths
}

func checkLoaded(present bool, name string) error {
	if !loaded {
		return ErrNotLoaded
	}
	if !present {
		return fmt.Errorf("%w: %s", ErrSymbolMissing, name)
	}
	return nil
}
