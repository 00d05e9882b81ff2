//go:build !ios && !android && (amd64 || arm64)

// Package platform provides platform detection for sdlgo.
// It determines how shared libraries are named and whether purego can
// export callbacks on the current operating system and architecture.
package platform

import (
	"fmt"
	"runtime"
	"unsafe"
)

// SupportsCallbacks indicates whether purego.NewCallback works here.
// purego exports C callbacks on Darwin, Linux, FreeBSD and Windows.
const SupportsCallbacks = runtime.GOOS == "darwin" || runtime.GOOS == "linux" ||
	runtime.GOOS == "freebsd" || runtime.GOOS == "windows"

// Is64Bit indicates whether the platform is 64-bit.
// A context handed to C is stored in a void*, which must hold a uintptr.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the file extension for shared libraries on this platform.
var LibraryExtension string

// LibraryPrefix is the prefix for shared library names on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific library filename.
// A negative version returns the unversioned name. Windows DLLs carry no
// version in their file name, so version is ignored there.
//
// Examples:
//   - Linux:   FormatLibraryName("SDL3", 0)  -> "libSDL3.so.0"
//   - macOS:   FormatLibraryName("SDL3", 0)  -> "libSDL3.0.dylib"
//   - Linux:   FormatLibraryName("SDL3", -1) -> "libSDL3.so"
//   - Windows: FormatLibraryName("SDL3", 0)  -> "SDL3.dll"
func FormatLibraryName(name string, version int) string {
	switch runtime.GOOS {
	case "darwin":
		if version >= 0 {
			return fmt.Sprintf("%s%s.%d%s", LibraryPrefix, name, version, LibraryExtension)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	case "windows":
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	default: // linux, freebsd
		if version >= 0 {
			return fmt.Sprintf("%s%s%s.%d", LibraryPrefix, name, LibraryExtension, version)
		}
		return fmt.Sprintf("%s%s%s", LibraryPrefix, name, LibraryExtension)
	}
}
