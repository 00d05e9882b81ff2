//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestSupportsCallbacks(t *testing.T) {
	switch runtime.GOOS {
	case "darwin", "linux", "freebsd", "windows":
		if !SupportsCallbacks {
			t.Errorf("%s should support purego callbacks", runtime.GOOS)
		}
	default:
		if SupportsCallbacks {
			t.Errorf("%s/%s should not report callback support", runtime.GOOS, runtime.GOARCH)
		}
	}
}

func TestIs64Bit(t *testing.T) {
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestLibraryExtension(t *testing.T) {
	switch runtime.GOOS {
	case "darwin":
		if LibraryExtension != ".dylib" {
			t.Errorf("expected .dylib, got %s", LibraryExtension)
		}
	case "windows":
		if LibraryExtension != ".dll" {
			t.Errorf("expected .dll, got %s", LibraryExtension)
		}
	default:
		if LibraryExtension != ".so" {
			t.Errorf("expected .so, got %s", LibraryExtension)
		}
	}
}

func TestFormatLibraryName(t *testing.T) {
	tests := []struct {
		name    string
		version int
		goos    string
		want    string
	}{
		{"SDL3", 0, "linux", "libSDL3.so.0"},
		{"SDL3", -1, "linux", "libSDL3.so"},
		{"SDL3", 0, "darwin", "libSDL3.0.dylib"},
		{"SDL3", -1, "darwin", "libSDL3.dylib"},
		{"SDL3", 0, "windows", "SDL3.dll"},
		{"SDL3", -1, "windows", "SDL3.dll"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"_"+tt.goos, func(t *testing.T) {
			if runtime.GOOS != tt.goos {
				t.Skipf("test only applies to %s", tt.goos)
			}
			got := FormatLibraryName(tt.name, tt.version)
			if got != tt.want {
				t.Errorf("FormatLibraryName(%q, %d) = %q, want %q", tt.name, tt.version, got, tt.want)
			}
		})
	}
}
