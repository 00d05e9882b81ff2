//go:build !ios && !android && (amd64 || arm64)

package callback

import (
	"fmt"
	"reflect"
	"runtime"
	"sync"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"
)

// purego keeps every callback for the life of the process and only has room
// for a fixed number of them, so each trampoline is exported exactly once.
var (
	trampolineMu sync.Mutex
	trampolines  = make(map[trampolineKey]uintptr)
)

type trampolineKey struct {
	name string
	typ  reflect.Type
}

// Trampoline returns a C function pointer that calls fn.
//
// fn is normally one of this package's trampolines instantiated for a C
// signature, e.g. Trampoline(Call2[TimerID, uint32, uint32]); any top-level
// function with purego-compatible parameters works. The pointer is created
// on first request and cached for the process lifetime, so repeated calls
// are cheap and never exhaust purego's callback table. Function literals
// are keyed by their declaration site, not by what they capture.
func Trampoline(fn any) uintptr {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		panic(fmt.Sprintf("callback: Trampoline needs a non-nil func, got %T", fn))
	}

	key := trampolineKey{typ: v.Type()}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		key.name = f.Name()
	}

	trampolineMu.Lock()
	defer trampolineMu.Unlock()

	if ptr, ok := trampolines[key]; ok {
		return ptr
	}
	ptr := purego.NewCallback(fn)
	trampolines[key] = ptr

	Logger().Debug("callback: exported trampoline",
		zap.String("func", key.name),
		zap.Stringer("type", key.typ),
		zap.Int("exported", len(trampolines)),
	)
	return ptr
}

// TrampolineCount returns how many distinct trampolines have been exported.
func TrampolineCount() int {
	trampolineMu.Lock()
	defer trampolineMu.Unlock()
	return len(trampolines)
}
