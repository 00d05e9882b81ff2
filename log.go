//go:build !ios && !android && (amd64 || arm64)

package sdlgo

import (
	"sync"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/obinnaokechukwu/sdlgo/internal/bindings"
	"go.uber.org/zap"
)

// LogPriority represents SDL log priorities.
type LogPriority int32

// Log priority constants matching SDL_LOG_PRIORITY_* values.
const (
	LogPriorityInvalid  LogPriority = iota
	LogPriorityTrace                // Extremely verbose debugging
	LogPriorityVerbose              // Detailed information
	LogPriorityDebug                // Stuff for debugging
	LogPriorityInfo                 // Standard information
	LogPriorityWarn                 // Something unexpected but recovery possible
	LogPriorityError                // Something went wrong
	LogPriorityCritical             // Something went really wrong
)

// String returns the string representation of the log priority.
func (p LogPriority) String() string {
	switch p {
	case LogPriorityTrace:
		return "trace"
	case LogPriorityVerbose:
		return "verbose"
	case LogPriorityDebug:
		return "debug"
	case LogPriorityInfo:
		return "info"
	case LogPriorityWarn:
		return "warn"
	case LogPriorityError:
		return "error"
	case LogPriorityCritical:
		return "critical"
	default:
		return "invalid"
	}
}

// LogCategory represents SDL log categories.
type LogCategory int32

// Log category constants matching SDL_LOG_CATEGORY_* values.
const (
	LogCategoryApplication LogCategory = iota
	LogCategoryError
	LogCategoryAssert
	LogCategorySystem
	LogCategoryAudio
	LogCategoryVideo
	LogCategoryRender
	LogCategoryInput
	LogCategoryTest
	LogCategoryGPU

	// LogCategoryCustom is the first category free for application use.
	LogCategoryCustom LogCategory = 19
)

var logCategoryNames = [...]string{
	"application", "error", "assert", "system", "audio",
	"video", "render", "input", "test", "gpu",
}

// String returns the string representation of the log category.
func (c LogCategory) String() string {
	if c >= 0 && int(c) < len(logCategoryNames) {
		return logCategoryNames[c]
	}
	if c >= LogCategoryCustom {
		return "custom"
	}
	return "reserved"
}

// LogOutputFunction receives every message SDL logs.
// SDL may call it from any thread.
type LogOutputFunction func(category LogCategory, priority LogPriority, message string)

var (
	logOutputs callback.Singleton[LogOutputFunction]

	// serializes native set/get with the slot so a reader never sees one without the other
	logMu sync.Mutex
)

// logOutputTrampoline is what SDL calls.
// Signature: void (*)(void *userdata, int category, SDL_LogPriority priority, const char *message)
func logOutputTrampoline(ctx callback.Context, category, priority int32, message *byte) {
	defer callback.Guard(ctx, nil)

	fn := logOutputs.At(ctx)
	if fn == nil {
		return
	}
	fn(LogCategory(category), LogPriority(priority), goString(message))
}

// SetLogOutputFunction routes all SDL log output to fn.
// Pass nil to restore SDL's default output.
func SetLogOutputFunction(fn LogOutputFunction) error {
	if fn == nil {
		return ResetLogOutputFunction()
	}
	if err := Load(); err != nil {
		return err
	}

	logMu.Lock()
	defer logMu.Unlock()

	ctx := logOutputs.Wrap(fn)
	if err := bindings.SetLogOutputFunction(callback.Trampoline(logOutputTrampoline), uintptr(ctx)); err != nil {
		logOutputs.Erase()
		return err
	}
	return nil
}

// GetLogOutputFunction returns the log output function SDL currently uses.
//
// If it is one installed by SetLogOutputFunction the original closure is
// returned. Otherwise, SDL's default or a function installed by other C
// code, the C function is wrapped so it can be called from Go.
func GetLogOutputFunction() (LogOutputFunction, error) {
	if err := Load(); err != nil {
		return nil, err
	}

	logMu.Lock()
	defer logMu.Unlock()

	cb, userdata, err := bindings.GetLogOutputFunction()
	if err != nil {
		return nil, err
	}
	if cb == 0 {
		return nil, nil
	}

	ctx := callback.Context(userdata)
	if cb == callback.Trampoline(logOutputTrampoline) && logOutputs.Contains(ctx) {
		return logOutputs.At(ctx), nil
	}
	return foreignLogOutput(cb, userdata), nil
}

func foreignLogOutput(cb, userdata uintptr) LogOutputFunction {
	var native func(userdata uintptr, category, priority int32, message string)
	purego.RegisterFunc(&native, cb)
	return func(category LogCategory, priority LogPriority, message string) {
		native(userdata, int32(category), int32(priority), message)
	}
}

// ResetLogOutputFunction restores SDL's default log output and drops any
// function installed by SetLogOutputFunction.
func ResetLogOutputFunction() error {
	if err := Load(); err != nil {
		return err
	}

	logMu.Lock()
	defer logMu.Unlock()

	def, err := bindings.GetDefaultLogOutputFunction()
	if err != nil {
		return err
	}
	if err := bindings.SetLogOutputFunction(def, 0); err != nil {
		return err
	}
	logOutputs.Erase()
	return nil
}

// SetLogPriorities sets the priority threshold for every category.
func SetLogPriorities(priority LogPriority) error {
	if err := Load(); err != nil {
		return err
	}
	return bindings.SetLogPriorities(int32(priority))
}

// SetLogPriority sets the priority threshold for one category.
func SetLogPriority(category LogCategory, priority LogPriority) error {
	if err := Load(); err != nil {
		return err
	}
	return bindings.SetLogPriority(int32(category), int32(priority))
}

// LogOutputToZap returns a LogOutputFunction that forwards SDL messages to l.
// Trace, verbose and debug map to debug; critical maps to error with a
// critical field.
func LogOutputToZap(l *zap.Logger) LogOutputFunction {
	if l == nil {
		l = zap.NewNop()
	}
	return func(category LogCategory, priority LogPriority, message string) {
		fields := []zap.Field{zap.Stringer("category", category)}
		switch priority {
		case LogPriorityInfo:
			l.Info(message, fields...)
		case LogPriorityWarn:
			l.Warn(message, fields...)
		case LogPriorityError:
			l.Error(message, fields...)
		case LogPriorityCritical:
			l.Error(message, append(fields, zap.Bool("critical", true))...)
		default:
			l.Debug(message, append(fields, zap.Stringer("priority", priority))...)
		}
	}
}
