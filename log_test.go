//go:build !ios && !android && (amd64 || arm64)

package sdlgo

import (
	"testing"

	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogPriorityString(t *testing.T) {
	tests := []struct {
		p    LogPriority
		want string
	}{
		{LogPriorityTrace, "trace"},
		{LogPriorityVerbose, "verbose"},
		{LogPriorityDebug, "debug"},
		{LogPriorityInfo, "info"},
		{LogPriorityWarn, "warn"},
		{LogPriorityError, "error"},
		{LogPriorityCritical, "critical"},
		{LogPriorityInvalid, "invalid"},
		{LogPriority(42), "invalid"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.p.String())
	}
}

func TestLogCategoryString(t *testing.T) {
	assert.Equal(t, "application", LogCategoryApplication.String())
	assert.Equal(t, "gpu", LogCategoryGPU.String())
	assert.Equal(t, "reserved", LogCategory(12).String())
	assert.Equal(t, "custom", LogCategoryCustom.String())
	assert.Equal(t, "custom", (LogCategoryCustom + 5).String())
}

func TestLogOutputTrampoline(t *testing.T) {
	defer logOutputs.Erase()

	type entry struct {
		category LogCategory
		priority LogPriority
		message  string
	}
	var got []entry
	ctx := logOutputs.Wrap(func(c LogCategory, p LogPriority, msg string) {
		got = append(got, entry{c, p, msg})
	})

	logOutputTrampoline(ctx, int32(LogCategoryVideo), int32(LogPriorityWarn), cstr("no display"))
	require.Len(t, got, 1)
	assert.Equal(t, entry{LogCategoryVideo, LogPriorityWarn, "no display"}, got[0])

	// a userdata we did not issue is ignored
	logOutputTrampoline(callback.Null, 0, int32(LogPriorityInfo), cstr("foreign"))
	logOutputTrampoline(ctx+1, 0, int32(LogPriorityInfo), cstr("foreign"))
	assert.Len(t, got, 1)

	// an emptied slot is ignored too
	logOutputs.Erase()
	logOutputTrampoline(ctx, 0, int32(LogPriorityInfo), cstr("late"))
	assert.Len(t, got, 1)
}

func TestLogOutputTrampoline_RecoversPanic(t *testing.T) {
	defer logOutputs.Erase()

	core, logs := observer.New(zapcore.ErrorLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	ctx := logOutputs.Wrap(func(LogCategory, LogPriority, string) { panic("sink exploded") })
	assert.NotPanics(t, func() {
		logOutputTrampoline(ctx, 0, int32(LogPriorityError), cstr("boom"))
	})
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "sink exploded", logs.All()[0].ContextMap()["panic"])
}

func TestLogOutputToZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	out := LogOutputToZap(zap.New(core))

	out(LogCategoryAudio, LogPriorityInfo, "opened device")
	out(LogCategoryRender, LogPriorityWarn, "vsync unavailable")
	out(LogCategoryVideo, LogPriorityError, "no display")
	out(LogCategorySystem, LogPriorityCritical, "out of memory")
	out(LogCategoryInput, LogPriorityTrace, "key down")

	entries := logs.All()
	require.Len(t, entries, 5)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "opened device", entries[0].Message)
	assert.Equal(t, "audio", entries[0].ContextMap()["category"])

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)

	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, true, entries[3].ContextMap()["critical"])

	assert.Equal(t, zapcore.DebugLevel, entries[4].Level)
	assert.Equal(t, "trace", entries[4].ContextMap()["priority"])
}

func TestLogOutputToZap_NilLogger(t *testing.T) {
	out := LogOutputToZap(nil)
	assert.NotPanics(t, func() { out(LogCategoryApplication, LogPriorityInfo, "dropped") })
}

func TestLogOutputFunction_SDL(t *testing.T) {
	requireSDL(t)
	defer func() { require.NoError(t, ResetLogOutputFunction()) }()

	var messages []string
	fn := func(_ LogCategory, _ LogPriority, msg string) {
		messages = append(messages, msg)
	}
	require.NoError(t, SetLogOutputFunction(fn))

	got, err := GetLogOutputFunction()
	require.NoError(t, err)
	require.NotNil(t, got)

	// the closure read back is ours, not a wrapper around the trampoline
	got(LogCategoryTest, LogPriorityInfo, "direct")
	assert.Equal(t, []string{"direct"}, messages)

	require.NoError(t, ResetLogOutputFunction())
	assert.False(t, logOutputs.Contains(logOutputs.Context()))

	def, err := GetLogOutputFunction()
	require.NoError(t, err)
	assert.NotNil(t, def, "the default output is wrapped as a foreign function")
}

func TestSetLogPriority_SDL(t *testing.T) {
	requireSDL(t)
	require.NoError(t, SetLogPriority(LogCategoryTest, LogPriorityVerbose))
	require.NoError(t, SetLogPriorities(LogPriorityInfo))
}
