package callback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sink is a test double that counts how often it was closed.
type sink struct {
	name   string
	closed int
}

func (s *sink) Close() { s.closed++ }

func TestSingleton_ReplaceWithoutCleanup(t *testing.T) {
	var reg Singleton[*sink]
	defer reg.Erase()

	v1 := &sink{name: "v1"}
	v2 := &sink{name: "v2"}

	ctx1 := reg.Wrap(v1)
	ctx2 := reg.Wrap(v2)

	assert.Equal(t, ctx1, ctx2, "the slot context never changes")
	assert.Same(t, v2, reg.Get())
	assert.Equal(t, 0, v1.closed, "displaced value must not be cleaned up")
	assert.Equal(t, 0, v2.closed)
}

func TestSingleton_ContainsAndAt(t *testing.T) {
	type logFunc = func(category, priority int32, msg string)
	var reg Singleton[logFunc]
	defer reg.Erase()

	slotCtx := reg.Context()
	require.NotEqual(t, Null, slotCtx)
	assert.False(t, reg.Contains(slotCtx), "empty slot")

	var got string
	ctx := reg.Wrap(func(_, _ int32, msg string) { got = msg })
	assert.Equal(t, slotCtx, ctx)

	assert.True(t, reg.Contains(ctx))
	assert.False(t, reg.Contains(ctx+1), "foreign context")
	assert.False(t, reg.Contains(Null))

	reg.At(ctx)(0, 0, "hello")
	assert.Equal(t, "hello", got)
	assert.Nil(t, reg.At(Null))
	assert.Nil(t, reg.At(ctx+1))
}

func TestSingleton_Release(t *testing.T) {
	var reg Singleton[func() int]

	ctx := reg.Wrap(func() int { return 3 })
	fn := reg.Release()
	require.NotNil(t, fn)
	assert.Equal(t, 3, fn())
	assert.False(t, reg.Contains(ctx))
	assert.Nil(t, reg.Get())

	assert.Nil(t, reg.Release(), "releasing an empty slot yields the zero value")
}

func TestSingleton_ReleaseContext(t *testing.T) {
	var reg Singleton[func() string]
	defer reg.Erase()

	ctx := reg.Wrap(func() string { return "ours" })

	fn, ok := reg.ReleaseContext(ctx + 7)
	assert.False(t, ok)
	assert.Nil(t, fn)
	assert.True(t, reg.Contains(ctx), "a mismatched context leaves the slot alone")

	fn, ok = reg.ReleaseContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "ours", fn())
	assert.False(t, reg.Contains(ctx))
}

func TestSingleton_ResolvesThroughTrampolines(t *testing.T) {
	var reg Singleton[func(int32) int32]
	defer reg.Erase()

	ctx := reg.Context()
	assert.Equal(t, int32(0), Call1[int32, int32](ctx, 5), "empty slot")

	reg.Wrap(func(n int32) int32 { return n * 2 })
	assert.Equal(t, int32(10), Call1[int32, int32](ctx, 5))
	assert.Equal(t, int32(14), CallSuffixed1[int32, int32](7, ctx))

	reg.Wrap(func(n int32) int32 { return n * 3 })
	assert.Equal(t, int32(15), Call1[int32, int32](ctx, 5), "trampolines see the current value")

	fn, ok := Load[func(int32) int32](ctx)
	require.True(t, ok)
	assert.Equal(t, int32(3), fn(1))
}

func TestSingleton_ContextNotReleasable(t *testing.T) {
	var reg Singleton[func()]
	ctx := reg.Context()

	assert.Panics(t, func() { Release[func()](ctx) })
	assert.Equal(t, ctx, reg.Context(), "slot context survives misuse")
}

func TestSingleton_DistinctPerSignature(t *testing.T) {
	var a Singleton[func() int]
	var b Singleton[func() string]
	assert.NotEqual(t, a.Context(), b.Context())
}
