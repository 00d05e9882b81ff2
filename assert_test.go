//go:build !ios && !android && (amd64 || arm64)

package sdlgo

import (
	"sync"
	"testing"

	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAssertData() *AssertData {
	first := &AssertData{
		TriggerCount: 2,
		condition:    cstr("w > 0"),
		filename:     cstr("video.c"),
		LineNum:      118,
		function:     cstr("SDL_CreateWindow"),
	}
	first.next = &AssertData{condition: cstr("ptr != NULL")}
	return first
}

func TestAssertData_Accessors(t *testing.T) {
	d := testAssertData()
	assert.Equal(t, "w > 0", d.Condition())
	assert.Equal(t, "video.c", d.Filename())
	assert.Equal(t, "SDL_CreateWindow", d.Function())
	require.NotNil(t, d.Next())
	assert.Equal(t, "ptr != NULL", d.Next().Condition())
	assert.Nil(t, d.Next().Next())
	assert.Equal(t, "", d.Next().Filename())
}

func TestAssertionTrampoline(t *testing.T) {
	defer assertionHandlers.Erase()

	var seen []string
	ctx := assertionHandlers.Wrap(func(d *AssertData) AssertState {
		seen = append(seen, d.Condition())
		return AssertionRetry
	})

	state := assertionTrampoline(testAssertData(), ctx)
	assert.Equal(t, AssertionRetry, state)
	assert.Equal(t, []string{"w > 0"}, seen)

	assertionHandlers.Erase()
	assert.Equal(t, AssertionIgnore, assertionTrampoline(testAssertData(), ctx),
		"an empty slot ignores the assertion")
	assert.Equal(t, AssertionIgnore, assertionTrampoline(testAssertData(), callback.Null))
}

func TestAssertionTrampoline_PanicAborts(t *testing.T) {
	defer assertionHandlers.Erase()

	ctx := assertionHandlers.Wrap(func(*AssertData) AssertState { panic("handler bug") })
	assert.Equal(t, AssertionAbort, assertionTrampoline(testAssertData(), ctx))
}

func TestAssertionHandler_SDL(t *testing.T) {
	requireSDL(t)
	defer func() { require.NoError(t, ResetAssertionHandler()) }()

	calls := 0
	require.NoError(t, SetAssertionHandler(func(*AssertData) AssertState {
		calls++
		return AssertionIgnore
	}))

	isDefault, err := IsDefaultAssertionHandler()
	require.NoError(t, err)
	assert.False(t, isDefault)

	got, err := GetAssertionHandler()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, AssertionIgnore, got(testAssertData()))
	assert.Equal(t, 1, calls)

	require.NoError(t, ResetAssertionHandler())
	isDefault, err = IsDefaultAssertionHandler()
	require.NoError(t, err)
	assert.True(t, isDefault)
}

func TestIsDefaultAssertionHandler_ConcurrentWithSet(t *testing.T) {
	requireSDL(t)
	defer func() { require.NoError(t, ResetAssertionHandler()) }()

	handler := func(*AssertData) AssertState { return AssertionIgnore }

	var wg sync.WaitGroup
	errs := make(chan error, 200)
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				if j%2 == 0 {
					errs <- SetAssertionHandler(handler)
				} else {
					errs <- ResetAssertionHandler()
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_, err := IsDefaultAssertionHandler()
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	require.NoError(t, ResetAssertionHandler())
	isDefault, err := IsDefaultAssertionHandler()
	require.NoError(t, err)
	assert.True(t, isDefault)
}
