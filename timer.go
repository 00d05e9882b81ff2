//go:build !ios && !android && (amd64 || arm64)

package sdlgo

import (
	"sync"

	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/obinnaokechukwu/sdlgo/internal/bindings"
	"go.uber.org/zap"
)

// TimerID identifies a timer created by AddTimer.
type TimerID uint32

// TimerCallback runs on SDL's timer thread. It receives the timer's id and
// its current interval in milliseconds and returns the next interval, or 0
// to cancel the timer.
type TimerCallback = func(id TimerID, interval uint32) uint32

type timerTag struct{}

var (
	// TimerID -> the Context handed to SDL as userdata
	timers callback.Keyed[TimerID, callback.Context, timerTag]

	// held across SDL_AddTimer so a timer that fires at once finds its entry
	timerMu sync.Mutex
)

// AddTimer calls fn after interval milliseconds, then again after each
// interval fn returns, until fn returns 0 or RemoveTimer is called.
//
// A panic in fn cancels the timer.
func AddTimer(interval uint32, fn TimerCallback) (TimerID, error) {
	if fn == nil {
		return 0, ErrNilCallback
	}
	if err := Load(); err != nil {
		return 0, err
	}

	run := func(id TimerID, interval uint32) (next uint32) {
		defer func() {
			if next == 0 {
				finishTimer(id)
			}
		}()
		return fn(id, interval)
	}

	timerMu.Lock()
	defer timerMu.Unlock()

	ctx := callback.Wrap[TimerCallback](run)
	id, err := bindings.AddTimer(interval, callback.Trampoline(callback.Call2[TimerID, uint32, uint32]), uintptr(ctx))
	if err != nil {
		callback.Release[TimerCallback](ctx)
		return 0, err
	}
	if id == 0 {
		callback.Release[TimerCallback](ctx)
		return 0, newError("SDL_AddTimer")
	}
	timers.Wrap(TimerID(id), ctx)
	return TimerID(id), nil
}

// finishTimer drops the closure of a timer that cancelled itself.
func finishTimer(id TimerID) {
	timerMu.Lock()
	ctx := timers.Release(id)
	timerMu.Unlock()

	callback.Release[TimerCallback](ctx)
	Logger().Debug("sdlgo: timer finished", zap.Uint32("timer", uint32(id)))
}

// RemoveTimer cancels a timer. It reports false if id does not name a live
// timer, including one that already cancelled itself.
func RemoveTimer(id TimerID) (bool, error) {
	if err := Load(); err != nil {
		return false, err
	}

	timerMu.Lock()
	defer timerMu.Unlock()

	removed, err := bindings.RemoveTimer(uint32(id))
	if err != nil {
		return false, err
	}
	ctx, ok := timers.Load(id)
	if !ok {
		return removed, nil
	}
	timers.Erase(id)
	callback.Release[TimerCallback](ctx)
	return removed, nil
}

// ActiveTimers returns the number of timers whose closures are still held.
func ActiveTimers() int {
	return timers.Len()
}
