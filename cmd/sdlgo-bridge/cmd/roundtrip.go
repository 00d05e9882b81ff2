//go:build !ios && !android && (amd64 || arm64)

package cmd

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/obinnaokechukwu/sdlgo"
	"github.com/obinnaokechukwu/sdlgo/internal/logger"
	"github.com/spf13/cobra"
)

var roundTripTimeout time.Duration

var roundTripCmd = &cobra.Command{
	Use:   "roundtrip",
	Short: "Round-trip every callback kind through SDL3",
	Long: `Loads SDL3 and checks each callback the bridge supports: the log output
function and assertion handler are installed and read back, a timer fires
until it cancels itself, and a hint watcher sees a hint change.`,
	RunE: runRoundTrip,
}

func init() {
	roundTripCmd.Flags().DurationVar(&roundTripTimeout, "timeout", 5*time.Second, "how long to wait for the timer")
}

type roundTripCheck struct {
	name string
	run  func() error
}

func runRoundTrip(cmd *cobra.Command, _ []string) error {
	if err := sdlgo.Init(0); err != nil {
		return err
	}
	defer sdlgo.Quit()

	major, minor, micro := sdlgo.Version()
	lg.Info("loaded SDL3", "version", fmt.Sprintf("%d.%d.%d", major, minor, micro), "path", sdlgo.LibraryPath())

	checks := []roundTripCheck{
		{"log output", checkLogOutput},
		{"assertion handler", checkAssertionHandler},
		{"timer", checkTimer},
		{"hint callback", checkHint},
	}

	var failed []string
	for _, c := range checks {
		if err := c.run(); err != nil {
			lg.Error("check failed", "check", c.name, "err", err)
			failed = append(failed, c.name)
			continue
		}
		lg.Info("check passed", "check", c.name)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d checks failed: %v", len(failed), len(checks), failed)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "all checks passed")
	return nil
}

func checkLogOutput() error {
	// SDL's own messages go to the terminal logger while the checks run
	var seen atomic.Int32
	toZap := sdlgo.LogOutputToZap(logger.Zap(lg))
	if err := sdlgo.SetLogOutputFunction(func(c sdlgo.LogCategory, p sdlgo.LogPriority, msg string) {
		seen.Add(1)
		toZap(c, p, msg)
	}); err != nil {
		return err
	}
	defer sdlgo.ResetLogOutputFunction()

	got, err := sdlgo.GetLogOutputFunction()
	if err != nil {
		return err
	}
	if got == nil {
		return errors.New("no log output function installed")
	}
	got(sdlgo.LogCategoryTest, sdlgo.LogPriorityDebug, "roundtrip: log output reached Go")
	if seen.Load() == 0 {
		return errors.New("function read back is not the one installed")
	}
	return nil
}

func checkAssertionHandler() error {
	calls := 0
	if err := sdlgo.SetAssertionHandler(func(*sdlgo.AssertData) sdlgo.AssertState {
		calls++
		return sdlgo.AssertionIgnore
	}); err != nil {
		return err
	}
	defer sdlgo.ResetAssertionHandler()

	got, err := sdlgo.GetAssertionHandler()
	if err != nil {
		return err
	}
	if got == nil || got(&sdlgo.AssertData{}) != sdlgo.AssertionIgnore || calls != 1 {
		return errors.New("handler read back is not the one installed")
	}
	return nil
}

func checkTimer() error {
	const ticks = 3
	done := make(chan struct{})
	var fired atomic.Int32

	_, err := sdlgo.AddTimer(10, func(_ sdlgo.TimerID, interval uint32) uint32 {
		if fired.Add(1) < ticks {
			return interval
		}
		close(done)
		return 0
	})
	if err != nil {
		return err
	}

	select {
	case <-done:
	case <-time.After(roundTripTimeout):
		return fmt.Errorf("timer fired %d of %d times before timing out", fired.Load(), ticks)
	}

	deadline := time.Now().Add(time.Second)
	for sdlgo.ActiveTimers() != 0 {
		if time.Now().After(deadline) {
			return errors.New("timer closure was not released after cancelling")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil
}

func checkHint() error {
	const name = sdlgo.HintAppName
	var last atomic.Value
	if err := sdlgo.AddHintCallback(name, func(_, _, newValue string) {
		last.Store(newValue)
	}); err != nil {
		return err
	}
	defer sdlgo.RemoveHintCallback(name)

	want := fmt.Sprintf("sdlgo-roundtrip-%d", time.Now().UnixNano())
	if err := sdlgo.SetHint(name, want); err != nil {
		return err
	}
	if got, _ := last.Load().(string); got != want {
		return fmt.Errorf("hint watcher saw %q, want %q", got, want)
	}
	return nil
}
