//go:build !ios && !android && (amd64 || arm64)

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/obinnaokechukwu/sdlgo"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// commands are package globals, so flags set by an earlier run persist
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.PersistentFlags().VisitAll(reset)
	stressCmd.Flags().VisitAll(reset)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestStressCommand(t *testing.T) {
	out, err := execute(t, "stress", "--workers", "3", "--iterations", "300", "--keys", "8", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "seed 5: 900 ops")
	assert.Contains(t, out, "0 mismatches, 0 leaked")

	assert.Equal(t, 3, cfg.Stress.Workers)
	assert.Equal(t, int64(5), cfg.Stress.Seed)
}

func TestStressCommand_EnvConfig(t *testing.T) {
	t.Setenv("SDLGO_STRESS_WORKERS", "2")
	t.Setenv("SDLGO_STRESS_ITERATIONS", "50")

	out, err := execute(t, "stress", "--seed", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "seed 9: 100 ops")
}

func TestRootCommand_BadLogLevel(t *testing.T) {
	_, err := execute(t, "stress", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sdlgo-bridge "+Version)
	assert.Contains(t, out, "SDL3: ")
	if strings.Contains(out, "not available") {
		assert.Contains(t, out, "SDL3 library: ")
	}
}

func TestVersionCommand_ReportsSearchResult(t *testing.T) {
	if sdlgo.IsLoaded() {
		t.Skip("SDL3 already loaded")
	}
	t.Setenv("SDLGO_LIBRARY", "")
	t.Setenv("SDLGO_LIBRARY_DIR", t.TempDir())

	out, err := execute(t, "version")
	require.NoError(t, err)
	if strings.Contains(out, "not available") {
		path, findErr := sdlgo.FindLibrary()
		if findErr != nil {
			assert.Contains(t, out, "SDL3 library: not found in search paths")
		} else {
			assert.Contains(t, out, "SDL3 library: "+path)
		}
	}
}
