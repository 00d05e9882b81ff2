package stress

import (
	"context"
	"testing"

	"github.com/obinnaokechukwu/sdlgo/internal/handles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRun(t *testing.T) {
	rep, err := Run(context.Background(), Options{
		Workers:    8,
		Iterations: 1500,
		Keys:       32,
		Seed:       7,
		Logger:     zaptest.NewLogger(t),
	})
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Equal(t, uint64(7), rep.Seed)
	assert.Equal(t, int64(8*1500), rep.Operations)
	assert.Zero(t, rep.Mismatches)
	assert.Zero(t, rep.LeakedSlots)
	assert.Positive(t, rep.OnceCalls)
	assert.Positive(t, rep.Persistent)
	assert.Positive(t, rep.Singleton)
	// the run's keyed table and singleton slot each own one instance
	assert.GreaterOrEqual(t, rep.Registries, 2)
}

func TestRun_CleansUp(t *testing.T) {
	before := handles.Count()
	_, err := Run(context.Background(), Options{Workers: 2, Iterations: 200, Keys: 4, Seed: 1})
	require.NoError(t, err)

	var reg keyedTable
	assert.Zero(t, reg.Len(), "the keyed table is emptied after a run")
	// at most the singleton slot, reserved once per process
	assert.LessOrEqual(t, handles.Count()-before, 1)
}

func TestRun_SameSeedSameOutcome(t *testing.T) {
	opts := Options{Workers: 4, Iterations: 500, Keys: 8, Seed: 99}
	a, err := Run(context.Background(), opts)
	require.NoError(t, err)
	b, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, a.LiveKeys, b.LiveKeys)
	assert.Equal(t, a.OnceCalls, b.OnceCalls)
	assert.Equal(t, a.Persistent, b.Persistent)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Workers: 2, Iterations: 1000, Keys: 4, Seed: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Workers: 0, Keys: 1})
	assert.Error(t, err)
	_, err = Run(context.Background(), Options{Workers: 1, Keys: 0})
	assert.Error(t, err)
}
