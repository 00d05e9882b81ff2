// Package stress hammers the callback registries from many goroutines and
// checks the outcome against a sequential model of the same operations.
package stress

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"sync/atomic"
	"time"

	"github.com/obinnaokechukwu/sdlgo/callback"
	"github.com/obinnaokechukwu/sdlgo/internal/handles"
	"github.com/obinnaokechukwu/sdlgo/internal/statics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrModelMismatch means the registry disagreed with the sequential model.
var ErrModelMismatch = errors.New("stress: registry diverged from sequential model")

// Options sizes a run.
type Options struct {
	Workers    int
	Iterations int    // operations per worker
	Keys       int    // keys owned by each worker
	Seed       uint64 // 0 picks one from the clock
	Logger     *zap.Logger
}

// Report is the outcome of a run.
type Report struct {
	Seed        uint64
	Operations  int64 // all operations, across every worker
	Mismatches  int64
	LiveKeys    int   // entries left in the keyed table, all checked against the model
	OnceCalls   int64 // single-owner closures consumed through a once trampoline
	Persistent  int64 // calls through persistent trampolines
	Singleton   int64 // singleton replacements
	LeakedSlots int   // arena entries that outlived the run
	Registries  int   // process-wide generic registry instances after the run
	Duration    time.Duration
}

// OK reports whether the run found nothing wrong.
func (r Report) OK() bool {
	return r.Mismatches == 0 && r.LeakedSlots == 0
}

type stressTag struct{}

type (
	keyedTable = callback.Keyed[int, int, stressTag]
	sinkFunc   = func(int) int
)

// Run executes one stress run. Each worker owns a disjoint range of keys,
// so the union of the per-worker models is the exact expected final table.
// A cancelled ctx stops the workers early and is returned as the error.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Workers < 1 || opts.Keys < 1 || opts.Iterations < 0 {
		return Report{}, fmt.Errorf("stress: invalid options %+v", opts)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var reg keyedTable
	var single callback.Singleton[sinkFunc]
	reset(reg)
	defer reset(reg)
	defer single.Erase()

	rep := Report{Seed: seed}
	_ = single.Context() // reserve the slot before taking the baseline
	baseline := handles.Count()
	start := time.Now()

	models := make([]map[int]int, opts.Workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < opts.Workers; w++ {
		models[w] = make(map[int]int, opts.Keys)
		g.Go(func() error {
			rng := rand.New(rand.NewPCG(seed, uint64(w)))
			return worker(gctx, w, opts, rng, models[w], &rep)
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}

	// final table against the merged model
	var want []int
	for w := range models {
		for k, v := range models[w] {
			want = append(want, k)
			if got, ok := reg.Load(k); !ok || got != v {
				rep.Mismatches++
				log.Error("final value mismatch", zap.Int("key", k), zap.Int("want", v), zap.Int("got", got))
			}
		}
	}
	got := reg.Keys()
	sort.Ints(want)
	sort.Ints(got)
	if !equalInts(want, got) {
		rep.Mismatches++
		log.Error("final key set mismatch", zap.Int("want", len(want)), zap.Int("got", len(got)))
	}
	rep.LiveKeys = len(got)

	if !single.Contains(single.Context()) && opts.Iterations > 0 {
		rep.Mismatches++
		log.Error("singleton slot empty after replacements")
	}

	// the singleton slot is reserved for the process, so only boxes can leak
	rep.LeakedSlots = handles.Count() - baseline
	rep.Registries = statics.Count()
	rep.Duration = time.Since(start)

	log.Info("stress run finished",
		zap.Uint64("seed", rep.Seed),
		zap.Int64("operations", rep.Operations),
		zap.Int64("mismatches", rep.Mismatches),
		zap.Int("leaked", rep.LeakedSlots),
		zap.Int("registries", rep.Registries),
		zap.Duration("took", rep.Duration),
	)

	if !rep.OK() {
		return rep, fmt.Errorf("%w: %d mismatches, %d leaked contexts (seed %d)",
			ErrModelMismatch, rep.Mismatches, rep.LeakedSlots, seed)
	}
	return rep, nil
}

func worker(ctx context.Context, w int, opts Options, rng *rand.Rand, model map[int]int, rep *Report) error {
	var (
		reg    keyedTable
		single callback.Singleton[sinkFunc]
	)
	base := w * opts.Keys

	for i := 0; i < opts.Iterations; i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		key := base + rng.IntN(opts.Keys)
		switch rng.IntN(8) {
		case 0, 1:
			v := w*1_000_000 + i
			reg.Wrap(key, v)
			model[key] = v
		case 2:
			if got := reg.Release(key); got != model[key] {
				atomic.AddInt64(&rep.Mismatches, 1)
			}
			delete(model, key)
		case 3:
			_, want := model[key]
			if reg.Erase(key) != want {
				atomic.AddInt64(&rep.Mismatches, 1)
			}
			delete(model, key)
		case 4:
			got, ok := reg.Load(key)
			want, wantOK := model[key]
			if ok != wantOK || got != want {
				atomic.AddInt64(&rep.Mismatches, 1)
			}
		case 5:
			// persistent closure, several calls, then an explicit release
			n := i
			c := callback.Wrap(func(x int) int { return x + n })
			for j := 0; j < 3; j++ {
				if callback.Call1[int, int](c, j) != j+n {
					atomic.AddInt64(&rep.Mismatches, 1)
				}
				atomic.AddInt64(&rep.Persistent, 1)
			}
			if callback.Release[sinkFunc](c) == nil {
				atomic.AddInt64(&rep.Mismatches, 1)
			}
		case 6:
			// single-owner closure consumed by its one call
			n := i
			c := callback.Wrap(func(x int) int { return x * n })
			if callback.CallOnce1[int, int](c, 2) != 2*n {
				atomic.AddInt64(&rep.Mismatches, 1)
			}
			if callback.CallOnce1[int, int](c, 2) != 0 {
				atomic.AddInt64(&rep.Mismatches, 1)
			}
			atomic.AddInt64(&rep.OnceCalls, 1)
		default:
			n := w
			ctxSlot := single.Wrap(func(x int) int { return x + n })
			if !single.Contains(ctxSlot) {
				atomic.AddInt64(&rep.Mismatches, 1)
			}
			atomic.AddInt64(&rep.Singleton, 1)
		}
		atomic.AddInt64(&rep.Operations, 1)
	}
	return nil
}

// reset drops every entry of the stress table.
func reset(reg keyedTable) {
	for _, k := range reg.Keys() {
		reg.Erase(k)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
