//go:build !ios && !android && (amd64 || arm64)

package cmd

import (
	"fmt"

	"github.com/obinnaokechukwu/sdlgo"
	"github.com/obinnaokechukwu/sdlgo/internal/stress"
	"github.com/spf13/cobra"
)

// config key -> flag name
var stressFlags = map[string]string{
	"stress.workers":    "workers",
	"stress.iterations": "iterations",
	"stress.keys":       "keys",
	"stress.seed":       "seed",
}

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Run the registries concurrently against a sequential model",
	Long: `Runs keyed, single-owner and singleton registry operations from many
goroutines. Each worker owns a disjoint key range and keeps a sequential
model of it; the shared table must match the models when all workers
finish, and every single-owner context must be freed. SDL3 is not needed.`,
	RunE: runStress,
}

func init() {
	f := stressCmd.Flags()
	f.Int("workers", 0, "concurrent workers")
	f.Int("iterations", 0, "operations per worker")
	f.Int("keys", 0, "keys owned by each worker")
	f.Int64("seed", 0, "random seed (0 picks one)")
}

func runStress(cmd *cobra.Command, _ []string) error {
	lg.Info("starting stress run",
		"workers", cfg.Stress.Workers,
		"iterations", cfg.Stress.Iterations,
		"keys", cfg.Stress.Keys,
	)

	rep, err := stress.Run(cmd.Context(), stress.Options{
		Workers:    cfg.Stress.Workers,
		Iterations: cfg.Stress.Iterations,
		Keys:       cfg.Stress.Keys,
		Seed:       uint64(cfg.Stress.Seed),
		Logger:     sdlgo.Logger(),
	})

	fmt.Fprintf(cmd.OutOrStdout(),
		"seed %d: %d ops, %d live keys, %d once, %d persistent, %d singleton, %d mismatches, %d leaked in %s\n",
		rep.Seed, rep.Operations, rep.LiveKeys, rep.OnceCalls, rep.Persistent, rep.Singleton,
		rep.Mismatches, rep.LeakedSlots, rep.Duration)
	return err
}
