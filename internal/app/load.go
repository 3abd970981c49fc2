package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
)

// LoadSetup runs every loader over the setup path, merges the results and
// validates the merged setup.
func (a *App) LoadSetup(ctx context.Context) (*config.Setup, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading setup...", "setup_path", a.config.SetupPath)

	setup := config.NewSetup()
	for _, loader := range a.loaders {
		part, err := loader.Load(ctx, a.config.SetupPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load setup: %w", err)
		}
		if err := setup.Merge(part); err != nil {
			return nil, fmt.Errorf("failed to merge setup: %w", err)
		}
	}

	if setup.Empty() {
		return nil, fmt.Errorf("no setup found in %s", a.config.SetupPath)
	}
	if err := setup.Validate(); err != nil {
		return nil, fmt.Errorf("invalid setup: %w", err)
	}

	logger.Info("Setup loaded successfully.",
		"parameters", len(setup.Parameters),
		"benchmarks", len(setup.Benchmarks),
		"systematics", len(setup.Systematics),
	)
	return setup, nil
}

// sampleBenchmark resolves the benchmark events are generated at. It
// defaults to the first declared benchmark.
func (a *App) sampleBenchmark(setup *config.Setup) (*config.Benchmark, error) {
	if len(setup.Benchmarks) == 0 {
		return nil, errors.New("setup declares no benchmarks")
	}
	if a.config.SampleBenchmark == "" {
		return setup.Benchmarks[0], nil
	}
	bench, ok := setup.Benchmark(a.config.SampleBenchmark)
	if !ok {
		return nil, fmt.Errorf("sample benchmark %q is not declared", a.config.SampleBenchmark)
	}
	return bench, nil
}
