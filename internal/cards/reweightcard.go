package cards

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
)

var reweightHeader = []string{
	"# Reweight card generated by MadMiner",
	"",
	"# Global setup",
	"change output default",
	"change helicity False",
}

// RenderReweightCard generates a reweight card with one launch block per
// benchmark, skipping the benchmark the events are sampled from.
func RenderReweightCard(ctx context.Context, sampleBenchmark string, setup *config.Setup) (string, error) {
	logger := ctxlog.FromContext(ctx)
	lines := append([]string(nil), reweightHeader...)

	for _, benchmark := range setup.Benchmarks {
		if benchmark.Name == sampleBenchmark {
			continue
		}

		lines = append(lines,
			"",
			"# MadMiner benchmark "+benchmark.Name,
			"launch --rwgt_name="+benchmark.Name,
		)

		entries, err := entriesFor(setup, benchmark)
		if err != nil {
			return "", err
		}
		for _, e := range entries {
			lines = append(lines, fmt.Sprintf("  set %s %d %s", e.Block, e.ID, formatValue(e.Value)))
		}

		lines = append(lines, "")
		logger.Debug("Added reweighting block.", "benchmark", benchmark.Name, "parameters", len(entries))
	}

	return strings.Join(lines, "\n"), nil
}

// ExportReweightCard renders the reweight card and writes it. When outPath
// is empty the card goes to <processDir>/Cards/reweight_card.dat.
func ExportReweightCard(ctx context.Context, sampleBenchmark, processDir, outPath string, setup *config.Setup) (string, error) {
	card, err := RenderReweightCard(ctx, sampleBenchmark, setup)
	if err != nil {
		return "", err
	}

	if outPath == "" {
		outPath = filepath.Join(processDir, "Cards", "reweight_card.dat")
	}
	if err := writeCard(outPath, card); err != nil {
		return "", err
	}

	ctxlog.FromContext(ctx).Info("Reweight card written.", "sample_benchmark", sampleBenchmark, "path", outPath)
	return outPath, nil
}
