package cards

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
)

// marker is appended to every line rewritten in a parameter card.
const marker = "# MadMiner"

// SubstituteParamCard rewrites the value of every entry in the template.
//
// Two block conventions are recognised. Inside a `block <name>` section an
// entry is a two-token line `<id> <value>`. Outside of it, a three-token line
// `<block> <id> <value>` (for example DECAY lines) addresses the value
// directly. Block names compare case-insensitively and everything after `#`
// is ignored while matching.
func SubstituteParamCard(ctx context.Context, template string, entries []Entry) (string, error) {
	if len(entries) == 0 {
		return template, nil
	}
	logger := ctxlog.FromContext(ctx)
	lines := splitLines(template)

	for _, entry := range entries {
		if !substituteEntry(ctx, lines, entry) {
			return "", fmt.Errorf("%w: block %s, id %d", ErrLHAIDNotFound, entry.Block, entry.ID)
		}
		logger.Debug("Substituted parameter card entry.", "block", entry.Block, "id", entry.ID, "value", entry.Value)
	}

	return strings.Join(lines, "\n"), nil
}

// substituteEntry replaces the first line matching entry in place.
func substituteEntry(ctx context.Context, lines []string, entry Entry) bool {
	logger := ctxlog.FromContext(ctx)
	block := strings.ToLower(entry.Block)
	currentBlock := ""

	for i, line := range lines {
		fields := strings.Fields(stripComment(line, "#"))

		switch {
		case len(fields) == 2 && strings.ToLower(fields[0]) == "block":
			currentBlock = strings.ToLower(fields[1])

		case len(fields) == 2 && block == currentBlock:
			id, err := strconv.Atoi(fields[0])
			if err != nil {
				logger.Debug("Skipping entry with non-integer id.", "line", i+1, "token", fields[0])
				continue
			}
			if id == entry.ID {
				lines[i] = fmt.Sprintf("    %d    %s    %s", entry.ID, formatValue(entry.Value), marker)
				return true
			}

		case len(fields) == 3 && strings.ToLower(fields[0]) == block:
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				logger.Debug("Skipping entry with non-integer id.", "line", i+1, "token", fields[1])
				continue
			}
			currentBlock = ""
			if id == entry.ID {
				lines[i] = fmt.Sprintf("%s    %d    %s    %s", entry.Block, entry.ID, formatValue(entry.Value), marker)
				return true
			}
		}
	}
	return false
}

// RenderParamCard sets every parameter of the benchmark in the template.
func RenderParamCard(ctx context.Context, template string, benchmark *config.Benchmark, setup *config.Setup) (string, error) {
	entries, err := entriesFor(setup, benchmark)
	if err != nil {
		return "", err
	}
	return SubstituteParamCard(ctx, template, entries)
}

// ExportParamCard reads the template, renders it for the benchmark and
// writes the result. When outPath is empty the card goes to
// <processDir>/Cards/param_card.dat.
func ExportParamCard(ctx context.Context, templatePath, processDir, outPath string, benchmark *config.Benchmark, setup *config.Setup) (string, error) {
	logger := ctxlog.FromContext(ctx)

	template, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read param_card template: %w", err)
	}

	card, err := RenderParamCard(ctx, string(template), benchmark, setup)
	if err != nil {
		return "", err
	}

	if outPath == "" {
		outPath = filepath.Join(processDir, "Cards", "param_card.dat")
	}
	if err := writeCard(outPath, card); err != nil {
		return "", err
	}

	logger.Info("Parameter card written.", "benchmark", benchmark.Name, "path", outPath)
	return outPath, nil
}

// writeCard writes a card, creating its directory if needed.
func writeCard(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
