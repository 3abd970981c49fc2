package cards

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
)

// Order is the perturbative order of the generated process.
type Order string

const (
	OrderLO  Order = "LO"
	OrderNLO Order = "NLO"
)

// ParseOrder accepts LO or NLO in any case.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToUpper(strings.TrimSpace(s))) {
	case OrderLO:
		return OrderLO, nil
	case OrderNLO:
		return OrderNLO, nil
	}
	return "", fmt.Errorf("%w %q: must be LO or NLO", ErrUnknownOrder, s)
}

// legacyKeys are the run card settings replaced by the systematics block.
var legacyKeys = map[string]struct{}{
	"use_syst":              {},
	"systematics_program":   {},
	"systematics_argument":  {},
	"systematics_arguments": {},
	"sys_scalefact":         {},
	"sys_alpsfact":          {},
	"sys_matchscale":        {},
	"sys_pdf":               {},
}

// setting is one `value = key` line of the systematics block.
type setting struct {
	key   string
	value string
}

// systematicsSettings returns the settings appended to the run card, in order.
func systematicsSettings(systematics []*config.Systematic) ([]setting, error) {
	if !RunsSystematics(systematics) {
		return []setting{{"use_syst", "False"}}, nil
	}

	args, err := SystematicsArguments(systematics)
	if err != nil {
		return nil, err
	}
	return []setting{
		{"use_syst", "True"},
		{"systematics_program", "systematics"},
		{"systematics_arguments", args},
	}, nil
}

// RenderRunCard comments out every legacy systematics setting of the
// template and, at LO, appends a block configuring the systematics program.
func RenderRunCard(ctx context.Context, template string, systematics []*config.Systematic, order Order) (string, error) {
	logger := ctxlog.FromContext(ctx)

	order, err := ParseOrder(string(order))
	if err != nil {
		return "", err
	}

	settings, err := systematicsSettings(systematics)
	if err != nil {
		return "", err
	}

	lines := strings.Split(template, "\n")
	commented := 0
	for i, line := range lines {
		parts := strings.Split(stripComment(line, "#", "!"), "=")
		if len(parts) < 2 {
			continue
		}
		key := strings.TrimSpace(parts[len(parts)-1])
		if _, ok := legacyKeys[key]; ok {
			lines[i] = fmt.Sprintf("# %s # Commented out by MadMiner", line)
			commented++
		}
	}
	logger.Debug("Commented out legacy systematics settings.", "count", commented)

	if order == OrderLO {
		lines = append(lines,
			"",
			"#*********************************************************************",
			"# MadMiner systematics setup                                         *",
			"#*********************************************************************",
		)
		for _, s := range settings {
			lines = append(lines, fmt.Sprintf("%s = %s", s.value, s.key))
		}
		lines = append(lines, "")
	} else {
		logger.Warn("Systematics block is only written at LO.", "order", order)
	}

	return strings.Join(lines, "\n"), nil
}

// ExportRunCard reads the run card template, renders it and writes it to outPath.
func ExportRunCard(ctx context.Context, templatePath, outPath string, systematics []*config.Systematic, order Order) error {
	template, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("failed to read run_card template: %w", err)
	}

	card, err := RenderRunCard(ctx, string(template), systematics, order)
	if err != nil {
		return err
	}
	if err := writeCard(outPath, card); err != nil {
		return err
	}

	ctxlog.FromContext(ctx).Info("Run card written.", "path", outPath, "order", order, "systematics", RunsSystematics(systematics))
	return nil
}
