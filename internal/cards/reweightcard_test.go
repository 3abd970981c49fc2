package cards

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/stretchr/testify/require"
)

func TestRenderReweightCard(t *testing.T) {
	ctx, _ := testContext(t)

	card, err := RenderReweightCard(ctx, "default", newSetup())
	require.NoError(t, err)

	expected := strings.Join([]string{
		"# Reweight card generated by MadMiner",
		"",
		"# Global setup",
		"change output default",
		"change helicity False",
		"",
		"# MadMiner benchmark bench1",
		"launch --rwgt_name=bench1",
		"  set B 1 1.0",
		"  set B 2 3.0",
		"",
		"",
		"# MadMiner benchmark bench2",
		"launch --rwgt_name=bench2",
		"  set B 2 -2.0",
		"  set B 1 0.25",
		"",
	}, "\n")
	if diff := cmp.Diff(expected, card); diff != "" {
		t.Errorf("reweight card mismatch (-want +got):\n%s", diff)
	}
	require.NotContains(t, card, "--rwgt_name=default")
}

func TestRenderReweightCard_AppliesTransform(t *testing.T) {
	ctx, _ := testContext(t)
	setup := newSetup()
	setup.Parameters["a"].Transform = "theta / 2"

	card, err := RenderReweightCard(ctx, "bench2", setup)
	require.NoError(t, err)
	require.Contains(t, card, "  set B 1 0.25\n")
	require.Contains(t, card, "  set B 1 0.5\n")
	require.Equal(t, 2, strings.Count(card, "launch --rwgt_name="))
}

func TestRenderReweightCard_UnknownParameter(t *testing.T) {
	ctx, _ := testContext(t)
	setup := newSetup()
	setup.Benchmarks = append(setup.Benchmarks, &config.Benchmark{
		Name:   "broken",
		Values: []config.ParamValue{{Name: "missing", Value: 1}},
	})

	_, err := RenderReweightCard(ctx, "default", setup)
	require.ErrorIs(t, err, ErrUnknownParameter)
	require.ErrorContains(t, err, `benchmark "broken"`)
}

func TestExportReweightCard(t *testing.T) {
	ctx, _ := testContext(t)
	dir := t.TempDir()

	out, err := ExportReweightCard(ctx, "default", dir, "", newSetup())
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "Cards", "reweight_card.dat"), out)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(written), "# Reweight card generated by MadMiner\n"))

	custom := filepath.Join(dir, "custom", "rw.dat")
	out, err = ExportReweightCard(ctx, "default", dir, custom, newSetup())
	require.NoError(t, err)
	require.Equal(t, custom, out)
	require.FileExists(t, custom)
}
