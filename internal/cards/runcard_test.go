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

const runCardTemplate = `#*********************************************************************
# Run card
#*********************************************************************
  10000 = nevents ! Number of unweighted events requested
  True  = use_syst      ! Enable systematics studies
  systematics = systematics_program ! none, systematics
  ['--mur=0.5'] = systematics_arguments !
  1.0 = sys_scalefact # comment
  None = sys_alpsfact
  auto = sys_matchscale
  NNPDF = sys_pdf
  x = systematics_argument
  # use_syst = already a comment
  1 = lpp1 ! use_syst = in a comment
`

var legacyLines = []string{
	"  True  = use_syst      ! Enable systematics studies",
	"  systematics = systematics_program ! none, systematics",
	"  ['--mur=0.5'] = systematics_arguments !",
	"  1.0 = sys_scalefact # comment",
	"  None = sys_alpsfact",
	"  auto = sys_matchscale",
	"  NNPDF = sys_pdf",
	"  x = systematics_argument",
}

func TestRenderRunCard_NoSystematics(t *testing.T) {
	ctx, _ := testContext(t)

	card, err := RenderRunCard(ctx, runCardTemplate, nil, OrderLO)
	require.NoError(t, err)

	for _, line := range legacyLines {
		require.Contains(t, card, "\n# "+line+" # Commented out by MadMiner\n")
	}
	require.Contains(t, card, "\n  10000 = nevents ! Number of unweighted events requested\n")
	require.Contains(t, card, "\n  # use_syst = already a comment\n")
	require.Contains(t, card, "\n  1 = lpp1 ! use_syst = in a comment\n")

	expectedTail := strings.Join([]string{
		"",
		"",
		"#*********************************************************************",
		"# MadMiner systematics setup                                         *",
		"#*********************************************************************",
		"False = use_syst",
		"",
	}, "\n")
	require.True(t, strings.HasSuffix(card, expectedTail), "unexpected tail:\n%s", card)
	require.Equal(t, 8, strings.Count(card, "# Commented out by MadMiner"))
}

func TestRenderRunCard_WithSystematics(t *testing.T) {
	ctx, _ := testContext(t)
	systematics := []*config.Systematic{
		scale("mu", config.ScaleMu, "0.5,2"),
		pdf("pdf", "CT10"),
	}

	card, err := RenderRunCard(ctx, "  1 = lpp1\n", systematics, OrderLO)
	require.NoError(t, err)

	expected := strings.Join([]string{
		"  1 = lpp1",
		"",
		"",
		"#*********************************************************************",
		"# MadMiner systematics setup                                         *",
		"#*********************************************************************",
		"True = use_syst",
		"systematics = systematics_program",
		"['--mur=0.5,2', '--muf=0.5,2', '--together=mur,muf', '--dyn=-1', '--pdf=CT10'] = systematics_arguments",
		"",
	}, "\n")
	if diff := cmp.Diff(expected, card); diff != "" {
		t.Errorf("run card mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderRunCard_NLO(t *testing.T) {
	ctx, logs := testContext(t)

	card, err := RenderRunCard(ctx, runCardTemplate, []*config.Systematic{pdf("pdf", "CT10")}, OrderNLO)
	require.NoError(t, err)
	require.NotContains(t, card, "MadMiner systematics setup")
	require.Equal(t, 8, strings.Count(card, "# Commented out by MadMiner"))
	require.Contains(t, logs.String(), "Systematics block is only written at LO.")
}

func TestRenderRunCard_Errors(t *testing.T) {
	ctx, _ := testContext(t)

	_, err := RenderRunCard(ctx, runCardTemplate, nil, Order("NNLO"))
	require.ErrorIs(t, err, ErrUnknownOrder)

	dup := []*config.Systematic{scale("mu", config.ScaleMu, "2"), scale("mu2", config.ScaleMu, "2")}
	_, err = RenderRunCard(ctx, runCardTemplate, dup, OrderLO)
	require.ErrorIs(t, err, ErrDuplicateSystematic)
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder(" lo ")
	require.NoError(t, err)
	require.Equal(t, OrderLO, o)

	o, err = ParseOrder("NLO")
	require.NoError(t, err)
	require.Equal(t, OrderNLO, o)

	_, err = ParseOrder("")
	require.ErrorIs(t, err, ErrUnknownOrder)
}

func TestExportRunCard(t *testing.T) {
	ctx, _ := testContext(t)
	dir := t.TempDir()
	templatePath := filepath.Join(dir, "run_card_template.dat")
	require.NoError(t, os.WriteFile(templatePath, []byte(runCardTemplate), 0o600))

	out := filepath.Join(dir, "Cards", "run_card.dat")
	require.NoError(t, ExportRunCard(ctx, templatePath, out, nil, OrderLO))

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(written), "False = use_syst")

	err = ExportRunCard(ctx, filepath.Join(dir, "missing"), out, nil, OrderLO)
	require.ErrorContains(t, err, "failed to read run_card template")
}
