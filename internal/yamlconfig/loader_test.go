package yamlconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/stretchr/testify/require"
)

const setupYAML = `
parameters:
  CWL2:
    lha_block: dim6
    lha_id: 2
    transform: theta / 16.52
    range: [-20, 20]
  CPWL2:
    lha_block: dim6
    lha_id: 5
    max_power: 4
benchmarks:
  sm:
    CWL2: 0
    CPWL2: 0
  w:
    CPWL2: 0.5
    CWL2: 15.2
systematics:
  mu:
    type: Scale
    scale: MU
    value: "0.5,2"
  pdf:
    type: pdf
    value: CT10
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	// No logger in the context: the loader falls back to slog.Default.
	setup, err := NewLoader().Load(context.Background(), writeFile(t, setupYAML))
	require.NoError(t, err)

	require.Equal(t, []string{"CWL2", "CPWL2"}, setup.ParamOrder)
	require.Equal(t, "theta / 16.52", setup.Parameters["CWL2"].Transform)
	require.Equal(t, []float64{-20, 20}, setup.Parameters["CWL2"].Range)
	require.Equal(t, config.DefaultMaxPower, setup.Parameters["CWL2"].MaxPower)
	require.Equal(t, 4, setup.Parameters["CPWL2"].MaxPower)

	require.Len(t, setup.Benchmarks, 2)
	require.Equal(t, []config.ParamValue{
		{Name: "CPWL2", Value: 0.5},
		{Name: "CWL2", Value: 15.2},
	}, setup.Benchmarks[1].Values)

	require.Equal(t, []*config.Systematic{
		{Name: "mu", Type: config.SystematicScale, Scale: config.ScaleMu, Value: "0.5,2"},
		{Name: "pdf", Type: config.SystematicPDF, Value: "CT10"},
	}, setup.Systematics)
	require.NoError(t, setup.Validate())
}

func TestLoader_EmptySections(t *testing.T) {
	setup, err := NewLoader().Load(context.Background(), writeFile(t, "parameters:\nbenchmarks:\n"))
	require.NoError(t, err)
	require.True(t, setup.Empty())
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		content   string
		expectErr string
	}{
		{
			name:      "invalid yaml",
			content:   "parameters: [",
			expectErr: "failed to parse YAML",
		},
		{
			name:      "parameters not a mapping",
			content:   "parameters:\n  - a\n",
			expectErr: "parameters must be a mapping",
		},
		{
			name:      "missing lha_id",
			content:   "parameters:\n  a:\n    lha_block: b\n",
			expectErr: `parameter "a": lha_id is required`,
		},
		{
			name:      "non numeric value",
			content:   "benchmarks:\n  b:\n    a: abc\n",
			expectErr: `benchmark "b", parameter "a"`,
		},
		{
			name:      "duplicate benchmark",
			content:   "benchmarks:\n  b:\n    a: 1\n  b:\n    a: 2\n",
			expectErr: "b",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLoader().Load(context.Background(), writeFile(t, tc.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.expectErr)
		})
	}
}
