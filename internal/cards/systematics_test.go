package cards

import (
	"testing"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/stretchr/testify/require"
)

func scale(name string, sc config.ScaleKind, value string) *config.Systematic {
	return &config.Systematic{Name: name, Type: config.SystematicScale, Scale: sc, Value: value}
}

func pdf(name, value string) *config.Systematic {
	return &config.Systematic{Name: name, Type: config.SystematicPDF, Value: value}
}

func TestSystematicsArguments(t *testing.T) {
	testCases := []struct {
		name        string
		systematics []*config.Systematic
		expected    string
		expectErr   bool
	}{
		{
			name:     "none",
			expected: "",
		},
		{
			name:        "norm only",
			systematics: []*config.Systematic{{Name: "lumi", Type: config.SystematicNorm, Value: "0.1"}},
			expected:    "",
		},
		{
			name:        "mu and pdf",
			systematics: []*config.Systematic{scale("mu", config.ScaleMu, "0.5,2"), pdf("pdf", "CT10")},
			expected:    "['--mur=0.5,2', '--muf=0.5,2', '--together=mur,muf', '--dyn=-1', '--pdf=CT10']",
		},
		{
			name:        "mur and muf separately",
			systematics: []*config.Systematic{scale("r", config.ScaleMuR, "0.5,2"), scale("f", config.ScaleMuF, "0.5,2")},
			expected:    "['--mur=0.5,2', '--dyn=-1', '--muf=0.5,2', '--dyn=-1']",
		},
		{
			name:        "two mu",
			systematics: []*config.Systematic{scale("mu1", config.ScaleMu, "2"), scale("mu2", config.ScaleMu, "0.5")},
			expectErr:   true,
		},
		{
			name:        "mu after mur",
			systematics: []*config.Systematic{scale("r", config.ScaleMuR, "2"), scale("mu", config.ScaleMu, "0.5")},
			expectErr:   true,
		},
		{
			name:        "two mur",
			systematics: []*config.Systematic{scale("r1", config.ScaleMuR, "2"), scale("r2", config.ScaleMuR, "0.5")},
			expectErr:   true,
		},
		{
			name:        "muf after mu",
			systematics: []*config.Systematic{scale("mu", config.ScaleMu, "2"), scale("f", config.ScaleMuF, "0.5")},
			expectErr:   true,
		},
		{
			name:        "two pdf",
			systematics: []*config.Systematic{pdf("p1", "CT10"), pdf("p2", "NNPDF")},
			expectErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args, err := SystematicsArguments(tc.systematics)
			if tc.expectErr {
				require.ErrorIs(t, err, ErrDuplicateSystematic)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, args)
		})
	}
}

func TestRunsSystematics(t *testing.T) {
	require.False(t, RunsSystematics(nil))
	require.False(t, RunsSystematics([]*config.Systematic{{Type: config.SystematicNorm}}))
	require.True(t, RunsSystematics([]*config.Systematic{{Type: config.SystematicNorm}, pdf("p", "CT10")}))
	require.True(t, RunsSystematics([]*config.Systematic{scale("mu", config.ScaleMu, "2")}))
}
