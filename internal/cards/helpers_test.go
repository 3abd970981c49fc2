package cards

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/mgcards/internal/config"
	"github.com/specialistvlad/mgcards/internal/ctxlog"
)

// testContext returns a context carrying a debug logger that writes into buf.
func testContext(t *testing.T) (context.Context, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger), buf
}

// newSetup builds a two-parameter setup with three benchmarks.
func newSetup() *config.Setup {
	s := config.NewSetup()
	_ = s.AddParameter(&config.Parameter{Name: "a", LHABlock: "B", LHAID: 1})
	_ = s.AddParameter(&config.Parameter{Name: "b", LHABlock: "B", LHAID: 2})
	s.Benchmarks = []*config.Benchmark{
		{Name: "default", Values: []config.ParamValue{{Name: "a", Value: 0.5}, {Name: "b", Value: 1}}},
		{Name: "bench1", Values: []config.ParamValue{{Name: "a", Value: 1}, {Name: "b", Value: 3}}},
		{Name: "bench2", Values: []config.ParamValue{{Name: "b", Value: -2}, {Name: "a", Value: 0.25}}},
	}
	return s
}
