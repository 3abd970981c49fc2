package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Run("returns embedded logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := slog.New(slog.NewTextHandler(buf, nil))
		ctx := WithLogger(context.Background(), logger)

		FromContext(ctx).Info("hello")
		require.Contains(t, buf.String(), "hello")
	})

	t.Run("falls back to default logger", func(t *testing.T) {
		require.Same(t, slog.Default(), FromContext(context.Background()))
	})
}
