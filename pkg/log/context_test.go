package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxReturnsStoredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithLogger(context.Background(), logger)

	// Level methods must be chainable straight off the accessor.
	Ctx(ctx).Info().Str("k", "v").Msg("stored logger")

	out := buf.String()
	assert.Contains(t, out, `"k":"v"`)
	assert.Contains(t, out, "stored logger")
}

func TestCtxFallsBackToGlobal(t *testing.T) {
	l := Ctx(context.Background())
	require.NotNil(t, l)
	assert.Same(t, L(), l)

	// Chaining off the global accessor must work as well.
	L().Debug().Msg("global logger")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" Warning "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("nonsense"))
}
