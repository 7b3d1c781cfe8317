package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToInfo(t *testing.T) {
	logger := New(Config{Level: "not-a-level"})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger = New(Config{})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
}

func TestNewParsesLevel(t *testing.T) {
	logger := New(Config{Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestTraceIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	ctx = ContextWithTraceID(ctx, "trace-123")
	assert.Equal(t, "trace-123", TraceIDFromContext(ctx))
	assert.Equal(t, "trace-123", GetOrGenerateTraceID(ctx))
}

func TestGetOrGenerateTraceIDGenerates(t *testing.T) {
	id := GetOrGenerateTraceID(context.Background())
	require.NotEmpty(t, id)

	// ULIDs are 26 characters.
	assert.Len(t, id, 26)
}
