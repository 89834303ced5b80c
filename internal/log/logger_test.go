// SPDX-License-Identifier: MIT

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogger() {
	once = sync.Once{}
}

func TestConfigureAndComponentLogger(t *testing.T) {
	resetLogger()
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "jvsync-test", Version: "dev"})

	logger := WithComponent("fetch")
	logger.Info().Str("event", "cycle.start").Msg("starting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "jvsync-test", entry["service"])
	assert.Equal(t, "dev", entry["version"])
	assert.Equal(t, "fetch", entry["component"])
	assert.Equal(t, "cycle.start", entry["event"])
	assert.Equal(t, "starting", entry["message"])
}

func TestConfigureIsOnce(t *testing.T) {
	resetLogger()
	var first, second bytes.Buffer
	Configure(Config{Output: &first, Service: "one"})
	Configure(Config{Output: &second, Service: "two"})

	base := Base()
	base.Info().Msg("hello")

	assert.NotEmpty(t, first.Bytes(), "first Configure wins")
	assert.Empty(t, second.Bytes(), "second Configure must be a no-op")
}

func TestContextCorrelation(t *testing.T) {
	resetLogger()
	ctx := ContextWithCycleID(context.Background(), "abc-123")
	ctx = ContextWithTask(ctx, "20240601/RACE")

	assert.Equal(t, "abc-123", CycleIDFromContext(ctx))
	assert.Equal(t, "20240601/RACE", TaskFromContext(ctx))
	assert.Empty(t, CycleIDFromContext(context.Background()))

	var buf bytes.Buffer
	Configure(Config{Output: &buf})
	logger := WithComponentFromContext(ctx, "harness")
	logger.Info().Msg("child spawned")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["cycle_id"])
	assert.Equal(t, "20240601/RACE", entry["task"])
	assert.Equal(t, "harness", entry["component"])
}
