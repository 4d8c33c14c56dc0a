package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestNew(t *testing.T) {
	t.Run("JSON format writes one object per record", func(t *testing.T) {
		// Given: a json logger at info level
		var buf bytes.Buffer
		logger := New(&buf, "info", FormatJSON)

		// When: logging a record with attributes
		logger.With("component", "console").Info("game finished", "outcome", "draw")

		// Then: the record is valid JSON with every attribute
		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "game finished", record["msg"])
		assert.Equal(t, "console", record["component"])
		assert.Equal(t, "draw", record["outcome"])
	})

	t.Run("Text format goes through the console handler", func(t *testing.T) {
		// Given: a text logger at debug level
		var buf bytes.Buffer
		logger := New(&buf, "debug", FormatText)

		// When: logging a debug record
		logger.Debug("move accepted", "row", 1)

		// Then: the message, prefix and attribute are printed
		out := buf.String()
		assert.Contains(t, out, "move accepted")
		assert.Contains(t, out, "tictactoe")
		assert.Contains(t, out, "row=1")
	})

	t.Run("Records below the level are dropped", func(t *testing.T) {
		for _, format := range []string{FormatJSON, FormatText} {
			// Given: a logger at warn level
			var buf bytes.Buffer
			logger := New(&buf, "warn", format)

			// When: logging below the threshold
			logger.Info("ignored")
			logger.Debug("ignored")

			// Then: nothing is written
			assert.Empty(t, buf.String(), format)
		}
	})
}
