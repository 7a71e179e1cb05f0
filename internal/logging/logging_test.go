package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, Config{Level: "info", Session: "abc"})

	log.Component("ui").Info().Str("page", "products").Msg("page entered")
	log.Debug().Msg("dropped")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "abc", event["session"])
	assert.Equal(t, "ui", event["component"])
	assert.Equal(t, "products", event["page"])
	assert.Equal(t, "page entered", event["message"])
}

func TestLevelMethods(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, Config{Level: "debug"})

	log.Debug().Msg("d")
	log.Info().Msg("i")
	log.Warn().Msg("w")
	log.Error().Msg("e")

	var levels []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var event map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		levels = append(levels, event["level"].(string))
	}
	assert.Equal(t, []string{"debug", "info", "warn", "error"}, levels)
}

func TestNewWriterConsole(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, Config{Format: "console"})

	log.Warn().Msg("fixture issue")

	assert.Contains(t, buf.String(), "WRN")
	assert.Contains(t, buf.String(), "fixture issue")
}

func TestNewCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "stockdeck.log")

	log, err := New(Config{Path: path})
	require.NoError(t, err)
	log.Info().Msg("hello")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNewRejectsEmptyPath(t *testing.T) {
	_, err := New(Config{Path: "  "})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Info().Msg("ignored")
	assert.NoError(t, log.Close())
	Nop().Error().Msg("ignored")
}
