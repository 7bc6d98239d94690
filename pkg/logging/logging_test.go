package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		" warn ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"Error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetup_JSONOutputRespectsLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	var buf bytes.Buffer
	Setup(&buf, "warn", false)

	log.Info().Msg("dropped")
	log.Warn().Int("frame", 3).Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, float64(3), entry["frame"])
}

func TestLogFilePath(t *testing.T) {
	start := time.Date(2024, 1, 15, 14, 30, 45, 0, time.UTC)

	got := LogFilePath(filepath.Join("var", "logs"), "hillclimb-term", start)

	assert.Equal(t, filepath.Join("var", "logs", "hillclimb-term.20240115_143045.log"), got)
}

func TestOpenLogFile_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	start := time.Date(2024, 1, 15, 14, 30, 45, 0, time.UTC)

	f, err := OpenLogFile(dir, "hillclimb", start)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	_, err = os.Stat(LogFilePath(dir, "hillclimb", start))
	assert.NoError(t, err)
}
