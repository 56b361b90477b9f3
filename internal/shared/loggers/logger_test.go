package loggers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, closeFn, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.NoError(t, closeFn())
}

func TestNew_ErrorFileReceivesOnlyErrors(t *testing.T) {
	t.Parallel()

	errorFile := filepath.Join(t.TempDir(), "flockingreport.log")
	var stdout bytes.Buffer

	logger, closeFn, err := New(Options{Level: "debug", ErrorFile: errorFile, Output: &stdout})
	require.NoError(t, err)

	logger.Info().Msg("report sent")
	logger.Error().Msg("search execution failed")
	require.NoError(t, closeFn())

	assert.Contains(t, stdout.String(), "report sent")
	assert.Contains(t, stdout.String(), "search execution failed")

	content, err := os.ReadFile(errorFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "search execution failed")
	assert.NotContains(t, string(content), "report sent")
}

func TestNew_ErrorFileAppends(t *testing.T) {
	t.Parallel()

	errorFile := filepath.Join(t.TempDir(), "flockingreport.log")
	require.NoError(t, os.WriteFile(errorFile, []byte("previous\n"), 0o644))

	logger, closeFn, err := New(Options{Level: "info", ErrorFile: errorFile, Output: &bytes.Buffer{}})
	require.NoError(t, err)
	logger.Error().Msg("second failure")
	require.NoError(t, closeFn())

	content, err := os.ReadFile(errorFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "previous\n")
	assert.Contains(t, string(content), "second failure")
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "default json", format: "", expected: `"message":"report assembled"`},
		{name: "json", format: FormatJSON, expected: `"message":"report assembled"`},
		{name: "console", format: FormatConsole, expected: "INF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout bytes.Buffer
			logger, closeFn, err := New(Options{Level: "info", Format: tt.format, Output: &stdout})
			require.NoError(t, err)
			defer func() { _ = closeFn() }()

			logger.Info().Int("row_count", 3).Msg("report assembled")
			assert.Contains(t, stdout.String(), tt.expected)
			assert.Contains(t, stdout.String(), "report assembled")
		})
	}
}

func TestNew_ConsoleKeepsErrorFileJSON(t *testing.T) {
	t.Parallel()

	errorFile := filepath.Join(t.TempDir(), "flockingreport.log")
	var stdout bytes.Buffer

	logger, closeFn, err := New(Options{Level: "info", Format: FormatConsole, ErrorFile: errorFile, Output: &stdout})
	require.NoError(t, err)
	logger.Error().Msg("search execution failed")
	require.NoError(t, closeFn())

	assert.Contains(t, stdout.String(), "ERR")
	content, err := os.ReadFile(errorFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"level":"error"`)
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, closeFn, err := New(Options{Level: "info", Format: "xml"})
	require.Error(t, err)
	assert.NoError(t, closeFn())
}
