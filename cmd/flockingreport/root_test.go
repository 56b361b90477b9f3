package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ErrorsPrintedOnce(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{
		"run",
		"--config", filepath.Join(t.TempDir(), "missing.yml"),
		"--start", "2025-01-01",
		"--end", "2025-02-01",
	})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	// Setup errors are left to Execute; cobra itself prints nothing.
	assert.False(t, errors.Is(err, errReported))
	assert.Empty(t, stderr.String())
	assert.NotContains(t, stdout.String(), "Error:")
}
