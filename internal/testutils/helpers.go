// Package testutils holds fixtures shared by the package tests.
package testutils

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/localvec/internal/config"
	"github.com/conneroisu/localvec/internal/logging"
)

// CreateTestFile writes content to dir/name and returns the path.
func CreateTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// CreateTestFiles writes each name/content pair into a fresh temporary
// directory and returns the paths sorted by name.
func CreateTestFiles(t *testing.T, files map[string]string) []string {
	t.Helper()
	dir := t.TempDir()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, CreateTestFile(t, dir, name, files[name]))
	}
	return paths
}

// CreateTestConfig returns a valid configuration with the given inline
// capacity and debug logging discarded.
func CreateTestConfig(capacity int) *config.Config {
	return &config.Config{
		Log: config.LogConfig{Level: "debug", Format: "text"},
		Vec: config.VecConfig{InlineCapacity: capacity},
		WC:  config.WCConfig{Locale: "en"},
	}
}

// TestLogger returns a logger that discards output unless LOCALVEC_TEST_LOG
// is set, in which case it writes debug logs to stderr.
func TestLogger() logging.Logger {
	if os.Getenv("LOCALVEC_TEST_LOG") == "" {
		return logging.Nop()
	}
	return logging.NewLogger(CreateTestConfig(0).LoggerConfig(os.Stderr))
}
