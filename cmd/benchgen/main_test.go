package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgsRejectsWrongCount(t *testing.T) {
	_, err := parseArgs([]string{"1", "2"})
	assert.Error(t, err)
}

func TestParseArgsRejectsBadRanges(t *testing.T) {
	_, err := parseArgs([]string{"10", "5", "1", "0.1", "0.5", "0.1", "1", "out"})
	assert.Error(t, err)

	_, err = parseArgs([]string{"5", "10", "1", "0.5", "0.1", "0.1", "1", "out"})
	assert.Error(t, err)
}

func TestParseArgsAcceptsValidInput(t *testing.T) {
	cfg, err := parseArgs([]string{"5", "10", "5", "0.1", "0.5", "0.4", "2", "out"})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.minSize)
	assert.Equal(t, 10, cfg.maxSize)
	assert.Equal(t, 2, cfg.repetitions)
}

func TestRunWritesExpectedFileCount(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	code := run([]string{"4", "5", "1", "0.5", "0.5", "1", "2", dir})
	require.Equal(t, 0, code)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	// sizes {4,5} x densities {0.5} x repetitions 2 = 4 files
	assert.Len(t, entries, 4)
}

func TestRunReturnsOneOnBadArgs(t *testing.T) {
	assert.Equal(t, 1, run([]string{"bad"}))
}
