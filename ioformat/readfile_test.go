package ioformat

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFileDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()

	clqPath := filepath.Join(dir, "sample.clq")
	require.NoError(t, os.WriteFile(clqPath, []byte(sampleDIMACS), 0o644))
	g, err := ReadFile(clqPath)
	require.NoError(t, err)
	assert.Equal(t, clqPath, g.Path)
	assert.Equal(t, 3, g.NV)

	mtxPath := filepath.Join(dir, "sample.mtx")
	require.NoError(t, os.WriteFile(mtxPath, []byte(sampleMTX), 0o644))
	g2, err := ReadFile(mtxPath)
	require.NoError(t, err)
	assert.Equal(t, 3, g2.NV)

	edgesPath := filepath.Join(dir, "sample.edges")
	require.NoError(t, os.WriteFile(edgesPath, []byte("1 2\n2 3\n"), 0o644))
	g3, err := ReadFile(edgesPath)
	require.NoError(t, err)
	assert.Equal(t, 3, g3.NV)
}

func TestReadFileUnknownExtensionErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.unknown")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrUnknownExtension)
}
