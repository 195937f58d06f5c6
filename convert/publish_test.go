package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReplacesPreviousTask(t *testing.T) {
	outputRoot := t.TempDir()

	dst := filepath.Join(outputRoot, "t1")
	require.NoError(t, os.MkdirAll(dst, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "old.txt"), []byte("old"), 0644))

	staging := filepath.Join(outputRoot, ".staging-t1-test")
	require.NoError(t, os.MkdirAll(staging, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "new.txt"), []byte("new"), 0644))

	require.NoError(t, publish(staging, dst))

	content, err := os.ReadFile(filepath.Join(dst, "new.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	_, err = os.Stat(filepath.Join(dst, "old.txt"))
	assert.True(t, os.IsNotExist(err))

	// neither the staging dir nor the side copy of the old task remain
	entries, err := os.ReadDir(outputRoot)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].Name())
}

func TestPublishRestoresPreviousTaskOnFailure(t *testing.T) {
	outputRoot := t.TempDir()

	dst := filepath.Join(outputRoot, "t1")
	require.NoError(t, os.MkdirAll(dst, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dst, "old.txt"), []byte("old"), 0644))

	// a staging path that does not exist forces the publish rename to fail
	staging := filepath.Join(outputRoot, ".staging-t1-missing")

	err := publish(staging, dst)
	require.Error(t, err)

	content, err := os.ReadFile(filepath.Join(dst, "old.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(content))

	entries, err := os.ReadDir(outputRoot)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].Name())
}

func TestPublishFreshDestination(t *testing.T) {
	outputRoot := t.TempDir()

	staging := filepath.Join(outputRoot, ".staging-t1-test")
	require.NoError(t, os.MkdirAll(staging, 0755))

	require.NoError(t, publish(staging, filepath.Join(outputRoot, "t1")))

	entries, err := os.ReadDir(outputRoot)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "t1", entries[0].Name())
}
