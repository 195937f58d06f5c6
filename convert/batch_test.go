package convert_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/programme-lv/taskconv/convert"
)

type recordingReporter struct {
	successes []string
	failures  []string
	summaries []convert.Summary
}

func (r *recordingReporter) Success(taskName string) {
	r.successes = append(r.successes, taskName)
}

func (r *recordingReporter) Failure(taskName string, err error) {
	r.failures = append(r.failures, taskName)
}

func (r *recordingReporter) Summary(s convert.Summary) {
	r.summaries = append(r.summaries, s)
}

func TestConvertAllSummary(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := t.TempDir()

	// five tasks, two of them without a manifest
	writeTask(t, inputRoot, "alpha", "instruction: a\n", nil)
	writeTask(t, inputRoot, "echo", "", nil)
	writeTask(t, inputRoot, "bravo", "instruction: b\n", nil)
	writeTask(t, inputRoot, "delta", "instruction: d\n", nil)
	writeTask(t, inputRoot, "charlie", "", nil)

	rep := &recordingReporter{}
	c := convert.NewConverter(rep)

	summary, err := c.ConvertAll(inputRoot, outputRoot)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 3, summary.Succeeded)
	assert.Equal(t, []string{"charlie", "echo"}, summary.Failed)

	assert.Equal(t, []string{"alpha", "bravo", "delta"}, rep.successes)
	assert.ElementsMatch(t, []string{"charlie", "echo"}, rep.failures)
	require.Len(t, rep.summaries, 1)
	assert.Equal(t, summary, rep.summaries[0])

	// only the converted tasks exist under the output root
	entries, err := os.ReadDir(outputRoot)
	require.NoError(t, err)
	names := []string{}
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"alpha", "bravo", "delta"}, names)
}

func TestConvertAllSkipsPlainFiles(t *testing.T) {
	inputRoot := t.TempDir()
	outputRoot := t.TempDir()

	writeTask(t, inputRoot, "t1", "instruction: do X\n", nil)
	require.NoError(t, os.WriteFile(filepath.Join(inputRoot, "README.md"), []byte("not a task"), 0644))

	c := convert.NewConverter(nil)
	summary, err := c.ConvertAll(inputRoot, outputRoot)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Empty(t, summary.Failed)
}

func TestConvertAllInvalidInputRoot(t *testing.T) {
	outputRoot := t.TempDir()

	c := convert.NewConverter(nil)

	_, err := c.ConvertAll(filepath.Join(t.TempDir(), "does-not-exist"), outputRoot)
	require.Error(t, err)

	filePath := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))
	_, err = c.ConvertAll(filePath, outputRoot)
	require.Error(t, err)
}
