package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Summary aggregates the outcome of a batch run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    []string // task names, sorted
}

// ConvertAll converts every task directory under inputRoot into outputRoot,
// one task at a time in lexical order. Per-task failures are reported and
// recorded in the summary; the only fatal error is an unreadable input
// root, which aborts before any task is processed.
func (c *Converter) ConvertAll(inputRoot string, outputRoot string) (Summary, error) {
	info, err := os.Stat(inputRoot)
	if err != nil {
		return Summary{}, fmt.Errorf("error reading input root: %w", err)
	}
	if !info.IsDir() {
		return Summary{}, fmt.Errorf("input root is not a directory: %s", inputRoot)
	}

	entries, err := os.ReadDir(inputRoot)
	if err != nil {
		return Summary{}, fmt.Errorf("error reading input root: %w", err)
	}

	s := Summary{Failed: []string{}}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		s.Total++

		err = c.ConvertTask(filepath.Join(inputRoot, entry.Name()), outputRoot)
		if err != nil {
			s.Failed = append(s.Failed, entry.Name())
			c.rep.Failure(entry.Name(), err)
			continue
		}

		s.Succeeded++
		c.rep.Success(entry.Name())
	}

	sort.Strings(s.Failed)
	c.rep.Summary(s)

	return s, nil
}
