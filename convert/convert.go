// Package convert turns terminal-bench task directories into sandboxes
// task directories. Each task is built in a staging directory next to its
// destination and published with a single rename, so the output root never
// holds a partially written task.
package convert

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/programme-lv/taskconv/sbtask"
	"github.com/programme-lv/taskconv/tbtask"
)

// Converter converts one task directory at a time. Conversions of distinct
// task names against the same output root are independent (unique staging
// names, disjoint destinations); converting the same task name concurrently
// is not supported.
type Converter struct {
	rep Reporter
}

// NewConverter returns a Converter reporting through rep. A nil rep
// silences reporting.
func NewConverter(rep Reporter) *Converter {
	if rep == nil {
		rep = NopReporter{}
	}
	return &Converter{rep: rep}
}

// ConvertTask converts the task at srcTaskDir into outputRoot. The manifest
// is read before anything under outputRoot is touched, so a missing or
// malformed manifest leaves no trace. Any later failure removes the staging
// directory and leaves the destination as it was.
func (c *Converter) ConvertTask(srcTaskDir string, outputRoot string) error {
	taskName := filepath.Base(filepath.Clean(srcTaskDir))

	manifest, err := tbtask.ReadManifest(srcTaskDir)
	if err != nil {
		return err
	}

	staging := filepath.Join(outputRoot, ".staging-"+taskName+"-"+uuid.NewString())
	err = os.MkdirAll(staging, 0755)
	if err != nil {
		return fmt.Errorf("error creating staging directory: %w", err)
	}

	err = stageTask(staging, srcTaskDir, taskName, manifest)
	if err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	err = publish(staging, filepath.Join(outputRoot, taskName))
	if err != nil {
		_ = os.RemoveAll(staging)
		return err
	}

	return nil
}

func stageTask(staging string, srcTaskDir string, taskName string, m *tbtask.Manifest) error {
	task := sbtask.FromManifest(taskName, m)
	err := task.Store(staging)
	if err != nil {
		return err
	}

	dstEnv := filepath.Join(staging, sbtask.EnvironmentDirname)
	srcEnv := filepath.Join(srcTaskDir, tbtask.EnvironmentDirname)
	if info, err := os.Stat(srcEnv); err == nil && info.IsDir() {
		err = copyDir(srcEnv, dstEnv)
		if err != nil {
			return fmt.Errorf("error copying environment directory: %w", err)
		}
	} else {
		for _, fname := range []string{tbtask.DockerfileFilename, tbtask.ComposeFilename} {
			srcFile := filepath.Join(srcTaskDir, fname)
			if _, err := os.Stat(srcFile); errors.Is(err, fs.ErrNotExist) {
				continue
			}
			err = copyFile(srcFile, filepath.Join(dstEnv, fname))
			if err != nil {
				return fmt.Errorf("error copying %s: %w", fname, err)
			}
		}
	}

	for _, dirname := range []string{tbtask.SolutionDirname, tbtask.TestsDirname} {
		srcDir := filepath.Join(srcTaskDir, dirname)
		info, err := os.Stat(srcDir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("error reading %s directory: %w", dirname, err)
		}
		if !info.IsDir() {
			continue
		}
		err = copyDir(srcDir, filepath.Join(staging, dirname))
		if err != nil {
			return fmt.Errorf("error copying %s directory: %w", dirname, err)
		}
	}

	return nil
}

// publish moves a fully staged task into place. A pre-existing destination
// is renamed aside first and restored if the move fails, so a previously
// valid converted task survives a failed re-conversion. The side copy is
// removed only after the new task is in place.
func publish(staging string, dst string) error {
	side := ""
	if _, err := os.Stat(dst); err == nil {
		side = filepath.Join(filepath.Dir(dst), "."+filepath.Base(dst)+".old-"+uuid.NewString())
		err = os.Rename(dst, side)
		if err != nil {
			return fmt.Errorf("error moving previous task aside: %w", err)
		}
	}

	err := os.Rename(staging, dst)
	if err != nil {
		if side != "" {
			_ = os.Rename(side, dst)
		}
		return fmt.Errorf("error publishing task: %w", err)
	}

	if side != "" {
		_ = os.RemoveAll(side)
	}

	return nil
}
