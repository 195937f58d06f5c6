package convert

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// copyDir recursively copies srcDir into dstDir: directories are created
// if missing, files overwrite any file at the same relative path, entries
// already present only in dstDir are kept. Symlinks are read through.
func copyDir(srcDir string, dstDir string) error {
	return fs.WalkDir(os.DirFS(srcDir), ".", func(relPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dstDir, filepath.FromSlash(relPath))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(filepath.Join(srcDir, filepath.FromSlash(relPath)), target)
	})
}

func copyFile(srcPath string, dstPath string) error {
	info, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", srcPath, err)
	}

	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", srcPath, err)
	}

	err = os.MkdirAll(filepath.Dir(dstPath), 0755)
	if err != nil {
		return fmt.Errorf("error creating directory for %s: %w", dstPath, err)
	}

	err = os.WriteFile(dstPath, content, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("error writing %s: %w", dstPath, err)
	}

	return nil
}
