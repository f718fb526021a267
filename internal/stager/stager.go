package stager

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Stage зеркалирует дерево sourceDir в workspaceDir/subpath.
//
// Каждый подкаталог воссоздаётся, каждый файл копируется с сохранением
// относительного пути, прав и mtime. Возвращает ErrSourceNotFound,
// если sourceDir не существует.
func Stage(sourceDir, workspaceDir, subpath string) error {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrSourceNotFound, sourceDir)
		}
		return fmt.Errorf("stat source: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrSourceNotDir, sourceDir)
	}

	destRoot := filepath.Join(workspaceDir, subpath)
	if err := os.MkdirAll(destRoot, 0o755); err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}

	return filepath.WalkDir(sourceDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destRoot, rel)

		if entry.IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return fmt.Errorf("create directory %s: %w", rel, err)
			}
			return nil
		}

		if err := copyFile(path, dest); err != nil {
			return fmt.Errorf("copy %s: %w", rel, err)
		}
		return nil
	})
}

// Remove удаляет workspace целиком.
func Remove(workspaceDir string) error {
	return os.RemoveAll(workspaceDir)
}

// copyFile копирует файл с сохранением прав и mtime.
func copyFile(src, dest string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Chtimes(dest, info.ModTime(), info.ModTime())
}
