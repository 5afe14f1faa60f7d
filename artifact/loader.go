// SPDX-License-Identifier: MIT

package artifact

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Loader reads tier directories into collections. Every regular file is one
// artifact whose identifier is the file name without its extension.
// It uses an afero.Fs so tests can run against an in-memory filesystem.
type Loader struct {
	fs      afero.Fs
	baseDir string // dataset root; relative tier paths resolve against it
}

// NewLoader creates a loader over fs. Use afero.NewOsFs() for real
// datasets or afero.NewMemMapFs() for tests.
func NewLoader(fs afero.Fs, baseDir string) *Loader {
	return &Loader{
		fs:      fs,
		baseDir: baseDir,
	}
}

// NewOsLoader creates a Loader using the real operating system filesystem.
func NewOsLoader(baseDir string) *Loader {
	return NewLoader(afero.NewOsFs(), baseDir)
}

// Fs exposes the underlying filesystem.
func (l *Loader) Fs() afero.Fs { return l.fs }

// Resolve returns path joined onto the dataset root unless it is absolute.
func (l *Loader) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || l.baseDir == "" {
		return path
	}
	return filepath.Join(l.baseDir, path)
}

// LoadCollection loads every file under dir (recursively) as an artifact of
// the given kind. Hidden files and directories are skipped. With
// precomputed set, file contents are parsed as biterm files.
//
// Errors:
//   - ErrMissingDir when dir does not exist, ErrNotDir when it is a file.
//   - Any read failure, wrapped with the offending path.
func (l *Loader) LoadCollection(dir string, kind Kind, precomputed bool) (*Collection, error) {
	root := l.Resolve(dir)
	info, err := l.fs.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", root, ErrMissingDir)
		}
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("load %s: %w", root, ErrNotDir)
	}

	out := NewCollection()
	err = afero.Walk(l.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		name := info.Name()
		if path != root && strings.HasPrefix(name, ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		content, err := l.readFile(path)
		if err != nil {
			return fmt.Errorf("load artifact %s: %w", path, err)
		}
		id := strings.TrimSuffix(name, filepath.Ext(name))
		if precomputed {
			out.Add(ParsePrecomputed(id, kind, content))
		} else {
			out.Add(New(id, kind, content))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	return out, nil
}

func (l *Loader) readFile(path string) (string, error) {
	file, err := l.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	return string(content), nil
}
