package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// ErrUnencodable marks file content that is not valid UTF-8 text. Callers
// surface it with a prompt-simplification hint instead of a generic failure.
var ErrUnencodable = errors.New("file content is not valid UTF-8")

// Build stages the file map on disk under a root directory named by slug and
// returns the zipped tree. The staging directory is removed on every exit
// path.
func Build(files map[string]string, slug string) ([]byte, error) {
	for name, content := range files {
		if !utf8.ValidString(content) {
			return nil, fmt.Errorf("%w: %s", ErrUnencodable, name)
		}
	}

	stagingDir, err := os.MkdirTemp("", "sitegen-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}
	defer os.RemoveAll(stagingDir)

	root := filepath.Join(stagingDir, slug)
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create subdirectories for %s: %w", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write file %s: %w", name, err)
		}
	}

	return zipTree(stagingDir)
}

// zipTree zips every file below dir, entry names relative to dir.
func zipTree(dir string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	walk := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	}

	if err := filepath.WalkDir(dir, walk); err != nil {
		zw.Close()
		return nil, fmt.Errorf("failed to zip site files: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}
