// Package output handles writing the rendered artifacts to disk.
// The offers page historically ships twice, as index.html and
// angebote.html, so the same content is reachable at both URLs.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes rendered output below a site root directory.
type Writer struct {
	Root string
}

// New creates a Writer targeting the given site root.
// If root is empty, it defaults to the current working directory.
func New(root string) (*Writer, error) {
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		root = wd
	}
	return &Writer{Root: root}, nil
}

// WritePage writes the identical page bytes to every given path,
// creating parent directories as needed. Each file is overwritten
// wholesale; there are no partial updates.
func (w *Writer) WritePage(data []byte, paths ...string) ([]string, error) {
	var written []string
	for _, p := range paths {
		full := filepath.Join(w.Root, p)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", full, err)
		}
		if err := os.WriteFile(full, data, 0644); err != nil {
			return written, fmt.Errorf("writing page %s: %w", full, err)
		}
		written = append(written, full)
	}
	return written, nil
}

// WriteArtifact writes one side artifact (report, preview, flyer).
func (w *Writer) WriteArtifact(name string, data []byte) (string, error) {
	full := filepath.Join(w.Root, name)
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", full, err)
	}
	if err := os.WriteFile(full, data, 0644); err != nil {
		return "", fmt.Errorf("writing artifact %s: %w", full, err)
	}
	return full, nil
}
