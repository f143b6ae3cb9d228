package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ExportDir keeps rendered exports under a single directory.
type ExportDir struct {
	root string
}

// NewExportDir creates root when missing.
func NewExportDir(root string) (*ExportDir, error) {
	if root == "" {
		root = "./exports"
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}
	return &ExportDir{root: root}, nil
}

// Root returns the directory exports are written to.
func (d *ExportDir) Root() string { return d.root }

// Write stores data as name and returns the written path. Names may not
// escape the export directory. The file is replaced atomically.
func (d *ExportDir) Write(name string, data []byte) (string, error) {
	path, err := d.resolve(name)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("publish export file: %w", err)
	}
	return path, nil
}

// Prune removes exports last modified before now minus maxAge and returns
// their names.
func (d *ExportDir) Prune(maxAge time.Duration, now time.Time) ([]string, error) {
	cutoff := now.Add(-maxAge)
	entries, err := os.ReadDir(d.root)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	removed := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return removed, fmt.Errorf("stat export: %w", err)
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(d.root, entry.Name())); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove export: %w", err)
		}
		removed = append(removed, entry.Name())
	}
	return removed, nil
}

func (d *ExportDir) resolve(name string) (string, error) {
	clean := filepath.Clean(name)
	if clean == "." || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid export name %q", name)
	}
	return filepath.Join(d.root, clean), nil
}
