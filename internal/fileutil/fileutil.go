// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// SiblingPath returns path with its extension replaced by ext, keeping
// the same directory and base name. ext should include the leading dot.
func SiblingPath(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// WithDir relocates path into dir, keeping the base name; an empty dir
// leaves the path unchanged.
func WithDir(path, dir string) string {
	if dir == "" {
		return path
	}
	return filepath.Join(dir, filepath.Base(path))
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
