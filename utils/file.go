package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStore writes images under Dir and serves them from URLPrefix.
type LocalStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to ensure upload dir %s: %w", dir, err)
	}
	return &LocalStore{Dir: dir, URLPrefix: "/uploads"}, nil
}

func (s *LocalStore) Save(_ context.Context, key, _ string, body io.Reader) (string, error) {
	destPath := filepath.Join(s.Dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return "", err
	}

	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", destPath, err)
	}

	if _, err := io.Copy(dst, body); err != nil {
		dst.Close()
		os.Remove(destPath)
		return "", fmt.Errorf("failed to write %s: %w", destPath, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(destPath)
		return "", fmt.Errorf("failed to close %s: %w", destPath, err)
	}
	return path.Join(s.URLPrefix, key), nil
}
