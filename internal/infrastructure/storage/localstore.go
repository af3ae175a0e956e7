package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes uploaded objects to a flat directory keyed by their
// presigned object key.
type LocalStore struct {
	dir      string
	maxBytes int64
}

func NewLocalStore(dir string, maxSizeMB int) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &LocalStore{
		dir:      dir,
		maxBytes: int64(maxSizeMB) * 1024 * 1024,
	}, nil
}

// Save streams the body to disk. Writes beyond the size limit abort and the
// partial file is removed.
func (s *LocalStore) Save(key string, body io.Reader) error {
	path, err := s.safePath(key)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(body, s.maxBytes+1))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write upload: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(path)
		return fmt.Errorf("upload exceeds maximum size of %d bytes", s.maxBytes)
	}

	return nil
}

// Open returns a reader over a stored object.
func (s *LocalStore) Open(key string) (io.ReadCloser, error) {
	path, err := s.safePath(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("object not found: %s", key)
		}
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	return f, nil
}

func (s *LocalStore) Delete(key string) error {
	path, err := s.safePath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete upload: %w", err)
	}
	return nil
}

// safePath rejects keys that would escape the upload directory.
func (s *LocalStore) safePath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key")
	}
	return filepath.Join(s.dir, key), nil
}
