package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore writes files below a directory. The API serves that directory at baseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: abs, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir is the absolute directory files are written to.
func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Upload(ctx context.Context, namespace, path string, r io.Reader, _ string) error {
	dst, err := s.resolve(namespace, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o640)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return err
	}
	return f.Close()
}

func (s *LocalStore) PublicURL(namespace, path string) string {
	return s.baseURL + "/" + namespace + "/" + path
}

// resolve keeps the destination inside the upload directory.
func (s *LocalStore) resolve(namespace, path string) (string, error) {
	if namespace == "" || path == "" {
		return "", ErrInvalidPath
	}
	dst := filepath.Join(s.dir, namespace, path)
	if !strings.HasPrefix(dst, s.dir+string(filepath.Separator)) {
		return "", ErrInvalidPath
	}
	return dst, nil
}
