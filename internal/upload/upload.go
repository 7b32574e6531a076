// Package upload owns the lifecycle of product image files on disk.
package upload

import (
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"shopapi/internal/apperr"
)

// MaxImageBytes is the upload size cap.
const MaxImageBytes = 5 << 20 // 5 MiB

var allowedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Manager stores, replaces and removes uploaded images under a fixed
// directory. Stored paths are slash-separated and relative to the process
// working directory, so the same string works for the DB column, the
// static file route and os.Remove.
type Manager struct {
	Dir      string
	MaxBytes int64
	log      *zap.Logger
}

func NewManager(dir string, log *zap.Logger) *Manager {
	return &Manager{Dir: dir, MaxBytes: MaxImageBytes, log: log}
}

// Store validates and writes an uploaded image, returning its storage path.
// Non-image content and files over the size cap are rejected.
func (m *Manager) Store(fh *multipart.FileHeader) (string, error) {
	if fh.Size > m.MaxBytes {
		return "", apperr.Upload("File too large")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return "", apperr.Upload("Only image files are allowed")
	}

	src, err := fh.Open()
	if err != nil {
		return "", apperr.Internal(err)
	}
	defer src.Close()

	// sniff the actual content, the extension alone is client-controlled
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", apperr.Internal(err)
	}
	if !strings.HasPrefix(http.DetectContentType(head[:n]), "image/") {
		return "", apperr.Upload("Only image files are allowed")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", apperr.Internal(err)
	}

	if err := os.MkdirAll(m.Dir, 0o755); err != nil {
		return "", apperr.Internal(err)
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixNano(), rand.IntN(1_000_000_000), ext)
	dst := filepath.Join(m.Dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", apperr.Internal(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", apperr.Internal(err)
	}

	return filepath.ToSlash(dst), nil
}

// Replace stores the new file first, then removes the old one best-effort.
// A leftover old file is a leak, not a correctness problem, so removal
// failures are only logged.
func (m *Manager) Replace(oldPath string, fh *multipart.FileHeader) (string, error) {
	newPath, err := m.Store(fh)
	if err != nil {
		return "", err
	}
	m.Remove(oldPath)
	return newPath, nil
}

// Remove deletes the file at path if it exists. Absence is tolerated.
func (m *Manager) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(filepath.FromSlash(path)); err != nil && !os.IsNotExist(err) {
		m.log.Warn("failed to remove upload", zap.String("path", path), zap.Error(err))
	}
}
