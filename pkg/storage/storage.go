package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage saves uploaded files (product cover images, user photos) under a base directory.
type LocalStorage struct {
	basePath    string
	maxFileSize int64
}

// NewLocalStorage creates a local-disk storage rooted at basePath.
func NewLocalStorage(basePath string, maxFileSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: failed to create base directory %s: %w", basePath, err)
	}
	return &LocalStorage{basePath: basePath, maxFileSize: maxFileSize}, nil
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SaveImage stores an uploaded image under basePath/subdir and returns the
// relative path for persisting on the owning record.
func (s *LocalStorage) SaveImage(file *multipart.FileHeader, subdir string) (string, error) {
	if file.Size > s.maxFileSize {
		return "", fmt.Errorf("storage: file exceeds maximum size of %d bytes", s.maxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("storage: unsupported image type %q", ext)
	}

	dir := filepath.Join(s.basePath, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: failed to create directory %s: %w", dir, err)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("storage: failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("storage: failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("storage: failed to write %s: %w", dst, err)
	}

	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// Delete removes a previously stored file. Missing files are not an error.
func (s *LocalStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// BasePath returns the storage root, used for serving static files.
func (s *LocalStorage) BasePath() string {
	return s.basePath
}
