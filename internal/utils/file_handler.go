package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions are the upload formats the decoder understands
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// FileHandler manages uploaded files in a scratch directory. Every saved
// file is expected to be deleted by the caller once processing finishes,
// success or not.
type FileHandler struct {
	uploadDir string
	maxSize   int64
}

// NewFileHandler creates a file handler rooted at uploadDir
func NewFileHandler(uploadDir string, maxSize int64) *FileHandler {
	return &FileHandler{
		uploadDir: uploadDir,
		maxSize:   maxSize,
	}
}

// MaxSize returns the upload size ceiling in bytes
func (fh *FileHandler) MaxSize() int64 {
	return fh.maxSize
}

// AllowedFile reports whether the filename has an accepted extension
func (fh *FileHandler) AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SaveUploadedFile writes the upload under a unique name and returns its
// path and generated filename
func (fh *FileHandler) SaveUploadedFile(src io.Reader, originalName string) (string, string, error) {
	if err := os.MkdirAll(fh.uploadDir, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	uniqueName := fmt.Sprintf("%s_%s%s", name, uuid.New().String()[:8], ext)
	path := filepath.Join(fh.uploadDir, uniqueName)

	dst, err := os.Create(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path, uniqueName, nil
}

// DeleteFile removes a previously saved upload. Missing files are fine.
func (fh *FileHandler) DeleteFile(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
