package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedFile(t *testing.T) {
	fh := NewFileHandler(t.TempDir(), 1024)

	tests := []struct {
		filename string
		allowed  bool
	}{
		{"photo.png", true},
		{"photo.PNG", true},
		{"scan.jpg", true},
		{"scan.jpeg", true},
		{"anim.gif", true},
		{"old.bmp", true},
		{"modern.webp", true},
		{"notes.txt", false},
		{"script.sh", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.allowed, fh.AllowedFile(tt.filename))
		})
	}
}

func TestSaveUploadedFile(t *testing.T) {
	dir := t.TempDir()
	fh := NewFileHandler(dir, 1024)

	content := []byte("fake image bytes")
	path, name, err := fh.SaveUploadedFile(bytes.NewReader(content), "photo.png")
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(name, "photo_"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, saved)
}

func TestSaveUploadedFileUniqueNames(t *testing.T) {
	fh := NewFileHandler(t.TempDir(), 1024)

	_, first, err := fh.SaveUploadedFile(strings.NewReader("a"), "photo.png")
	require.NoError(t, err)
	_, second, err := fh.SaveUploadedFile(strings.NewReader("b"), "photo.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same original name must not collide")
}

func TestDeleteFile(t *testing.T) {
	fh := NewFileHandler(t.TempDir(), 1024)

	path, _, err := fh.SaveUploadedFile(strings.NewReader("payload"), "photo.png")
	require.NoError(t, err)

	require.NoError(t, fh.DeleteFile(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing file is not an error
	assert.NoError(t, fh.DeleteFile(path))
}
