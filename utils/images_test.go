package utils

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageKey(t *testing.T) {
	key, contentType, err := ImageKey("gallery", "Final Over Celebration.JPG")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "gallery/final-over-celebration-"), key)
	assert.True(t, strings.HasSuffix(key, ".jpg"), key)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestImageKeyDefaultsFolder(t *testing.T) {
	key, _, err := ImageKey("", "logo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "misc/logo-"), key)
}

func TestImageKeyRejects(t *testing.T) {
	_, _, err := ImageKey("gallery", "notes.pdf")
	assert.ErrorContains(t, err, "unsupported format")

	_, _, err = ImageKey("../etc", "a.png")
	assert.ErrorContains(t, err, "unknown upload folder")
}

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	url, err := store.Save(context.Background(), "news/match-day-1234.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/news/match-day-1234.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "news", "match-day-1234.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

type failingReader struct{}

func (failingReader) Read(p []byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestLocalStoreSaveRemovesPartialFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	body := io.MultiReader(strings.NewReader("half an image"), failingReader{})
	_, err = store.Save(context.Background(), "gallery/broken-1234.png", "image/png", body)
	assert.ErrorContains(t, err, "connection reset")

	_, statErr := os.Stat(filepath.Join(dir, "gallery", "broken-1234.png"))
	assert.True(t, os.IsNotExist(statErr), "partial upload must not stay on disk")
}
