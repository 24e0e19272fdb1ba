package utils

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// MaxImageSize caps a single uploaded image.
const MaxImageSize = 10 * 1024 * 1024

var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

var uploadFolders = map[string]bool{
	"hero":    true,
	"news":    true,
	"players": true,
	"gallery": true,
	"misc":    true,
}

// ImageStore persists an uploaded image and returns the URL clients should use.
type ImageStore interface {
	Save(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// ImageKey validates folder and extension and builds an object key such as
// "gallery/final-over-3f2a9c1e.jpg". It also returns the content type for the extension.
func ImageKey(folder, filename string) (key, contentType string, err error) {
	if folder == "" {
		folder = "misc"
	}
	if !uploadFolders[folder] {
		return "", "", fmt.Errorf("unknown upload folder %q", folder)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	contentType, ok := allowedImageExtensions[ext]
	if !ok {
		return "", "", fmt.Errorf("file %s has an unsupported format (allowed: jpg, jpeg, png, webp, gif)", filename)
	}

	base := slug.Make(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if base == "" {
		base = "image"
	}
	if len(base) > 48 {
		base = strings.Trim(base[:48], "-")
	}

	id := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%s/%s-%s%s", folder, base, id, ext), contentType, nil
}
