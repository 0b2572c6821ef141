package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalUploader writes images below a directory that the router serves at /uploads.
type LocalUploader struct {
	root          string
	publicBaseURL string
}

// NewLocalUploader creates a LocalUploader rooted at dir. publicBaseURL may be
// empty, in which case returned URLs are host-relative.
func NewLocalUploader(dir, publicBaseURL string) *LocalUploader {
	return &LocalUploader{root: dir, publicBaseURL: publicBaseURL}
}

// Upload writes blob under the upload directory and returns its public URL.
func (u *LocalUploader) Upload(ctx context.Context, blob []byte, contentType, folder string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	// folder comes from code, never from the client, but keep it inside root regardless.
	clean := path.Clean("/" + folder)
	dir := filepath.Join(u.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create upload dir: %v", ErrUploadFailed, err)
	}

	filename := uuid.New().String() + extensionFor(contentType)
	if err := os.WriteFile(filepath.Join(dir, filename), blob, 0o644); err != nil {
		return "", fmt.Errorf("%w: write file: %v", ErrUploadFailed, err)
	}

	return u.publicBaseURL + path.Join("/uploads", clean, filename), nil
}
