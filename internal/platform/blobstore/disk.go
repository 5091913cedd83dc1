// Package blobstore stores uploaded images on local disk behind a URL prefix.
package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

var _ media.ImageStore = (*DiskStore)(nil)

// DefaultURLPrefix is where the HTTP layer serves the upload directory.
const DefaultURLPrefix = "/uploads"

// DiskStore writes each upload to a new file named after the write time.
type DiskStore struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

// NewDiskStore creates the directory lazily on first save.
func NewDiskStore(dir, urlPrefix string) *DiskStore {
	if strings.TrimSpace(urlPrefix) == "" {
		urlPrefix = DefaultURLPrefix
	}
	return &DiskStore{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/"), now: time.Now}
}

// WithClock overrides the time source used for file names.
func (s *DiskStore) WithClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Dir returns the directory served under the URL prefix.
func (s *DiskStore) Dir() string { return s.dir }

// URLPrefix returns the public path prefix of stored images.
func (s *DiskStore) URLPrefix() string { return s.urlPrefix }

// Save copies the upload into the directory and returns its public URL path.
func (s *DiskStore) Save(ctx context.Context, upload media.Upload) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if upload.Content == nil {
		return "", errors.New("upload has no content")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	ext := strings.ToLower(filepath.Ext(filepath.Base(upload.Filename)))
	name := strconv.FormatInt(s.now().UnixNano(), 10) + ext
	file, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(file, upload.Content); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return path.Join(s.urlPrefix, name), nil
}
