// Package media describes opaque image attachments for products and customers.
package media

import (
	"context"
	"io"
)

// Upload is an image submitted alongside an entity write.
type Upload struct {
	Filename string
	Content  io.Reader
}

// ImageStore persists image bytes and returns a stable URL reference.
// The core never reads the stored bytes back.
type ImageStore interface {
	Save(ctx context.Context, upload Upload) (string, error)
}

// Attach stores upload when present and returns the reference to keep on the entity.
// A nil upload keeps current.
func Attach(ctx context.Context, store ImageStore, upload *Upload, current string) (string, error) {
	if upload == nil || store == nil {
		return current, nil
	}
	return store.Save(ctx, *upload)
}
