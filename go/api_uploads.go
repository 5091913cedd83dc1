package backofficeserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Apurer/shop-backoffice/internal/shared/media"
)

const imageField = "image"

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// formImage opens the optional image part. The returned close func is always safe to call.
func formImage(c *gin.Context) (*media.Upload, func(), error) {
	header, err := c.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	return &media.Upload{Filename: header.Filename, Content: file}, func() { _ = file.Close() }, nil
}
