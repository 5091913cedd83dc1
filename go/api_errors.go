package backofficeserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apierrors "github.com/Apurer/shop-backoffice/internal/shared/errors"
)

// respondError maps service errors through the shared problem responder.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	apierrors.RespondError(c, err)
}

// respondBadRequest reports a malformed request body, path or query.
func respondBadRequest(c *gin.Context, err error) {
	apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		apierrors.Respond(c, apierrors.ErrBadRequest.
			WithDetail("path parameter must be a positive integer").
			WithExtension("parameter", name))
		return 0, false
	}
	return id, true
}

// parseDeleteIDParam accepts any integer. Identifiers that were never issued,
// zero and negatives included, simply report deleted=false.
func parseDeleteIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		apierrors.Respond(c, apierrors.ErrBadRequest.
			WithDetail("path parameter must be an integer").
			WithExtension("parameter", name))
		return 0, false
	}
	return id, true
}

// deletedResponse is the body of every delete endpoint.
type deletedResponse struct {
	Deleted bool `json:"deleted"`
}

func respondDeleted(c *gin.Context, deleted bool) {
	c.JSON(http.StatusOK, deletedResponse{Deleted: deleted})
}
