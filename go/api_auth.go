package backofficeserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	authdomain "github.com/Apurer/shop-backoffice/internal/domains/auth/domain"
	authports "github.com/Apurer/shop-backoffice/internal/domains/auth/ports"
	"github.com/Apurer/shop-backoffice/internal/shared/apperr"
)

// identityKey is the gin context key holding the authenticated identity.
const identityKey = "backoffice.identity"

// AuthAPI serves operator login.
type AuthAPI struct {
	auth authports.Authenticator
}

func NewAuthAPI(auth authports.Authenticator) AuthAPI {
	return AuthAPI{auth: auth}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Post /api/login
func (api *AuthAPI) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	session, err := api.auth.Authenticate(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{
		Username:  session.Identity.Username,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.UTC(),
	})
}

// RequireBearer rejects requests without a valid "Authorization: Bearer" token.
func RequireBearer(auth authports.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			respondError(c, apperr.ErrUnauthenticated)
			return
		}
		identity, err := auth.VerifyToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			respondError(c, err)
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// IdentityFrom returns the identity stored by RequireBearer.
func IdentityFrom(c *gin.Context) (authdomain.Identity, bool) {
	value, ok := c.Get(identityKey)
	if !ok {
		return authdomain.Identity{}, false
	}
	identity, ok := value.(authdomain.Identity)
	return identity, ok
}
