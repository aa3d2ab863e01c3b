package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/josebazania/restaurantepos/internal/apierror"
	"github.com/josebazania/restaurantepos/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
	UserKey   = "user"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
	jwt.RegisteredClaims
}

// IdentitySource returns the stored session identity.
type IdentitySource interface {
	Current(ctx context.Context) (model.User, error)
}

// OpenSessionSource returns the open cash session.
type OpenSessionSource interface {
	Current(ctx context.Context) (model.CashSession, error)
}

// JWTAuth validates the Bearer token on every protected route. A valid token
// is only accepted while its user is the stored session identity, so a
// logout invalidates every token issued before it.
func JWTAuth(secret string, identity IdentitySource) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		user, err := identity.Current(c.Request.Context())
		if err != nil || user.ID != claims.UserID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("La sesion ya no esta activa"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireDestination rejects requests whose JWT role cannot reach dest.
func RequireDestination(dest model.Destination) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !model.Role(claims.Rol).CanReach(dest) {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// RequireOpenSession keeps the point of sale closed until a cash session is
// open.
func RequireOpenSession(sessions OpenSessionSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := sessions.Current(c.Request.Context()); err != nil {
			c.AbortWithStatusJSON(http.StatusConflict, apierror.New("Abra la caja antes de cobrar"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}

// GetUser returns the authenticated user set by JWTAuth.
func GetUser(c *gin.Context) model.User {
	u, _ := c.MustGet(UserKey).(model.User)
	return u
}
