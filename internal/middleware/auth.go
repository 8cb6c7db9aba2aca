package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/salon-pos/internal/config"
	"github.com/BruksfildServices01/salon-pos/internal/httperr"
)

const (
	ContextStaff    = "staff"
	ContextUserRole = "userRole"
)

// AuthMiddleware checks the staff bearer token against now, the same clock
// that stamps tokens at login. With no staff password configured the shop
// runs open and every request passes.
func AuthMiddleware(cfg *config.Config, now func() time.Time) gin.HandlerFunc {
	if now == nil {
		now = time.Now
	}

	return func(c *gin.Context) {
		if !cfg.AuthEnabled() {
			c.Set(ContextStaff, "local")
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httperr.Unauthorized(c, "invalid_authorization_header", "Expected a Bearer token.")
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithTimeFunc(now))
		if err != nil || !token.Valid {
			httperr.Unauthorized(c, "invalid_token", "Session expired, log in again.")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			httperr.Unauthorized(c, "invalid_token_claims", "Session expired, log in again.")
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		role, _ := claims["role"].(string)
		if sub == "" {
			httperr.Unauthorized(c, "invalid_token_payload", "Session expired, log in again.")
			c.Abort()
			return
		}

		c.Set(ContextStaff, sub)
		c.Set(ContextUserRole, role)

		c.Next()
	}
}
