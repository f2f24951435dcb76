package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Theo3883/Hour-Tracking-Application/internal/model"
	"github.com/Theo3883/Hour-Tracking-Application/internal/service"
	"github.com/Theo3883/Hour-Tracking-Application/internal/token"
	"github.com/Theo3883/Hour-Tracking-Application/pkg/apperror"
)

const principalKey = "principal"

// AuthMiddleware verifies the Bearer token and attaches the principal to the
// request context. Unauthenticated calls never reach the core.
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthenticated(c, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthenticated(c, "malformed authorization header")
			return
		}

		principal, err := tokens.Verify(parts[1])
		if err != nil {
			abortUnauthenticated(c, "invalid or expired token")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireAdmin rejects non-admin principals. Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			abortUnauthenticated(c, "missing principal")
			return
		}
		if !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden,
				model.NewErrorResponse("admin privileges required", apperror.KindForbidden.Code()))
			return
		}
		c.Next()
	}
}

// ReportKeyMiddleware guards the report feed with an X-Report-Key header.
func ReportKeyMiddleware(keys *service.ReportKeyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		plainKey := c.GetHeader("X-Report-Key")
		if plainKey == "" {
			abortUnauthenticated(c, "missing report key")
			return
		}
		if _, err := keys.Validate(c.Request.Context(), plainKey); err != nil {
			abortUnauthenticated(c, "invalid report key")
			return
		}
		c.Next()
	}
}

// GetPrincipal extracts the authenticated principal set by AuthMiddleware.
func GetPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		model.NewErrorResponse(message, apperror.KindUnauthenticated.Code()))
}
