package middleware

import (
	"net/http"
	"strings"

	"github.com/alpinemaps/venue-map-server/src/models"
	"github.com/alpinemaps/venue-map-server/src/services"
	"github.com/gin-gonic/gin"
)

// ContextAdminKey is the gin context key holding the authenticated admin.
const ContextAdminKey = "admin"

// isPublicPath reports whether the request path is on the allow-list.
// Matching is exact or prefix-anchored at a "/" boundary. Substring
// containment would let a public path like /api/admin/login leak onto an
// unrelated protected path that merely contains it.
func isPublicPath(path string, publicPaths []string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"status":  "fail",
		"message": message,
	})
}

// RequireAuth gates a route group behind token authentication. Requests to a
// public path pass straight through. For everything else the chain is:
// extract bearer token, verify signature and expiry, resolve the subject to
// an active admin account, reject tokens issued before the account's last
// password change, then attach the identity to the request context.
func RequireAuth(tokens *services.TokenService, admins *services.AdminService, publicPaths ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isPublicPath(c.Request.URL.Path, publicPaths) {
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			abortUnauthenticated(c, "You are not logged in. Please log in to get access.")
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			abortUnauthenticated(c, err.Error())
			return
		}

		admin, err := admins.GetActiveByID(c.Request.Context(), claims.Subject)
		if err != nil {
			abortUnauthenticated(c, "The admin belonging to this token no longer exists.")
			return
		}

		if admin.ChangedPasswordAfter(claims.IssuedAt) {
			abortUnauthenticated(c, "Admin recently changed password. Please log in again.")
			return
		}

		c.Set(ContextAdminKey, admin)
		c.Next()
	}
}

// RequireRole authorizes the already-authenticated admin against the route's
// required role set. It must run after RequireAuth.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := CurrentAdmin(c)
		if admin == nil {
			abortUnauthenticated(c, "You are not logged in. Please log in to get access.")
			return
		}
		for _, role := range roles {
			if admin.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"status":  "fail",
			"message": "You do not have permission to perform this action",
		})
	}
}

// CurrentAdmin returns the authenticated admin attached by RequireAuth,
// or nil on an unauthenticated request.
func CurrentAdmin(c *gin.Context) *models.AdminAccount {
	value, exists := c.Get(ContextAdminKey)
	if !exists {
		return nil
	}
	admin, ok := value.(*models.AdminAccount)
	if !ok {
		return nil
	}
	return admin
}
