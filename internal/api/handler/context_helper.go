package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Tayyab2344/GDSC-NEXUX-sub001/pkg/response"
)

// MustGetUserID extracts user_id from the Gin context. When the JWT
// middleware did not inject it, writes 401 and returns false; callers
// should return immediately on ok=false.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// MustGetRole extracts role from the Gin context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// GetTokenMeta extracts the token ID and expiry injected by JWTAuth.
// Both are best-effort; zero values mean the middleware did not run.
func GetTokenMeta(c *gin.Context) (jti string, expiresAt time.Time) {
	if v, ok := c.Get("jti"); ok {
		jti, _ = v.(string)
	}
	if v, ok := c.Get("token_exp"); ok {
		expiresAt, _ = v.(time.Time)
	}
	return jti, expiresAt
}
