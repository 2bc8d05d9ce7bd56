package server

import (
	"time"

	"github.com/gin-gonic/gin"

	model "github.com/Insightz/carpauctions/internal/models"
	"github.com/Insightz/carpauctions/utils"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// IdentityMiddleware turns the authenticated identity supplied by the edge
// (X-User-ID / X-User-Role headers) into an explicit model.Identity on the
// request context. The engine trusts this identity as given; verifying it is
// the identity provider's job.
func IdentityMiddleware(c *gin.Context) {
	role := model.Role(c.GetHeader("X-User-Role"))
	switch role {
	case model.RoleAdmin, model.RoleSeller, model.RoleBuyer:
	default:
		role = model.RoleBuyer
	}

	c.Set("identity", model.Identity{
		UserID: c.GetHeader("X-User-ID"),
		Role:   role,
	})

	c.Next()
}
