package api

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bgibson72/employee-schedule-manager/pkg/auth"
	"github.com/bgibson72/employee-schedule-manager/pkg/core/model"
	"github.com/bgibson72/employee-schedule-manager/pkg/response"
)

const actorKey = "actor"

// Auth extracts and verifies the bearer token, injecting the actor into the
// request context. Missing or invalid tokens end the request with 401.
func Auth(manager *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthenticated(c, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthenticated(c, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := manager.ParseToken(parts[1])
		if err != nil {
			response.Unauthenticated(c, "token is invalid or expired")
			c.Abort()
			return
		}

		c.Set(actorKey, model.Actor{
			ID:   claims.UserID,
			Name: claims.Name,
			Role: model.Role(claims.Role),
		})

		c.Next()
	}
}

// actorFrom retrieves the actor injected by Auth. A zero actor means the
// route was registered without the middleware.
func actorFrom(c *gin.Context) model.Actor {
	value, ok := c.Get(actorKey)
	if !ok {
		return model.Actor{}
	}
	actor, _ := value.(model.Actor)
	return actor
}

// RequestLogger logs each request with method, path, status and latency
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("Request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
