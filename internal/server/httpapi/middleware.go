package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/authd/internal/common"
	"github.com/dmitrijs2005/authd/internal/logging"
	"github.com/dmitrijs2005/authd/internal/server/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// unauthorizedBody is the uniform rejection payload. The reason a credential
// was rejected is logged server-side only.
var unauthorizedBody = gin.H{"error": "unauthorized"}

// AuthRequired returns a middleware that gates protected routes: it extracts
// the bearer token, runs it through the guard (signature, expiry, revocation)
// and injects the resulting identity into the request context. Every
// rejection produces the same 401 response.
func AuthRequired(guard *auth.Guard, logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		token, reason := auth.ParseBearer(c.GetHeader(common.AuthorizationHeaderName))
		if reason == auth.RejectNone {
			var claims *auth.TokenClaims
			claims, reason = guard.Evaluate(token)
			if reason == auth.RejectNone {
				ctx := auth.WithClaims(c.Request.Context(), claims)
				ctx = auth.WithBearerToken(ctx, token)
				ctx = auth.WithRequestID(ctx, requestID)
				c.Request = c.Request.WithContext(ctx)

				logger.Debug(ctx, "authentication succeeded",
					"request_id", requestID,
					"user_id", claims.UserID(),
					"latency", time.Since(start),
				)
				c.Next()
				return
			}
		}

		logger.Warn(c.Request.Context(), "authentication failed",
			"request_id", requestID,
			"reason", string(reason),
			"token", redactToken(token),
			"latency", time.Since(start),
		)
		c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
	}
}

// redactToken keeps a short prefix for correlation and drops the rest.
func redactToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return "***"
	}
	return token[:8] + "..."
}

// RequestLogger logs every request with method, path, status, and latency.
// Bodies and authorization headers are never logged.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

// CORS allows browser clients from the configured origin. Credentialed
// requests are permitted, so the origin is echoed explicitly rather than
// wildcarded.
func CORS(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Methods", "GET,HEAD,PUT,PATCH,POST,DELETE,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization,Content-Type,X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
