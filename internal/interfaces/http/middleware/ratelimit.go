package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/ratelimit"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

// LoginRateLimit throttles credential attempts per client IP. When the
// limiter backend is unavailable the request is allowed through rather than
// locking every admin out.
func LoginRateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("login:%s", c.ClientIP())

		allowed, err := limiter.Allow(key, ratelimit.LoginLimit)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"key", key,
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
