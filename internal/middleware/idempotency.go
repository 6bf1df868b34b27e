package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const idempotencyLockTTL = 30 * time.Second

// Idempotency guards punch-style POST endpoints against double submits. A
// request carrying an Idempotency-Key takes a short-lived redis lock scoped
// to route, employee and key; a concurrent duplicate is rejected while the
// first request is in flight. The lock expires on its own, so a crashed
// request does not wedge the endpoint.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		empProfileID := c.GetString("emp_profile_id")
		lockKey := fmt.Sprintf("idemp:%s:%s:%s:lock", c.FullPath(), empProfileID, idempKey)

		acquired, err := rdb.SetNX(c.Request.Context(), lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			// Redis being down should not block punches.
			c.Next()
			return
		}
		if !acquired {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "An identical request is already being processed",
			})
			return
		}

		c.Next()
	}
}
