package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	autherrors "tdl-hrms/internal/auth/errors"
	"tdl-hrms/internal/shared/contextutil"
	"tdl-hrms/internal/shared/response"
)

// AuthMiddleware validates the bearer token and puts the employee's identity
// on both the gin context and the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		empProfileID, ok := claims["emp_profile_id"].(string)
		if !ok || empProfileID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Employee profile ID not found in token", nil)
			c.Abort()
			return
		}

		empName, _ := claims["emp_name"].(string)
		role, _ := claims["role"].(string)

		c.Set("emp_profile_id", empProfileID)
		c.Set("emp_name", empName)
		c.Set("role", role)

		ctx := contextutil.WithActorID(c.Request.Context(), empProfileID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
