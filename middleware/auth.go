package middleware

import (
	"context"
	"net/http"
	"strings"

	"travelerapp/models"
	"travelerapp/utils"

	"github.com/gin-gonic/gin"
)

const authUserKey = "authUser"

// FirebaseAuthMiddleware verifies the Bearer ID token with the auth
// provider and stores the resolved identity on the request context.
func FirebaseAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		ctx := context.Background()
		token, err := utils.GetAuthClient().VerifyIDToken(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			return
		}

		authUser := &models.AuthUser{UID: token.UID}
		if email, ok := token.Claims["email"].(string); ok {
			authUser.Email = email
		}
		if name, ok := token.Claims["name"].(string); ok {
			authUser.DisplayName = name
		}

		c.Set(authUserKey, authUser)
		c.Next()
	}
}

// CurrentUser returns the authenticated identity set by
// FirebaseAuthMiddleware, or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *models.AuthUser {
	val, exists := c.Get(authUserKey)
	if !exists {
		return nil
	}
	user, ok := val.(*models.AuthUser)
	if !ok {
		return nil
	}
	return user
}
