package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"tasktracker/internal/auth"
	"tasktracker/internal/logger"
	"tasktracker/internal/model"
	"tasktracker/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	UserIDKey      = "user_id"
	CurrentUserKey = "current_user"
)

type UserLookup interface {
	FindByUUID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": message})
}

// JWTAuthMiddleware resolves the caller from a bearer access token. Every
// failure ends the request with 401.
func JWTAuthMiddleware(tokens *auth.TokenManager, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "Authorization header is required")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			unauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		userID, err := tokens.ParseToken(strings.TrimSpace(parts[1]), auth.AccessToken)
		switch {
		case errors.Is(err, auth.ErrInvalidClaims):
			unauthorized(c, "Invalid user ID in token")
			return
		case err != nil:
			unauthorized(c, "Invalid or expired token")
			return
		}

		user, err := users.FindByUUID(c.Request.Context(), userID)
		if errors.Is(err, repository.ErrUserNotFound) {
			unauthorized(c, "User not found")
			return
		}
		if err != nil {
			logger.Error("Middleware: user lookup failed", err, zap.String("user_uuid", userID.String()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
			return
		}
		if !user.IsActive {
			unauthorized(c, "User is inactive")
			return
		}

		c.Set(UserIDKey, user.UUID)
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated caller or nil.
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*model.User)
	return u
}
