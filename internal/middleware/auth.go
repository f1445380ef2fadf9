package middleware

import (
	"context"
	"net/http"
	"strings"

	"social-network-backend/internal/config"
	"social-network-backend/internal/token"
	"social-network-backend/internal/user/model"
	"social-network-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CurrentUserKey = "currentUser"
	UserIDKey      = "userID"
)

// IdentityResolver loads the identity a verified session token points at.
type IdentityResolver interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

// AuthGuard authenticates a request before the protected handler runs:
// session token from the cookie (or a Bearer header), token verification,
// then identity resolution. A token whose identity no longer exists is
// treated the same as no token at all.
func AuthGuard(tokens *token.Manager, resolver IdentityResolver, cookie config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionToken := extractToken(c, cookie.Name)
		if sessionToken == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "You are not logged in. Please log in to get access.")
			c.Abort()
			return
		}

		subjectID, err := tokens.VerifySession(sessionToken)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		user, err := resolver.GetByID(c.Request.Context(), subjectID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "The account belonging to this token no longer exists.")
			c.Abort()
			return
		}

		c.Set(CurrentUserKey, user)
		c.Set(UserIDKey, user.ID)
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookieValue, err := c.Cookie(cookieName); err == nil && cookieValue != "" {
		return cookieValue
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// CurrentUser returns the identity the guard attached to the request.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil, false
	}

	user, ok := value.(*model.User)
	return user, ok
}
