package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"social-network-backend/internal/config"
	"social-network-backend/internal/token"
	"social-network-backend/internal/user/model"
	apperrors "social-network-backend/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	users map[uuid.UUID]*model.User
}

func (f *fakeResolver) GetByID(_ context.Context, userID uuid.UUID) (*model.User, error) {
	if u, ok := f.users[userID]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func guardedRouter(tokens *token.Manager, resolver IdentityResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	cookie := config.CookieConfig{Name: "jwt", Secure: true, HTTPOnly: true}
	router.GET("/protected", AuthGuard(tokens, resolver, cookie), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, user.ID.String())
	})
	return router
}

func TestAuthGuard(t *testing.T) {
	tokens := token.NewManager("guard-secret", time.Hour)
	user := &model.User{ID: uuid.New(), Email: "a@x.com", Active: true}
	resolver := &fakeResolver{users: map[uuid.UUID]*model.User{user.ID: user}}
	router := guardedRouter(tokens, resolver)

	sessionToken, err := tokens.IssueSession(user.ID)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token via cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: sessionToken})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, user.ID.String(), w.Body.String())
	})

	t.Run("token via bearer header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+sessionToken)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("tampered token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: sessionToken + "x"})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expiredTokens := token.NewManager("guard-secret", -time.Second)
		expired, err := expiredTokens.IssueSession(user.ID)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: expired})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("identity deleted after issuance", func(t *testing.T) {
		ghost, err := tokens.IssueSession(uuid.New())
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: ghost})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
