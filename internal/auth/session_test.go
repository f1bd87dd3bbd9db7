package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewSessionStore(rdb, 2*time.Hour), mr
}

func TestSessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and resolve", func(t *testing.T) {
		store, mr := newSessionStore(t)

		token, err := store.Create(ctx, "master")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		username, err := store.Get(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "master", username)

		ttl := mr.TTL("session:" + token)
		assert.Equal(t, 2*time.Hour, ttl)
	})

	t.Run("unknown token resolves empty", func(t *testing.T) {
		store, _ := newSessionStore(t)

		username, err := store.Get(ctx, "no-such-token")
		require.NoError(t, err)
		assert.Empty(t, username)
	})

	t.Run("expired session resolves empty", func(t *testing.T) {
		store, mr := newSessionStore(t)

		token, err := store.Create(ctx, "master")
		require.NoError(t, err)

		mr.FastForward(3 * time.Hour)

		username, err := store.Get(ctx, token)
		require.NoError(t, err)
		assert.Empty(t, username)
	})

	t.Run("delete revokes the session", func(t *testing.T) {
		store, _ := newSessionStore(t)

		token, err := store.Create(ctx, "master")
		require.NoError(t, err)
		require.NoError(t, store.Delete(ctx, token))

		username, err := store.Get(ctx, token)
		require.NoError(t, err)
		assert.Empty(t, username)
	})
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(store *SessionStore) *gin.Engine {
		r := gin.New()
		r.GET("/admin/ping", RequireSession(store), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"user": c.GetString(UsernameKey)})
		})
		return r
	}

	t.Run("valid cookie passes through", func(t *testing.T) {
		store, _ := newSessionStore(t)
		token, err := store.Create(context.Background(), "master")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		w := httptest.NewRecorder()
		newRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "master")
	})

	t.Run("missing cookie rejected", func(t *testing.T) {
		store, _ := newSessionStore(t)

		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		w := httptest.NewRecorder()
		newRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stale token rejected", func(t *testing.T) {
		store, mr := newSessionStore(t)
		token, err := store.Create(context.Background(), "master")
		require.NoError(t, err)
		mr.FastForward(3 * time.Hour)

		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		w := httptest.NewRecorder()
		newRouter(store).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
