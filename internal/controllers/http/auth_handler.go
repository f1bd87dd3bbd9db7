package http

import (
	"net/http"

	"diner-service/internal/auth"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	user, err := h.admins.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.sessions.Create(ctx, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetCookie(auth.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Login success"})
}

func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(auth.CookieName); err == nil && token != "" {
		_ = h.sessions.Delete(c.Request.Context(), token)
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// AuthStatus reports whether the request carries a live session. It
// is public so the admin UI can decide whether to show the login
// screen without triggering a 401.
func (h *Handler) AuthStatus(c *gin.Context) {
	token, err := c.Cookie(auth.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	username, err := h.sessions.Get(c.Request.Context(), token)
	if err != nil || username == "" {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true, "username": username})
}
