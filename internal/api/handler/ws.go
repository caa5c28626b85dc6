package handler

import (
	"net/http"
	"strings"

	"greensentinel/backend/internal/feedhub"
	"greensentinel/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten in production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeFeed upgrades the connection to a WebSocket and registers the caller
// as a live complaint feed subscriber. Browsers cannot set headers on
// WebSocket requests, so the token is also accepted as a query parameter.
func (h *Handler) ServeFeed(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	uid, err := h.Auth.ValidateToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &feedhub.WebSocketClient{
		UserID: uid,
		Conn:   conn,
		Hub:    h.Hub,
		Send:   make(chan models.ComplaintEvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
