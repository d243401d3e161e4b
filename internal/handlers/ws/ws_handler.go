// internal/handlers/ws/ws_handler.go
package ws

import (
	"net/http"

	"gymflow-service/internal/pkg/response"
	ws "gymflow-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Dashboards connect from a separate origin; tokens gate access.
		return true
	},
}

type WSHandler struct {
	hub    *ws.Hub
	logger *zap.Logger
}

func NewWSHandler(hub *ws.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{hub: hub, logger: logger}
}

// CheckinFeed upgrades the connection and streams admitted check-ins. The
// token comes through the query string because browsers cannot set headers on
// websocket upgrades.
func (h *WSHandler) CheckinFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
		return
	}

	claims, err := h.hub.Authenticate(c.Request.Context(), token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "invalid or expired token", err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := ws.NewClient(h.hub, conn, claims.UserID, h.logger)
	client.Start()
}
