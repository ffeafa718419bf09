package handler

import (
	"github.com/labstack/echo/v4"
	ws "github.com/zizouhuweidi/trivia/internal/websocket"
)

// WebSocketHandler subscribes clients to catalog events
type WebSocketHandler struct {
	hub *ws.Hub
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *ws.Hub) *WebSocketHandler {
	return &WebSocketHandler{
		hub: hub,
	}
}

// HandleWebSocket upgrades the connection and streams question_created and
// question_deleted events until the client leaves.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	// The upgrader writes its own error response
	return h.hub.ServeWS(c.Response(), c.Request())
}
