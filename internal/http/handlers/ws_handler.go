package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ignatzorin/review-platform/internal/logger"
	"github.com/ignatzorin/review-platform/internal/ws"
)

// WSHandler подключает модераторов к ленте жалоб.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт хэндлер.
func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origin проверяется CORS middleware выше по цепочке.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Feed GET /moderation/feed — апгрейд до WebSocket.
// Доступ ограничен модераторами на уровне роутера.
func (h *WSHandler) Feed(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithComponent("ws").Errorf("не удалось установить соединение: %v", err)
		return
	}

	client := ws.NewClient(conn, h.hub)
	h.hub.Register(client)
	client.Run(c.Request.Context())
}
