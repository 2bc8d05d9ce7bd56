package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Insightz/carpauctions/internal/feed"
	"github.com/Insightz/carpauctions/utils"
)

const feedBuffer = 32

// FeedHandler streams change events to websocket viewers. Clients treat each
// event as a "data changed, re-read" signal and fetch fresh state over the
// REST surface.
type FeedHandler struct {
	hub      *feed.Hub
	upgrader websocket.Upgrader
}

// NewFeedHandler creates a FeedHandler on the given hub.
func NewFeedHandler(hub *feed.Hub) *FeedHandler {
	return &FeedHandler{
		hub:      hub,
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
	}
}

// StreamHandler handles GET /ws
func (h *FeedHandler) StreamHandler(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.Warn("StreamHandler: websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}
	defer conn.Close()

	sub := h.hub.Subscribe(feedBuffer)
	defer h.hub.Unsubscribe(sub)

	for event := range sub.Events() {
		if err := conn.WriteJSON(event); err != nil {
			return
		}
	}
}
