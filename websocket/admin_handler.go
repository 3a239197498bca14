package websocket

import (
	"log"
	"net/http"
	"time"

	"cleaning-service-server/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var adminUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced at the HTTP layer
	},
}

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// HandleAdminSocket upgrades an authenticated admin request to a WebSocket
// connection and registers it with the hub. WebSocketAuthMiddleware has
// already placed the admin record in the context.
func HandleAdminSocket(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminVal, exists := c.Get("admin")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		admin := adminVal.(models.Admin)

		conn, err := adminUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("❌ Admin WebSocket upgrade failed: %v", err)
			return
		}

		client := &Client{
			Hub:  hub,
			ID:   admin.ID,
			Role: string(admin.Role),
			Conn: conn,
			Send: make(chan []byte, 64),
		}
		hub.Register <- client

		go client.writePump()
		go client.readPump()
	}
}

// readPump drains incoming frames. The console only sends pings; anything
// else is logged and ignored.
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var msg map[string]interface{}
		if err := c.Conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("❌ Admin WebSocket read error: %v", err)
			}
			break
		}

		if msgType, ok := msg["type"].(string); ok && msgType == "ping" {
			c.send([]byte(`{"type":"pong"}`))
		}
	}
}

// writePump pushes hub messages and keepalive pings to the console.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) send(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	select {
	case c.Send <- data:
	default:
	}
}
