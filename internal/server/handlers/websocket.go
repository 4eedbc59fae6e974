// internal/server/handlers/websocket.go

package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"
)

// WebSocketClient represents a connected WebSocket client
type WebSocketClient struct {
	conn              *websocket.Conn
	send              chan []byte
	done              chan struct{}
	closeOnce         sync.Once
	viewerID          string
	natsConn          *nats.Conn
	natsSubscriptions []*nats.Subscription
}

// WebSocketConfig contains configuration for WebSocket connections
type WebSocketConfig struct {
	// Time allowed to write a message to the peer
	WriteWait time.Duration

	// Time allowed to read the next pong message from the peer
	PongWait time.Duration

	// Send pings to peer with this period
	PingPeriod time.Duration

	// Maximum message size allowed from peer
	MaxMessageSize int64
}

// DefaultWebSocketConfig returns the default WebSocket configuration
func DefaultWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		WriteWait:      10 * time.Second,
		PongWait:       60 * time.Second,
		PingPeriod:     (60 * time.Second * 9) / 10,
		MaxMessageSize: 1024 * 1024, // 1MB
	}
}

// WebSocketUpgrader is used to upgrade HTTP connections to WebSocket
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// In production, this should be more restrictive
		return true
	},
}

// FeedWebSocketHandler streams simulation events to clients in real time.
// Every jot action and every post appended to the corpus is forwarded as it
// happens, so feed UIs can update without polling.
func FeedWebSocketHandler(natsConn *nats.Conn, eventsTopic string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if natsConn == nil {
			http.Error(w, "Event streaming unavailable", http.StatusServiceUnavailable)
			return
		}

		// Viewer ID is optional; the stream is the same for everyone
		viewerID := r.URL.Query().Get("viewer_id")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("Failed to upgrade to WebSocket: %v", err)
			return
		}

		client := &WebSocketClient{
			conn:     conn,
			send:     make(chan []byte, 256),
			done:     make(chan struct{}),
			viewerID: viewerID,
			natsConn: natsConn,
		}

		go client.writePump()
		go client.readPump()

		if err := client.subscribeToFeed(eventsTopic); err != nil {
			log.Printf("Failed to subscribe to feed topics: %v", err)
			client.closeConnection()
			return
		}

		welcomeMsg := map[string]interface{}{
			"type": "welcome",
			"time": time.Now(),
		}

		welcomeJSON, _ := json.Marshal(welcomeMsg)
		select {
		case client.send <- welcomeJSON:
		case <-client.done:
			return
		}

		log.Printf("New WebSocket connection for feed stream (viewer %q)", viewerID)
	}
}

// readPump drains the WebSocket connection. Clients do not send data on this
// stream; the pump exists to service pongs and detect disconnects.
func (c *WebSocketClient) readPump() {
	config := DefaultWebSocketConfig()

	defer func() {
		c.closeConnection()
	}()

	c.conn.SetReadLimit(config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps events to the WebSocket connection
func (c *WebSocketClient) writePump() {
	config := DefaultWebSocketConfig()
	ticker := time.NewTicker(config.PingPeriod)
	defer func() {
		ticker.Stop()
		c.closeConnection()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued events to the current WebSocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}

// subscribeToFeed subscribes to simulation event topics
func (c *WebSocketClient) subscribeToFeed(eventsTopic string) error {
	// All jot actions (create_post, share_link, ...)
	actionSub, err := c.natsConn.Subscribe(fmt.Sprintf("%s.action.*", eventsTopic), func(msg *nats.Msg) {
		c.enqueue(msg.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to actions: %w", err)
	}
	c.natsSubscriptions = append(c.natsSubscriptions, actionSub)

	// New corpus content
	postSub, err := c.natsConn.Subscribe(fmt.Sprintf("%s.post.created", eventsTopic), func(msg *nats.Msg) {
		c.enqueue(msg.Data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to posts: %w", err)
	}
	c.natsSubscriptions = append(c.natsSubscriptions, postSub)

	return nil
}

// enqueue hands an event to the write pump. Events arriving during shutdown
// are dropped; the send channel itself is never closed, so in-flight NATS
// callbacks cannot panic.
func (c *WebSocketClient) enqueue(data []byte) {
	select {
	case c.send <- data:
	case <-c.done:
	}
}

// closeConnection closes the WebSocket connection and cleans up resources.
// Both pumps and the handler's error path call it, so it must be idempotent.
func (c *WebSocketClient) closeConnection() {
	c.closeOnce.Do(func() {
		for _, sub := range c.natsSubscriptions {
			sub.Unsubscribe()
		}

		close(c.done)
		c.conn.Close()

		log.Printf("WebSocket connection closed for viewer %q", c.viewerID)
	})
}
