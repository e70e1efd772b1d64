package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const (
	sendBufferSize = 64
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = 30 * time.Second
	maxMessageSize = 512
)

// Client is one spectator connection. Outgoing frames are queued on send and
// written by the client's own writer goroutine, so a slow spectator never
// blocks the game loop.
type Client struct {
	id   int64
	conn *websocket.Conn
	send chan []byte
}

// ConnectionManager tracks spectator connections and fans game events out
// to them.
type ConnectionManager struct {
	connections map[int64]*Client
	nextID      int64
	mu          sync.RWMutex // Protects the map and the send channels' lifetime
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[int64]*Client),
	}
}

// AddConnection registers conn and returns its client. backlog is queued
// ahead of any broadcast the client can see.
func (cm *ConnectionManager) AddConnection(conn *websocket.Conn, backlog ...[]byte) *Client {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.nextID++
	client := &Client{
		id:   cm.nextID,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	for _, data := range backlog {
		client.enqueue(data)
	}
	cm.connections[client.id] = client
	return client
}

// RemoveConnection forgets the client and closes its queue, which makes the
// writer goroutine close the socket.
func (cm *ConnectionManager) RemoveConnection(id int64) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if client, exists := cm.connections[id]; exists {
		close(client.send)
		delete(cm.connections, id)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// Publish implements game.Publisher.
func (cm *ConnectionManager) Publish(_ context.Context, message domain.ServerMessage) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}
	cm.BroadcastMessage(data)
	return nil
}

// BroadcastMessage queues data for every spectator. Spectators whose queue
// is full miss the frame.
func (cm *ConnectionManager) BroadcastMessage(data []byte) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	for id, client := range cm.connections {
		if !client.enqueue(data) {
			log.Printf("[WATCH] Spectator %d is too slow, dropped a message", id)
		}
	}
}

// CloseAll disconnects every spectator.
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	for id, client := range cm.connections {
		close(client.send)
		delete(cm.connections, id)
	}
}

func (c *Client) enqueue(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

// writePump drains the send queue onto the socket and keeps it alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
