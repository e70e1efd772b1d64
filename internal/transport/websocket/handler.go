package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/pkg/useragent"
)

// SnapshotSource supplies the events a new spectator needs to catch up.
type SnapshotSource interface {
	LatestMessages() []domain.ServerMessage
}

// Handler upgrades spectator requests and wires them to the ConnectionManager.
type Handler struct {
	ConnManager *ConnectionManager
	Sessions    SnapshotSource
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager, sessions SnapshotSource) *Handler {
	return &Handler{
		ConnManager: cm,
		Sessions:    sessions,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWebSocket is the HTTP handler that upgrades the connection
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WATCH] Upgrade error: %v", err)
		return
	}

	var backlog [][]byte
	for _, message := range h.Sessions.LatestMessages() {
		data, err := json.Marshal(message)
		if err != nil {
			continue
		}
		backlog = append(backlog, data)
	}

	client := h.ConnManager.AddConnection(conn, backlog...)
	log.Printf("[WATCH] Spectator %d connected from %s (%s)",
		client.id, useragent.RemoteIP(r), useragent.Client(r.UserAgent()))

	go client.writePump()
	h.readPump(client)
}

// readPump discards anything spectators send; it exists to notice closed
// connections and to answer pongs.
func (h *Handler) readPump(client *Client) {
	defer func() {
		h.ConnManager.RemoveConnection(client.id)
		log.Printf("[WATCH] Spectator %d disconnected", client.id)
	}()

	conn := client.conn
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
