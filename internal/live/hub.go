// Package live pushes shopping list changes to connected household members
// over WebSocket, so two people shopping at once see each other's ticks.
package live

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event types broadcast to clients.
const (
	EventListCreated = "list_created"
	EventListUpdated = "list_updated"
	EventListDeleted = "list_deleted"
)

// Event is the payload sent to every connected member of a family when one
// of their shopping lists changes.
type Event struct {
	Type   string `json:"type"`
	ListID string `json:"list_id"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // origin is enforced by the CORS layer in front
	},
}

// Hub tracks connected clients grouped by family.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*client]struct{} // family ID -> connections
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*client]struct{})}
}

// Broadcast delivers an event to every client of the given family. Slow
// clients have the message dropped rather than blocking the caller.
func (h *Hub) Broadcast(familyID string, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling event: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[familyID] {
		select {
		case c.send <- data:
		default:
			log.Println("WebSocket buffer full, dropping message")
		}
	}
}

// ClientCount reports the number of open connections for a family.
func (h *Hub) ClientCount(familyID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[familyID])
}

// Serve upgrades the request and registers the connection under the given
// family until the peer disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, familyID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	c := &client{
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register(familyID, c)

	go c.writePump()
	go func() {
		c.readPump()
		h.unregister(familyID, c)
	}()
}

func (h *Hub) register(familyID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[familyID] == nil {
		h.clients[familyID] = make(map[*client]struct{})
	}
	h.clients[familyID][c] = struct{}{}
}

func (h *Hub) unregister(familyID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[familyID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, familyID)
		}
	}
	close(c.send)
}

// readPump drains incoming frames. Clients only listen, so anything read is
// discarded; the loop exists to notice disconnects and answer pings.
func (c *client) readPump() {
	defer c.conn.Close()

	c.conn.SetReadLimit(1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
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

// writePump forwards queued events to the connection and keeps it alive with
// periodic pings.
func (c *client) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
