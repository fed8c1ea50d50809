package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bwoff11/net-stab/pkg/models"
)

const feedWriteTimeout = 10 * time.Second

type feedClient struct {
	conn *websocket.Conn
	mu   sync.Mutex // gorilla/websocket panics on concurrent writes
}

func (c *feedClient) write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))

	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Feed broadcasts endpoint state updates to websocket subscribers.
type Feed struct {
	upgrader websocket.Upgrader

	clientsMu sync.RWMutex
	clients   map[*websocket.Conn]*feedClient
}

// NewFeed creates an empty Feed.
func NewFeed() *Feed {
	return &Feed{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]*feedClient),
	}
}

// handleLive upgrades the connection and subscribes it to state
// updates.
func (f *Feed) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading live feed connection: %v", err)
		return
	}

	client := &feedClient{conn: conn}

	f.clientsMu.Lock()
	f.clients[conn] = client
	count := len(f.clients)
	f.clientsMu.Unlock()

	log.Printf("Live feed client connected (%d active)", count)

	go f.readLoop(conn)
}

// readLoop drains client frames so close and ping control messages are
// processed, and unsubscribes the client once the connection drops.
func (f *Feed) readLoop(conn *websocket.Conn) {
	defer f.removeClient(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (f *Feed) removeClient(conn *websocket.Conn) {
	f.clientsMu.Lock()
	delete(f.clients, conn)
	f.clientsMu.Unlock()

	_ = conn.Close()
}

// Broadcast pushes one state update to every subscriber. Subscribers
// that fail the write are dropped.
func (f *Feed) Broadcast(state models.EndpointState) {
	data, err := json.Marshal(state)
	if err != nil {
		log.Printf("Error marshaling state update: %v", err)
		return
	}

	f.clientsMu.RLock()

	clients := make([]*feedClient, 0, len(f.clients))
	for _, client := range f.clients {
		clients = append(clients, client)
	}

	f.clientsMu.RUnlock()

	for _, client := range clients {
		if err := client.write(data); err != nil {
			log.Printf("Dropping live feed client: %v", err)
			f.removeClient(client.conn)
		}
	}
}

// ClientCount returns the number of connected subscribers.
func (f *Feed) ClientCount() int {
	f.clientsMu.RLock()
	defer f.clientsMu.RUnlock()

	return len(f.clients)
}

// Close disconnects every subscriber.
func (f *Feed) Close() {
	f.clientsMu.Lock()

	conns := make([]*websocket.Conn, 0, len(f.clients))
	for conn := range f.clients {
		conns = append(conns, conn)
	}

	f.clients = make(map[*websocket.Conn]*feedClient)

	f.clientsMu.Unlock()

	for _, conn := range conns {
		_ = conn.Close()
	}
}
