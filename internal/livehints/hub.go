// Package livehints fans discovered hints out to connected websocket
// clients while a GetHints call is in flight. Its connection bookkeeping —
// a registry of live connections behind a mutex, a per-connection buffered
// send queue drained by a dedicated sender goroutine, and a ping ticker to
// detect dead peers — is adapted from the pattern in
// sandeepkv93-concurrency-in-golang's concurrentanalyticsdashboard.go.
package livehints

import (
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"mvsolver/sudokuchains/chaining"
)

const (
	pingInterval = 30 * time.Second
	sendQueueCap = 64
)

// wireHint is the JSON shape pushed to every connected client.
type wireHint struct {
	RunID      string `json:"run_id"`
	Kind       string `json:"kind"`
	Difficulty float64 `json:"difficulty"`
	Complexity int    `json:"complexity"`
	Detail     string `json:"detail"`
}

type conn struct {
	id        string
	ws        *websocket.Conn
	sendQueue chan []byte
	lastPing  time.Time
	mutex     sync.Mutex
}

// Hub tracks connected clients for one run and implements chaining.HintSink:
// every hint pushed through GetHints is broadcast to all of them as JSON.
type Hub struct {
	runID       string
	log         *logrus.Entry
	connMutex   sync.RWMutex
	connections map[string]*conn
	pushed      int64
}

// NewHub creates a hub for a single solving run, identified by runID so
// clients and log lines can be correlated.
func NewHub(runID string, log *logrus.Logger) *Hub {
	if log == nil {
		log = logrus.New()
	}
	return &Hub{
		runID:       runID,
		log:         log.WithField("run_id", runID),
		connections: make(map[string]*conn),
	}
}

// Register adopts an already-upgraded websocket connection and starts its
// sender/reader goroutines. The caller owns the HTTP upgrade; Hub owns the
// connection's lifetime from here on.
func (h *Hub) Register(ws *websocket.Conn) {
	c := &conn{
		id:        uuid.NewString(),
		ws:        ws,
		sendQueue: make(chan []byte, sendQueueCap),
	}
	h.connMutex.Lock()
	h.connections[c.id] = c
	h.connMutex.Unlock()

	go h.sender(c)
	go h.reader(c)
}

func (h *Hub) reader(c *conn) {
	defer h.drop(c)
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) sender(c *conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	for {
		select {
		case data, ok := <-c.sendQueue:
			if !ok {
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				h.drop(c)
				return
			}
		case <-ticker.C:
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.drop(c)
				return
			}
			c.mutex.Lock()
			c.lastPing = time.Now()
			c.mutex.Unlock()
		}
	}
}

func (h *Hub) drop(c *conn) {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()
	if _, ok := h.connections[c.id]; !ok {
		return
	}
	delete(h.connections, c.id)
	c.ws.Close()
}

// Push implements chaining.HintSink: it is called once per discovered hint
// while GetHints(Context) runs, and broadcasts it to every connected client.
// A hint that cannot be marshaled is dropped, not fatal to the run.
func (h *Hub) Push(hint chaining.Hint) error {
	data, err := json.Marshal(wireHint{
		RunID:      h.runID,
		Kind:       fmt.Sprintf("%T", hint),
		Difficulty: hint.Difficulty(),
		Complexity: hint.Complexity(),
		Detail:     hint.String(),
	})
	if err != nil {
		h.log.WithError(err).Warn("livehints: failed to marshal hint")
		return nil
	}
	atomic.AddInt64(&h.pushed, 1)

	h.connMutex.RLock()
	defer h.connMutex.RUnlock()
	for _, c := range h.connections {
		select {
		case c.sendQueue <- data:
		default:
			h.log.WithField("conn", c.id).Warn("livehints: send queue full, dropping hint for slow client")
		}
	}
	return nil
}

// Pushed reports how many hints this hub has broadcast so far.
func (h *Hub) Pushed() int64 { return atomic.LoadInt64(&h.pushed) }

// Connections reports the number of currently attached clients.
func (h *Hub) Connections() int {
	h.connMutex.RLock()
	defer h.connMutex.RUnlock()
	return len(h.connections)
}

// Close disconnects every client, e.g. once the run that owns this hub
// completes.
func (h *Hub) Close() {
	h.connMutex.Lock()
	defer h.connMutex.Unlock()
	for id, c := range h.connections {
		close(c.sendQueue)
		c.ws.Close()
		delete(h.connections, id)
	}
}
