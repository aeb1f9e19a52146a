// Package spectate streams game snapshots to read-only WebSocket viewers.
package spectate

import (
	"context"
	"log"
	"sync"

	"gridsnake/game"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	maxSpectators = 100
	sendBufSize   = 16
)

// Hub fans snapshots out to every connected spectator. Slow spectators drop
// frames instead of stalling the game.
type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}

	// last encoded frame, sent to spectators as soon as they join
	last []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 16),
		unregister: make(chan *Client, 16),
		done:       make(chan struct{}),
	}
}

// Run processes register/unregister events until ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			if h.last != nil {
				c.send <- h.last
			}
			h.mu.Unlock()
			log.Printf("spectate: %s joined, %d watching", c.remoteAddr, h.Clients())

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			log.Printf("spectate: %s left", c.remoteAddr)
		}
	}
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// CanAccept reports whether another spectator fits
func (h *Hub) CanAccept() bool {
	return h.Clients() < maxSpectators
}

// Publish encodes snap with msgpack and broadcasts it
func (h *Hub) Publish(snap game.Snapshot) error {
	data, err := msgpack.Marshal(&snap)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Client too slow, drop frame
		}
	}
	return nil
}

// Observe publishes the session after a frame. It fits Loop.OnFrame.
func (h *Hub) Observe(s *game.Session) {
	if err := h.Publish(s.Snapshot()); err != nil {
		log.Printf("spectate: encode snapshot: %v", err)
	}
}
