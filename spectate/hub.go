// Package spectate streams match snapshots to read-only websocket viewers.
package spectate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/websocket"

	"pongai/game"
)

// Frames buffered per viewer before the oldest is dropped
const clientBuffer = 8

type client struct {
	send chan game.Snapshot
}

// Hub fans snapshots out to connected viewers. Publish never blocks the game
// loop: a slow viewer loses its oldest queued frames instead.
type Hub struct {
	logger *log.Logger

	mu        sync.Mutex
	clients   map[*client]struct{}
	latest    game.Snapshot
	hasLatest bool
	closed    bool
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// Publish queues s for every viewer and remembers it for late joiners
func (h *Hub) Publish(s game.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.latest, h.hasLatest = s, true
	for c := range h.clients {
		enqueue(c.send, s)
	}
}

func enqueue(ch chan game.Snapshot, s game.Snapshot) {
	for {
		select {
		case ch <- s:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Clients returns the number of connected viewers
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every viewer; later connections are refused.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		close(c.send)
		delete(h.clients, c)
	}
}

// Handler serves the websocket feed. Viewers only receive; anything they send
// is ignored.
func (h *Hub) Handler() http.Handler {
	// Spectators may connect from any page, so the origin is not checked.
	return websocket.Server{Handler: websocket.Handler(h.serve)}
}

func (h *Hub) add() (*client, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	c := &client{send: make(chan game.Snapshot, clientBuffer)}
	if h.hasLatest {
		c.send <- h.latest
	}
	h.clients[c] = struct{}{}
	return c, true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) serve(ws *websocket.Conn) {
	defer ws.Close()

	c, ok := h.add()
	if !ok {
		return
	}
	defer h.remove(c)

	addr := ws.Request().RemoteAddr
	h.logger.Printf("spectator %s connected", addr)

	for s := range c.send {
		if err := websocket.JSON.Send(ws, s); err != nil {
			h.logger.Printf("spectator %s dropped: %v", addr, err)
			return
		}
	}
	h.logger.Printf("spectator %s disconnected", addr)
}

// ListenAndServe serves hub on addr until ctx is done
func ListenAndServe(ctx context.Context, addr string, hub *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/", hub.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		hub.logger.Printf("spectator feed listening on ws://%s/", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		hub.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: %w", err)
	case <-ctx.Done():
	}

	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectate shutdown: %w", err)
	}
	return nil
}
