package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"tictac/engine"
	"tictac/graph"
	"tictac/viz"
)

// ErrStopped is returned by Submit once the hub loop has exited.
var ErrStopped = errors.New("hub stopped")

type request struct {
	cmd   Command
	reply chan error
}

type client struct {
	send chan []byte
}

// Hub owns the visualization state and drives the engine on a ticker. State
// and engine are only touched by the Run goroutine; clients reach them
// through Submit and receive every frame as JSON.
type Hub struct {
	graph    *graph.Graph
	engine   engine.Engine
	state    viz.State
	interval time.Duration
	requests chan request
	done     chan struct{}

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  []byte
}

func NewHub(g *graph.Graph, e engine.Engine, state viz.State, interval time.Duration) *Hub {
	return &Hub{
		graph:    g,
		engine:   e,
		state:    state,
		interval: interval,
		requests: make(chan request),
		done:     make(chan struct{}),
		clients:  make(map[*client]struct{}),
	}
}

// Run ticks until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer h.closeClients()
	defer close(h.done)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case req := <-h.requests:
			state, err := Apply(h.graph, h.state, req.cmd)
			if err == nil {
				h.state = state
			}
			req.reply <- err
		case <-ticker.C:
			h.tick()
		}
	}
}

func (h *Hub) tick() {
	frame := h.engine.Tick(h.state)
	data, err := json.Marshal(frame)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode frame")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.latest = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// slow client, it will catch up on a later frame
		}
	}
}

// Submit applies cmd on the hub loop and waits for the result.
func (h *Hub) Submit(ctx context.Context, cmd Command) error {
	reply := make(chan error, 1)
	select {
	case h.requests <- request{cmd: cmd, reply: reply}:
	case <-h.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Latest returns the most recent encoded frame, or nil before the first tick.
func (h *Hub) Latest() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// register adds a client, or returns ErrStopped once Run has exited and
// no longer closes client channels.
func (h *Hub) register() (*client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.done:
		return nil, ErrStopped
	default:
	}
	c := &client{send: make(chan []byte, 4)}
	h.clients[c] = struct{}{}
	return c, nil
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) closeClients() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
