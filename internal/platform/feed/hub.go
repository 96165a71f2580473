// Package feed streams relayed game events to WebSocket observers.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"

	"github.com/vovakirdan/hexring/internal/events"
)

// DefaultBuffer is the number of events queued per client before new
// events are dropped for it.
const DefaultBuffer = 64

const writeTimeout = 5 * time.Second

// Options configures a Hub.
type Options struct {
	Buffer int
	// OriginPatterns are the browser origins allowed besides the host's own.
	OriginPatterns []string
	Logger         *log.Logger
}

// Hub fans events out to connected observers. Publish never blocks: each
// client has its own queue and a lagging client loses events.
type Hub struct {
	opts    Options
	logger  *log.Logger
	mu      sync.Mutex
	clients map[*client]struct{}
	dropped atomic.Uint64
}

type client struct {
	send chan []byte
}

// NewHub creates a hub with no clients.
func NewHub(opts Options) *Hub {
	if opts.Buffer <= 0 {
		opts.Buffer = DefaultBuffer
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Hub{
		opts:    opts,
		logger:  opts.Logger,
		clients: make(map[*client]struct{}),
	}
}

// Publish queues ev for every client. It is a bus subscriber.
func (h *Hub) Publish(ev events.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		h.logger.Warn("event not published", "event", ev.Name(), "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.dropped.Add(1)
		}
	}
}

// Clients returns the number of connected observers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Dropped returns how many events were dropped for lagging clients.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

func (h *Hub) register() *client {
	c := &client{send: make(chan []byte, h.opts.Buffer)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	return c
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

// ServeHTTP upgrades the request and streams events until the client goes
// away. Messages from the client are ignored.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.opts.OriginPatterns,
	})
	if err != nil {
		h.logger.Error("failed to accept", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.CloseNow()

	c := h.register()
	defer h.unregister(c)
	h.logger.Debug("observer connected", "remote", r.RemoteAddr)

	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("observer gone", "remote", r.RemoteAddr)
			return
		case data := <-c.send:
			if err := write(ctx, conn, data); err != nil {
				h.logger.Debug("observer write failed", "remote", r.RemoteAddr, "error", err)
				return
			}
		}
	}
}

func write(ctx context.Context, conn *websocket.Conn, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

// Serve listens on addr and serves the feed at /events until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/events", h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: writeTimeout,
		// hijacked connections outlive Shutdown; tie them to ctx instead
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		h.logger.Info("feed listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
