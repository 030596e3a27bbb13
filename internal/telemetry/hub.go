package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"fog-explorer/internal/logger"
	"fog-explorer/internal/session"

	"github.com/gorilla/websocket"
)

const (
	// DefaultInterval is how often each client is sent the latest snapshot.
	DefaultInterval = 100 * time.Millisecond
	writeTimeout    = time.Second
	shutdownTimeout = 2 * time.Second
)

// Hub keeps the latest session snapshot and streams it as JSON to websocket clients.
// Publish is called from the frame loop; each client has its own writer goroutine.
type Hub struct {
	interval time.Duration
	upgrader websocket.Upgrader
	log      *logger.Logger

	mu      sync.RWMutex
	latest  session.Snapshot
	seq     uint64
	clients int
}

// NewHub returns a hub sending at most one message per interval per client. log may be nil.
func NewHub(interval time.Duration, log *logger.Logger) *Hub {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Hub{
		interval: interval,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		log: log,
	}
}

// Publish replaces the latest snapshot.
func (h *Hub) Publish(s session.Snapshot) {
	h.mu.Lock()
	h.latest = s
	h.seq++
	h.mu.Unlock()
}

// Latest returns the last published snapshot and its sequence number (0 before the first Publish).
func (h *Hub) Latest() (session.Snapshot, uint64) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest, h.seq
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.clients
}

// ServeHTTP upgrades the request and streams snapshots until the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logf("telemetry: upgrade: %v", err)
		return
	}
	h.track(1)
	defer h.track(-1)
	h.stream(r.Context(), conn)
}

func (h *Hub) track(delta int) {
	h.mu.Lock()
	h.clients += delta
	h.mu.Unlock()
}

// stream owns conn: a reader goroutine notices the close, the caller goroutine writes.
func (h *Hub) stream(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	var sent uint64
	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), time.Now().Add(writeTimeout))
			return
		case <-closed:
			return
		case <-ticker.C:
			snap, seq := h.Latest()
			if seq == sent {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(snap); err != nil {
				h.logf("telemetry: write: %v", err)
				return
			}
			sent = seq
		}
	}
}

// Run serves the hub on addr at /ws until ctx is cancelled.
func (h *Hub) Run(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		BaseContext: func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	h.logf("telemetry: listening on %s", addr)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("telemetry: %w", err)
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			return fmt.Errorf("telemetry: shutdown: %w", err)
		}
		return nil
	}
}

func (h *Hub) logf(format string, args ...any) {
	if h.log != nil {
		h.log.Logf(format, args...)
	}
}
