package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/project-tracker/internal/domain"
	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
	"github.com/jsamuelsen11/project-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/project-tracker/internal/ports"
)

// maxInboundBytes caps client frames. The feed is one-way, so anything larger
// than a close or pong payload is a misbehaving client.
const maxInboundBytes = 512

// SubscriptionHandler upgrades GET /subscribe to a WebSocket and streams
// update events to the client until either side goes away or the server
// shuts down.
type SubscriptionHandler struct {
	feed     ports.EventFeed
	cfg      config.FeedConfig
	upgrader websocket.Upgrader
	limiter  *rate.Limiter

	mu       sync.Mutex
	closing  bool
	shutdown chan struct{}
	conns    sync.WaitGroup
}

// NewSubscriptionHandler creates a SubscriptionHandler reading from feed.
// A non-positive connect rate disables admission limiting.
func NewSubscriptionHandler(feed ports.EventFeed, cfg *config.FeedConfig) *SubscriptionHandler {
	limit := rate.Inf
	if cfg.ConnectRate > 0 {
		limit = rate.Limit(cfg.ConnectRate)
	}

	h := &SubscriptionHandler{
		feed:     feed,
		cfg:      *cfg,
		limiter:  rate.NewLimiter(limit, cfg.ConnectBurst),
		shutdown: make(chan struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// Subscribe handles GET /subscribe.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if !h.acquire() {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: server shutting down", domain.ErrUnavailable))
		return
	}
	defer h.conns.Done()

	if !h.limiter.Allow() {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: too many subscription attempts", domain.ErrRateLimited))
		return
	}

	sub, err := h.feed.Subscribe()
	if err != nil {
		dto.WriteErrorResponse(w, r, fmt.Errorf("%w: subscribing to feed: %w", domain.ErrUnavailable, err))
		return
	}
	defer sub.Close()

	logger := logging.FromContext(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// The upgrader has already replied with an HTTP error.
		logger.DebugContext(r.Context(), "websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	logger.InfoContext(r.Context(), "subscriber connected", slog.String("remote_addr", r.RemoteAddr))
	reason := h.stream(conn, sub)
	logger.InfoContext(r.Context(), "subscriber disconnected",
		slog.String("reason", reason),
		slog.Uint64("dropped", sub.Dropped()),
	)
}

// Shutdown sends a going-away close frame to every open connection and waits
// for their handlers to return. Later subscription attempts get 503.
func (h *SubscriptionHandler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	if !h.closing {
		h.closing = true
		close(h.shutdown)
	}
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.conns.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for subscribers: %w", ctx.Err())
	}
}

func (h *SubscriptionHandler) acquire() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closing {
		return false
	}
	h.conns.Add(1)
	return true
}

// stream runs the connection until it closes and returns why.
func (h *SubscriptionHandler) stream(conn *websocket.Conn, sub ports.Subscription) string {
	pongWait := 2 * h.cfg.PingInterval
	conn.SetReadLimit(maxInboundBytes)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	readDone := make(chan struct{})
	go discardInbound(conn, readDone)

	ping := time.NewTicker(h.cfg.PingInterval)
	defer ping.Stop()

	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				h.closeConn(conn, readDone, "feed closed")
				return "feed closed"
			}
			if err := h.writeEvent(conn, ev); err != nil {
				return "write failed"
			}
		case <-h.shutdown:
			h.closeConn(conn, readDone, "server shutting down")
			return "shutdown"
		case <-readDone:
			return "client closed"
		case <-ping.C:
			deadline := time.Now().Add(h.cfg.WriteTimeout)
			if err := conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				return "ping failed"
			}
		}
	}
}

func (h *SubscriptionHandler) writeEvent(conn *websocket.Conn, ev event.UpdateEvent) error {
	if err := conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout)); err != nil {
		return err
	}
	return conn.WriteJSON(ev)
}

// closeConn starts the close handshake and waits up to the write timeout for
// the client to answer before the connection is torn down.
func (h *SubscriptionHandler) closeConn(conn *websocket.Conn, readDone <-chan struct{}, text string) {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, text)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(h.cfg.WriteTimeout)); err != nil {
		return
	}

	timer := time.NewTimer(h.cfg.WriteTimeout)
	defer timer.Stop()
	select {
	case <-readDone:
	case <-timer.C:
	}
}

// checkOrigin accepts requests without an Origin header (non-browser
// clients) and, when an allow list is configured, browser requests whose
// origin is on it.
func (h *SubscriptionHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || len(h.cfg.AllowedOrigins) == 0 {
		return true
	}
	return slices.ContainsFunc(h.cfg.AllowedOrigins, func(allowed string) bool {
		return allowed == "*" || strings.EqualFold(allowed, origin)
	})
}

// discardInbound drains client frames so control frames get processed and
// closes done once the read side fails.
func discardInbound(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}
