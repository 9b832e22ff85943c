package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/jsamuelsen11/project-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/project-tracker/internal/app/feed"
	"github.com/jsamuelsen11/project-tracker/internal/domain/event"
	"github.com/jsamuelsen11/project-tracker/internal/platform/config"
)

type subscriptionServer struct {
	bus     *feed.Bus
	handler *handlers.SubscriptionHandler
	url     string
}

func testFeedConfig() config.FeedConfig {
	return config.FeedConfig{
		BufferSize:   8,
		WriteTimeout: time.Second,
		PingInterval: time.Second,
		ConnectRate:  100,
		ConnectBurst: 100,
	}
}

func newSubscriptionServer(t *testing.T, cfg config.FeedConfig) subscriptionServer {
	t.Helper()

	bus := feed.New(cfg.BufferSize, nil)
	h := handlers.NewSubscriptionHandler(bus, &cfg)
	srv := httptest.NewServer(http.HandlerFunc(h.Subscribe))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = h.Shutdown(ctx)
		srv.Close()
		_ = bus.Close()
	})

	return subscriptionServer{
		bus:     bus,
		handler: h,
		url:     "ws" + strings.TrimPrefix(srv.URL, "http"),
	}
}

func dial(t *testing.T, url string, header http.Header) *websocket.Conn {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

// dialStatus performs a handshake expected to fail and returns the HTTP status.
func dialStatus(t *testing.T, url string, header http.Header) int {
	t.Helper()

	conn, resp, err := websocket.DefaultDialer.Dial(url, header)
	if err == nil {
		_ = conn.Close()
		t.Fatal("Dial() succeeded, want handshake failure")
	}
	if resp == nil {
		t.Fatalf("Dial() error = %v, want HTTP response", err)
	}
	_ = resp.Body.Close()
	return resp.StatusCode
}

func TestSubscribe_ReceivesEvents(t *testing.T) {
	t.Parallel()
	s := newSubscriptionServer(t, testFeedConfig())
	conn := dial(t, s.url, nil)

	id := uuid.New()
	if err := s.bus.Publish(context.Background(), event.TaskCreated(id)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := s.bus.Publish(context.Background(), event.ProjectDestroyed(id)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	want := []event.UpdateEvent{event.TaskCreated(id), event.ProjectDestroyed(id)}
	for i, w := range want {
		var got event.UpdateEvent
		if err := conn.ReadJSON(&got); err != nil {
			t.Fatalf("ReadJSON() #%d error = %v", i, err)
		}
		if got != w {
			t.Errorf("event #%d = %+v, want %+v", i, got, w)
		}
	}
}

func TestSubscribe_WireFormat(t *testing.T) {
	t.Parallel()
	s := newSubscriptionServer(t, testFeedConfig())
	conn := dial(t, s.url, nil)

	id := uuid.MustParse("5d1a7c1e-8a4b-4e0b-9a55-2f1f7f6c9b01")
	if err := s.bus.Publish(context.Background(), event.ProjectUpdated(id)); err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	msgType, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() error = %v", err)
	}
	if msgType != websocket.TextMessage {
		t.Errorf("message type = %d, want text", msgType)
	}
	want := `{"kind":"Update","entity_type":"Project","entity_id":"5d1a7c1e-8a4b-4e0b-9a55-2f1f7f6c9b01"}`
	if got := strings.TrimSpace(string(data)); got != want {
		t.Errorf("frame = %s, want %s", got, want)
	}
}

func TestSubscribe_ShutdownSendsGoingAway(t *testing.T) {
	t.Parallel()
	s := newSubscriptionServer(t, testFeedConfig())
	conn := dial(t, s.url, nil)

	// The client has to keep reading for the close frame to be answered.
	readErr := make(chan error, 1)
	go func() {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		for {
			if _, _, err := conn.NextReader(); err != nil {
				readErr <- err
				return
			}
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.handler.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	err := <-readErr
	var closeErr *websocket.CloseError
	if !errors.As(err, &closeErr) {
		t.Fatalf("read error = %v, want *websocket.CloseError", err)
	}
	if closeErr.Code != websocket.CloseGoingAway {
		t.Errorf("close code = %d, want %d", closeErr.Code, websocket.CloseGoingAway)
	}
}

func TestSubscribe_RejectedAfterShutdown(t *testing.T) {
	t.Parallel()
	s := newSubscriptionServer(t, testFeedConfig())

	if err := s.handler.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if got := dialStatus(t, s.url, nil); got != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestSubscribe_FeedClosedEndsConnection(t *testing.T) {
	t.Parallel()
	s := newSubscriptionServer(t, testFeedConfig())
	conn := dial(t, s.url, nil)

	_ = s.bus.Close()

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("read error = %v, want going-away close", err)
	}
}

func TestSubscribe_FeedClosedBeforeConnect(t *testing.T) {
	t.Parallel()
	s := newSubscriptionServer(t, testFeedConfig())
	_ = s.bus.Close()

	if got := dialStatus(t, s.url, nil); got != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", got, http.StatusServiceUnavailable)
	}
}

func TestSubscribe_ConnectRateLimited(t *testing.T) {
	t.Parallel()
	cfg := testFeedConfig()
	cfg.ConnectRate = 0.001
	cfg.ConnectBurst = 1
	s := newSubscriptionServer(t, cfg)

	dial(t, s.url, nil)

	if got := dialStatus(t, s.url, nil); got != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", got, http.StatusTooManyRequests)
	}
}

func TestSubscribe_OriginCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		allowed []string
		origin  string
		wantOK  bool
	}{
		{name: "no allow list", origin: "https://evil.example", wantOK: true},
		{name: "listed origin", allowed: []string{"https://app.example"}, origin: "https://app.example", wantOK: true},
		{name: "case insensitive", allowed: []string{"https://APP.example"}, origin: "https://app.example", wantOK: true},
		{name: "wildcard", allowed: []string{"*"}, origin: "https://any.example", wantOK: true},
		{name: "missing origin header", allowed: []string{"https://app.example"}, wantOK: true},
		{name: "unlisted origin", allowed: []string{"https://app.example"}, origin: "https://evil.example", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testFeedConfig()
			cfg.AllowedOrigins = tt.allowed
			s := newSubscriptionServer(t, cfg)

			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}

			if tt.wantOK {
				dial(t, s.url, header)
				return
			}
			if got := dialStatus(t, s.url, header); got != http.StatusForbidden {
				t.Errorf("status = %d, want %d", got, http.StatusForbidden)
			}
		})
	}
}

func TestSubscribe_ClientDisconnectReleasesSubscription(t *testing.T) {
	t.Parallel()
	s := newSubscriptionServer(t, testFeedConfig())
	conn := dial(t, s.url, nil)

	if got := s.bus.Subscribers(); got != 1 {
		t.Fatalf("Subscribers() = %d, want 1", got)
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))

	deadline := time.Now().Add(2 * time.Second)
	for s.bus.Subscribers() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Subscribers() = %d after client close, want 0", s.bus.Subscribers())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
