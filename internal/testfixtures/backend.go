package testfixtures

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httptransport "github.com/example/reservation-console/internal/http"
)

// Backend is a reference reservation backend served over HTTP from a
// temporary SQLite database.
type Backend struct {
	URL     string
	Storage *SQLiteHarness
	server  *httptest.Server
}

// BackendOption configures NewBackend.
type BackendOption func(*backendConfig)

type backendConfig struct {
	logger *slog.Logger
}

// WithBackendLogger routes backend logs to logger instead of discarding them.
func WithBackendLogger(logger *slog.Logger) BackendOption {
	return func(cfg *backendConfig) {
		cfg.logger = logger
	}
}

// NewBackend starts a backend for the duration of the test.
func NewBackend(tb testing.TB, opts ...BackendOption) *Backend {
	tb.Helper()

	cfg := backendConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	harness := NewSQLiteHarness(tb)
	router := httptransport.NewRouter(httptransport.RouterConfig{
		Rooms:        httptransport.NewRoomHandler(harness.Rooms, cfg.logger),
		Reservations: httptransport.NewReservationHandler(harness.Reservations, cfg.logger),
		Middleware:   []func(http.Handler) http.Handler{httptransport.RequestLogger(cfg.logger)},
	})

	server := httptest.NewServer(router)
	tb.Cleanup(server.Close)

	return &Backend{URL: server.URL, Storage: harness, server: server}
}

// Close stops the server before the test ends.
func (b *Backend) Close() {
	if b != nil && b.server != nil {
		b.server.Close()
	}
}
