package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/example/reservation-console/internal/logging"
)

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("reuses an inbound request id", func(t *testing.T) {
		t.Parallel()
		logger, logs := newTestLogger()

		var seen string
		handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = logging.RequestIDFromContext(r.Context())
			if logging.FromContext(r.Context()) == nil {
				t.Errorf("expected request logger in context")
			}
			w.WriteHeader(http.StatusTeapot)
		}))

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen != "abc-123" {
			t.Fatalf("expected inbound id, got %q", seen)
		}
		if rec.Header().Get(RequestIDHeader) != "abc-123" {
			t.Fatalf("expected id echoed in response header")
		}
		out := logs.String()
		for _, want := range []string{"request started", "request completed", "request_id=abc-123", "status=418"} {
			if !strings.Contains(out, want) {
				t.Fatalf("expected %q in logs, got %s", want, out)
			}
		}
	})

	t.Run("generates a uuid when none is provided", func(t *testing.T) {
		t.Parallel()
		logger, _ := newTestLogger()

		var seen string
		handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = logging.RequestIDFromContext(r.Context())
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms", nil))

		if _, err := uuid.Parse(seen); err != nil {
			t.Fatalf("expected uuid request id, got %q: %v", seen, err)
		}
	})

	t.Run("handlers log through the request logger", func(t *testing.T) {
		t.Parallel()
		logger, logs := newTestLogger()
		router := NewRouter(RouterConfig{
			Rooms:      NewRoomHandler(&memoryStore{}, nil),
			Middleware: []func(http.Handler) http.Handler{RequestLogger(logger)},
		})

		req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
		req.Header.Set(RequestIDHeader, "trace-9")
		router.ServeHTTP(httptest.NewRecorder(), req)

		if !strings.Contains(logs.String(), "rooms listed") || !strings.Contains(logs.String(), "handler=RoomHandler") {
			t.Fatalf("expected handler log with request logger, got %s", logs.String())
		}
	})
}
