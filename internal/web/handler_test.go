package web

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/example/reservation-console/internal/application"
	"github.com/example/reservation-console/internal/booking"
	"github.com/example/reservation-console/internal/client"
	"github.com/example/reservation-console/internal/render"
	"github.com/example/reservation-console/internal/testfixtures"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.String()
}

func newTestLogger() (*slog.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func newHandlerUnderTest(t *testing.T, api application.API, opts ...application.Option) (http.Handler, *syncBuffer) {
	t.Helper()
	logger, logs := newTestLogger()
	tables := render.NewHTMLTables(logger)
	opts = append([]application.Option{application.WithLogger(logger)}, opts...)
	console := application.NewConsole(api, tables, opts...)
	return NewHandler(console, tables, logger).Routes(), logs
}

func newBackendClient(t *testing.T) (*client.Client, *testfixtures.Backend) {
	t.Helper()
	backend := testfixtures.NewBackend(t)
	c, err := client.New(backend.URL)
	if err != nil {
		t.Fatalf("client.New returned error: %v", err)
	}
	return c, backend
}

func postForm(handler http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func getPage(t *testing.T, handler http.Handler) string {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for page, got %d", rec.Code)
	}
	return rec.Body.String()
}

func TestHandler_PageCarriesDOMContract(t *testing.T) {
	api, _ := newBackendClient(t)
	handler, _ := newHandlerUnderTest(t, api)

	page := getPage(t, handler)
	for _, id := range []string{
		`id="roomList"`,
		`id="reservationList"`,
		`id="addRoomForm"`,
		`id="roomName"`,
		`id="roomCapacity"`,
		`id="addReservationForm"`,
		`id="reservationRoomId"`,
		`id="reservationDate"`,
		`id="reservationStartTime"`,
		`id="reservationEndTime"`,
	} {
		if !strings.Contains(page, id) {
			t.Fatalf("page is missing %s", id)
		}
	}
	if !strings.Contains(page, "<th>Capacité</th>") {
		t.Fatalf("expected rendered room table header")
	}
}

func TestHandler_CreateRoomRoundTrip(t *testing.T) {
	api, _ := newBackendClient(t)
	handler, _ := newHandlerUnderTest(t, api)

	rec := postForm(handler, "/rooms", url.Values{"roomName": {"Lab A"}, "roomCapacity": {"10"}})
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	page := getPage(t, handler)
	if !strings.Contains(page, "<td>Lab A</td><td>10</td>") {
		t.Fatalf("expected created room in page, got %s", page)
	}
}

func TestHandler_CreateReservationRoundTrip(t *testing.T) {
	api, backend := newBackendClient(t)
	room := backend.Storage.SeedRoom(t)
	handler, _ := newHandlerUnderTest(t, api)

	rec := postForm(handler, "/reservations", url.Values{
		"reservationRoomId":    {"1"},
		"reservationDate":      {"2024-05-01"},
		"reservationStartTime": {"09:00"},
		"reservationEndTime":   {"10:00"},
	})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}

	reservations, err := backend.Storage.Reservations.ListReservations(context.Background())
	if err != nil {
		t.Fatalf("ListReservations failed: %v", err)
	}
	if len(reservations) != 1 || reservations[0].RoomID != room.ID || reservations[0].StartTime != "09:00" {
		t.Fatalf("unexpected reservations %#v", reservations)
	}
}

func TestHandler_DeleteRoom(t *testing.T) {
	t.Run("removes the room", func(t *testing.T) {
		api, backend := newBackendClient(t)
		room := backend.Storage.SeedRoom(t, testfixtures.WithRoomName("Salle à supprimer"))
		handler, _ := newHandlerUnderTest(t, api)

		rec := postForm(handler, "/rooms/delete", url.Values{"id": {"1"}})
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}

		rooms, err := backend.Storage.Rooms.ListRooms(context.Background())
		if err != nil {
			t.Fatalf("ListRooms failed: %v", err)
		}
		if len(rooms) != 0 {
			t.Fatalf("expected room %d deleted, got %#v", room.ID, rooms)
		}
	})

	t.Run("invalid id is logged without a backend call", func(t *testing.T) {
		api := &failingAPI{}
		handler, logs := newHandlerUnderTest(t, api)

		rec := postForm(handler, "/rooms/delete", url.Values{"id": {"sept"}})
		if rec.Code != http.StatusSeeOther {
			t.Fatalf("expected 303, got %d", rec.Code)
		}
		if api.calls() != 0 {
			t.Fatalf("expected no backend call, got %d", api.calls())
		}
		if !strings.Contains(logs.String(), "invalid id in delete form") {
			t.Fatalf("expected invalid id log, got %s", logs.String())
		}
	})

	t.Run("disabled delete controls hide the route", func(t *testing.T) {
		api := &failingAPI{}
		handler, _ := newHandlerUnderTest(t, api, application.WithoutDeleteControls())

		rec := postForm(handler, "/reservations/delete", url.Values{"id": {"1"}})
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}

func TestHandler_FailuresKeepLastTables(t *testing.T) {
	api, backend := newBackendClient(t)
	backend.Storage.SeedRoom(t, testfixtures.WithRoomName("Lab A"))
	handler, logs := newHandlerUnderTest(t, api)

	if page := getPage(t, handler); !strings.Contains(page, "Lab A") {
		t.Fatalf("expected room in first page")
	}

	backend.Close()
	page := getPage(t, handler)
	if !strings.Contains(page, "Lab A") {
		t.Fatalf("expected stale table after failure, got %s", page)
	}
	if !strings.Contains(logs.String(), "Erreur lors de la récupération des salles") {
		t.Fatalf("expected fetch failure logged, got %s", logs.String())
	}
}

func TestHandler_Export(t *testing.T) {
	t.Run("streams csv as an attachment", func(t *testing.T) {
		api, backend := newBackendClient(t)
		backend.Storage.SeedReservation(t, testfixtures.WithReservationSlot("2024-05-01", "09:00", "10:00"))
		handler, _ := newHandlerUnderTest(t, api)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/export?format=csv", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got := rec.Header().Get("Content-Disposition"); got != "attachment;filename=reservations.csv" {
			t.Fatalf("unexpected disposition %q", got)
		}
		if !strings.Contains(rec.Body.String(), "2024-05-01,09:00,10:00") {
			t.Fatalf("unexpected csv %q", rec.Body.String())
		}
	})

	t.Run("unknown format yields 400", func(t *testing.T) {
		handler, _ := newHandlerUnderTest(t, &failingAPI{})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/export?format=xml", nil))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("backend failure yields the error envelope", func(t *testing.T) {
		handler, _ := newHandlerUnderTest(t, &failingAPI{})

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/export?format=json", nil))

		if rec.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"message"`) {
			t.Fatalf("expected JSON error envelope, got %s", rec.Body.String())
		}
	})
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	handler, _ := newHandlerUnderTest(t, &failingAPI{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))
	if rec.Code != http.StatusMethodNotAllowed || rec.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("expected 405 with Allow POST, got %d %q", rec.Code, rec.Header().Get("Allow"))
	}
}

var errUnavailable = errors.New("backend unavailable")

type failingAPI struct {
	mu    sync.Mutex
	count int
}

func (f *failingAPI) record() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count++
	return errUnavailable
}

func (f *failingAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.count
}

func (f *failingAPI) ListRooms(context.Context) ([]booking.Room, error) { return nil, f.record() }

func (f *failingAPI) ListReservations(context.Context) ([]booking.Reservation, error) {
	return nil, f.record()
}

func (f *failingAPI) AddRoom(context.Context, booking.NewRoom) error { return f.record() }

func (f *failingAPI) CreateReservation(context.Context, booking.NewReservation) error {
	return f.record()
}

func (f *failingAPI) DeleteRoom(context.Context, int) error { return f.record() }

func (f *failingAPI) DeleteReservation(context.Context, int) error { return f.record() }

func (f *failingAPI) ExportReservations(context.Context, string, io.Writer) error {
	return f.record()
}
