package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/reservation-console/internal/persistence"
)

func TestRoomHandlers(t *testing.T) {
	t.Parallel()

	t.Run("list returns rooms in storage order", func(t *testing.T) {
		t.Parallel()
		store := &memoryStore{rooms: []persistence.Room{
			{ID: 1, Name: "Lab A", Capacity: 10},
			{ID: 2, Name: "Salle B", Capacity: 4},
		}}
		router, _ := newTestRouter(store)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		want := `[{"ID":1,"Name":"Lab A","Capacity":10},{"ID":2,"Name":"Salle B","Capacity":4}]`
		if got := strings.TrimSpace(rec.Body.String()); got != want {
			t.Fatalf("unexpected body %s", got)
		}
	})

	t.Run("empty list encodes as an empty array", func(t *testing.T) {
		t.Parallel()
		router, _ := newTestRouter(&memoryStore{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
			t.Fatalf("expected [], got %s", got)
		}
	})

	t.Run("add stores the room and responds 201", func(t *testing.T) {
		t.Parallel()
		store := &memoryStore{}
		router, _ := newTestRouter(store)

		body := strings.NewReader(`{"Name":"Lab A","Capacity":10}`)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/addRoom", body))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if len(store.rooms) != 1 || store.rooms[0].Name != "Lab A" || store.rooms[0].Capacity != 10 {
			t.Fatalf("unexpected stored rooms %#v", store.rooms)
		}
	})

	t.Run("null capacity is stored as zero", func(t *testing.T) {
		t.Parallel()
		store := &memoryStore{}
		router, _ := newTestRouter(store)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/addRoom", strings.NewReader(`{"Name":"Lab","Capacity":null}`)))

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", rec.Code)
		}
		if store.rooms[0].Capacity != 0 {
			t.Fatalf("expected zero capacity, got %d", store.rooms[0].Capacity)
		}
	})

	t.Run("malformed body yields 400 with a message", func(t *testing.T) {
		t.Parallel()
		store := &memoryStore{}
		router, _ := newTestRouter(store)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/addRoom", strings.NewReader(`{"Name":`)))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		var payload errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("failed to decode error body: %v", err)
		}
		if payload.Message != errBadRequestBody.Error() {
			t.Fatalf("unexpected message %q", payload.Message)
		}
		if len(store.rooms) != 0 {
			t.Fatalf("expected nothing stored")
		}
	})

	t.Run("delete parses the id query parameter", func(t *testing.T) {
		t.Parallel()
		store := &memoryStore{}
		router, _ := newTestRouter(store)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/deleteRoom?id=7", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(store.deleted) != 1 || store.deleted[0] != 7 {
			t.Fatalf("expected room 7 deleted, got %v", store.deleted)
		}
	})

	t.Run("delete rejects non-integer ids", func(t *testing.T) {
		t.Parallel()
		store := &memoryStore{}
		router, _ := newTestRouter(store)

		for _, target := range []string{"/deleteRoom", "/deleteRoom?id=abc", "/deleteRoom?id=7.5"} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, target, nil))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", target, rec.Code)
			}
		}
		if len(store.deleted) != 0 {
			t.Fatalf("expected no deletes, got %v", store.deleted)
		}
	})

	t.Run("storage failures yield 500 without leaking details", func(t *testing.T) {
		t.Parallel()
		router, logs := newTestRouter(&memoryStore{err: errStorage})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
		if strings.Contains(rec.Body.String(), errStorage.Error()) {
			t.Fatalf("storage error leaked to client: %s", rec.Body.String())
		}
		if !strings.Contains(logs.String(), "room list failed") {
			t.Fatalf("expected failure to be logged, got %s", logs.String())
		}
	})
}
