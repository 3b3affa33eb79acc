package http

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/example/reservation-console/internal/persistence"
)

var errStorage = errors.New("disk I/O error")

type memoryStore struct {
	mu           sync.Mutex
	nextID       int
	rooms        []persistence.Room
	reservations []persistence.Reservation
	err          error
	deleted      []int
}

func (m *memoryStore) CreateRoom(ctx context.Context, room persistence.Room) (persistence.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return persistence.Room{}, m.err
	}
	m.nextID++
	room.ID = m.nextID
	m.rooms = append(m.rooms, room)
	return room, nil
}

func (m *memoryStore) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]persistence.Room(nil), m.rooms...), nil
}

func (m *memoryStore) DeleteRoom(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memoryStore) CreateReservation(ctx context.Context, reservation persistence.Reservation) (persistence.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return persistence.Reservation{}, m.err
	}
	m.nextID++
	reservation.ID = m.nextID
	m.reservations = append(m.reservations, reservation)
	return reservation, nil
}

func (m *memoryStore) ListReservations(ctx context.Context) ([]persistence.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]persistence.Reservation(nil), m.reservations...), nil
}

func (m *memoryStore) DeleteReservation(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func newTestRouter(store *memoryStore) (http.Handler, *bytes.Buffer) {
	logger, buf := newTestLogger()
	return NewRouter(RouterConfig{
		Rooms:        NewRoomHandler(store, logger),
		Reservations: NewReservationHandler(store, logger),
	}), buf
}
