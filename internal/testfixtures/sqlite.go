package testfixtures

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/example/reservation-console/internal/persistence"
	"github.com/example/reservation-console/internal/persistence/sqlite"
)

// SQLiteHarness provides repository access backed by a temporary SQLite storage
// instance for integration-style tests.
type SQLiteHarness struct {
	Rooms        persistence.RoomRepository
	Reservations persistence.ReservationRepository

	cleanup func()
}

// Close releases resources associated with the harness.
func (h *SQLiteHarness) Close() {
	if h != nil && h.cleanup != nil {
		h.cleanup()
		h.cleanup = nil
	}
}

// NewSQLiteHarness constructs a SQLiteHarness using a temporary file that is
// migrated automatically. Callers may optionally invoke Close, but the helper
// will also register a cleanup callback with the provided testing.TB.
func NewSQLiteHarness(tb testing.TB) *SQLiteHarness {
	tb.Helper()

	dir := tb.TempDir()
	path := filepath.Join(dir, "reservation.db")

	storage, err := sqlite.Open(path)
	if err != nil {
		tb.Fatalf("failed to open storage: %v", err)
	}

	if err := storage.Migrate(context.Background()); err != nil {
		_ = storage.Close()
		tb.Fatalf("failed to migrate storage: %v", err)
	}

	harness := &SQLiteHarness{
		Rooms:        storage,
		Reservations: storage,
		cleanup: func() {
			_ = storage.Close()
		},
	}

	tb.Cleanup(harness.Close)
	return harness
}

// SeedRoom stores a generated room and returns it with its assigned id.
func (h *SQLiteHarness) SeedRoom(tb testing.TB, opts ...RoomOption) persistence.Room {
	tb.Helper()
	room, err := h.Rooms.CreateRoom(context.Background(), NewRoomFixture(opts...).Persistence())
	if err != nil {
		tb.Fatalf("failed to seed room: %v", err)
	}
	return room
}

// SeedReservation stores a generated reservation and returns it with its
// assigned id.
func (h *SQLiteHarness) SeedReservation(tb testing.TB, opts ...ReservationOption) persistence.Reservation {
	tb.Helper()
	reservation, err := h.Reservations.CreateReservation(context.Background(), NewReservationFixture(opts...).Persistence())
	if err != nil {
		tb.Fatalf("failed to seed reservation: %v", err)
	}
	return reservation
}
