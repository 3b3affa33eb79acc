package testfixtures

import (
	"fmt"
	"sync/atomic"

	"github.com/example/reservation-console/internal/booking"
	"github.com/example/reservation-console/internal/persistence"
)

var (
	roomCounter        uint64
	reservationCounter uint64
)

// ReferenceDate is the day used by generated reservations.
const ReferenceDate = "2024-05-01"

// ----------------------------- Room fixtures -----------------------------

// RoomFixture represents a deterministic room that can be materialised for
// client or persistence tests.
type RoomFixture struct {
	ID       int
	Name     string
	Capacity int
}

// RoomOption configures the generated room fixture.
type RoomOption func(*RoomFixture)

// NewRoomFixture returns a deterministic room fixture with optional overrides.
func NewRoomFixture(opts ...RoomOption) RoomFixture {
	idx := atomic.AddUint64(&roomCounter, 1)
	fixture := RoomFixture{
		Name:     fmt.Sprintf("Salle %03d", idx),
		Capacity: int(idx%20) + 2,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithRoomID sets the room identifier.
func WithRoomID(id int) RoomOption {
	return func(f *RoomFixture) {
		f.ID = id
	}
}

// WithRoomName overrides the generated name.
func WithRoomName(name string) RoomOption {
	return func(f *RoomFixture) {
		f.Name = name
	}
}

// WithRoomCapacity overrides the generated capacity.
func WithRoomCapacity(capacity int) RoomOption {
	return func(f *RoomFixture) {
		f.Capacity = capacity
	}
}

// Booking converts the fixture into the wire record.
func (f RoomFixture) Booking() booking.Room {
	return booking.Room{ID: f.ID, Name: f.Name, Capacity: f.Capacity}
}

// Persistence converts the fixture into the stored row.
func (f RoomFixture) Persistence() persistence.Room {
	return persistence.Room{ID: f.ID, Name: f.Name, Capacity: f.Capacity}
}

// -------------------------- Reservation fixtures --------------------------

// ReservationFixture represents a deterministic reservation. Generated
// fixtures occupy consecutive one hour slots on ReferenceDate.
type ReservationFixture struct {
	ID        int
	RoomID    int
	Date      string
	StartTime string
	EndTime   string
}

// ReservationOption configures the generated reservation fixture.
type ReservationOption func(*ReservationFixture)

// NewReservationFixture returns a deterministic reservation fixture with
// optional overrides.
func NewReservationFixture(opts ...ReservationOption) ReservationFixture {
	idx := atomic.AddUint64(&reservationCounter, 1)
	hour := 8 + int(idx%10)
	fixture := ReservationFixture{
		RoomID:    1,
		Date:      ReferenceDate,
		StartTime: fmt.Sprintf("%02d:00", hour),
		EndTime:   fmt.Sprintf("%02d:00", hour+1),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithReservationID sets the reservation identifier.
func WithReservationID(id int) ReservationOption {
	return func(f *ReservationFixture) {
		f.ID = id
	}
}

// WithReservationRoom sets the reserved room.
func WithReservationRoom(roomID int) ReservationOption {
	return func(f *ReservationFixture) {
		f.RoomID = roomID
	}
}

// WithReservationSlot overrides the date and times.
func WithReservationSlot(date, start, end string) ReservationOption {
	return func(f *ReservationFixture) {
		f.Date = date
		f.StartTime = start
		f.EndTime = end
	}
}

// Booking converts the fixture into the wire record.
func (f ReservationFixture) Booking() booking.Reservation {
	return booking.Reservation{
		ID:        f.ID,
		RoomID:    f.RoomID,
		Date:      f.Date,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
	}
}

// Persistence converts the fixture into the stored row.
func (f ReservationFixture) Persistence() persistence.Reservation {
	return persistence.Reservation{
		ID:        f.ID,
		RoomID:    f.RoomID,
		Date:      f.Date,
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
	}
}
