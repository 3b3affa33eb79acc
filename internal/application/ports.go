package application

import (
	"context"
	"io"

	"github.com/example/reservation-console/internal/booking"
)

// API captures the backend calls the console depends on.
type API interface {
	ListRooms(ctx context.Context) ([]booking.Room, error)
	ListReservations(ctx context.Context) ([]booking.Reservation, error)
	AddRoom(ctx context.Context, room booking.NewRoom) error
	CreateReservation(ctx context.Context, reservation booking.NewReservation) error
	DeleteRoom(ctx context.Context, id int) error
	DeleteReservation(ctx context.Context, id int) error
	ExportReservations(ctx context.Context, format string, w io.Writer) error
}

// RoomActions are the callbacks a view binds to its room controls.
// A nil Delete means rows carry no delete control.
type RoomActions struct {
	Create func(ctx context.Context, name, capacity string)
	Delete func(ctx context.Context, id int)
}

// ReservationActions are the callbacks a view binds to its reservation controls.
// A nil Delete means rows carry no delete control.
type ReservationActions struct {
	Create func(ctx context.Context, roomID, date, startTime, endTime string)
	Delete func(ctx context.Context, id int)
}

// View is the rendering port. Each call replaces the previously rendered
// table wholesale with the given records, in the given order.
type View interface {
	RenderRooms(ctx context.Context, rooms []booking.Room, actions RoomActions)
	RenderReservations(ctx context.Context, reservations []booking.Reservation, actions ReservationActions)
}
