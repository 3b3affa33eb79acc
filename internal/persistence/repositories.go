package persistence

import "context"

// RoomRepository exposes the room operations served by the backend.
type RoomRepository interface {
	CreateRoom(ctx context.Context, room Room) (Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	DeleteRoom(ctx context.Context, id int) error
}

// ReservationRepository exposes the reservation operations served by the backend.
type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation Reservation) (Reservation, error)
	ListReservations(ctx context.Context) ([]Reservation, error)
	DeleteReservation(ctx context.Context, id int) error
}
