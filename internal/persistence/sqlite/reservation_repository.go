package sqlite

import (
	"context"
	"fmt"

	"github.com/example/reservation-console/internal/persistence"
)

// CreateReservation inserts a reservation and returns it with its assigned id.
// The room reference is stored as given.
func (s *Storage) CreateReservation(ctx context.Context, reservation persistence.Reservation) (persistence.Reservation, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO reservations (room_id, date, start_time, end_time) VALUES (?, ?, ?, ?)`,
		reservation.RoomID,
		reservation.Date,
		reservation.StartTime,
		reservation.EndTime,
	)
	if err != nil {
		return persistence.Reservation{}, fmt.Errorf("sqlite: insert reservation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.Reservation{}, fmt.Errorf("sqlite: reservation id: %w", err)
	}
	reservation.ID = int(id)
	return reservation, nil
}

// ListReservations returns every reservation ordered by id.
func (s *Storage) ListReservations(ctx context.Context) ([]persistence.Reservation, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, room_id, date, start_time, end_time FROM reservations ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]persistence.Reservation, 0)
	for rows.Next() {
		var r persistence.Reservation
		if err := rows.Scan(&r.ID, &r.RoomID, &r.Date, &r.StartTime, &r.EndTime); err != nil {
			return nil, fmt.Errorf("sqlite: scan reservation: %w", err)
		}
		reservations = append(reservations, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list reservations: %w", err)
	}
	return reservations, nil
}

// DeleteReservation removes the reservation with id. Deleting a missing
// reservation is not an error.
func (s *Storage) DeleteReservation(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sqlite: delete reservation %d: %w", id, err)
	}
	return nil
}
