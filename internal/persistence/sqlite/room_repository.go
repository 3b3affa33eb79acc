package sqlite

import (
	"context"
	"fmt"

	"github.com/example/reservation-console/internal/persistence"
)

// CreateRoom inserts a room and returns it with its assigned id.
func (s *Storage) CreateRoom(ctx context.Context, room persistence.Room) (persistence.Room, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO rooms (name, capacity) VALUES (?, ?)`,
		room.Name,
		room.Capacity,
	)
	if err != nil {
		return persistence.Room{}, fmt.Errorf("sqlite: insert room: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistence.Room{}, fmt.Errorf("sqlite: room id: %w", err)
	}
	room.ID = int(id)
	return room, nil
}

// ListRooms returns every room ordered by id.
func (s *Storage) ListRooms(ctx context.Context) ([]persistence.Room, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, capacity FROM rooms ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]persistence.Room, 0)
	for rows.Next() {
		var room persistence.Room
		if err := rows.Scan(&room.ID, &room.Name, &room.Capacity); err != nil {
			return nil, fmt.Errorf("sqlite: scan room: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list rooms: %w", err)
	}
	return rooms, nil
}

// DeleteRoom removes the room with id. Deleting a missing room is not an
// error, and reservations referencing it are left in place.
func (s *Storage) DeleteRoom(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id); err != nil {
		return fmt.Errorf("sqlite: delete room %d: %w", id, err)
	}
	return nil
}
