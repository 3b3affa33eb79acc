package render

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/example/reservation-console/internal/application"
	"github.com/example/reservation-console/internal/booking"
)

// TextTables prints each rendered table to a terminal, one line per record
// after a title line. Delete callbacks are not represented; the menu exposes
// deletion as its own entries.
type TextTables struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTextTables returns a renderer writing to out.
func NewTextTables(out io.Writer) *TextTables {
	return &TextTables{out: out}
}

// RenderRooms implements application.View.
func (t *TextTables) RenderRooms(_ context.Context, rooms []booking.Room, _ application.RoomActions) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, "\nListe des salles:")
	WriteRooms(t.out, rooms)
}

// RenderReservations implements application.View.
func (t *TextTables) RenderReservations(_ context.Context, reservations []booking.Reservation, _ application.ReservationActions) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, "\nListe des réservations:")
	WriteReservations(t.out, reservations)
}

// WriteRooms prints one line per room.
func WriteRooms(w io.Writer, rooms []booking.Room) {
	for _, room := range rooms {
		fmt.Fprintf(w, "ID: %d, Nom: %s, Capacité: %d\n", room.ID, room.Name, room.Capacity)
	}
}

// WriteReservations prints one line per reservation.
func WriteReservations(w io.Writer, reservations []booking.Reservation) {
	for _, r := range reservations {
		fmt.Fprintf(w, "ID: %d, Salle ID: %d, Date: %s, Heure de début: %s, Heure de fin: %s\n", r.ID, r.RoomID, r.Date, r.StartTime, r.EndTime)
	}
}
