package application

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/reservation-console/internal/booking"
	"github.com/example/reservation-console/internal/scheduler"
)

// ExportReservations streams the backend's reservation export in format
// ("json" or "csv") to w.
func (c *Console) ExportReservations(ctx context.Context, format string, w io.Writer) (err error) {
	format = strings.ToLower(strings.TrimSpace(format))
	logger := c.loggerWith(ctx, "ExportReservations", "format", format)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "Erreur lors de l'exportation des réservations", append([]any{"error", err, "error_kind", ErrorKind(err)}, statusAttrs(err)...)...)
			return
		}
		logger.InfoContext(ctx, "reservations exported")
	}()

	if format != booking.ExportJSON && format != booking.ExportCSV {
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
		return
	}
	err = c.api.ExportReservations(detach(ctx), format, w)
	return
}

// AvailableRooms returns the rooms with no reservation overlapping the given
// date and time range, in backend order.
func (c *Console) AvailableRooms(ctx context.Context, date, startTime, endTime string) (rooms []booking.Room, err error) {
	logger := c.loggerWith(ctx, "AvailableRooms", "date", date, "start_time", startTime, "end_time", endTime)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "Erreur lors de la récupération des salles disponibles", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(rooms)).InfoContext(ctx, "available rooms listed")
	}()

	var slot scheduler.Slot
	slot, err = scheduler.ParseSlot(date, startTime, endTime)
	if err != nil {
		return
	}

	ctx = detach(ctx)
	var all []booking.Room
	if all, err = c.api.ListRooms(ctx); err != nil {
		return
	}
	var reservations []booking.Reservation
	if reservations, err = c.api.ListReservations(ctx); err != nil {
		return
	}

	rooms = scheduler.FreeRooms(all, reservations, slot)
	return
}

// RoomAgenda returns the reservations of a room on a date, ordered by start time.
func (c *Console) RoomAgenda(ctx context.Context, roomID int, date string) (agenda []booking.Reservation, err error) {
	logger := c.loggerWith(ctx, "RoomAgenda", "room_id", roomID, "date", date)
	defer func() {
		if err != nil {
			logger.ErrorContext(ctx, "Erreur lors de l'affichage des réservations", "error", err, "error_kind", ErrorKind(err))
			return
		}
		logger.With("result_count", len(agenda)).InfoContext(ctx, "room agenda listed")
	}()

	var reservations []booking.Reservation
	if reservations, err = c.api.ListReservations(detach(ctx)); err != nil {
		return
	}
	agenda = scheduler.RoomAgenda(reservations, roomID, date)
	return
}
