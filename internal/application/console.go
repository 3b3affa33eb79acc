package application

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/example/reservation-console/internal/booking"
)

// Console drives the list, create and delete flows of the reservation UI.
//
// Every operation catches its own failure, logs it once and returns without
// touching the view, so a failed fetch leaves the previous table in place and a
// failed mutation triggers no refresh. Requests are detached from caller
// cancellation: once issued they run to completion or failure.
type Console struct {
	api            API
	view           View
	logger         *slog.Logger
	deleteControls bool
}

// Option customises a Console.
type Option func(*Console)

// WithLogger sets the console logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Console) {
		c.logger = defaultLogger(logger)
	}
}

// WithoutDeleteControls renders tables without per-row delete controls.
func WithoutDeleteControls() Option {
	return func(c *Console) {
		c.deleteControls = false
	}
}

// WithDeleteControls toggles per-row delete controls.
func WithDeleteControls(enabled bool) Option {
	return func(c *Console) {
		c.deleteControls = enabled
	}
}

// NewConsole constructs a console rendering into view.
func NewConsole(api API, view View, opts ...Option) *Console {
	c := &Console{api: api, view: view, logger: slog.Default(), deleteControls: true}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Console) loggerWith(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return serviceLogger(ctx, c.logger, "Console", operation, attrs...)
}

// RoomActions returns the callbacks bound to the room table and form.
func (c *Console) RoomActions() RoomActions {
	actions := RoomActions{Create: c.CreateRoom}
	if c.deleteControls {
		actions.Delete = c.DeleteRoom
	}
	return actions
}

// ReservationActions returns the callbacks bound to the reservation table and form.
func (c *Console) ReservationActions() ReservationActions {
	actions := ReservationActions{Create: c.CreateReservation}
	if c.deleteControls {
		actions.Delete = c.DeleteReservation
	}
	return actions
}

// Start performs the page-ready bootstrap: rooms and reservations are fetched
// concurrently and rendered independently. It returns once both fetches have
// finished, whatever their outcome.
func (c *Console) Start(ctx context.Context) {
	var g errgroup.Group
	g.Go(func() error {
		c.ListRooms(ctx)
		return nil
	})
	g.Go(func() error {
		c.ListReservations(ctx)
		return nil
	})
	_ = g.Wait()
}

// ListRooms fetches the rooms and replaces the room table.
func (c *Console) ListRooms(ctx context.Context) {
	ctx = detach(ctx)
	rooms, err := c.api.ListRooms(ctx)
	if err != nil {
		c.fail(ctx, "ListRooms", "Erreur lors de la récupération des salles", err)
		return
	}
	c.loggerWith(ctx, "ListRooms").DebugContext(ctx, "rooms fetched", "result_count", len(rooms))
	c.view.RenderRooms(ctx, rooms, c.RoomActions())
}

// ListReservations fetches the reservations and replaces the reservation table.
func (c *Console) ListReservations(ctx context.Context) {
	ctx = detach(ctx)
	reservations, err := c.api.ListReservations(ctx)
	if err != nil {
		c.fail(ctx, "ListReservations", "Erreur lors de la récupération des réservations", err)
		return
	}
	c.loggerWith(ctx, "ListReservations").DebugContext(ctx, "reservations fetched", "result_count", len(reservations))
	c.view.RenderReservations(ctx, reservations, c.ReservationActions())
}

// CreateRoom submits a room from raw form values and refreshes the room
// table on success. The capacity is parsed leniently and sent as null when it
// holds no number.
func (c *Console) CreateRoom(ctx context.Context, name, capacity string) {
	ctx = detach(ctx)
	room := booking.RoomFromForm(name, capacity)
	if err := c.api.AddRoom(ctx, room); err != nil {
		c.fail(ctx, "CreateRoom", "Erreur lors de l'ajout de la salle", err, "capacity", room.Capacity.String())
		return
	}
	c.loggerWith(ctx, "CreateRoom").InfoContext(ctx, "room submitted")
	c.ListRooms(ctx)
}

// CreateReservation submits a reservation from raw form values and refreshes
// the reservation table on success.
func (c *Console) CreateReservation(ctx context.Context, roomID, date, startTime, endTime string) {
	ctx = detach(ctx)
	reservation := booking.ReservationFromForm(roomID, date, startTime, endTime)
	if err := c.api.CreateReservation(ctx, reservation); err != nil {
		c.fail(ctx, "CreateReservation", "Erreur lors de la création de la réservation", err, "room_id", reservation.RoomID.String())
		return
	}
	c.loggerWith(ctx, "CreateReservation", "room_id", reservation.RoomID.String()).InfoContext(ctx, "reservation submitted")
	c.ListReservations(ctx)
}

// DeleteRoom removes a room and refreshes the room table on success.
func (c *Console) DeleteRoom(ctx context.Context, id int) {
	ctx = detach(ctx)
	if err := c.api.DeleteRoom(ctx, id); err != nil {
		c.fail(ctx, "DeleteRoom", "Erreur lors de la suppression de la salle", err, "room_id", id)
		return
	}
	c.loggerWith(ctx, "DeleteRoom", "room_id", id).InfoContext(ctx, "room deleted")
	c.ListRooms(ctx)
}

// DeleteReservation removes a reservation and refreshes the reservation table
// on success.
func (c *Console) DeleteReservation(ctx context.Context, id int) {
	ctx = detach(ctx)
	if err := c.api.DeleteReservation(ctx, id); err != nil {
		c.fail(ctx, "DeleteReservation", "Erreur lors de la suppression de la réservation", err, "reservation_id", id)
		return
	}
	c.loggerWith(ctx, "DeleteReservation", "reservation_id", id).InfoContext(ctx, "reservation deleted")
	c.ListReservations(ctx)
}

func (c *Console) fail(ctx context.Context, operation, message string, err error, attrs ...any) {
	attrs = append(attrs, statusAttrs(err)...)
	c.loggerWith(ctx, operation, attrs...).ErrorContext(ctx, message, "error", err, "error_kind", ErrorKind(err))
}

func detach(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return context.WithoutCancel(ctx)
}
