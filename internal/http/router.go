package http

import (
	"net/http"
	"strings"

	"github.com/example/reservation-console/internal/booking"
)

type RouterConfig struct {
	Rooms        *RoomHandler
	Reservations *ReservationHandler
	Middleware   []func(http.Handler) http.Handler
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	if cfg.Rooms != nil {
		mux.HandleFunc(booking.PathRooms, only(http.MethodGet, cfg.Rooms.List))
		mux.HandleFunc(booking.PathAddRoom, only(http.MethodPost, cfg.Rooms.Create))
		mux.HandleFunc(booking.PathDeleteRoom, only(http.MethodDelete, cfg.Rooms.Delete))
	}

	if cfg.Reservations != nil {
		mux.HandleFunc(booking.PathReservations, only(http.MethodGet, cfg.Reservations.List))
		mux.HandleFunc(booking.PathCreateReservation, only(http.MethodPost, cfg.Reservations.Create))
		mux.HandleFunc(booking.PathAddReservation, only(http.MethodPost, cfg.Reservations.Create))
		mux.HandleFunc(booking.PathDeleteReservation, only(http.MethodDelete, cfg.Reservations.Delete))
		mux.HandleFunc(booking.PathExportReservations, only(http.MethodGet, cfg.Reservations.Export))
	}

	var handler http.Handler = mux
	if len(cfg.Middleware) > 0 {
		for i := len(cfg.Middleware) - 1; i >= 0; i-- {
			if cfg.Middleware[i] != nil {
				handler = cfg.Middleware[i](handler)
			}
		}
	}

	return handler
}

func only(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			methodNotAllowed(w, method)
			return
		}
		next(w, r)
	}
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	if len(allowed) > 0 {
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
