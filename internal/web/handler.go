// Package web serves the browser console: one page showing the room and
// reservation tables plus the forms that drive the console operations.
package web

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/reservation-console/internal/application"
	"github.com/example/reservation-console/internal/booking"
	httptransport "github.com/example/reservation-console/internal/http"
	"github.com/example/reservation-console/internal/logging"
	"github.com/example/reservation-console/internal/render"
)

var errExportFailed = errors.New("L'exportation des réservations a échoué.")

// Handler hosts the console page and its form endpoints.
type Handler struct {
	console *application.Console
	tables  *render.HTMLTables
	logger  *slog.Logger
}

// NewHandler binds the console to the tables it renders into. tables must be
// the view the console was constructed with.
func NewHandler(console *application.Console, tables *render.HTMLTables, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{console: console, tables: tables, logger: logger}
}

// Routes returns the console router wrapped with request logging.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Page)
	mux.HandleFunc("/rooms", h.CreateRoom)
	mux.HandleFunc("/reservations", h.CreateReservation)
	mux.HandleFunc(render.DefaultDeleteRoomPath, h.DeleteRoom)
	mux.HandleFunc(render.DefaultDeleteReservationPath, h.DeleteReservation)
	mux.HandleFunc("/reservations/export", h.Export)
	return httptransport.RequestLogger(h.logger)(mux)
}

func (h *Handler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = h.logger
	}
	pairs := append([]any{"handler", "ConsolePage", "operation", operation}, attrs...)
	return logger.With(pairs...)
}

// Page loads both tables from the backend and serves the console page. A
// failed fetch keeps the table from the last successful one.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}

	h.console.Start(r.Context())

	var buf bytes.Buffer
	data := pageData{Rooms: h.tables.Rooms(), Reservations: h.tables.Reservations()}
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.log(r.Context(), "Page").ErrorContext(r.Context(), "failed to render page", "error", err)
		httptransport.WriteError(r.Context(), w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// CreateRoom submits the add room form.
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.log(r.Context(), "CreateRoom").ErrorContext(r.Context(), "failed to parse form", "error", err)
		httptransport.WriteError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	h.console.RoomActions().Create(r.Context(), r.PostForm.Get("roomName"), r.PostForm.Get("roomCapacity"))
	redirectHome(w, r)
}

// CreateReservation submits the add reservation form.
func (h *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	if err := r.ParseForm(); err != nil {
		h.log(r.Context(), "CreateReservation").ErrorContext(r.Context(), "failed to parse form", "error", err)
		httptransport.WriteError(r.Context(), w, http.StatusBadRequest, err)
		return
	}
	h.console.ReservationActions().Create(r.Context(),
		r.PostForm.Get("reservationRoomId"),
		r.PostForm.Get("reservationDate"),
		r.PostForm.Get("reservationStartTime"),
		r.PostForm.Get("reservationEndTime"),
	)
	redirectHome(w, r)
}

// DeleteRoom handles a room row delete control.
func (h *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	h.deleteRow(w, r, "DeleteRoom", h.console.RoomActions().Delete)
}

// DeleteReservation handles a reservation row delete control.
func (h *Handler) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	h.deleteRow(w, r, "DeleteReservation", h.console.ReservationActions().Delete)
}

func (h *Handler) deleteRow(w http.ResponseWriter, r *http.Request, operation string, remove func(context.Context, int)) {
	if remove == nil {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	raw := r.PostFormValue("id")
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		h.log(r.Context(), operation, "raw_id", raw).ErrorContext(r.Context(), "invalid id in delete form", "error", err, "error_kind", "bad_request")
		redirectHome(w, r)
		return
	}
	remove(r.Context(), id)
	redirectHome(w, r)
}

// Export streams the reservation export as a download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	var buf bytes.Buffer
	if err := h.console.ExportReservations(r.Context(), format, &buf); err != nil {
		if errors.Is(err, application.ErrUnsupportedFormat) {
			httptransport.WriteError(r.Context(), w, http.StatusBadRequest, errors.New("Format d'export invalide."))
			return
		}
		httptransport.WriteError(r.Context(), w, http.StatusBadGateway, errExportFailed)
		return
	}

	contentType := "application/json; charset=utf-8"
	if format == booking.ExportCSV {
		contentType = "text/csv"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", "attachment;filename=reservations."+format)
	_, _ = w.Write(buf.Bytes())
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
