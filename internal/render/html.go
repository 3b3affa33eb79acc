// Package render provides implementations of the console rendering port.
package render

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"sync"

	"github.com/example/reservation-console/internal/application"
	"github.com/example/reservation-console/internal/booking"
)

// Default form targets for per-row delete controls.
const (
	DefaultDeleteRoomPath        = "/rooms/delete"
	DefaultDeleteReservationPath = "/reservations/delete"
)

var tableTemplates = template.Must(template.New("tables").Funcs(template.FuncMap{
	"deleteControl": func(path string, id int) deleteControlData {
		return deleteControlData{Path: path, ID: id}
	},
}).Parse(`
{{- define "rooms" -}}
<tr><th>ID</th><th>Nom</th><th>Capacité</th>{{if .DeletePath}}<th>Actions</th>{{end}}</tr>
{{- range .Rooms}}
<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Capacity}}</td>{{if $.DeletePath}}<td>{{template "delete" (deleteControl $.DeletePath .ID)}}</td>{{end}}</tr>
{{- end}}
{{- end -}}

{{- define "reservations" -}}
<tr><th>ID</th><th>ID Salle</th><th>Date</th><th>Heure de début</th><th>Heure de fin</th>{{if .DeletePath}}<th>Actions</th>{{end}}</tr>
{{- range .Reservations}}
<tr><td>{{.ID}}</td><td>{{.RoomID}}</td><td>{{.Date}}</td><td>{{.StartTime}}</td><td>{{.EndTime}}</td>{{if $.DeletePath}}<td>{{template "delete" (deleteControl $.DeletePath .ID)}}</td>{{end}}</tr>
{{- end}}
{{- end -}}

{{- define "delete" -}}
<form method="post" action="{{.Path}}"><input type="hidden" name="id" value="{{.ID}}"><button type="submit">Supprimer</button></form>
{{- end -}}
`))

type deleteControlData struct {
	Path string
	ID   int
}

type roomTableData struct {
	Rooms      []booking.Room
	DeletePath string
}

type reservationTableData struct {
	Reservations []booking.Reservation
	DeletePath   string
}

// HTMLTables renders the two console tables as HTML table rows. Each render
// replaces the previous table contents; the latest markup is read back with
// Rooms and Reservations. It is safe for concurrent use.
type HTMLTables struct {
	deleteRoomPath        string
	deleteReservationPath string
	logger                *slog.Logger

	mu           sync.RWMutex
	rooms        template.HTML
	reservations template.HTML
}

// NewHTMLTables returns a renderer whose delete controls post to the default paths.
func NewHTMLTables(logger *slog.Logger) *HTMLTables {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTMLTables{
		deleteRoomPath:        DefaultDeleteRoomPath,
		deleteReservationPath: DefaultDeleteReservationPath,
		logger:                logger,
	}
}

// RenderRooms implements application.View.
func (h *HTMLTables) RenderRooms(ctx context.Context, rooms []booking.Room, actions application.RoomActions) {
	data := roomTableData{Rooms: rooms}
	if actions.Delete != nil {
		data.DeletePath = h.deleteRoomPath
	}
	markup, ok := h.execute(ctx, "rooms", data)
	if !ok {
		return
	}
	h.mu.Lock()
	h.rooms = markup
	h.mu.Unlock()
}

// RenderReservations implements application.View.
func (h *HTMLTables) RenderReservations(ctx context.Context, reservations []booking.Reservation, actions application.ReservationActions) {
	data := reservationTableData{Reservations: reservations}
	if actions.Delete != nil {
		data.DeletePath = h.deleteReservationPath
	}
	markup, ok := h.execute(ctx, "reservations", data)
	if !ok {
		return
	}
	h.mu.Lock()
	h.reservations = markup
	h.mu.Unlock()
}

// Rooms returns the last rendered room table rows.
func (h *HTMLTables) Rooms() template.HTML {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.rooms
}

// Reservations returns the last rendered reservation table rows.
func (h *HTMLTables) Reservations() template.HTML {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.reservations
}

func (h *HTMLTables) execute(ctx context.Context, name string, data any) (template.HTML, bool) {
	var buf bytes.Buffer
	if err := tableTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.ErrorContext(ctx, "failed to render table", "table", name, "error", err)
		return "", false
	}
	// The template escapes every record value.
	return template.HTML(buf.String()), true
}
