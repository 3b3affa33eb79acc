package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/example/reservation-console/internal/persistence"
)

type RoomHandler struct {
	repo      persistence.RoomRepository
	responder responder
	logger    *slog.Logger
}

func NewRoomHandler(repo persistence.RoomRepository, logger *slog.Logger) *RoomHandler {
	base := defaultLogger(logger)
	return &RoomHandler{repo: repo, responder: newResponder(base), logger: base}
}

func (h *RoomHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "RoomHandler", operation, attrs...)
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.repo == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode room request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create")
	room, err := h.repo.CreateRoom(r.Context(), persistence.Room{Name: req.Name, Capacity: req.Capacity})
	if err != nil {
		logger.ErrorContext(r.Context(), "room creation failed", "error", err, "error_kind", "storage")
		h.responder.writeStorageError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "room created", "room_id", room.ID)
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toRoomDTO(room))
}

func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.repo == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roomID, ok := queryID(r)
	if !ok {
		h.log(r.Context(), "Delete", "error_kind", "bad_request").ErrorContext(r.Context(), "invalid room id for delete", "raw_id", r.URL.Query().Get("id"))
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoomID)
		return
	}

	logger := h.log(r.Context(), "Delete", "room_id", roomID)
	if err := h.repo.DeleteRoom(r.Context(), roomID); err != nil {
		logger.ErrorContext(r.Context(), "room delete failed", "error", err, "error_kind", "storage")
		h.responder.writeStorageError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "room deleted")
	w.WriteHeader(http.StatusOK)
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.repo == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")
	rooms, err := h.repo.ListRooms(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "room list failed", "error", err, "error_kind", "storage")
		h.responder.writeStorageError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(rooms)).InfoContext(r.Context(), "rooms listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toRoomDTOs(rooms))
}

// queryID parses the integer id query parameter.
func queryID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get("id")))
	if err != nil {
		return 0, false
	}
	return id, true
}

type roomRequest struct {
	Name     string `json:"Name"`
	Capacity int    `json:"Capacity"`
}

type roomDTO struct {
	ID       int    `json:"ID"`
	Name     string `json:"Name"`
	Capacity int    `json:"Capacity"`
}

func toRoomDTO(room persistence.Room) roomDTO {
	return roomDTO{
		ID:       room.ID,
		Name:     room.Name,
		Capacity: room.Capacity,
	}
}

func toRoomDTOs(rooms []persistence.Room) []roomDTO {
	out := make([]roomDTO, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomDTO(room))
	}
	return out
}
