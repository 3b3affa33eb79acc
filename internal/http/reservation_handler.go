package http

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/example/reservation-console/internal/booking"
	"github.com/example/reservation-console/internal/persistence"
)

var csvHeader = []string{"ID", "Room ID", "Date", "Start Time", "End Time"}

type ReservationHandler struct {
	repo      persistence.ReservationRepository
	responder responder
	logger    *slog.Logger
}

func NewReservationHandler(repo persistence.ReservationRepository, logger *slog.Logger) *ReservationHandler {
	base := defaultLogger(logger)
	return &ReservationHandler{repo: repo, responder: newResponder(base), logger: base}
}

func (h *ReservationHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	if h == nil {
		return slog.Default()
	}
	return handlerLogger(ctx, h.logger, "ReservationHandler", operation, attrs...)
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.repo == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(r.Context(), "Create", "error_kind", "bad_request").ErrorContext(r.Context(), "failed to decode reservation request", "error", err)
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	logger := h.log(r.Context(), "Create", "room_id", req.RoomID)
	reservation, err := h.repo.CreateReservation(r.Context(), req.toModel())
	if err != nil {
		logger.ErrorContext(r.Context(), "reservation creation failed", "error", err, "error_kind", "storage")
		h.responder.writeStorageError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "reservation created", "reservation_id", reservation.ID)
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toReservationDTO(reservation))
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.repo == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	reservationID, ok := queryID(r)
	if !ok {
		h.log(r.Context(), "Delete", "error_kind", "bad_request").ErrorContext(r.Context(), "invalid reservation id for delete", "raw_id", r.URL.Query().Get("id"))
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidReservationID)
		return
	}

	logger := h.log(r.Context(), "Delete", "reservation_id", reservationID)
	if err := h.repo.DeleteReservation(r.Context(), reservationID); err != nil {
		logger.ErrorContext(r.Context(), "reservation delete failed", "error", err, "error_kind", "storage")
		h.responder.writeStorageError(r.Context(), w, err)
		return
	}

	logger.InfoContext(r.Context(), "reservation deleted")
	w.WriteHeader(http.StatusOK)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.repo == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := h.log(r.Context(), "List")
	reservations, err := h.repo.ListReservations(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "reservation list failed", "error", err, "error_kind", "storage")
		h.responder.writeStorageError(r.Context(), w, err)
		return
	}

	logger.With("result_count", len(reservations)).InfoContext(r.Context(), "reservations listed")
	h.responder.writeJSON(r.Context(), w, http.StatusOK, toReservationDTOs(reservations))
}

// Export writes every reservation as a JSON document or a CSV attachment.
func (h *ReservationHandler) Export(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.repo == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	format := r.URL.Query().Get("format")
	logger := h.log(r.Context(), "Export", "format", format)
	if format != booking.ExportJSON && format != booking.ExportCSV {
		logger.ErrorContext(r.Context(), "unsupported export format", "error_kind", "bad_request")
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidFormat)
		return
	}

	reservations, err := h.repo.ListReservations(r.Context())
	if err != nil {
		logger.ErrorContext(r.Context(), "reservation export failed", "error", err, "error_kind", "storage")
		h.responder.writeStorageError(r.Context(), w, err)
		return
	}

	if format == booking.ExportJSON {
		h.responder.writeJSON(r.Context(), w, http.StatusOK, toReservationDTOs(reservations))
		logger.InfoContext(r.Context(), "reservations exported", "result_count", len(reservations))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment;filename=reservations.csv")
	writer := csv.NewWriter(w)
	records := make([][]string, 0, len(reservations)+1)
	records = append(records, csvHeader)
	for _, res := range reservations {
		records = append(records, []string{
			strconv.Itoa(res.ID),
			strconv.Itoa(res.RoomID),
			res.Date,
			res.StartTime,
			res.EndTime,
		})
	}
	if err := writer.WriteAll(records); err != nil {
		logger.ErrorContext(r.Context(), "failed to write csv export", "error", err)
		return
	}
	logger.InfoContext(r.Context(), "reservations exported", "result_count", len(reservations))
}

type reservationRequest struct {
	RoomID    int    `json:"RoomID"`
	Date      string `json:"Date"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
}

func (r reservationRequest) toModel() persistence.Reservation {
	return persistence.Reservation{
		RoomID:    r.RoomID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

type reservationDTO struct {
	ID        int    `json:"ID"`
	RoomID    int    `json:"RoomID"`
	Date      string `json:"Date"`
	StartTime string `json:"StartTime"`
	EndTime   string `json:"EndTime"`
}

func toReservationDTO(reservation persistence.Reservation) reservationDTO {
	return reservationDTO{
		ID:        reservation.ID,
		RoomID:    reservation.RoomID,
		Date:      reservation.Date,
		StartTime: reservation.StartTime,
		EndTime:   reservation.EndTime,
	}
}

func toReservationDTOs(reservations []persistence.Reservation) []reservationDTO {
	out := make([]reservationDTO, 0, len(reservations))
	for _, reservation := range reservations {
		out = append(out, toReservationDTO(reservation))
	}
	return out
}
