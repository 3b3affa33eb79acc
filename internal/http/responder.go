package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/reservation-console/internal/logging"
)

var (
	errBadRequestBody       = errors.New("Corps de requête invalide.")
	errInvalidRoomID        = errors.New("Identifiant de salle invalide.")
	errInvalidReservationID = errors.New("Identifiant de réservation invalide.")
	errInvalidFormat        = errors.New("Format d'export invalide.")
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := localizedStatusMessage(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" && status < http.StatusInternalServerError {
			message = msg
		}
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

// writeStorageError hides storage details from clients.
func (r responder) writeStorageError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		err = errors.New("unknown error")
	}
	r.writeError(ctx, w, http.StatusInternalServerError, err)
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := logging.FromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

func localizedStatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Le contenu de la requête est incorrect."
	case http.StatusNotFound:
		return "La ressource demandée est introuvable."
	case http.StatusMethodNotAllowed:
		return "Méthode non autorisée."
	default:
		return "Une erreur interne est survenue sur le serveur."
	}
}

type errorResponse struct {
	Message string `json:"message"`
}

// WriteError writes the JSON error envelope for status. Messages of server
// errors are replaced by a generic localized message.
func WriteError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	newResponder(nil).writeError(ctx, w, status, err)
}
