package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchbook/internal/domain/validation"
	"github.com/riskibarqy/matchbook/internal/usecase"
)

const (
	msgInvalidJSON      = "Invalid JSON payload"
	msgPayloadTooLarge  = "Payload too large"
	msgForbidden        = "Forbidden: Unauthorized access"
	msgInvalidPassword  = "Forbidden: Invalid password"
	msgMatchNotFound    = "Match not found"
	msgInternalError    = "Internal server error"
	msgInvalidInput     = "Invalid input"
	msgFailedAddMatch   = "Failed to add match"
	msgFailedUpdate     = "Failed to update match"
	msgFailedDelete     = "Failed to delete match"
	msgFailedNextMatch  = "Failed to update next match"
	msgFailedAddStats   = "Failed to add stats"
	msgAuthenticated    = "Authentication successful"
	msgMatchAdded       = "Match added successfully"
	msgMatchUpdated     = "Match updated successfully"
	msgMatchDeleted     = "Match deleted successfully"
	msgNextMatchUpdated = "Next match updated successfully"
	msgStatsAdded       = "Stats added successfully"
)

var errPayloadTooLarge = errors.New("payload too large")

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type createdResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Message    string
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeMessage(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, messageResponse{Message: message})
}

func writeCreated(ctx context.Context, w http.ResponseWriter, id int64, message string) {
	writeJSON(ctx, w, http.StatusCreated, createdResponse{ID: id, Message: message})
}

// writeError responds with the flat error body. internalMsg is used for any
// error that is not a client mistake, so storage details never leak.
func writeError(ctx context.Context, w http.ResponseWriter, err error, internalMsg string) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	mapped := mapError(ctx, err, internalMsg)
	writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{Error: mapped.Message})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: msgInternalError})
}

func mapError(ctx context.Context, err error, internalMsg string) mappedError {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	if v, ok := validation.AsViolation(err); ok {
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: v.Error()}
	}

	switch {
	case errors.Is(err, usecase.ErrMalformedPayload):
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: msgInvalidJSON}
	case errors.Is(err, errPayloadTooLarge):
		return mappedError{HTTPStatus: http.StatusRequestEntityTooLarge, Message: msgPayloadTooLarge}
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{HTTPStatus: http.StatusBadRequest, Message: msgInvalidInput}
	case errors.Is(err, usecase.ErrForbidden):
		return mappedError{HTTPStatus: http.StatusForbidden, Message: msgForbidden}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{HTTPStatus: http.StatusNotFound, Message: msgMatchNotFound}
	default:
		if internalMsg == "" {
			internalMsg = msgInternalError
		}
		return mappedError{HTTPStatus: http.StatusInternalServerError, Message: internalMsg}
	}
}
