package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/riskibarqy/matchbook/internal/platform/logging"
	"github.com/riskibarqy/matchbook/internal/usecase"
)

type Handler struct {
	authService      *usecase.AuthService
	matchService     *usecase.MatchService
	nextMatchService *usecase.NextMatchService
	statsService     *usecase.StatsService
	logger           *logging.Logger
}

func NewHandler(
	authService *usecase.AuthService,
	matchService *usecase.MatchService,
	nextMatchService *usecase.NextMatchService,
	statsService *usecase.StatsService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:      authService,
		matchService:     matchService,
		nextMatchService: nextMatchService,
		statsService:     statsService,
		logger:           logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Authenticate")
	defer span.End()

	password, _ := payloadFromContext(ctx)["password"].(string)
	if err := h.authService.Authenticate(ctx, password); err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			h.logger.WarnContext(ctx, "authentication rejected", "client_ip", clientIP(r))
			writeJSON(ctx, w, http.StatusForbidden, errorResponse{Error: msgInvalidPassword})
			return
		}
		h.fail(ctx, w, "authenticate failed", err, msgInternalError)
		return
	}

	writeMessage(ctx, w, http.StatusOK, msgAuthenticated)
}

// fail logs server faults at error level and client mistakes at debug level,
// then writes the mapped response.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, event string, err error, internalMsg string) {
	mapped := mapError(ctx, err, internalMsg)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, event, "error", err)
	} else {
		h.logger.DebugContext(ctx, event, "status", mapped.HTTPStatus, "error", err)
	}
	writeJSON(ctx, w, mapped.HTTPStatus, errorResponse{Error: mapped.Message})
}
