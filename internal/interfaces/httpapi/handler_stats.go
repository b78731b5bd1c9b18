package httpapi

import "net/http"

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStats")
	defer span.End()

	snapshot, err := h.statsService.Latest(ctx)
	if err != nil {
		h.fail(ctx, w, "get stats failed", err, msgInternalError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toStatsDTO(snapshot))
}

func (h *Handler) AppendStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AppendStats")
	defer span.End()

	id, err := h.statsService.Append(ctx, payloadFromContext(ctx))
	if err != nil {
		h.fail(ctx, w, "append stats failed", err, msgFailedAddStats)
		return
	}

	h.logger.InfoContext(ctx, "stats appended", "stats_id", id)
	writeCreated(ctx, w, id, msgStatsAdded)
}
