package httpapi

import "net/http"

// GetNextMatch responds with null until a next match has been set.
func (h *Handler) GetNextMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNextMatch")
	defer span.End()

	next, ok, err := h.nextMatchService.Get(ctx)
	if err != nil {
		h.fail(ctx, w, "get next match failed", err, msgInternalError)
		return
	}
	if !ok {
		writeJSON(ctx, w, http.StatusOK, nil)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toNextMatchDTO(next))
}

func (h *Handler) SetNextMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetNextMatch")
	defer span.End()

	if err := h.nextMatchService.Set(ctx, payloadFromContext(ctx)); err != nil {
		h.fail(ctx, w, "set next match failed", err, msgFailedNextMatch)
		return
	}

	writeCreated(ctx, w, 1, msgNextMatchUpdated)
}
