package httpapi

import "net/http"

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	matches, err := h.matchService.List(ctx)
	if err != nil {
		h.fail(ctx, w, "list matches failed", err, msgInternalError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, toMatchDTOs(matches))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	id, err := h.matchService.Create(ctx, payloadFromContext(ctx))
	if err != nil {
		h.fail(ctx, w, "create match failed", err, msgFailedAddMatch)
		return
	}

	h.logger.InfoContext(ctx, "match created", "match_id", id)
	writeCreated(ctx, w, id, msgMatchAdded)
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	rawID := r.PathValue("id")
	if err := h.matchService.Update(ctx, rawID, payloadFromContext(ctx)); err != nil {
		h.fail(ctx, w, "update match failed", err, msgFailedUpdate)
		return
	}

	h.logger.InfoContext(ctx, "match updated", "match_id", rawID)
	writeMessage(ctx, w, http.StatusOK, msgMatchUpdated)
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	rawID := r.PathValue("id")
	if err := h.matchService.Delete(ctx, rawID); err != nil {
		h.fail(ctx, w, "delete match failed", err, msgFailedDelete)
		return
	}

	h.logger.InfoContext(ctx, "match deleted", "match_id", rawID)
	writeMessage(ctx, w, http.StatusOK, msgMatchDeleted)
}
