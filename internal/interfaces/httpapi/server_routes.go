package httpapi

import (
	"net/http"

	"github.com/riskibarqy/matchbook/internal/usecase"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /matches", handler.ListMatches)
	mux.HandleFunc("GET /next-match", handler.GetNextMatch)
	mux.HandleFunc("GET /stats", handler.GetStats)
	mux.Handle("POST /authenticate", ParseJSONBody(http.HandlerFunc(handler.Authenticate)))
}

// Body parsing wraps the guard so a malformed body is reported before a bad secret.
func registerAdminRoutes(mux *http.ServeMux, handler *Handler, authorizer usecase.Authorizer) {
	admin := func(h http.HandlerFunc) http.Handler {
		return ParseJSONBody(RequireAdmin(authorizer, h))
	}

	mux.Handle("POST /matches", admin(handler.CreateMatch))
	mux.Handle("PUT /matches/{id}", admin(handler.UpdateMatch))
	mux.Handle("DELETE /matches/{id}", admin(handler.DeleteMatch))
	mux.Handle("POST /next-match", admin(handler.SetNextMatch))
	mux.Handle("POST /stats", admin(handler.AppendStats))
}
