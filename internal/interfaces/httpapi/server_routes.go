package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerParticipantRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/participants", handler.ListParticipants)
	mux.HandleFunc("GET /v1/participants/{participantID}", handler.GetParticipant)
	mux.HandleFunc("GET /v1/participants/{participantID}/stats", handler.GetParticipantStats)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/warm-stats", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWarmStatsJob)))
}
