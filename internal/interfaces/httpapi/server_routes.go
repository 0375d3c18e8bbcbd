package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerViewRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /price_changes", handler.PriceChanges)
	mux.HandleFunc("GET /differentials", handler.Differentials)
	mux.HandleFunc("GET /gameweek_overview", handler.GameweekOverview)
	mux.HandleFunc("GET /top_players", handler.TopPlayers)
	mux.HandleFunc("GET /fixtures", handler.FixtureTicker)
	mux.HandleFunc("GET /next_fixtures", handler.NextFixtures)
}

func registerSiteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /{$}", handler.Index)
}
