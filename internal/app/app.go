package app

import (
	"fmt"
	"net/http"

	"github.com/fplpulse/fpl-pulse/external/fpl"
	"github.com/fplpulse/fpl-pulse/internal/config"
	"github.com/fplpulse/fpl-pulse/internal/interfaces/httpapi"
	"github.com/fplpulse/fpl-pulse/internal/platform/logging"
	"github.com/fplpulse/fpl-pulse/internal/platform/resilience"
	"github.com/fplpulse/fpl-pulse/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	fplClient := fpl.NewClient(fpl.ClientConfig{
		BaseURL: cfg.FPLBaseURL,
		Timeout: cfg.FPLTimeout,
		Logger:  logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMax,
		},
	})

	gameweekSvc := usecase.NewGameweekService(fplClient, logger)
	insightsSvc := usecase.NewPlayerInsightsService(fplClient, logger)
	fixtureSvc := usecase.NewFixtureService(fplClient, fplClient, logger)

	handler := httpapi.NewHandler(gameweekSvc, insightsSvc, fixtureSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
