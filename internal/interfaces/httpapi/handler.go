package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fplpulse/fpl-pulse/internal/platform/logging"
	"github.com/fplpulse/fpl-pulse/internal/usecase"
)

type Handler struct {
	gameweekService *usecase.GameweekService
	insightsService *usecase.PlayerInsightsService
	fixtureService  *usecase.FixtureService
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	gameweekService *usecase.GameweekService,
	insightsService *usecase.PlayerInsightsService,
	fixtureService *usecase.FixtureService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		gameweekService: gameweekService,
		insightsService: insightsService,
		fixtureService:  fixtureService,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type limitQuery struct {
	Limit int `validate:"gt=0,lte=500"`
}

type differentialsQuery struct {
	Limit        int     `validate:"gt=0,lte=500"`
	MaxOwnership float64 `validate:"gte=0,lte=100"`
}

type tickerQuery struct {
	Count  int `validate:"gt=0,lte=38"`
	Offset int `validate:"gte=-38,lte=38"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) PriceChanges(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PriceChanges")
	defer span.End()

	limit, err := queryInt(r, "limit", usecase.DefaultPriceChangeLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := limitQuery{Limit: limit}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.insightsService.PriceChanges(ctx, query.Limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "price changes failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]priceChangeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, priceChangeToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) Differentials(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Differentials")
	defer span.End()

	limit, err := queryInt(r, "limit", usecase.DefaultDifferentialLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	maxOwnership, err := queryFloat(r, "max_ownership", usecase.DefaultMaxOwnership)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := differentialsQuery{Limit: limit, MaxOwnership: maxOwnership}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.insightsService.Differentials(ctx, query.Limit, query.MaxOwnership)
	if err != nil {
		h.logger.ErrorContext(ctx, "differentials failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]differentialDTO, 0, len(items))
	for _, item := range items {
		out = append(out, differentialToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayers")
	defer span.End()

	limit, err := queryInt(r, "limit", usecase.DefaultTopPlayerLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := limitQuery{Limit: limit}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.insightsService.TopPlayers(ctx, query.Limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "top players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]topPlayerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, topPlayerToDTO(item))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func (h *Handler) GameweekOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GameweekOverview")
	defer span.End()

	overview, err := h.gameweekService.Overview(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrNoGameweekData) {
			writeJSON(ctx, w, http.StatusServiceUnavailable, map[string]any{})
			return
		}
		h.logger.ErrorContext(ctx, "gameweek overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, gameweekOverviewToDTO(overview))
}

func (h *Handler) FixtureTicker(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.FixtureTicker")
	defer span.End()

	count, err := queryInt(r, "count", usecase.DefaultTickerCount)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := tickerQuery{Count: count, Offset: offset}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.fixtureService.Ticker(ctx, query.Count, query.Offset)
	if err != nil {
		if errors.Is(err, usecase.ErrNoGameweekData) {
			writeJSON(ctx, w, http.StatusServiceUnavailable, map[string]any{})
			return
		}
		h.logger.ErrorContext(ctx, "fixture ticker failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, tickerToDTO(view))
}

func (h *Handler) NextFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.NextFixtures")
	defer span.End()

	fixtures, err := h.fixtureService.NextFixtures(ctx)
	if err != nil {
		if errors.Is(err, usecase.ErrNoGameweekData) {
			writeJSON(ctx, w, http.StatusServiceUnavailable, []any{})
			return
		}
		h.logger.ErrorContext(ctx, "next fixtures failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]nextFixtureDTO, 0, len(fixtures))
	for _, fixture := range fixtures {
		out = append(out, nextFixtureToDTO(fixture))
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return value, nil
}

func queryFloat(r *http.Request, key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", usecase.ErrInvalidInput, key)
	}
	return value, nil
}
