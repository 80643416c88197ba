package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"worldpop/internal/population/models"
	dErrors "worldpop/pkg/domain-errors"
	"worldpop/pkg/platform/httputil"
	pstrings "worldpop/pkg/platform/strings"
	"worldpop/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

// Service defines the population reports served over HTTP.
type Service interface {
	ContinentBreakdown(ctx context.Context) ([]models.Summary, error)
	RegionBreakdown(ctx context.Context) ([]models.Summary, error)
	CountryBreakdown(ctx context.Context) ([]models.Summary, error)
	Population(ctx context.Context, level models.Level, key string) ([]models.Summary, error)
	World(ctx context.Context) ([]models.Summary, error)
	Languages(ctx context.Context, targets []string) ([]models.LanguageSummary, error)
}

// Handler serves population reports.
type Handler struct {
	logger  *slog.Logger
	service Service
}

// New creates a new population Handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Register registers the population routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/population", func(r chi.Router) {
		r.Get("/continents", h.handleBreakdown(models.LevelContinent, h.service.ContinentBreakdown))
		r.Get("/regions", h.handleBreakdown(models.LevelRegion, h.service.RegionBreakdown))
		r.Get("/countries", h.handleBreakdown(models.LevelCountry, h.service.CountryBreakdown))
		r.Get("/world", h.handleWorld)
		r.Get("/{level}/{name}", h.handlePopulation)
	})
	r.Get("/languages", h.handleLanguages)
}

func (h *Handler) handleBreakdown(level models.Level, report func(context.Context) ([]models.Summary, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sums, err := report(r.Context())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, BreakdownResponse(level.String(), sums))
	}
}

func (h *Handler) handleWorld(w http.ResponseWriter, r *http.Request) {
	sums, err := h.service.World(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PopulationResponse(models.LevelWorld.String(), sums))
}

// handlePopulation serves GET /population/{level}/{name}.
func (h *Handler) handlePopulation(w http.ResponseWriter, r *http.Request) {
	level, err := models.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		h.writeError(w, r, dErrors.Wrap(err, dErrors.CodeValidation, err.Error()))
		return
	}
	name, err := pathParam(r, "name")
	if err != nil {
		h.writeError(w, r, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed name"))
		return
	}

	sums, err := h.service.Population(r.Context(), level, name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, PopulationResponse(level.String(), sums))
}

// handleLanguages serves GET /languages with an optional comma-separated
// ?languages= filter.
func (h *Handler) handleLanguages(w http.ResponseWriter, r *http.Request) {
	targets := pstrings.SplitList(r.URL.Query().Get("languages"))

	sums, err := h.service.Languages(r.Context(), targets)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, LanguageResponse(sums))
}

// pathParam returns the decoded URL parameter key. chi matches against
// r.URL.RawPath when it is set and against the already decoded r.URL.Path
// otherwise, so the parameter is unescaped only in the first case.
func pathParam(r *http.Request, key string) (string, error) {
	param := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return param, nil
	}
	return url.PathUnescape(param)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	status := dErrors.ToHTTPStatus(dErrors.CodeOf(err))
	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"path", r.URL.Path,
		"status", status,
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "population report failed", attrs...)
	} else {
		h.logger.WarnContext(ctx, "invalid population request", attrs...)
	}
	httputil.WriteError(w, err)
}
