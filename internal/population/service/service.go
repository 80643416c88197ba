package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"worldpop/internal/population/engine"
	"worldpop/internal/population/metrics"
	"worldpop/internal/population/models"
	"worldpop/internal/population/store"
	dErrors "worldpop/pkg/domain-errors"
	"worldpop/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks RecordSource,LanguageSource

// RecordSource supplies the city and country records every report is built from.
type RecordSource interface {
	FetchCities(ctx context.Context) ([]models.CityRecord, error)
	FetchCountries(ctx context.Context) ([]models.CountryRecord, error)
}

// LanguageSource supplies language records for the language report.
type LanguageSource interface {
	FetchLanguages(ctx context.Context) ([]models.LanguageRecord, error)
}

// Report kinds, used as metric labels and span names.
const (
	KindContinents = "continents"
	KindRegions    = "regions"
	KindCountries  = "countries"
	KindLookup     = "lookup"
	KindLanguages  = "languages"
)

const tracerName = "worldpop/internal/population/service"

// Service fetches records from an injected source and runs them through the
// aggregation engine.
type Service struct {
	source    RecordSource
	languages LanguageSource
	engine    *engine.Engine
	targets   []string
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLanguageSource sets the source of the language report. Without it the
// record source is used when it also implements LanguageSource.
func WithLanguageSource(src LanguageSource) Option {
	return func(s *Service) {
		s.languages = src
	}
}

// WithLanguageTargets replaces the default languages reported by Languages.
func WithLanguageTargets(targets []string) Option {
	return func(s *Service) {
		s.targets = targets
	}
}

// WithTracerProvider traces through tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// New constructs a Service over source.
func New(source RecordSource, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, errors.New("record source is required")
	}
	s := &Service{
		source:  source,
		engine:  engine.New(),
		targets: models.DefaultLanguages,
		logger:  slog.New(slog.DiscardHandler),
		tracer:  otel.Tracer(tracerName),
	}
	if ls, ok := source.(LanguageSource); ok {
		s.languages = ls
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// ContinentBreakdown reports every continent with its city/non-city split.
func (s *Service) ContinentBreakdown(ctx context.Context) ([]models.Summary, error) {
	return runReport(ctx, s, KindContinents, func(ctx context.Context) ([]models.Summary, error) {
		cities, countries, err := s.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
		return s.engine.ContinentBreakdown(cities, countries), nil
	})
}

// RegionBreakdown reports every region with its city/non-city split.
func (s *Service) RegionBreakdown(ctx context.Context) ([]models.Summary, error) {
	return runReport(ctx, s, KindRegions, func(ctx context.Context) ([]models.Summary, error) {
		cities, countries, err := s.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
		return s.engine.RegionBreakdown(cities, countries), nil
	})
}

// CountryBreakdown reports every country with its city/non-city split.
func (s *Service) CountryBreakdown(ctx context.Context) ([]models.Summary, error) {
	return runReport(ctx, s, KindCountries, func(ctx context.Context) ([]models.Summary, error) {
		cities, countries, err := s.fetchAll(ctx)
		if err != nil {
			return nil, err
		}
		return s.engine.CountryBreakdown(cities, countries), nil
	})
}

// Population reports the total population of one entity. Only the record set
// the level is computed from is fetched. A key that matches nothing yields an
// empty result, not an error.
func (s *Service) Population(ctx context.Context, level models.Level, key string) ([]models.Summary, error) {
	attrs := []attribute.KeyValue{
		attribute.String("population.level", level.String()),
		attribute.String("population.key", key),
	}
	return runReport(ctx, s, KindLookup, func(ctx context.Context) ([]models.Summary, error) {
		if !level.Valid() {
			return nil, dErrors.New(dErrors.CodeValidation, "unknown level")
		}
		if level != models.LevelWorld && strings.TrimSpace(key) == "" {
			return nil, dErrors.New(dErrors.CodeValidation, level.String()+" name is required")
		}

		var (
			cities    []models.CityRecord
			countries []models.CountryRecord
			err       error
		)
		if level.UsesCities() {
			cities, err = fetch(ctx, s, store.SetCities, s.source.FetchCities)
		} else {
			countries, err = fetch(ctx, s, store.SetCountries, s.source.FetchCountries)
		}
		if err != nil {
			return nil, toDomainError(err)
		}
		return s.engine.Population(level, key, cities, countries), nil
	}, attrs...)
}

// World reports the total population of every country.
func (s *Service) World(ctx context.Context) ([]models.Summary, error) {
	return s.Population(ctx, models.LevelWorld, "")
}

// Languages reports the estimated speakers of targets, or of the configured
// default languages when targets is empty.
func (s *Service) Languages(ctx context.Context, targets []string) ([]models.LanguageSummary, error) {
	if len(targets) == 0 {
		targets = s.targets
	}
	attrs := []attribute.KeyValue{attribute.StringSlice("population.languages", targets)}
	return runReport(ctx, s, KindLanguages, func(ctx context.Context) ([]models.LanguageSummary, error) {
		if s.languages == nil {
			return nil, dErrors.New(dErrors.CodeUnavailable, "language data is not configured")
		}

		var (
			countries []models.CountryRecord
			languages []models.LanguageRecord
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			countries, err = fetch(gctx, s, store.SetCountries, s.source.FetchCountries)
			return err
		})
		g.Go(func() error {
			var err error
			languages, err = fetch(gctx, s, store.SetLanguages, s.languages.FetchLanguages)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, toDomainError(err)
		}
		return s.engine.LanguageBreakdown(countries, languages, targets), nil
	}, attrs...)
}

// fetchAll reads cities and countries concurrently. The first failure
// cancels the other fetch.
func (s *Service) fetchAll(ctx context.Context) ([]models.CityRecord, []models.CountryRecord, error) {
	var (
		cities    []models.CityRecord
		countries []models.CountryRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cities, err = fetch(gctx, s, store.SetCities, s.source.FetchCities)
		return err
	})
	g.Go(func() error {
		var err error
		countries, err = fetch(gctx, s, store.SetCountries, s.source.FetchCountries)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, toDomainError(err)
	}
	return cities, countries, nil
}

// fetch calls one source method, records it and normalises any failure into
// a *store.FetchError.
func fetch[T any](ctx context.Context, s *Service, set string, fn func(context.Context) ([]T, error)) ([]T, error) {
	start := time.Now()
	records, err := fn(ctx)
	s.metrics.ObserveFetch(set, time.Since(start), err)
	if err != nil {
		var fe *store.FetchError
		if !errors.As(err, &fe) {
			err = &store.FetchError{Set: set, Err: err}
		}
		s.logger.ErrorContext(ctx, "record fetch failed",
			"set", set,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// toDomainError maps a source failure to the code presented to callers.
func toDomainError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "population report timed out")
	}
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "population data is unavailable")
}

func runReport[T any](ctx context.Context, s *Service, kind string, run func(context.Context) ([]T, error), attrs ...attribute.KeyValue) ([]T, error) {
	ctx, span := s.tracer.Start(ctx, "population."+kind, trace.WithAttributes(attrs...))
	defer span.End()

	start := time.Now()
	out, err := run(ctx)
	elapsed := time.Since(start)

	if err != nil {
		s.metrics.ObserveReport(kind, failureOutcome(err), elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, string(dErrors.CodeOf(err)))
		return nil, err
	}

	outcome := metrics.OutcomeOK
	if len(out) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	s.metrics.ObserveReport(kind, outcome, elapsed)
	span.SetAttributes(attribute.Int("population.results", len(out)))
	s.logger.DebugContext(ctx, "report computed",
		"kind", kind,
		"results", len(out),
		"request_id", requestcontext.RequestID(ctx),
		"duration_ms", elapsed.Milliseconds(),
	)
	return out, nil
}

func failureOutcome(err error) string {
	switch dErrors.CodeOf(err) {
	case dErrors.CodeValidation:
		return metrics.OutcomeInvalid
	case dErrors.CodeTimeout:
		return metrics.OutcomeTimeout
	default:
		return metrics.OutcomeUnavailable
	}
}
