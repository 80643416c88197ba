package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"worldpop/internal/population/models"
)

// Queries against the world schema. Identifiers are unquoted so the same text
// runs on PostgreSQL (folded to lower case) and SQLite (case-insensitive).
const (
	selectCities = `
		SELECT ci.name, ci.countrycode, COALESCE(co.name, ''), COALESCE(ci.district, ''), ci.population
		FROM city ci
		LEFT JOIN country co ON co.code = ci.countrycode
		ORDER BY ci.id`

	selectCountries = `
		SELECT code, name, COALESCE(continent, ''), COALESCE(region, ''), population
		FROM country
		ORDER BY code`

	selectLanguages = `
		SELECT cl.countrycode, COALESCE(co.name, ''), cl.language, cl.isofficial, cl.percentage
		FROM countrylanguage cl
		LEFT JOIN country co ON co.code = cl.countrycode
		ORDER BY cl.countrycode, cl.language`
)

// SQLSource reads records from a world database through database/sql.
type SQLSource struct {
	db     *sql.DB
	logger *slog.Logger
}

// SQLOption configures a SQLSource.
type SQLOption func(*SQLSource)

// WithSQLLogger sets the logger used for fetch diagnostics.
func WithSQLLogger(logger *slog.Logger) SQLOption {
	return func(s *SQLSource) {
		s.logger = logger
	}
}

// NewSQLSource constructs a source over an open database handle. The caller
// owns db and closes it.
func NewSQLSource(db *sql.DB, opts ...SQLOption) *SQLSource {
	s := &SQLSource{db: db}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *SQLSource) FetchCities(ctx context.Context) ([]models.CityRecord, error) {
	return queryRecords(ctx, s, SetCities, selectCities, func(rows *sql.Rows) (models.CityRecord, error) {
		var c models.CityRecord
		err := rows.Scan(&c.Name, &c.CountryCode, &c.CountryName, &c.District, &c.Population)
		return c, err
	})
}

func (s *SQLSource) FetchCountries(ctx context.Context) ([]models.CountryRecord, error) {
	return queryRecords(ctx, s, SetCountries, selectCountries, func(rows *sql.Rows) (models.CountryRecord, error) {
		var c models.CountryRecord
		err := rows.Scan(&c.Code, &c.Name, &c.Continent, &c.Region, &c.Population)
		return c, err
	})
}

func (s *SQLSource) FetchLanguages(ctx context.Context) ([]models.LanguageRecord, error) {
	return queryRecords(ctx, s, SetLanguages, selectLanguages, func(rows *sql.Rows) (models.LanguageRecord, error) {
		var l models.LanguageRecord
		err := rows.Scan(&l.CountryCode, &l.CountryName, &l.Language, &l.IsOfficial, &l.Percentage)
		return l, err
	})
}

func queryRecords[T any](ctx context.Context, s *SQLSource, set, query string, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fetchErr(set, fmt.Errorf("query: %w", err))
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := scan(rows)
		if err != nil {
			return nil, fetchErr(set, fmt.Errorf("scan: %w", err))
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fetchErr(set, fmt.Errorf("iterate: %w", err))
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "records fetched", "set", set, "count", len(out))
	}
	return out, nil
}
