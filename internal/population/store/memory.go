package store

import (
	"context"
	"sync"

	"worldpop/internal/population/models"
)

// InMemory is a record source over fixed slices. It backs development mode
// and tests. Callers always receive copies.
type InMemory struct {
	mu        sync.RWMutex
	cities    []models.CityRecord
	countries []models.CountryRecord
	languages []models.LanguageRecord
}

// NewInMemory returns an empty in-memory source.
func NewInMemory() *InMemory {
	return &InMemory{}
}

// Load replaces every record set.
func (s *InMemory) Load(cities []models.CityRecord, countries []models.CountryRecord, languages []models.LanguageRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities = clone(cities)
	s.countries = clone(countries)
	s.languages = clone(languages)
}

func (s *InMemory) FetchCities(ctx context.Context) ([]models.CityRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchErr(SetCities, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.cities), nil
}

func (s *InMemory) FetchCountries(ctx context.Context) ([]models.CountryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchErr(SetCountries, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.countries), nil
}

func (s *InMemory) FetchLanguages(ctx context.Context) ([]models.LanguageRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchErr(SetLanguages, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.languages), nil
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
