// Package engine rolls flat city and country records up the geographic
// hierarchy. Every method is a pure function of its arguments: nothing is
// cached between calls and inputs are never modified, so one Engine may serve
// concurrent requests.
//
// The engine never fails. Empty input produces empty output, a lookup key that
// matches nothing produces an empty slice, and inconsistent data (cities that
// add up to more than their country) is reported as-is.
package engine

import (
	"math"
	"slices"

	"worldpop/internal/population/models"
)

// Engine computes population summaries.
type Engine struct{}

// New returns an Engine.
func New() *Engine {
	return &Engine{}
}

// cityTotals holds city population sums keyed the two ways a city can
// reference its country.
type cityTotals struct {
	byCode map[string]int64
	byName map[string]int64
}

func sumCities(cities []models.CityRecord) cityTotals {
	t := cityTotals{
		byCode: make(map[string]int64),
		byName: make(map[string]int64),
	}
	for _, c := range cities {
		if c.CountryCode != "" {
			t.byCode[c.CountryCode] += c.Population
		} else {
			t.byName[c.CountryName] += c.Population
		}
	}
	return t
}

// of returns the population of every city that joins to country, 0 when
// there are none.
func (t cityTotals) of(country models.CountryRecord) int64 {
	var sum int64
	if country.Code != "" {
		sum += t.byCode[country.Code]
	}
	return sum + t.byName[country.Name]
}

// newBreakdown builds a summary whose non-city population is the residual of
// total and city.
func newBreakdown(name string, total, city int64) models.Summary {
	nonCity := total - city
	return models.Summary{
		Name:            name,
		TotalPopulation: total,
		Split: &models.Split{
			CityPopulation:    city,
			NonCityPopulation: nonCity,
			CityPercentage:    Percentage(city, total),
			NonCityPercentage: Percentage(nonCity, total),
		},
	}
}

// Percentage returns part as a whole-number percentage of total, rounding
// halves up. A non-positive total yields 0.
func Percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Floor(float64(part)/float64(total)*100 + 0.5)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
