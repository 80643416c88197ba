package engine

import (
	"cmp"
	"slices"

	"worldpop/internal/population/models"
)

// ContinentBreakdown returns one summary per continent present in countries,
// ordered by continent name. Totals come from the country records; the city
// share is the sum of the cities joined to those countries.
func (e *Engine) ContinentBreakdown(cities []models.CityRecord, countries []models.CountryRecord) []models.Summary {
	return groupBreakdown(cities, countries, func(c models.CountryRecord) string { return c.Continent })
}

// RegionBreakdown is ContinentBreakdown grouped by region.
func (e *Engine) RegionBreakdown(cities []models.CityRecord, countries []models.CountryRecord) []models.Summary {
	return groupBreakdown(cities, countries, func(c models.CountryRecord) string { return c.Region })
}

// CountryBreakdown returns one summary per country record, ordered by name.
// Countries sharing a name keep their input order.
func (e *Engine) CountryBreakdown(cities []models.CityRecord, countries []models.CountryRecord) []models.Summary {
	totals := sumCities(cities)

	sorted := slices.Clone(countries)
	slices.SortStableFunc(sorted, func(a, b models.CountryRecord) int {
		return cmp.Compare(a.Name, b.Name)
	})

	out := make([]models.Summary, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, newBreakdown(c.Name, c.Population, totals.of(c)))
	}
	return out
}

type groupTotals struct {
	total int64
	city  int64
}

func groupBreakdown(cities []models.CityRecord, countries []models.CountryRecord, key func(models.CountryRecord) string) []models.Summary {
	if len(countries) == 0 {
		return []models.Summary{}
	}
	totals := sumCities(cities)

	groups := make(map[string]*groupTotals)
	for _, c := range countries {
		g, ok := groups[key(c)]
		if !ok {
			g = &groupTotals{}
			groups[key(c)] = g
		}
		g.total += c.Population
		g.city += totals.of(c)
	}

	out := make([]models.Summary, 0, len(groups))
	for _, name := range sortedKeys(groups) {
		g := groups[name]
		out = append(out, newBreakdown(name, g.total, g.city))
	}
	return out
}
