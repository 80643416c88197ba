package engine

import "worldpop/internal/population/models"

// Population returns the total population of a single entity as a slice of
// at most one summary with no Split. World ignores key. Continent, Region and
// District sum every matching record; Country and City take the first match.
// A key that matches nothing, or an unknown level, yields an empty slice.
func (e *Engine) Population(level models.Level, key string, cities []models.CityRecord, countries []models.CountryRecord) []models.Summary {
	switch level {
	case models.LevelWorld:
		return sumWhere(models.WorldName, countries, func(models.CountryRecord) bool { return true }, countryPopulation)
	case models.LevelContinent:
		return sumWhere(key, countries, func(c models.CountryRecord) bool { return c.Continent == key }, countryPopulation)
	case models.LevelRegion:
		return sumWhere(key, countries, func(c models.CountryRecord) bool { return c.Region == key }, countryPopulation)
	case models.LevelCountry:
		return firstWhere(key, countries, func(c models.CountryRecord) bool { return c.Name == key }, countryPopulation)
	case models.LevelDistrict:
		return sumWhere(key, cities, func(c models.CityRecord) bool { return c.District == key }, cityPopulation)
	case models.LevelCity:
		return firstWhere(key, cities, func(c models.CityRecord) bool { return c.Name == key }, cityPopulation)
	default:
		return []models.Summary{}
	}
}

func countryPopulation(c models.CountryRecord) int64 { return c.Population }
func cityPopulation(c models.CityRecord) int64       { return c.Population }

func sumWhere[R any](name string, records []R, match func(R) bool, pop func(R) int64) []models.Summary {
	var total int64
	found := false
	for _, r := range records {
		if match(r) {
			total += pop(r)
			found = true
		}
	}
	if !found {
		return []models.Summary{}
	}
	return []models.Summary{{Name: name, TotalPopulation: total}}
}

func firstWhere[R any](name string, records []R, match func(R) bool, pop func(R) int64) []models.Summary {
	for _, r := range records {
		if match(r) {
			return []models.Summary{{Name: name, TotalPopulation: pop(r)}}
		}
	}
	return []models.Summary{}
}
