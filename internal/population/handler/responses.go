package handler

import "worldpop/internal/population/models"

// ReportResponse is the envelope of every population report.
type ReportResponse[T any] struct {
	Level   string `json:"level"`
	Results []T    `json:"results"`
}

// BreakdownEntry is one row of a continent, region or country breakdown.
type BreakdownEntry struct {
	Name              string  `json:"name"`
	TotalPopulation   int64   `json:"total_population"`
	CityPopulation    int64   `json:"city_population"`
	NonCityPopulation int64   `json:"non_city_population"`
	CityPercentage    float64 `json:"city_percentage"`
	NonCityPercentage float64 `json:"non_city_percentage"`
}

// PopulationEntry is the result of a single-entity lookup.
type PopulationEntry struct {
	Name            string `json:"name"`
	TotalPopulation int64  `json:"total_population"`
}

// LanguageEntry is one row of the language report.
type LanguageEntry struct {
	Language        string  `json:"language"`
	Speakers        int64   `json:"speakers"`
	WorldPercentage float64 `json:"world_percentage"`
}

// BreakdownResponse renders breakdown summaries as report rows.
func BreakdownResponse(level string, sums []models.Summary) ReportResponse[BreakdownEntry] {
	out := make([]BreakdownEntry, 0, len(sums))
	for _, s := range sums {
		e := BreakdownEntry{Name: s.Name, TotalPopulation: s.TotalPopulation}
		if s.Split != nil {
			e.CityPopulation = s.Split.CityPopulation
			e.NonCityPopulation = s.Split.NonCityPopulation
			e.CityPercentage = s.Split.CityPercentage
			e.NonCityPercentage = s.Split.NonCityPercentage
		}
		out = append(out, e)
	}
	return ReportResponse[BreakdownEntry]{Level: level, Results: out}
}

// PopulationResponse renders lookup summaries, dropping any split.
func PopulationResponse(level string, sums []models.Summary) ReportResponse[PopulationEntry] {
	out := make([]PopulationEntry, 0, len(sums))
	for _, s := range sums {
		out = append(out, PopulationEntry{Name: s.Name, TotalPopulation: s.TotalPopulation})
	}
	return ReportResponse[PopulationEntry]{Level: level, Results: out}
}

// LanguageResponse renders the language report.
func LanguageResponse(sums []models.LanguageSummary) ReportResponse[LanguageEntry] {
	out := make([]LanguageEntry, 0, len(sums))
	for _, s := range sums {
		out = append(out, LanguageEntry{Language: s.Language, Speakers: s.Speakers, WorldPercentage: s.WorldPercentage})
	}
	return ReportResponse[LanguageEntry]{Level: "language", Results: out}
}
