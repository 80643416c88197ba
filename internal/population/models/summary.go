package models

// WorldName is the group key of the world-level summary.
const WorldName = "World"

// Summary is the population report for one grouping key. Split is set on
// breakdown reports only; single-entity lookups carry just the total.
type Summary struct {
	Name            string
	TotalPopulation int64
	Split           *Split
}

// Split is the urban/non-urban division of a summary's total.
// NonCityPopulation is TotalPopulation minus CityPopulation and goes negative
// when the cities of a country add up to more than its recorded total.
type Split struct {
	CityPopulation    int64
	NonCityPopulation int64
	CityPercentage    float64
	NonCityPercentage float64
}

// LanguageSummary is the number of speakers of a language worldwide.
type LanguageSummary struct {
	Language        string
	Speakers        int64
	WorldPercentage float64
}

// DefaultLanguages are the languages covered by the major-language report.
var DefaultLanguages = []string{"Chinese", "English", "Hindi", "Spanish", "Arabic"}
