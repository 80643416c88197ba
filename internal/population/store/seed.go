package store

import "worldpop/internal/population/models"

// Dataset is a complete set of world records.
type Dataset struct {
	Cities    []models.CityRecord
	Countries []models.CountryRecord
	Languages []models.LanguageRecord
}

// SeedSampleWorld loads a small sample of the world database into s so the
// server can run without a database.
func SeedSampleWorld(s *InMemory) {
	d := SampleWorld()
	s.Load(d.Cities, d.Countries, d.Languages)
}

// SampleWorld returns a small extract of the world database covering every
// continent, including an uninhabited one.
func SampleWorld() Dataset {
	return Dataset{
		Countries: []models.CountryRecord{
			{Code: "AFG", Name: "Afghanistan", Continent: "Asia", Region: "Southern and Central Asia", Population: 22720000},
			{Code: "ARG", Name: "Argentina", Continent: "South America", Region: "South America", Population: 37032000},
			{Code: "ATA", Name: "Antarctica", Continent: "Antarctica", Region: "Antarctica", Population: 0},
			{Code: "AUS", Name: "Australia", Continent: "Oceania", Region: "Australia and New Zealand", Population: 18886000},
			{Code: "BRA", Name: "Brazil", Continent: "South America", Region: "South America", Population: 170115000},
			{Code: "CHN", Name: "China", Continent: "Asia", Region: "Eastern Asia", Population: 1277558000},
			{Code: "DEU", Name: "Germany", Continent: "Europe", Region: "Western Europe", Population: 82164700},
			{Code: "EGY", Name: "Egypt", Continent: "Africa", Region: "Northern Africa", Population: 68470000},
			{Code: "FRA", Name: "France", Continent: "Europe", Region: "Western Europe", Population: 59225700},
			{Code: "GBR", Name: "United Kingdom", Continent: "Europe", Region: "British Islands", Population: 59623400},
			{Code: "IND", Name: "India", Continent: "Asia", Region: "Southern and Central Asia", Population: 1013662000},
			{Code: "JPN", Name: "Japan", Continent: "Asia", Region: "Eastern Asia", Population: 126714000},
			{Code: "MEX", Name: "Mexico", Continent: "North America", Region: "Central America", Population: 98881000},
			{Code: "NGA", Name: "Nigeria", Continent: "Africa", Region: "Western Africa", Population: 111506000},
			{Code: "USA", Name: "United States", Continent: "North America", Region: "North America", Population: 278357000},
		},
		Cities: []models.CityRecord{
			{Name: "Kabul", CountryCode: "AFG", CountryName: "Afghanistan", District: "Kabol", Population: 1780000},
			{Name: "Buenos Aires", CountryCode: "ARG", CountryName: "Argentina", District: "Distrito Federal", Population: 2982146},
			{Name: "Sydney", CountryCode: "AUS", CountryName: "Australia", District: "New South Wales", Population: 3276207},
			{Name: "São Paulo", CountryCode: "BRA", CountryName: "Brazil", District: "São Paulo", Population: 9968485},
			{Name: "Rio de Janeiro", CountryCode: "BRA", CountryName: "Brazil", District: "Rio de Janeiro", Population: 5598953},
			{Name: "Shanghai", CountryCode: "CHN", CountryName: "China", District: "Shanghai", Population: 9696300},
			{Name: "Peking", CountryCode: "CHN", CountryName: "China", District: "Peking", Population: 7472000},
			{Name: "Chongqing", CountryCode: "CHN", CountryName: "China", District: "Chongqing", Population: 6351600},
			{Name: "Berlin", CountryCode: "DEU", CountryName: "Germany", District: "Berliini", Population: 3386667},
			{Name: "Cairo", CountryCode: "EGY", CountryName: "Egypt", District: "Kairo", Population: 6789479},
			{Name: "Paris", CountryCode: "FRA", CountryName: "France", District: "Île-de-France", Population: 2125246},
			{Name: "London", CountryCode: "GBR", CountryName: "United Kingdom", District: "England", Population: 7285000},
			{Name: "Edinburgh", CountryCode: "GBR", CountryName: "United Kingdom", District: "Scotland", Population: 450180},
			{Name: "Mumbai (Bombay)", CountryCode: "IND", CountryName: "India", District: "Maharashtra", Population: 10500000},
			{Name: "Delhi", CountryCode: "IND", CountryName: "India", District: "Delhi", Population: 7206704},
			{Name: "Tokyo", CountryCode: "JPN", CountryName: "Japan", District: "Tokyo-to", Population: 7980230},
			{Name: "Osaka", CountryCode: "JPN", CountryName: "Japan", District: "Osaka", Population: 2595674},
			{Name: "Ciudad de México", CountryCode: "MEX", CountryName: "Mexico", District: "Distrito Federal", Population: 8591309},
			{Name: "Lagos", CountryCode: "NGA", CountryName: "Nigeria", District: "Lagos", Population: 1518000},
			{Name: "New York", CountryCode: "USA", CountryName: "United States", District: "New York", Population: 8008278},
			{Name: "Los Angeles", CountryCode: "USA", CountryName: "United States", District: "California", Population: 3694820},
		},
		Languages: []models.LanguageRecord{
			{CountryCode: "AFG", CountryName: "Afghanistan", Language: "Pashto", IsOfficial: true, Percentage: 52.4},
			{CountryCode: "ARG", CountryName: "Argentina", Language: "Spanish", IsOfficial: true, Percentage: 96.8},
			{CountryCode: "AUS", CountryName: "Australia", Language: "English", IsOfficial: true, Percentage: 81.2},
			{CountryCode: "BRA", CountryName: "Brazil", Language: "Portuguese", IsOfficial: true, Percentage: 97.5},
			{CountryCode: "CHN", CountryName: "China", Language: "Chinese", IsOfficial: true, Percentage: 92.0},
			{CountryCode: "DEU", CountryName: "Germany", Language: "German", IsOfficial: true, Percentage: 91.3},
			{CountryCode: "EGY", CountryName: "Egypt", Language: "Arabic", IsOfficial: true, Percentage: 98.8},
			{CountryCode: "FRA", CountryName: "France", Language: "French", IsOfficial: true, Percentage: 93.6},
			{CountryCode: "GBR", CountryName: "United Kingdom", Language: "English", IsOfficial: true, Percentage: 97.3},
			{CountryCode: "IND", CountryName: "India", Language: "Hindi", IsOfficial: true, Percentage: 39.9},
			{CountryCode: "JPN", CountryName: "Japan", Language: "Japanese", IsOfficial: true, Percentage: 99.1},
			{CountryCode: "MEX", CountryName: "Mexico", Language: "Spanish", IsOfficial: true, Percentage: 92.1},
			{CountryCode: "NGA", CountryName: "Nigeria", Language: "Hausa", IsOfficial: false, Percentage: 21.1},
			{CountryCode: "USA", CountryName: "United States", Language: "English", IsOfficial: true, Percentage: 86.2},
			{CountryCode: "USA", CountryName: "United States", Language: "Spanish", IsOfficial: false, Percentage: 7.5},
		},
	}
}
