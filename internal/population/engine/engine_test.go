package engine

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"worldpop/internal/population/models"
)

// =============================================================================
// Engine Test Suite
// =============================================================================

type EngineSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.engine = New()
}

func (s *EngineSuite) requireSplit(sum models.Summary) *models.Split {
	s.Require().NotNil(sum.Split, "breakdown summary %q has no split", sum.Name)
	return sum.Split
}

// =============================================================================
// Country Breakdown
// =============================================================================

func (s *EngineSuite) TestCountryBreakdown() {
	s.Run("country without cities is entirely non-city", func() {
		countries := []models.CountryRecord{
			{Name: "Afghanistan", Continent: "Asia", Region: "Southern Asia", Population: 22720000},
		}

		got := s.engine.CountryBreakdown(nil, countries)

		s.Require().Len(got, 1)
		s.Equal("Afghanistan", got[0].Name)
		s.Equal(int64(22720000), got[0].TotalPopulation)
		split := s.requireSplit(got[0])
		s.Equal(int64(0), split.CityPopulation)
		s.Equal(int64(22720000), split.NonCityPopulation)
		s.Equal(0.0, split.CityPercentage)
		s.Equal(100.0, split.NonCityPercentage)
	})

	s.Run("splits population between cities and the rest", func() {
		countries := []models.CountryRecord{{Name: "X", Continent: "Asia", Population: 1000000}}
		cities := []models.CityRecord{{Name: "C1", CountryName: "X", Population: 600000}}

		got := s.engine.CountryBreakdown(cities, countries)

		s.Require().Len(got, 1)
		split := s.requireSplit(got[0])
		s.Equal(int64(600000), split.CityPopulation)
		s.Equal(int64(400000), split.NonCityPopulation)
		s.Equal(60.0, split.CityPercentage)
		s.Equal(40.0, split.NonCityPercentage)
	})

	s.Run("city sum above the national total leaves a negative residual", func() {
		countries := []models.CountryRecord{{Name: "Overcounted", Continent: "Europe", Population: 500000}}
		cities := []models.CityRecord{
			{Name: "A", CountryName: "Overcounted", Population: 400000},
			{Name: "B", CountryName: "Overcounted", Population: 300000},
		}

		got := s.engine.CountryBreakdown(cities, countries)

		s.Require().Len(got, 1)
		split := s.requireSplit(got[0])
		s.Equal(int64(700000), split.CityPopulation)
		s.Equal(int64(-200000), split.NonCityPopulation)
		s.Equal(140.0, split.CityPercentage)
		s.Equal(-40.0, split.NonCityPercentage)
	})

	s.Run("orders by name and keeps duplicates in input order", func() {
		countries := []models.CountryRecord{
			{Code: "ZMB", Name: "Zambia", Population: 9},
			{Code: "GE1", Name: "Georgia", Population: 1},
			{Code: "ARG", Name: "Argentina", Population: 5},
			{Code: "GE2", Name: "Georgia", Population: 2},
		}

		got := s.engine.CountryBreakdown(nil, countries)

		s.Require().Len(got, 4)
		s.Equal([]string{"Argentina", "Georgia", "Georgia", "Zambia"}, names(got))
		s.Equal(int64(1), got[1].TotalPopulation)
		s.Equal(int64(2), got[2].TotalPopulation)
	})

	s.Run("joins cities by code before name", func() {
		countries := []models.CountryRecord{
			{Code: "NLD", Name: "Netherlands", Population: 1000},
			{Code: "BEL", Name: "Belgium", Population: 1000},
		}
		cities := []models.CityRecord{
			{Name: "Amsterdam", CountryCode: "NLD", CountryName: "Holland", Population: 300},
			{Name: "Antwerp", CountryName: "Belgium", Population: 200},
			{Name: "Stray", CountryCode: "XXX", CountryName: "Belgium", Population: 999},
		}

		got := s.engine.CountryBreakdown(cities, countries)

		s.Require().Len(got, 2)
		s.Equal(int64(200), s.requireSplit(got[0]).CityPopulation) // Belgium
		s.Equal(int64(300), s.requireSplit(got[1]).CityPopulation) // Netherlands
	})

	s.Run("does not modify its input", func() {
		countries := []models.CountryRecord{{Name: "B"}, {Name: "A"}}
		s.engine.CountryBreakdown(nil, countries)
		s.Equal("B", countries[0].Name)
	})
}

// =============================================================================
// Continent and Region Breakdown
// =============================================================================

func (s *EngineSuite) TestContinentBreakdown() {
	s.Run("sums countries without cities", func() {
		countries := []models.CountryRecord{
			{Name: "A", Continent: "Oceania", Region: "Melanesia", Population: 1000000},
			{Name: "B", Continent: "Oceania", Region: "Polynesia", Population: 2000000},
		}

		got := s.engine.ContinentBreakdown(nil, countries)

		s.Require().Len(got, 1)
		s.Equal("Oceania", got[0].Name)
		s.Equal(int64(3000000), got[0].TotalPopulation)
		split := s.requireSplit(got[0])
		s.Equal(int64(0), split.CityPopulation)
		s.Equal(int64(3000000), split.NonCityPopulation)
		s.Equal(100.0, split.NonCityPercentage)
	})

	s.Run("rolls cities up through their countries", func() {
		countries := []models.CountryRecord{
			{Code: "FRA", Name: "France", Continent: "Europe", Region: "Western Europe", Population: 600},
			{Code: "DEU", Name: "Germany", Continent: "Europe", Region: "Western Europe", Population: 800},
			{Code: "JPN", Name: "Japan", Continent: "Asia", Region: "Eastern Asia", Population: 1200},
		}
		cities := []models.CityRecord{
			{Name: "Paris", CountryCode: "FRA", Population: 200},
			{Name: "Berlin", CountryCode: "DEU", Population: 150},
			{Name: "Hamburg", CountryCode: "DEU", Population: 50},
			{Name: "Tokyo", CountryCode: "JPN", Population: 300},
			{Name: "Nowhere", CountryCode: "ATL", Population: 1000},
		}

		got := s.engine.ContinentBreakdown(cities, countries)

		s.Require().Len(got, 2)
		s.Equal([]string{"Asia", "Europe"}, names(got))

		europe := s.requireSplit(got[1])
		s.Equal(int64(1400), got[1].TotalPopulation)
		s.Equal(int64(400), europe.CityPopulation)
		s.Equal(int64(1000), europe.NonCityPopulation)
		s.Equal(29.0, europe.CityPercentage)    // 28.57
		s.Equal(71.0, europe.NonCityPercentage) // 71.43

		asia := s.requireSplit(got[0])
		s.Equal(int64(300), asia.CityPopulation)
		s.Equal(25.0, asia.CityPercentage)
	})

	s.Run("uninhabited continent has zero percentages", func() {
		countries := []models.CountryRecord{
			{Name: "Bouvet Island", Continent: "Antarctica", Region: "Antarctica", Population: 0},
		}

		got := s.engine.ContinentBreakdown(nil, countries)

		s.Require().Len(got, 1)
		split := s.requireSplit(got[0])
		s.Equal(0.0, split.CityPercentage)
		s.Equal(0.0, split.NonCityPercentage)
	})

	s.Run("no countries means no continents", func() {
		cities := []models.CityRecord{{Name: "Orphan", CountryName: "Gone", Population: 10}}

		got := s.engine.ContinentBreakdown(cities, nil)

		s.NotNil(got)
		s.Empty(got)
	})
}

func (s *EngineSuite) TestRegionBreakdown() {
	countries := []models.CountryRecord{
		{Name: "Kenya", Continent: "Africa", Region: "Eastern Africa", Population: 300},
		{Name: "Chad", Continent: "Africa", Region: "Central Africa", Population: 100},
		{Name: "Angola", Continent: "Africa", Region: "Central Africa", Population: 200},
	}
	cities := []models.CityRecord{
		{Name: "Luanda", CountryName: "Angola", District: "Luanda", Population: 50},
		{Name: "Nairobi", CountryName: "Kenya", District: "Nairobi", Population: 75},
	}

	got := s.engine.RegionBreakdown(cities, countries)

	s.Require().Len(got, 2)
	s.Equal([]string{"Central Africa", "Eastern Africa"}, names(got))
	s.Equal(int64(300), got[0].TotalPopulation)
	s.Equal(int64(50), s.requireSplit(got[0]).CityPopulation)
	s.Equal(int64(250), s.requireSplit(got[0]).NonCityPopulation)
	s.Equal(17.0, s.requireSplit(got[0]).CityPercentage) // 16.67
	s.Equal(25.0, s.requireSplit(got[1]).CityPercentage)
}

// =============================================================================
// Single-entity Lookups
// =============================================================================

func (s *EngineSuite) TestPopulation() {
	countries := []models.CountryRecord{
		{Code: "ARG", Name: "Argentina", Continent: "South America", Region: "South America", Population: 37032000},
		{Code: "BRA", Name: "Brazil", Continent: "South America", Region: "South America", Population: 170115000},
		{Code: "AGO", Name: "Angola", Continent: "Africa", Region: "Central Africa", Population: 12878000},
		{Code: "AG2", Name: "Angola", Continent: "Africa", Region: "Central Africa", Population: 1},
	}
	cities := []models.CityRecord{
		{Name: "Benguela", CountryCode: "AGO", District: "Benguela", Population: 128300},
		{Name: "Lobito", CountryCode: "AGO", District: "Benguela", Population: 130000},
		{Name: "Tokyo", CountryName: "Japan", District: "Tokyo-to", Population: 7980230},
		{Name: "Tokyo", CountryName: "Elsewhere", District: "Other", Population: 5},
	}

	cases := []struct {
		name  string
		level models.Level
		key   string
		want  []models.Summary
	}{
		{"world sums every country", models.LevelWorld, "", []models.Summary{{Name: "World", TotalPopulation: 220025001}}},
		{"world ignores key", models.LevelWorld, "Mars", []models.Summary{{Name: "World", TotalPopulation: 220025001}}},
		{"continent", models.LevelContinent, "South America", []models.Summary{{Name: "South America", TotalPopulation: 207147000}}},
		{"region", models.LevelRegion, "Central Africa", []models.Summary{{Name: "Central Africa", TotalPopulation: 12878001}}},
		{"country takes first match", models.LevelCountry, "Angola", []models.Summary{{Name: "Angola", TotalPopulation: 12878000}}},
		{"district sums its cities", models.LevelDistrict, "Benguela", []models.Summary{{Name: "Benguela", TotalPopulation: 258300}}},
		{"city takes first match", models.LevelCity, "Tokyo", []models.Summary{{Name: "Tokyo", TotalPopulation: 7980230}}},
		{"unknown country", models.LevelCountry, "Unknownland", []models.Summary{}},
		{"unknown continent", models.LevelContinent, "Atlantis", []models.Summary{}},
		{"keys are case-sensitive", models.LevelCity, "tokyo", []models.Summary{}},
		{"unknown level", models.Level(42), "Tokyo", []models.Summary{}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			got := s.engine.Population(tc.level, tc.key, cities, countries)
			s.Equal(tc.want, got)
			for _, sum := range got {
				s.Nil(sum.Split, "lookups never carry a split")
			}
		})
	}

	s.Run("world of an empty source is empty", func() {
		s.Empty(s.engine.Population(models.LevelWorld, "", nil, nil))
	})

	s.Run("matching entity with zero population is not empty", func() {
		got := s.engine.Population(models.LevelCountry, "Nobody", nil, []models.CountryRecord{{Name: "Nobody"}})
		s.Equal([]models.Summary{{Name: "Nobody", TotalPopulation: 0}}, got)
	})
}

// =============================================================================
// Percentages
// =============================================================================

func (s *EngineSuite) TestPercentage() {
	s.Equal(0.0, Percentage(10, 0))
	s.Equal(50.0, Percentage(1, 2))
	s.Equal(33.0, Percentage(1, 3))
	s.Equal(67.0, Percentage(2, 3))
	s.Equal(13.0, Percentage(1, 8))  // 12.5 rounds up
	s.Equal(-12.0, Percentage(-1, 8)) // -12.5 rounds up too
	s.Equal(150.0, Percentage(3, 2))
}

func (s *EngineSuite) TestPercentagesNeedNotSumToHundred() {
	// 1/8 = 12.5% and 7/8 = 87.5%: both round up independently.
	countries := []models.CountryRecord{{Name: "Split", Population: 8}}
	cities := []models.CityRecord{{Name: "Town", CountryName: "Split", Population: 1}}

	got := s.engine.CountryBreakdown(cities, countries)

	split := s.requireSplit(got[0])
	s.Equal(13.0, split.CityPercentage)
	s.Equal(88.0, split.NonCityPercentage)
}

func names(sums []models.Summary) []string {
	out := make([]string, len(sums))
	for i, s := range sums {
		out[i] = s.Name
	}
	return out
}
