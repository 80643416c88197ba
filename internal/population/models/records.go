package models

// CityRecord is one row of the city table. CountryCode is optional; when it is
// empty the city joins to its country by CountryName.
type CityRecord struct {
	Name        string `json:"name"`
	CountryCode string `json:"country_code,omitempty"`
	CountryName string `json:"country_name"`
	District    string `json:"district"`
	Population  int64  `json:"population"`
}

// CountryRecord is one row of the country table. Population is the
// authoritative national total and need not match the sum of its cities.
type CountryRecord struct {
	Code       string `json:"code,omitempty"`
	Name       string `json:"name"`
	Continent  string `json:"continent"`
	Region     string `json:"region"`
	Population int64  `json:"population"`
}

// LanguageRecord is the share of a country's population speaking a language.
type LanguageRecord struct {
	CountryCode string  `json:"country_code,omitempty"`
	CountryName string  `json:"country_name"`
	Language    string  `json:"language"`
	IsOfficial  bool    `json:"is_official"`
	Percentage  float64 `json:"percentage"`
}

// BelongsTo reports whether the city joins to country. Cities carrying a code
// match on code only; cities without one match on the country name.
func (c CityRecord) BelongsTo(country CountryRecord) bool {
	if c.CountryCode != "" {
		return country.Code != "" && c.CountryCode == country.Code
	}
	return c.CountryName == country.Name
}

// SpokenIn reports whether the language record joins to country, using the
// same rule as CityRecord.BelongsTo.
func (l LanguageRecord) SpokenIn(country CountryRecord) bool {
	if l.CountryCode != "" {
		return country.Code != "" && l.CountryCode == country.Code
	}
	return l.CountryName == country.Name
}
