package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"worldpop/internal/population/handler"
	"worldpop/internal/population/models"
)

const (
	breakdownRow = "%-25s %-20s %-20s %-20s %-15s %-15s\n"
	lookupRow    = "%-20s %-20s\n"
	languageRow  = "%-15s %-20s %s\n"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderBreakdown(w io.Writer, format string, level models.Level, sums []models.Summary) error {
	resp := handler.BreakdownResponse(level.String(), sums)
	if format == FormatJSON {
		return writeJSON(w, resp)
	}

	fmt.Fprintf(w, "\nPopulation living in cities and not living in cities, by %s.\n\n", level)
	fmt.Fprintf(w, breakdownRow, title(level.String()), "TotalPopulation", "CityPopulation",
		"NonCityPopulation", "CityPercentage", "NonCityPercentage")
	fmt.Fprintln(w, strings.Repeat("-", 120))
	for _, e := range resp.Results {
		fmt.Fprintf(w, breakdownRow,
			e.Name,
			strconv.FormatInt(e.TotalPopulation, 10),
			strconv.FormatInt(e.CityPopulation, 10),
			strconv.FormatInt(e.NonCityPopulation, 10),
			percent(e.CityPercentage),
			percent(e.NonCityPercentage),
		)
	}
	return nil
}

func renderLookup(w io.Writer, format string, level models.Level, sums []models.Summary) error {
	resp := handler.PopulationResponse(level.String(), sums)
	if format == FormatJSON {
		return writeJSON(w, resp)
	}

	fmt.Fprintf(w, lookupRow, "Name", "TotalPopulation")
	fmt.Fprintln(w, strings.Repeat("-", 40))
	for _, e := range resp.Results {
		fmt.Fprintf(w, lookupRow, e.Name, strconv.FormatInt(e.TotalPopulation, 10))
	}
	return nil
}

func renderLanguages(w io.Writer, format string, sums []models.LanguageSummary) error {
	resp := handler.LanguageResponse(sums)
	if format == FormatJSON {
		return writeJSON(w, resp)
	}

	fmt.Fprintf(w, languageRow, "Language", "Total Speakers", "% of World Population")
	fmt.Fprintln(w, strings.Repeat("-", 59))
	for _, e := range resp.Results {
		fmt.Fprintf(w, languageRow, e.Language, strconv.FormatInt(e.Speakers, 10),
			strconv.FormatFloat(e.WorldPercentage, 'f', 2, 64)+"%")
	}
	return nil
}

func percent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
