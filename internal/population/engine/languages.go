package engine

import (
	"cmp"
	"math"
	"slices"

	"worldpop/internal/population/models"
	pstrings "worldpop/pkg/platform/strings"
)

// LanguageBreakdown estimates the speakers of each target language as the
// sum of country population times the language's percentage share, and
// expresses it against the world total. Targets with no joined language
// record are left out. Results are ordered by speakers, largest first.
func (e *Engine) LanguageBreakdown(countries []models.CountryRecord, languages []models.LanguageRecord, targets []string) []models.LanguageSummary {
	wanted := pstrings.DedupeAndTrim(targets)
	if len(wanted) == 0 || len(countries) == 0 {
		return []models.LanguageSummary{}
	}

	var world int64
	popByCode := make(map[string]int64)
	popByName := make(map[string]int64)
	for _, c := range countries {
		world += c.Population
		if c.Code != "" {
			popByCode[c.Code] += c.Population
		}
		popByName[c.Name] += c.Population
	}

	speakers := make(map[string]float64)
	for _, l := range languages {
		if !slices.Contains(wanted, l.Language) {
			continue
		}
		var pop int64
		var ok bool
		if l.CountryCode != "" {
			pop, ok = popByCode[l.CountryCode]
		} else {
			pop, ok = popByName[l.CountryName]
		}
		if !ok {
			continue
		}
		speakers[l.Language] += float64(pop) * l.Percentage / 100
	}

	out := make([]models.LanguageSummary, 0, len(speakers))
	for lang, n := range speakers {
		share := 0.0
		if world > 0 {
			share = n / float64(world) * 100
		}
		out = append(out, models.LanguageSummary{
			Language:        lang,
			Speakers:        int64(math.Trunc(n)),
			WorldPercentage: share,
		})
	}
	slices.SortFunc(out, func(a, b models.LanguageSummary) int {
		if c := cmp.Compare(b.Speakers, a.Speakers); c != 0 {
			return c
		}
		return cmp.Compare(a.Language, b.Language)
	})
	return out
}
