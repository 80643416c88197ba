package models

import (
	"fmt"
	"strings"
)

// Level is a tier of the geographic hierarchy.
type Level int

const (
	LevelWorld Level = iota
	LevelContinent
	LevelRegion
	LevelCountry
	LevelDistrict
	LevelCity
)

var levelNames = [...]string{
	LevelWorld:     "world",
	LevelContinent: "continent",
	LevelRegion:    "region",
	LevelCountry:   "country",
	LevelDistrict:  "district",
	LevelCity:      "city",
}

// Levels lists every level from the top of the hierarchy down.
func Levels() []Level {
	return []Level{LevelWorld, LevelContinent, LevelRegion, LevelCountry, LevelDistrict, LevelCity}
}

func (l Level) String() string {
	if l.Valid() {
		return levelNames[l]
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= LevelWorld && l <= LevelCity
}

// UsesCities reports whether lookups at l read city records rather than
// country records.
func (l Level) UsesCities() bool {
	return l == LevelDistrict || l == LevelCity
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
