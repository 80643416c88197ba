package store

import (
	"fmt"

	"worldpop/pkg/platform/sentinel"
)

// Record set names, used in errors, cache keys and metric labels.
const (
	SetCities    = "cities"
	SetCountries = "countries"
	SetLanguages = "languages"
)

// FetchError reports that a record set could not be read. It is distinct from
// a successful fetch of an empty set.
type FetchError struct {
	Set string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Set, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes every FetchError match sentinel.ErrUnavailable.
func (e *FetchError) Is(target error) bool {
	return target == sentinel.ErrUnavailable
}

func fetchErr(set string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Set: set, Err: err}
}
