// Package sentinel holds infrastructure errors that cross package boundaries.
package sentinel

import "errors"

// ErrUnavailable marks a backing store or cache that could not be reached or
// queried. Record sources wrap it; the service maps it to a domain error.
var ErrUnavailable = errors.New("unavailable")
