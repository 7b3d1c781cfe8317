package engine

import "fmt"

// NotFoundError reports that a named vehicle query matched nothing in
// the catalog. Query carries the caller's original input verbatim so
// presentation surfaces can echo it back to the user.
type NotFoundError struct {
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("vehicle not found: %q", e.Query)
}

// NoMatchError reports that filter criteria produced an empty
// candidate set over a non-empty catalog. Suggestion is a
// human-readable hint for widening the filters.
type NoMatchError struct {
	Suggestion string
}

func (e *NoMatchError) Error() string {
	return "no vehicles match the given criteria"
}

// Filter-empty suggestion copy, surfaced to end users.
const (
	ecoNoMatchSuggestion = "No vehicles found matching your criteria. Try widening your filters!"
	evNoMatchSuggestion  = "No EVs found under your budget. Try increasing it!"
)
