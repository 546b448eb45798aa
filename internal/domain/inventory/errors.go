package inventory

import "innsync/internal/domain/calendar"

// ValidationError reports structurally invalid input, such as an inverted
// date range. Business-data gaps (missing mapping, plan, or base price) are
// never errors; the fallback chains absorb them.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "inventory: " + e.Reason
}

// NoAvailabilityError means the computation succeeded but produced zero
// sellable lines. It is distinct from a validation failure and is not
// transient: callers must not retry it, and the distribution adapter uses it
// to avoid sending an empty sync payload.
type NoAvailabilityError struct {
	Range calendar.Range
}

func (e *NoAvailabilityError) Error() string {
	return "inventory: no availability data to synchronize for " + string(e.Range.From) + ".." + string(e.Range.To)
}
