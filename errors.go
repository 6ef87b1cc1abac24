package nightscout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoScheduleValue is returned by Schedule.ValueAt when the query time is
// earlier than every entry offset. Callers must query within the schedule's
// defined domain; there is no fallback to the previous day's last entry.
var ErrNoScheduleValue = errors.New("no schedule entry at or before the requested time")

// ErrNoActiveDefinition is returned by ProfileDefinitionSet.ActiveAt when the
// query time precedes the earliest known definition.
var ErrNoActiveDefinition = errors.New("no profile definition active at the requested time")

// ErrProfileNotFound is returned when a profile definition's default profile
// name is not present in its store.
var ErrProfileNotFound = errors.New("profile not found in store")

// StatusError reports a non-2xx API response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Body)
}

// SchemaError reports required fields that were still unset after an entity
// finished deserializing.
type SchemaError struct {
	Entity  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("decoding %s: missing required fields: %s", e.Entity, strings.Join(e.Missing, ", "))
}
