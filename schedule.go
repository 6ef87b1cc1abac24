package nightscout

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// ScheduleEntry is one change point in a daily-recurring schedule: an offset
// from local midnight and the value that takes effect there.
type ScheduleEntry struct {
	Offset time.Duration
	Value  float64
}

// UnmarshalJSON reads the Nightscout wire shape, preferring the numeric
// "timeAsSeconds" field and falling back to the "HH:MM" time string. Both
// fields arrive quoted on most servers.
func (e *ScheduleEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Time          *string     `json:"time"`
		Value         *floatValue `json:"value"`
		TimeAsSeconds *floatValue `json:"timeAsSeconds"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Value == nil {
		return &SchemaError{Entity: "ScheduleEntry", Missing: []string{"value"}}
	}
	switch {
	case raw.TimeAsSeconds != nil:
		e.Offset = time.Duration(float64(*raw.TimeAsSeconds) * float64(time.Second))
	case raw.Time != nil:
		offset, err := parseClockOffset(*raw.Time)
		if err != nil {
			return err
		}
		e.Offset = offset
	default:
		return &SchemaError{Entity: "ScheduleEntry", Missing: []string{"time"}}
	}
	if e.Offset < 0 || e.Offset >= day {
		return fmt.Errorf("schedule offset %s outside [0h, 24h)", e.Offset)
	}
	e.Value = float64(*raw.Value)
	return nil
}

func parseClockOffset(value string) (time.Duration, error) {
	hh, mm, ok := strings.Cut(value, ":")
	if !ok {
		return 0, fmt.Errorf("parse schedule time %q: want HH:MM", value)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("parse schedule time %q: %w", value, err)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("parse schedule time %q: %w", value, err)
	}
	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}

// AbsoluteScheduleEntry is a schedule entry anchored to one calendar day,
// produced by Schedule.Between. Its start date carries the schedule's zone.
type AbsoluteScheduleEntry struct {
	StartDate time.Time
	Value     float64
}

// Schedule is an ordered set of entries recurring every calendar day in a
// fixed timezone. The zone defines what local midnight means for every query.
// A schedule with zero entries is legal, but point queries on it always fail.
type Schedule struct {
	entries []ScheduleEntry
	loc     *time.Location
}

// NewSchedule copies and sorts the entries ascending by offset. The sort is
// stable, so duplicate offsets keep their input order and the later duplicate
// wins point queries.
func NewSchedule(entries []ScheduleEntry, loc *time.Location) *Schedule {
	sorted := make([]ScheduleEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return &Schedule{entries: sorted, loc: loc}
}

// Entries returns a copy of the sorted entries.
func (s *Schedule) Entries() []ScheduleEntry {
	out := make([]ScheduleEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Location returns the schedule's timezone.
func (s *Schedule) Location() *time.Location {
	return s.loc
}

// Len returns the number of entries.
func (s *Schedule) Len() int {
	return len(s.entries)
}

// ValueAt returns the value of the latest entry whose offset is at or before
// the time-of-day portion of local. The caller must pass a timestamp already
// localized to the schedule's zone; the clock reading is used as-is.
func (s *Schedule) ValueAt(local time.Time) (float64, error) {
	hour, min, sec := local.Clock()
	offset := time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second + time.Duration(local.Nanosecond())

	value, found := 0.0, false
	for _, e := range s.entries {
		if e.Offset <= offset {
			value = e.Value
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrNoScheduleValue, local.Format("15:04:05"))
	}
	return value, nil
}

// Between returns the schedule value change points covering the half-open
// interval [start, end) as absolute entries in the schedule's zone, in
// ascending order. The entry active as of start is included, anchored at its
// own offset, which may precede start; a change point whose offset lands
// exactly on the end bound is also included, by the scan rule rather than by
// the interval being closed. The bounds may be in any zone. A zero-width or
// reversed interval yields no entries.
func (s *Schedule) Between(start, end time.Time) []AbsoluteScheduleEntry {
	if !start.Before(end) {
		return nil
	}
	start = start.In(s.loc)
	end = end.In(s.loc)

	year, month, dom := start.Date()
	reference := time.Date(year, month, dom, 0, 0, 0, 0, s.loc)
	startOffset := start.Sub(reference)
	endOffset := startOffset + end.Sub(start)

	// Spanning more than one reference day: split at the next local midnight
	// so each recursive call scans at most one day's worth of entries.
	if endOffset > day {
		boundary := start.Add(day - startOffset)
		return append(s.Between(start, boundary), s.Between(boundary, end)...)
	}

	startIndex, endIndex := 0, len(s.entries)
	for i, e := range s.entries {
		if startOffset >= e.Offset {
			startIndex = i
		}
		if endOffset < e.Offset {
			endIndex = i
			break
		}
	}

	out := make([]AbsoluteScheduleEntry, 0, endIndex-startIndex)
	for _, e := range s.entries[startIndex:endIndex] {
		out = append(out, AbsoluteScheduleEntry{
			StartDate: reference.Add(e.Offset),
			Value:     e.Value,
		})
	}
	return out
}
