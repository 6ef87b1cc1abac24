package nightscout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// floatValue accepts JSON numbers and quoted numeric strings. Nightscout
// profile payloads carry schedule values, dia and offsets as strings.
type floatValue float64

func (f *floatValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("parse numeric string %q: %w", s, err)
		}
		*f = floatValue(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = floatValue(v)
	return nil
}

// intValue is the integer variant of floatValue.
type intValue int

func (i *intValue) UnmarshalJSON(data []byte) error {
	var f floatValue
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	*i = intValue(f)
	return nil
}

// flexTime accepts epoch milliseconds or an ISO-8601 string.
type flexTime time.Time

func (t *flexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := parseTimestamp(s)
		if err != nil {
			return err
		}
		*t = flexTime(parsed)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*t = flexTime(time.UnixMilli(ms).UTC())
	return nil
}

func (t *flexTime) value() time.Time {
	return time.Time(*t)
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
