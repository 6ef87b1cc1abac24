package nightscout

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Profile bundles the daily schedules a pump runs on: basal rates, carb
// ratios, insulin sensitivity and the target range, plus the duration of
// insulin action. All schedules share the profile's timezone.
type Profile struct {
	DIA        *float64
	CarbRatio  *Schedule
	CarbsHr    *int
	Delay      *int
	Sens       *Schedule
	Timezone   *time.Location
	Basal      *Schedule
	TargetLow  *Schedule
	TargetHigh *Schedule
}

func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw struct {
		DIA        *floatValue     `json:"dia"`
		CarbRatio  []ScheduleEntry `json:"carbratio"`
		CarbsHr    *intValue       `json:"carbs_hr"`
		Delay      *intValue       `json:"delay"`
		Sens       []ScheduleEntry `json:"sens"`
		Timezone   *string         `json:"timezone"`
		Basal      []ScheduleEntry `json:"basal"`
		TargetLow  []ScheduleEntry `json:"target_low"`
		TargetHigh []ScheduleEntry `json:"target_high"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.Timezone == nil {
		missing = append(missing, "timezone")
	}
	if raw.Basal == nil {
		missing = append(missing, "basal")
	}
	if len(missing) > 0 {
		return &SchemaError{Entity: "Profile", Missing: missing}
	}

	loc, err := time.LoadLocation(*raw.Timezone)
	if err != nil {
		return fmt.Errorf("load profile timezone %q: %w", *raw.Timezone, err)
	}
	p.Timezone = loc
	p.Basal = NewSchedule(raw.Basal, loc)
	if raw.CarbRatio != nil {
		p.CarbRatio = NewSchedule(raw.CarbRatio, loc)
	}
	if raw.Sens != nil {
		p.Sens = NewSchedule(raw.Sens, loc)
	}
	if raw.TargetLow != nil {
		p.TargetLow = NewSchedule(raw.TargetLow, loc)
	}
	if raw.TargetHigh != nil {
		p.TargetHigh = NewSchedule(raw.TargetHigh, loc)
	}
	if raw.DIA != nil {
		v := float64(*raw.DIA)
		p.DIA = &v
	}
	if raw.CarbsHr != nil {
		v := int(*raw.CarbsHr)
		p.CarbsHr = &v
	}
	if raw.Delay != nil {
		v := int(*raw.Delay)
		p.Delay = &v
	}
	return nil
}

// ProfileDefinition is one named set of profiles valid from its start date
// until superseded by a newer definition.
type ProfileDefinition struct {
	ID             string
	DefaultProfile string
	Store          map[string]Profile
	StartDate      time.Time
	CreatedAt      time.Time
	Units          string
}

func (d *ProfileDefinition) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             string             `json:"_id"`
		DefaultProfile *string            `json:"defaultProfile"`
		Store          map[string]Profile `json:"store"`
		StartDate      *flexTime          `json:"startDate"`
		CreatedAt      *flexTime          `json:"created_at"`
		Units          *string            `json:"units"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.DefaultProfile == nil {
		missing = append(missing, "defaultProfile")
	}
	if raw.Store == nil {
		missing = append(missing, "store")
	}
	if raw.StartDate == nil {
		missing = append(missing, "startDate")
	}
	if raw.CreatedAt == nil {
		missing = append(missing, "created_at")
	}
	if raw.Units == nil {
		missing = append(missing, "units")
	}
	if len(missing) > 0 {
		return &SchemaError{Entity: "ProfileDefinition", Missing: missing}
	}

	d.ID = raw.ID
	d.DefaultProfile = *raw.DefaultProfile
	d.Store = raw.Store
	d.StartDate = raw.StartDate.value()
	d.CreatedAt = raw.CreatedAt.value()
	d.Units = *raw.Units
	return nil
}

// GetDefaultProfile returns the profile named by DefaultProfile.
func (d *ProfileDefinition) GetDefaultProfile() (*Profile, error) {
	profile, ok := d.Store[d.DefaultProfile]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, d.DefaultProfile)
	}
	return &profile, nil
}

// ProfileDefinitionSet holds profile definitions ordered ascending by start
// date, each covering the span from its start date to the next definition's.
type ProfileDefinitionSet struct {
	definitions []ProfileDefinition
}

// NewProfileDefinitionSet copies and stably sorts the definitions ascending
// by start date.
func NewProfileDefinitionSet(definitions []ProfileDefinition) *ProfileDefinitionSet {
	sorted := make([]ProfileDefinition, len(definitions))
	copy(sorted, definitions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return &ProfileDefinitionSet{definitions: sorted}
}

func (s *ProfileDefinitionSet) UnmarshalJSON(data []byte) error {
	var definitions []ProfileDefinition
	if err := json.Unmarshal(data, &definitions); err != nil {
		return err
	}
	*s = *NewProfileDefinitionSet(definitions)
	return nil
}

// Definitions returns a copy of the sorted definitions.
func (s *ProfileDefinitionSet) Definitions() []ProfileDefinition {
	out := make([]ProfileDefinition, len(s.definitions))
	copy(out, s.definitions)
	return out
}

// Len returns the number of definitions.
func (s *ProfileDefinitionSet) Len() int {
	return len(s.definitions)
}

// ActiveAt returns the definition with the greatest start date at or before
// date. Querying before the earliest definition is an error, not a fallback.
func (s *ProfileDefinitionSet) ActiveAt(date time.Time) (*ProfileDefinition, error) {
	var active *ProfileDefinition
	for i := range s.definitions {
		if !s.definitions[i].StartDate.After(date) {
			active = &s.definitions[i]
		}
	}
	if active == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoActiveDefinition, date.Format(time.RFC3339))
	}
	definition := *active
	return &definition, nil
}
