package nightscout

import (
	"encoding/json"
	"time"
)

// Treatment is an entry in the Nightscout treatments store: boluses, carb
// entries, temp basals, BG checks and the like. Most fields are unset for any
// given event type.
type Treatment struct {
	ID             string
	EventType      string
	CreatedAt      time.Time
	Timestamp      *time.Time
	Temp           *string
	EnteredBy      *string
	Glucose        *float64
	GlucoseType    *string
	Units          *string
	Device         *string
	Absolute       *float64
	Rate           *float64
	Duration       *float64
	Carbs          *float64
	Insulin        *float64
	Unabsorbed     *float64
	Suspended      *string
	Type           *string
	Programmed     *float64
	FoodType       *string
	AbsorptionTime *float64
}

// UnmarshalJSON reads the wire shape. Timestamps arrive either as epoch
// milliseconds or ISO-8601 strings depending on the uploader.
func (t *Treatment) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID             string      `json:"_id"`
		EventType      *string     `json:"eventType"`
		CreatedAt      *flexTime   `json:"created_at"`
		Timestamp      *flexTime   `json:"timestamp"`
		Temp           *string     `json:"temp"`
		EnteredBy      *string     `json:"enteredBy"`
		Glucose        *floatValue `json:"glucose"`
		GlucoseType    *string     `json:"glucoseType"`
		Units          *string     `json:"units"`
		Device         *string     `json:"device"`
		Absolute       *floatValue `json:"absolute"`
		Rate           *floatValue `json:"rate"`
		Duration       *floatValue `json:"duration"`
		Carbs          *floatValue `json:"carbs"`
		Insulin        *floatValue `json:"insulin"`
		Unabsorbed     *floatValue `json:"unabsorbed"`
		Suspended      *string     `json:"suspended"`
		Type           *string     `json:"type"`
		Programmed     *floatValue `json:"programmed"`
		FoodType       *string     `json:"foodType"`
		AbsorptionTime *floatValue `json:"absorptionTime"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.EventType == nil {
		missing = append(missing, "eventType")
	}
	if raw.CreatedAt == nil {
		missing = append(missing, "created_at")
	}
	if len(missing) > 0 {
		return &SchemaError{Entity: "Treatment", Missing: missing}
	}

	t.ID = raw.ID
	t.EventType = *raw.EventType
	t.CreatedAt = raw.CreatedAt.value()
	if raw.Timestamp != nil {
		ts := raw.Timestamp.value()
		t.Timestamp = &ts
	}
	t.Temp = raw.Temp
	t.EnteredBy = raw.EnteredBy
	t.Glucose = floatPtr(raw.Glucose)
	t.GlucoseType = raw.GlucoseType
	t.Units = raw.Units
	t.Device = raw.Device
	t.Absolute = floatPtr(raw.Absolute)
	t.Rate = floatPtr(raw.Rate)
	t.Duration = floatPtr(raw.Duration)
	t.Carbs = floatPtr(raw.Carbs)
	t.Insulin = floatPtr(raw.Insulin)
	t.Unabsorbed = floatPtr(raw.Unabsorbed)
	t.Suspended = raw.Suspended
	t.Type = raw.Type
	t.Programmed = floatPtr(raw.Programmed)
	t.FoodType = raw.FoodType
	t.AbsorptionTime = floatPtr(raw.AbsorptionTime)
	return nil
}

func floatPtr(v *floatValue) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// Time returns the treatment's timestamp, falling back to created_at when the
// uploader did not send one.
func (t *Treatment) Time() time.Time {
	if t.Timestamp != nil {
		return *t.Timestamp
	}
	return t.CreatedAt
}

// HasInsulin returns true if this treatment delivered insulin.
func (t *Treatment) HasInsulin() bool {
	return t.Insulin != nil && *t.Insulin > 0
}

// HasCarbs returns true if this treatment includes carbohydrates.
func (t *Treatment) HasCarbs() bool {
	return t.Carbs != nil && *t.Carbs > 0
}
