package nightscout

import (
	"encoding/json"
	"math"
	"time"
)

// SGV is a single sensor glucose reading. SgvMmol and DeltaMmol are derived
// at construction from the mg/dL values and are never settable on their own;
// a reading without a value (sensor gap, calibration record) carries nil for
// both halves of the pair.
type SGV struct {
	ID        string
	Device    string
	Date      time.Time
	Sgv       *float64
	SgvMmol   *float64
	Delta     *float64
	DeltaMmol *float64
	Direction string
}

func (s *SGV) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string      `json:"_id"`
		Device     *string     `json:"device"`
		DateString *string     `json:"dateString"`
		Sgv        *floatValue `json:"sgv"`
		Delta      *floatValue `json:"delta"`
		Direction  *string     `json:"direction"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.DateString == nil {
		missing = append(missing, "dateString")
	}
	if raw.Direction == nil {
		missing = append(missing, "direction")
	}
	if raw.Device == nil {
		missing = append(missing, "device")
	}
	if len(missing) > 0 {
		return &SchemaError{Entity: "SGV", Missing: missing}
	}

	date, err := parseTimestamp(*raw.DateString)
	if err != nil {
		return err
	}

	s.ID = raw.ID
	s.Device = *raw.Device
	s.Date = date
	s.Direction = *raw.Direction
	if raw.Sgv != nil {
		sgv := float64(*raw.Sgv)
		s.Sgv = &sgv
		s.SgvMmol = MgdlPtrToMmol(&sgv)
	}
	if raw.Delta != nil {
		delta := float64(*raw.Delta)
		s.Delta = &delta
		s.DeltaMmol = MgdlPtrToMmol(&delta)
	}
	return nil
}

// MarshalJSON emits the Nightscout wire shape, so a stored reading decodes
// back through UnmarshalJSON. Derived mmol fields are not written.
func (s SGV) MarshalJSON() ([]byte, error) {
	raw := struct {
		ID         string   `json:"_id,omitempty"`
		Device     string   `json:"device"`
		DateString string   `json:"dateString"`
		Sgv        *float64 `json:"sgv"`
		Delta      *float64 `json:"delta,omitempty"`
		Direction  string   `json:"direction"`
	}{
		ID:         s.ID,
		Device:     s.Device,
		DateString: s.Date.Format(time.RFC3339Nano),
		Sgv:        s.Sgv,
		Delta:      s.Delta,
		Direction:  s.Direction,
	}
	return json.Marshal(raw)
}

// TrendArrow returns the arrow character for the reading's direction.
func (s *SGV) TrendArrow() string {
	arrows := map[string]string{
		"DoubleUp":          "⇈",
		"SingleUp":          "↑",
		"FortyFiveUp":       "↗",
		"Flat":              "→",
		"FortyFiveDown":     "↘",
		"SingleDown":        "↓",
		"DoubleDown":        "⇊",
		"NOT COMPUTABLE":    "?",
		"RATE OUT OF RANGE": "⚠",
	}
	if arrow, ok := arrows[s.Direction]; ok {
		return arrow
	}
	return "-"
}

// MgdlToMmol converts a glucose concentration from mg/dL to mmol/L, rounded
// to one decimal place.
func MgdlToMmol(mgdl float64) float64 {
	return math.Round(mgdl/18*10) / 10
}

// MgdlPtrToMmol is the nil-propagating variant of MgdlToMmol for optional
// readings.
func MgdlPtrToMmol(mgdl *float64) *float64 {
	if mgdl == nil {
		return nil
	}
	v := MgdlToMmol(*mgdl)
	return &v
}
