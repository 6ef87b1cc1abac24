package nightscout

import (
	"encoding/json"
	"time"
)

// DeviceStatus is one status report from an uploader, pump or CGM bridge.
type DeviceStatus struct {
	ID        string
	Device    string
	CreatedAt time.Time
	OpenAPS   json.RawMessage
	Loop      json.RawMessage
	Pump      *PumpDevice
	Uploader  *UploaderBattery
	XDripJs   *XDripJs
}

func (d *DeviceStatus) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID        string           `json:"_id"`
		Device    *string          `json:"device"`
		CreatedAt *flexTime        `json:"created_at"`
		OpenAPS   json.RawMessage  `json:"openaps"`
		Loop      json.RawMessage  `json:"loop"`
		Pump      *PumpDevice      `json:"pump"`
		Uploader  *UploaderBattery `json:"uploader"`
		XDripJs   *XDripJs         `json:"xdripjs"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var missing []string
	if raw.Device == nil {
		missing = append(missing, "device")
	}
	if raw.CreatedAt == nil {
		missing = append(missing, "created_at")
	}
	if len(missing) > 0 {
		return &SchemaError{Entity: "DeviceStatus", Missing: missing}
	}

	d.ID = raw.ID
	d.Device = *raw.Device
	d.CreatedAt = raw.CreatedAt.value()
	d.OpenAPS = raw.OpenAPS
	d.Loop = raw.Loop
	d.Pump = raw.Pump
	d.Uploader = raw.Uploader
	d.XDripJs = raw.XDripJs
	return nil
}

// PumpDevice is the pump block of a device status report.
type PumpDevice struct {
	Clock     *time.Time
	Battery   *PumpBattery
	Reservoir *float64
	Status    *PumpStatus
}

func (p *PumpDevice) UnmarshalJSON(data []byte) error {
	var raw struct {
		Clock     *flexTime    `json:"clock"`
		Battery   *PumpBattery `json:"battery"`
		Reservoir *floatValue  `json:"reservoir"`
		Status    *PumpStatus  `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Clock != nil {
		clock := raw.Clock.value()
		p.Clock = &clock
	}
	p.Battery = raw.Battery
	p.Reservoir = floatPtr(raw.Reservoir)
	p.Status = raw.Status
	return nil
}

// PumpBattery is the pump's battery block.
type PumpBattery struct {
	Status  *string  `json:"status"`
	Voltage *float64 `json:"voltage"`
}

// PumpStatus is the pump's status block.
type PumpStatus struct {
	Status    *string
	Bolusing  *bool
	Suspended *bool
	Timestamp *time.Time
}

func (p *PumpStatus) UnmarshalJSON(data []byte) error {
	var raw struct {
		Status    *string   `json:"status"`
		Bolusing  *bool     `json:"bolusing"`
		Suspended *bool     `json:"suspended"`
		Timestamp *flexTime `json:"timestamp"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.Status = raw.Status
	p.Bolusing = raw.Bolusing
	p.Suspended = raw.Suspended
	if raw.Timestamp != nil {
		ts := raw.Timestamp.value()
		p.Timestamp = &ts
	}
	return nil
}

// UploaderBattery is an uploader device's battery block.
type UploaderBattery struct {
	BatteryVoltage *float64 `json:"batteryVoltage"`
	Battery        *int     `json:"battery"`
	Type           *string  `json:"type"`
}

// XDripJs is an xdrip-js transmitter block. All fields are optional; which
// ones appear depends on the transmitter session state.
type XDripJs struct {
	State               *int     `json:"state"`
	StateString         *string  `json:"stateString"`
	StateStringShort    *string  `json:"stateStringShort"`
	TxID                *string  `json:"txId"`
	TxStatus            *float64 `json:"txStatus"`
	TxStatusString      *string  `json:"txStatusString"`
	TxStatusStringShort *string  `json:"txStatusStringShort"`
	TxActivation        *int64   `json:"txActivation"`
	Mode                *string  `json:"mode"`
	Timestamp           *int64   `json:"timestamp"`
	RSSI                *int     `json:"rssi"`
	Unfiltered          *int     `json:"unfiltered"`
	Filtered            *int     `json:"filtered"`
	Noise               *int     `json:"noise"`
	NoiseString         *string  `json:"noiseString"`
	Slope               *float64 `json:"slope"`
	Intercept           *int     `json:"intercept"`
	CalType             *string  `json:"calType"`
	LastCalibrationDate *int64   `json:"lastCalibrationDate"`
	SessionStart        *int64   `json:"sessionStart"`
	BatteryTimestamp    *int64   `json:"batteryTimestamp"`
	VoltageA            *float64 `json:"voltagea"`
	VoltageB            *float64 `json:"voltageb"`
	Temperature         *float64 `json:"temperature"`
	Resistance          *float64 `json:"resistance"`
}
