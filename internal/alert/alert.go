// Package alert classifies glucose readings against configured thresholds and
// raises desktop notifications for out-of-range values.
package alert

import (
	"fmt"
	"sync"
	"time"

	"github.com/gen2brain/beeep"

	nightscout "github.com/mrcode/nightscout-go"
)

// Status buckets for a glucose reading.
const (
	StatusUrgentLow  = "urgent_low"
	StatusLow        = "low"
	StatusNormal     = "normal"
	StatusHigh       = "high"
	StatusUrgentHigh = "urgent_high"
)

// Thresholds define the classification boundaries in mg/dL.
type Thresholds struct {
	UrgentLow  int
	TargetLow  int
	TargetHigh int
	UrgentHigh int
}

// Classify returns the status bucket for a glucose value in mg/dL.
func (t Thresholds) Classify(mgdl float64) string {
	switch {
	case mgdl <= float64(t.UrgentLow):
		return StatusUrgentLow
	case mgdl <= float64(t.TargetLow):
		return StatusLow
	case mgdl >= float64(t.UrgentHigh):
		return StatusUrgentHigh
	case mgdl >= float64(t.TargetHigh):
		return StatusHigh
	default:
		return StatusNormal
	}
}

// Manager raises a notification when a reading leaves the target range,
// suppressing repeats of the same status within the repeat interval.
type Manager struct {
	thresholds Thresholds
	repeat     time.Duration
	useMmol    bool

	notify func(title, message string) error
	now    func() time.Time

	mu            sync.Mutex
	lastAlertTime map[string]time.Time
}

// NewManager creates a manager. repeat == 0 means each status alerts once
// until cleared.
func NewManager(thresholds Thresholds, repeat time.Duration, useMmol bool) *Manager {
	return &Manager{
		thresholds:    thresholds,
		repeat:        repeat,
		useMmol:       useMmol,
		notify:        sendNotification,
		now:           time.Now,
		lastAlertTime: make(map[string]time.Time),
	}
}

// Check classifies the reading and sends a notification when warranted. It
// returns the status bucket in all cases. A reading without a glucose value
// classifies as normal; there is nothing to alert on.
func (m *Manager) Check(reading nightscout.SGV) (string, error) {
	if reading.Sgv == nil {
		return StatusNormal, nil
	}
	status := m.thresholds.Classify(*reading.Sgv)
	if status == StatusNormal {
		return status, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if lastTime, ok := m.lastAlertTime[status]; ok {
		if m.repeat <= 0 || m.now().Sub(lastTime) < m.repeat {
			return status, nil
		}
	}

	title, message := m.formatNotification(reading, status)
	if err := m.notify(title, message); err != nil {
		return status, fmt.Errorf("send notification: %w", err)
	}
	m.lastAlertTime[status] = m.now()
	return status, nil
}

// Clear resets the repeat-suppression state for one status, or for all when
// status is empty.
func (m *Manager) Clear(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if status == "" {
		m.lastAlertTime = make(map[string]time.Time)
	} else {
		delete(m.lastAlertTime, status)
	}
}

func (m *Manager) formatNotification(reading nightscout.SGV, status string) (string, string) {
	var valueStr string
	if m.useMmol {
		valueStr = fmt.Sprintf("%.1f mmol/L", nightscout.MgdlToMmol(*reading.Sgv))
	} else {
		valueStr = fmt.Sprintf("%.0f mg/dL", *reading.Sgv)
	}

	var title, message string
	switch status {
	case StatusUrgentLow:
		title = "⚠️ URGENT LOW GLUCOSE"
		message = fmt.Sprintf("Glucose is critically low: %s %s", valueStr, reading.TrendArrow())
	case StatusLow:
		title = "⬇️ Low Glucose"
		message = fmt.Sprintf("Glucose is low: %s %s", valueStr, reading.TrendArrow())
	case StatusUrgentHigh:
		title = "⚠️ URGENT HIGH GLUCOSE"
		message = fmt.Sprintf("Glucose is critically high: %s %s", valueStr, reading.TrendArrow())
	case StatusHigh:
		title = "⬆️ High Glucose"
		message = fmt.Sprintf("Glucose is high: %s %s", valueStr, reading.TrendArrow())
	}
	return title, message
}

func sendNotification(title, message string) error {
	return beeep.Notify(title, message, "")
}
