// Package watch renders a terminal dashboard of recent glucose readings,
// polling the server on an interval and raising threshold alerts.
package watch

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	nightscout "github.com/mrcode/nightscout-go"
	"github.com/mrcode/nightscout-go/internal/alert"
)

const historyCount = 12

// Options configure the watch UI.
type Options struct {
	Fetcher    nightscout.Fetcher
	Alerts     *alert.Manager
	Thresholds alert.Thresholds
	UseMmol    bool
	PollEvery  time.Duration
}

type tickMsg time.Time

type readingsMsg []nightscout.SGV

type fetchErrMsg struct {
	err error
}

// Model is the Bubble Tea state for the dashboard.
type Model struct {
	ctx  context.Context
	opts Options

	readings  []nightscout.SGV
	fetchedAt time.Time
	fetchErr  error
	quitting  bool
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Fetcher == nil {
		return fmt.Errorf("watch requires a fetcher")
	}
	if opts.PollEvery <= 0 {
		opts.PollEvery = time.Minute
	}

	program := tea.NewProgram(newModel(ctx, opts), tea.WithContext(ctx))
	_, err := program.Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func newModel(ctx context.Context, opts Options) Model {
	return Model{ctx: ctx, opts: opts}
}

// Init starts the first fetch and the poll ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(), m.tick())
}

// Update handles key presses, poll ticks and fetch results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.fetch()
		}

	case tickMsg:
		return m, tea.Batch(m.fetch(), m.tick())

	case readingsMsg:
		m.readings = msg
		m.fetchedAt = time.Now()
		m.fetchErr = nil
		if len(msg) > 0 && m.opts.Alerts != nil {
			// Alert failure shouldn't kill the dashboard.
			_, _ = m.opts.Alerts.Check(msg[0])
		}
		return m, nil

	case fetchErrMsg:
		m.fetchErr = msg.err
		return m, nil
	}
	return m, nil
}

func (m Model) fetch() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, 15*time.Second)
		defer cancel()

		params := url.Values{"count": {strconv.Itoa(historyCount)}}
		readings, err := m.opts.Fetcher.GetSGVs(ctx, params)
		if err != nil {
			return fetchErrMsg{err: err}
		}
		return readingsMsg(readings)
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.PollEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	normalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	urgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Nightscout"))
	b.WriteString("\n\n")

	if m.fetchErr != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("fetch failed: %v", m.fetchErr)))
		b.WriteString("\n\n")
	}

	if len(m.readings) == 0 {
		b.WriteString(faintStyle.Render("waiting for readings..."))
		b.WriteString("\n")
	} else {
		current := m.readings[0]
		status := alert.StatusNormal
		if current.Sgv != nil {
			status = m.opts.Thresholds.Classify(*current.Sgv)
		}
		b.WriteString(statusStyle(status).Render(formatReading(current, m.opts.UseMmol)))
		b.WriteString("  ")
		b.WriteString(faintStyle.Render(relativeAge(current.Date, time.Now())))
		b.WriteString("\n\n")

		for _, reading := range m.readings[1:] {
			b.WriteString("  ")
			b.WriteString(faintStyle.Render(reading.Date.Local().Format("15:04")))
			b.WriteString("  ")
			b.WriteString(formatReading(reading, m.opts.UseMmol))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	footer := "r refresh  q quit"
	if !m.fetchedAt.IsZero() {
		footer += "  ·  updated " + relativeAge(m.fetchedAt, time.Now())
	}
	b.WriteString(faintStyle.Render(footer))
	b.WriteString("\n")
	return b.String()
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case alert.StatusUrgentLow, alert.StatusUrgentHigh:
		return urgentStyle
	case alert.StatusLow, alert.StatusHigh:
		return warnStyle
	default:
		return normalStyle
	}
}

func formatReading(reading nightscout.SGV, useMmol bool) string {
	if reading.Sgv == nil {
		return "--- " + reading.TrendArrow()
	}
	if useMmol {
		return fmt.Sprintf("%.1f mmol/L %s", nightscout.MgdlToMmol(*reading.Sgv), reading.TrendArrow())
	}
	return fmt.Sprintf("%.0f mg/dL %s", *reading.Sgv, reading.TrendArrow())
}

func relativeAge(at, now time.Time) string {
	age := now.Sub(at)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return fmt.Sprintf("%dh%dm ago", int(age.Hours()), int(age.Minutes())%60)
	}
}
