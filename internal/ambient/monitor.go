package ambient

import (
	"math/rand"
	"time"
)

const (
	// StatsInterval is how often the monitor considers refreshing its numbers.
	StatsInterval = 2 * time.Second
	// statsRefreshChance is the probability a tick actually refreshes them.
	statsRefreshChance = 0.2
)

// Stats are the simulated resource gauges in the status bar and monitor.
type Stats struct {
	CPU int `json:"cpu"`
	RAM int `json:"ram"`
}

// SampleStats draws CPU in [15,55) and RAM in [50,80) percent.
func SampleStats(rng *rand.Rand) Stats {
	return Stats{
		CPU: rng.Intn(40) + 15,
		RAM: rng.Intn(30) + 50,
	}
}

// Process is one row of the fake process list.
type Process struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Processes returns the fixed process list.
func Processes() []Process {
	return []Process{
		{Name: "mari_core.exe", Status: "Running"},
		{Name: "matrix_render.dll", Status: "Active"},
		{Name: "portfolio.app", Status: "Loaded"},
		{Name: "security_daemon", Status: "Monitoring"},
	}
}

// Monitor is the system monitor panel: a tray toggle shows or hides it and
// its own button collapses the body.
type Monitor struct {
	rng       *rand.Rand
	stats     Stats
	visible   bool
	collapsed bool
}

// NewMonitor creates a visible, expanded monitor with initial readings.
func NewMonitor(rng *rand.Rand) *Monitor {
	return &Monitor{rng: rng, stats: SampleStats(rng), visible: true}
}

// Tick maybe refreshes the readings. It reports whether they changed.
func (m *Monitor) Tick() bool {
	if m.rng.Float64() <= 1-statsRefreshChance {
		return false
	}
	m.stats = SampleStats(m.rng)
	return true
}

// Stats returns the current readings.
func (m *Monitor) Stats() Stats { return m.stats }

// Processes returns the process list.
func (m *Monitor) Processes() []Process { return Processes() }

// Visible reports whether the panel is shown.
func (m *Monitor) Visible() bool { return m.visible }

// Collapsed reports whether only the panel header is shown.
func (m *Monitor) Collapsed() bool { return m.collapsed }

// Toggle shows or hides the panel.
func (m *Monitor) Toggle() { m.visible = !m.visible }

// ToggleCollapsed collapses or expands the panel body.
func (m *Monitor) ToggleCollapsed() { m.collapsed = !m.collapsed }
