package ambient

import (
	"math/rand"
	"time"

	"marios/internal/notify"
	"marios/internal/wm"
)

const (
	// EventInterval is how often a random system event may fire.
	EventInterval = 10 * time.Second
	eventChance   = 0.05
	eventDuration = 2 * time.Second
)

var systemMessages = []string{
	"Security scan completed",
	"Mari network optimized",
	"Cache cleared successfully",
	"Background process terminated",
	"Memory defragmentation complete",
}

// SystemMessages returns the pool random events are drawn from.
func SystemMessages() []string {
	out := make([]string, len(systemMessages))
	copy(out, systemMessages)
	return out
}

// EventSource raises occasional fake system notifications.
type EventSource struct {
	rng *rand.Rand
	bus notify.Bus
}

// NewEventSource publishes its events on bus.
func NewEventSource(rng *rand.Rand, bus notify.Bus) *EventSource {
	return &EventSource{rng: rng, bus: bus}
}

// Tick maybe publishes one event. It reports whether it did.
func (e *EventSource) Tick() bool {
	if e.rng.Float64() <= 1-eventChance {
		return false
	}
	msg := systemMessages[e.rng.Intn(len(systemMessages))]
	e.bus.Publish(notify.New(notify.SourceSystem, wm.LevelInfo, msg, eventDuration))
	return true
}

// Welcome publishes the post-boot greeting.
func Welcome(bus notify.Bus) {
	bus.Publish(notify.New(notify.SourceSystem, wm.LevelSuccess, "mar.iOS Initialized Successfully", 3*time.Second))
}

// WelcomeFollowUp is published one second after Welcome.
func WelcomeFollowUp(bus notify.Bus) {
	bus.Publish(notify.New(notify.SourceSystem, wm.LevelInfo, "All systems operational", 2*time.Second))
}
