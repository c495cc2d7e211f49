package ambient

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marios/internal/notify"
	"marios/internal/wm"
)

// fixedSource makes every draw return the same value.
type fixedSource int64

func (s fixedSource) Int63() int64 { return int64(s) }
func (fixedSource) Seed(int64)     {}

var (
	// always draws 0.96875 from Float64.
	always = rand.New(fixedSource(0x7C00000000000000))
	// never draws 0 from Float64.
	never = rand.New(fixedSource(0))
)

func TestSampleStats_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		s := SampleStats(rng)
		assert.GreaterOrEqual(t, s.CPU, 15)
		assert.Less(t, s.CPU, 55)
		assert.GreaterOrEqual(t, s.RAM, 50)
		assert.Less(t, s.RAM, 80)
	}
}

func TestMonitor(t *testing.T) {
	m := NewMonitor(never)
	assert.True(t, m.Visible())
	assert.False(t, m.Collapsed())
	assert.False(t, m.Tick())
	assert.Len(t, m.Processes(), 4)

	m.Toggle()
	assert.False(t, m.Visible())
	m.ToggleCollapsed()
	assert.True(t, m.Collapsed())

	assert.True(t, NewMonitor(always).Tick())
}

func TestEventSource(t *testing.T) {
	bus := notify.NewBus()
	sub := bus.SubscribeChannel(nil, 4)

	assert.False(t, NewEventSource(never, bus).Tick())
	require.True(t, NewEventSource(always, bus).Tick())

	n := <-sub.Channel
	assert.Contains(t, SystemMessages(), n.Message)
	assert.Equal(t, notify.SourceSystem, n.Source)
	assert.Equal(t, wm.LevelInfo, n.Level)
	assert.Equal(t, 2*time.Second, n.Duration)
}

func TestWelcome(t *testing.T) {
	bus := notify.NewBus()
	sub := bus.SubscribeChannel(nil, 2)

	Welcome(bus)
	WelcomeFollowUp(bus)

	first, second := <-sub.Channel, <-sub.Channel
	assert.Equal(t, "mar.iOS Initialized Successfully", first.Message)
	assert.Equal(t, wm.LevelSuccess, first.Level)
	assert.Equal(t, "All systems operational", second.Message)
}

func TestClock(t *testing.T) {
	at := time.Date(2024, time.March, 4, 9, 5, 7, 0, time.UTC)
	assert.Equal(t, "09:05:07", FormatClock(at))
	assert.Equal(t, "Mon, Mar 4", FormatDate(at))

	assert.Equal(t, "3h 07m", Uptime(at, at.Add(3*time.Hour+7*time.Minute+30*time.Second)))
	assert.Equal(t, "0h 00m", Uptime(at, at.Add(-time.Minute)))
}

func TestBootLog(t *testing.T) {
	lines, progress := BootLog(0, DefaultBootDuration)
	assert.Len(t, lines, 1)
	assert.Zero(t, progress)

	lines, progress = BootLog(DefaultBootDuration/2, DefaultBootDuration)
	assert.InDelta(t, 0.5, progress, 0.001)
	assert.Greater(t, len(lines), 1)
	assert.Less(t, len(lines), len(bootLog))

	lines, progress = BootLog(DefaultBootDuration, DefaultBootDuration)
	assert.Len(t, lines, len(bootLog))
	assert.Equal(t, 1.0, progress)

	_, progress = BootLog(time.Second, 0)
	assert.Equal(t, 1.0, progress)
}

func TestTypist(t *testing.T) {
	idle := NewTypist(never)
	assert.False(t, idle.Tick())
	assert.False(t, idle.Keystroke())
	assert.Empty(t, idle.Line())

	typist := NewTypist(always)
	require.True(t, typist.Tick())
	assert.True(t, typist.Typing())
	assert.False(t, typist.Tick(), "one command at a time")

	for typist.Keystroke() {
	}
	assert.False(t, typist.Typing())

	require.True(t, typist.Tick())
	assert.True(t, typist.Keystroke())
	assert.Equal(t, "c", typist.Line(), "the second command is typed next")
}
