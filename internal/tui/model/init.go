package model

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"marios/internal/ambient"
	"marios/internal/config"
	"marios/internal/notify"
	"marios/internal/tui/design"
	"marios/internal/wm"
	"marios/pkg/logging"
)

const notificationBuffer = 32

// Config carries everything the desktop needs at startup.
type Config struct {
	Desktop config.MariosConfig
	// Options are the window manager options; the sinks are filled in here.
	Options    wm.Options
	Bus        notify.Bus
	Contact    ContactSubmitter
	LogChannel <-chan logging.LogEntry
	DebugMode  bool
	// Rand and Now default to a time-seeded source and time.Now.
	Rand *rand.Rand
	Now  func() time.Time
}

// InitializeModel builds the window manager with the model as its renderer
// and launcher sink, and wires the notification bus.
func InitializeModel(cfg Config) (*Model, error) {
	if cfg.Bus == nil {
		cfg.Bus = notify.NewBus()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(design.ColorPrimary)

	colorProfile := lipgloss.ColorProfile().String()
	colorMode := fmt.Sprintf("%s (Dark: %v)", colorProfile, lipgloss.HasDarkBackground())

	now := cfg.Now()
	m := &Model{
		CurrentAppMode: ModeBooting,
		LastAppMode:    ModeDesktop,
		DebugMode:      cfg.DebugMode,
		ColorMode:      colorMode,
		Config:         cfg.Desktop,
		Bus:            cfg.Bus,
		Contact:        cfg.Contact,
		Toasts:         notify.NewTray(notify.DefaultTrayCapacity),
		Monitor:        ambient.NewMonitor(cfg.Rand),
		Events:         ambient.NewEventSource(cfg.Rand, cfg.Bus),
		Typist:         ambient.NewTypist(cfg.Rand),
		Rand:           cfg.Rand,
		Now:            cfg.Now,
		StartedAt:      now,
		BootStarted:    now,
		BootDuration:   cfg.Desktop.Boot.Duration,
		Tabs:           make(map[string]int),
		ActivityLog:    make([]string, 0),
		LogViewport:    viewport.New(0, 0),
		Spinner:        s,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogChannel:     cfg.LogChannel,
	}
	if m.BootDuration <= 0 {
		m.BootDuration = ambient.DefaultBootDuration
	}
	if cfg.Desktop.Boot.Skipped() {
		m.CurrentAppMode = ModeDesktop
	}

	for _, def := range cfg.Desktop.Windows {
		if def.Form && m.Form == nil {
			m.Form = NewContactForm(def.ID)
		}
	}

	opts := cfg.Options
	if opts.Viewport.W == 0 || opts.Viewport.H == 0 {
		opts.Viewport = wm.Size{W: DefaultViewportWidth, H: DefaultViewportHeight}
	}
	m.Width, m.Height = opts.Viewport.W, opts.Viewport.H
	opts.Renderer = m
	opts.Notifier = notify.WindowManagerNotifier(cfg.Bus)
	opts.Launchers = wm.LauncherSinkFunc(m.SetLaunchers)

	mgr, err := wm.NewManager(opts, cfg.Desktop.WindowSpecs())
	if err != nil {
		return nil, fmt.Errorf("failed to create window manager: %w", err)
	}
	m.WM = mgr
	m.Notifications = cfg.Bus.SubscribeChannel(nil, notificationBuffer)

	return m, nil
}

// Init implements tea.Model and starts the listeners and cosmetic timers.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.Spinner.Tick,
		ListenForLogEntriesCmd(m.LogChannel),
		ListenForNotificationsCmd(m.Notifications),
		ClockTickCmd(),
		StatsTickCmd(),
		EventTickCmd(),
		TypingTickCmd(),
	}
	if m.CurrentAppMode == ModeBooting {
		cmds = append(cmds, BootTickCmd(), BootDoneCmd(m.BootDuration))
	} else {
		cmds = append(cmds, BootDoneCmd(0))
	}
	return tea.Batch(cmds...)
}
