package app

import (
	"marios/internal/contact"
	"marios/internal/notify"
	"marios/pkg/logging"
)

// Services holds the collaborators shared by every mode.
type Services struct {
	Bus     *notify.DefaultBus
	Contact *contact.Client

	logSub *notify.Subscription
}

// InitializeServices creates the notification bus and the contact client.
func InitializeServices(cfg *Config) (*Services, error) {
	bus := notify.NewBus()
	s := &Services{
		Bus:     bus,
		Contact: contact.NewClient(cfg.MariosConfig.Contact, bus),
	}

	// Without a desktop nobody shows toasts, so notifications go to the log.
	if cfg.Mode != ModeDesktop {
		s.logSub = bus.Subscribe(nil, func(n notify.Notification) {
			logging.Info("Notify", "[%s] %s", n.Level, n.Message)
		})
	}
	return s, nil
}

// Close shuts the bus down.
func (s *Services) Close() {
	if s.logSub != nil {
		s.Bus.Unsubscribe(s.logSub)
	}
	s.Bus.Close()
}
