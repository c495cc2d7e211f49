package notify

import (
	"time"

	"github.com/google/uuid"

	"marios/internal/wm"
)

// Source names the component that raised a notification.
type Source string

const (
	SourceWindowManager Source = "wm"
	SourceSystem        Source = "system"
	SourceContact       Source = "contact"
	SourceDesktop       Source = "desktop"
)

// Notification is an advisory message shown as a toast.
type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Level     wm.Level      `json:"level"`
	Source    Source        `json:"source"`
	Duration  time.Duration `json:"duration"`
	Timestamp time.Time     `json:"timestamp"`
}

// New creates a notification with a fresh id and the current time.
func New(source Source, level wm.Level, message string, duration time.Duration) Notification {
	return Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Level:     level,
		Source:    source,
		Duration:  duration,
		Timestamp: time.Now(),
	}
}

// Expires returns when the notification should disappear.
func (n Notification) Expires() time.Time {
	return n.Timestamp.Add(n.Duration)
}

// Filter decides whether a subscription receives a notification.
type Filter func(Notification) bool

// FilterBySource accepts notifications from any of the given sources.
func FilterBySource(sources ...Source) Filter {
	return func(n Notification) bool {
		for _, s := range sources {
			if n.Source == s {
				return true
			}
		}
		return false
	}
}

// FilterByLevel accepts notifications of any of the given levels.
func FilterByLevel(levels ...wm.Level) Filter {
	return func(n Notification) bool {
		for _, l := range levels {
			if n.Level == l {
				return true
			}
		}
		return false
	}
}
