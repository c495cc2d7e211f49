package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"marios/internal/wm"
	"marios/pkg/logging"
)

// Handler processes a notification. Handlers run on the publishing goroutine
// and must not block.
type Handler func(Notification)

// Subscription represents a subscription to notifications.
type Subscription struct {
	ID      string
	Filter  Filter
	Handler Handler
	Channel chan Notification
	closed  bool
	mu      sync.RWMutex
}

// Close closes the subscription
func (s *Subscription) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		if s.Channel != nil {
			close(s.Channel)
		}
		s.closed = true
	}
}

// IsClosed returns whether the subscription is closed
func (s *Subscription) IsClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// deliver sends n on the channel unless the subscription is closed or the
// buffer is full. It reports whether the notification was delivered.
func (s *Subscription) deliver(n Notification) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	select {
	case s.Channel <- n:
		return true
	default:
		return false
	}
}

// Bus provides publish/subscribe delivery of notifications
type Bus interface {
	// Publish delivers n to every matching subscriber
	Publish(n Notification)

	// Subscribe creates a subscription with a handler function
	Subscribe(filter Filter, handler Handler) *Subscription

	// SubscribeChannel creates a subscription with a buffered channel
	SubscribeChannel(filter Filter, bufferSize int) *Subscription

	// Unsubscribe removes a subscription
	Unsubscribe(subscription *Subscription)

	// GetMetrics returns bus metrics
	GetMetrics() Metrics

	// Close closes the bus and all subscriptions
	Close()
}

// Metrics tracks bus activity
type Metrics struct {
	TotalSubscriptions  int
	ActiveSubscriptions int
	Published           int64
	Delivered           int64
	Dropped             int64
	HandlerPanics       int64
	LastPublished       time.Time
	BySource            map[Source]int64
}

// DefaultBus is the default implementation of Bus
type DefaultBus struct {
	subscriptions map[string]*Subscription
	order         []string
	metrics       Metrics
	mu            sync.RWMutex
	closed        bool
}

// NewBus creates a new notification bus
func NewBus() *DefaultBus {
	return &DefaultBus{
		subscriptions: make(map[string]*Subscription),
		metrics: Metrics{
			BySource: make(map[Source]int64),
		},
	}
}

// Publish delivers n to all matching subscribers in subscription order.
// A panicking handler or a full channel never affects the publisher.
func (b *DefaultBus) Publish(n Notification) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	subs := make([]*Subscription, 0, len(b.order))
	for _, id := range b.order {
		subs = append(subs, b.subscriptions[id])
	}
	b.mu.RUnlock()

	var delivered, dropped, panics int64
	for _, sub := range subs {
		if sub.IsClosed() {
			continue
		}
		if sub.Filter != nil && !sub.Filter(n) {
			continue
		}

		if sub.Handler != nil {
			if b.runHandler(sub.Handler, n) {
				delivered++
			} else {
				panics++
			}
		}

		if sub.Channel != nil {
			if sub.deliver(n) {
				delivered++
			} else {
				dropped++
			}
		}
	}

	b.mu.Lock()
	b.metrics.Published++
	b.metrics.Delivered += delivered
	b.metrics.Dropped += dropped
	b.metrics.HandlerPanics += panics
	b.metrics.LastPublished = n.Timestamp
	b.metrics.BySource[n.Source]++
	b.mu.Unlock()
}

func (b *DefaultBus) runHandler(h Handler, n Notification) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Warn("Notify", "Notification handler panicked on %q: %v", n.Message, r)
			ok = false
		}
	}()
	h(n)
	return true
}

// Subscribe creates a subscription with a handler function
func (b *DefaultBus) Subscribe(filter Filter, handler Handler) *Subscription {
	return b.add(&Subscription{Filter: filter, Handler: handler})
}

// SubscribeChannel creates a subscription with a channel
func (b *DefaultBus) SubscribeChannel(filter Filter, bufferSize int) *Subscription {
	return b.add(&Subscription{Filter: filter, Channel: make(chan Notification, bufferSize)})
}

func (b *DefaultBus) add(sub *Subscription) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	sub.ID = uuid.NewString()
	b.subscriptions[sub.ID] = sub
	b.order = append(b.order, sub.ID)
	b.metrics.TotalSubscriptions++
	b.metrics.ActiveSubscriptions++
	return sub
}

// Unsubscribe removes a subscription
func (b *DefaultBus) Unsubscribe(subscription *Subscription) {
	if subscription == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.subscriptions[subscription.ID]; !exists {
		return
	}
	subscription.Close()
	delete(b.subscriptions, subscription.ID)
	for i, id := range b.order {
		if id == subscription.ID {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	b.metrics.ActiveSubscriptions--
}

// GetMetrics returns bus metrics
func (b *DefaultBus) GetMetrics() Metrics {
	b.mu.RLock()
	defer b.mu.RUnlock()

	metrics := b.metrics
	metrics.BySource = make(map[Source]int64, len(b.metrics.BySource))
	for k, v := range b.metrics.BySource {
		metrics.BySource[k] = v
	}
	return metrics
}

// Close closes the bus and all subscriptions
func (b *DefaultBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for _, sub := range b.subscriptions {
		sub.Close()
	}
	b.subscriptions = make(map[string]*Subscription)
	b.order = nil
	b.metrics.ActiveSubscriptions = 0
	b.closed = true
}

// WindowManagerNotifier adapts the bus to the window manager's notification
// sink.
func WindowManagerNotifier(bus Bus) wm.Notifier {
	return wm.NotifierFunc(func(n wm.Notification) {
		bus.Publish(New(SourceWindowManager, n.Level, n.Message, n.Duration))
	})
}
