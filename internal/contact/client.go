package contact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"marios/internal/config"
	"marios/internal/notify"
	"marios/internal/wm"
	"marios/pkg/logging"
)

const subsystem = "Contact"

const (
	msgSending = "Initiating secure transmission..."
	msgSent    = "TRANSMISSION SUCCESSFUL - Message encrypted and sent!"
	msgFailed  = "TRANSMISSION FAILED - Please try alternative channels"
)

var (
	// ErrInvalidMessage is returned when a required form field is missing.
	ErrInvalidMessage = errors.New("invalid message")
	// ErrTransmissionFailed is returned when the endpoint rejects the message.
	ErrTransmissionFailed = errors.New("transmission failed")
	// ErrNotConfigured is returned when no access key is set.
	ErrNotConfigured = errors.New("contact form is not configured")
)

// Message is the content of the contact form.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Validate checks the required fields.
func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidMessage)
	case !strings.Contains(m.Email, "@"):
		return fmt.Errorf("%w: a valid email is required", ErrInvalidMessage)
	case strings.TrimSpace(m.Body) == "":
		return fmt.Errorf("%w: message is required", ErrInvalidMessage)
	}
	return nil
}

// Client submits contact messages to a form relay endpoint.
type Client struct {
	http      *retryablehttp.Client
	endpoint  string
	accessKey string
	bus       notify.Bus
}

// NewClient creates a client from the contact settings. Progress and results
// are published on bus.
func NewClient(settings config.ContactSettings, bus notify.Bus) *Client {
	hc := retryablehttp.NewClient()
	hc.RetryMax = settings.Retries
	hc.RetryWaitMin = 200 * time.Millisecond
	hc.RetryWaitMax = 2 * time.Second
	hc.Logger = leveledLogger{}
	if settings.Timeout > 0 {
		hc.HTTPClient.Timeout = settings.Timeout
	}

	endpoint := settings.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultContactEndpoint
	}
	return &Client{
		http:      hc,
		endpoint:  endpoint,
		accessKey: settings.AccessKey,
		bus:       bus,
	}
}

// relayResponse is the JSON body returned by the form relay.
type relayResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit sends the message. Submission is fire-and-forget for the desktop:
// the outcome is reported as notifications and never touches window state.
func (c *Client) Submit(ctx context.Context, m Message) error {
	if err := m.Validate(); err != nil {
		c.publish(wm.LevelWarning, err.Error(), 2*time.Second)
		return err
	}
	if c.accessKey == "" {
		c.publish(wm.LevelError, msgFailed, 4*time.Second)
		return ErrNotConfigured
	}

	c.publish(wm.LevelInfo, msgSending, 2*time.Second)

	if err := c.post(ctx, m); err != nil {
		logging.Error(subsystem, err, "Contact submission failed")
		c.publish(wm.LevelError, msgFailed, 4*time.Second)
		return err
	}

	logging.Info(subsystem, "Contact message from %s sent", m.Email)
	c.publish(wm.LevelSuccess, msgSent, 4*time.Second)
	return nil
}

func (c *Client) post(ctx context.Context, m Message) error {
	subject := m.Subject
	if subject == "" {
		subject = "New message from " + m.Name
	}
	form := url.Values{
		"access_key": {c.accessKey},
		"name":       {m.Name},
		"email":      {m.Email},
		"subject":    {subject},
		"message":    {m.Body},
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, []byte(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransmissionFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: endpoint returned %s", ErrTransmissionFailed, resp.Status)
	}

	var relay relayResponse
	if err := json.Unmarshal(body, &relay); err == nil && !relay.Success && relay.Message != "" {
		return fmt.Errorf("%w: %s", ErrTransmissionFailed, relay.Message)
	}
	return nil
}

func (c *Client) publish(level wm.Level, msg string, d time.Duration) {
	if c.bus != nil {
		c.bus.Publish(notify.New(notify.SourceContact, level, msg, d))
	}
}

// leveledLogger routes retryablehttp's logging into pkg/logging.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...interface{}) {
	logging.Error(subsystem, nil, "%s %v", msg, kv)
}

func (leveledLogger) Info(msg string, kv ...interface{}) {
	logging.Debug(subsystem, "%s %v", msg, kv)
}

func (leveledLogger) Debug(msg string, kv ...interface{}) {
	logging.Debug(subsystem, "%s %v", msg, kv)
}

func (leveledLogger) Warn(msg string, kv ...interface{}) {
	logging.Warn(subsystem, "%s %v", msg, kv)
}
