// Package notify sends phonebook events to the desktop and to webhooks.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/lazyvibe/phonebook/internal/app"
)

// EventType represents a notification event type.
type EventType string

const (
	EventContactAdded   EventType = "contact_added"
	EventContactRemoved EventType = "contact_removed"
	EventDuplicateName  EventType = "duplicate_name"
)

// maxMessageLen is counted in runes.
const maxMessageLen = 800

// Event describes a notification event.
type Event struct {
	ContactID   string
	ContactName string
	Type        EventType
	Title       string
	Message     string
	Timestamp   time.Time
}

// Dispatcher sends notifications to configured channels.
type Dispatcher struct {
	client *http.Client
	// desktop shows a desktop notification. alert is true for warnings.
	desktop func(title, message string, alert bool) error
}

// NewDispatcher creates a Dispatcher with sensible defaults.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		desktop: func(title, message string, alert bool) error {
			if alert {
				return beeep.Alert(title, message, "")
			}
			return beeep.Notify(title, message, "")
		},
	}
}

// Dispatch sends a notification event using the given config.
// It returns the first webhook error, if any. Desktop failures are ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg app.NotificationConfig, event Event) error {
	title := strings.TrimSpace(event.Title)
	if title == "" {
		title = "Phonebook"
	}
	message := strings.TrimSpace(event.Message)
	if message == "" {
		message = string(event.Type)
	}
	if runes := []rune(message); len(runes) > maxMessageLen {
		message = string(runes[:maxMessageLen]) + "..."
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if cfg.Desktop && d.desktop != nil {
		_ = d.desktop(title, message, event.Type == EventDuplicateName)
	}

	if cfg.WebhookURL == "" {
		return nil
	}
	payload := map[string]any{
		"contact":   event.ContactName,
		"contactId": event.ContactID,
		"event":     event.Type,
		"title":     title,
		"message":   message,
		"timestamp": event.Timestamp.Unix(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook %s: %s", cfg.WebhookURL, resp.Status)
	}
	return nil
}
