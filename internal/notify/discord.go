// Package notify sends operational alerts about a generation run — e.g. a
// best attempt that came back unsolvable — to a Discord webhook, with the
// webhook URL itself retrieved from Google Secret Manager.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
)

// Embed is one Discord embed object, per Discord's webhook schema.
type Embed struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color,omitempty"`
	Fields      []EmbedField `json:"fields,omitempty"`
}

// EmbedField is one name/value pair inside an Embed.
type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Colors used for the two alert kinds a generation run can raise.
const (
	ColorWarn = 0xFFAA00 // unsolvable best attempt
	ColorInfo = 0x0099FF
)

// Webhook posts messages to a fixed Discord webhook URL.
type Webhook struct {
	url string
}

// NewWebhook builds a Webhook for url. An empty url makes Send a no-op
// that logs instead, so operators without Discord configured still see
// the alert in their own logs.
func NewWebhook(url string) *Webhook {
	return &Webhook{url: url}
}

// Send posts message with the given embeds. An empty webhook URL logs the
// message instead of attempting delivery.
func (w *Webhook) Send(message string, embeds []Embed) error {
	if w.url == "" {
		slog.Info("no discord webhook configured, logging alert instead", "message", message)
		return nil
	}

	payload := webhookPayload{Content: message, Embeds: embeds}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal discord payload: %w", err)
	}

	resp, err := http.Post(w.url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("send discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("discord webhook returned status %s", resp.Status)
	}

	slog.Debug("discord message sent")
	return nil
}

// FetchSecret retrieves the latest version of a Google Secret Manager
// secret by its full resource name, e.g.
// "projects/p/secrets/discord-webhook/versions/latest".
func FetchSecret(ctx context.Context, name string) (string, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return "", fmt.Errorf("create secret manager client: %w", err)
	}
	defer client.Close()

	result, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("access secret version %s: %w", name, err)
	}
	return string(result.Payload.Data), nil
}
