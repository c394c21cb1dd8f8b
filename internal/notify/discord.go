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

	"github.com/donaldgifford/maardu-realty/internal/metrics"
)

const (
	colorGreen  = 0x2ECC71 // sweep without failures
	colorOrange = 0xE67E22 // sweep with failed sends
	colorRed    = 0xE74C3C // pipeline failure

	// maxListedFailures caps the listing IDs printed in a digest.
	maxListedFailures = 20
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// NotifyPipelineFailure posts a failed payment run as a red embed.
func (d *DiscordNotifier) NotifyPipelineFailure(ctx context.Context, f *PipelineFailure) error {
	embed := discordEmbed{
		Title:       fmt.Sprintf("Payment pipeline failed at %s", f.FailedStep),
		Color:       colorRed,
		Description: truncate(f.Error, 1024),
		Fields: []discordEmbedField{
			{Name: "Run", Value: f.RunID, Inline: true},
			{Name: "Listing", Value: f.ListingID, Inline: true},
			{Name: "User", Value: f.UserID, Inline: true},
			{Name: "Attempts", Value: fmt.Sprintf("%d", f.Attempts), Inline: true},
		},
		Timestamp: timestamp(f.At),
	}
	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

// NotifyExpirationDigest posts the outcome of an expiration sweep.
func (d *DiscordNotifier) NotifyExpirationDigest(ctx context.Context, dg *ExpirationDigest) error {
	color := colorGreen
	if dg.Failed > 0 {
		color = colorOrange
	}

	embed := discordEmbed{
		Title: fmt.Sprintf("Expired listings %s", dg.Day.Format(time.DateOnly)),
		Color: color,
		Fields: []discordEmbedField{
			{Name: "Expired", Value: fmt.Sprintf("%d", dg.Expired), Inline: true},
			{Name: "Emailed", Value: fmt.Sprintf("%d", dg.Sent), Inline: true},
			{Name: "Already notified", Value: fmt.Sprintf("%d", dg.Skipped), Inline: true},
			{Name: "Failed", Value: fmt.Sprintf("%d", dg.Failed), Inline: true},
		},
		Timestamp: timestamp(dg.Day),
	}

	if len(dg.FailedListings) > 0 {
		listed := dg.FailedListings[:min(len(dg.FailedListings), maxListedFailures)]
		desc := "Failed: " + strings.Join(listed, ", ")
		if extra := len(dg.FailedListings) - len(listed); extra > 0 {
			desc += fmt.Sprintf(" and %d more", extra)
		}
		embed.Description = desc
	}

	return d.post(ctx, discordWebhookPayload{Embeds: []discordEmbed{embed}})
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) (err error) {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.NotificationFailuresTotal.Inc()
		} else {
			metrics.NotificationsSentTotal.Inc()
		}
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
