package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/thoreinstein/shotgun/internal/errors"
	"github.com/thoreinstein/shotgun/internal/form"
	"github.com/thoreinstein/shotgun/internal/logging"
	"github.com/thoreinstein/shotgun/internal/platform"
)

// DiscordWebhookPattern must appear in a webhook URL for it to be accepted.
const DiscordWebhookPattern = "discord.com/api/webhooks"

// EmbedColor is the accent color of rich embeds (Discord blurple).
const EmbedColor = 0x5865F2

// maxErrorBody caps how much of a failed response body is echoed back.
const maxErrorBody = 4 << 10

// WebhookPayload is the JSON body sent to a Discord webhook.
type WebhookPayload struct {
	Content string  `json:"content"`
	Embeds  []Embed `json:"embeds,omitempty"`
}

// Embed is a rich embed attached to a webhook message.
type Embed struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Color       int    `json:"color"`
}

// Webhook posts to a Discord channel through an incoming webhook.
type Webhook struct {
	url  string
	opts options
}

// NewWebhook creates a webhook adapter for the given URL.
func NewWebhook(webhookURL string, opts ...Option) *Webhook {
	return &Webhook{url: strings.TrimSpace(webhookURL), opts: newOptions(opts)}
}

// Platform implements Adapter.
func (w *Webhook) Platform() platform.Key { return platform.Discord }

// ValidateCredentials reports whether the URL looks like a Discord webhook.
func (w *Webhook) ValidateCredentials() bool {
	return w.url != "" && strings.Contains(w.url, DiscordWebhookPattern)
}

// BuildPayload converts form data into the webhook body. An embed is added
// only when the embed toggle is on and a title or description is present.
func BuildPayload(data form.Data) WebhookPayload {
	payload := WebhookPayload{Content: data.Text("text")}

	title := data.Text("embedTitle")
	description := data.Text("embedDescription")
	if data.Bool("embed") && (title != "" || description != "") {
		payload.Embeds = []Embed{{
			Title:       title,
			Description: description,
			Color:       EmbedColor,
		}}
	}
	return payload
}

// Post implements Adapter.
func (w *Webhook) Post(ctx context.Context, data form.Data) Result {
	logger := logging.FromContext(ctx).With("platform", string(platform.Discord))

	if !w.ValidateCredentials() {
		return failure(platform.Discord, "Discord webhook URL not configured or invalid")
	}

	if err := w.send(ctx, BuildPayload(data)); err != nil {
		logger.Debug("webhook post failed", "error", err)
		return failure(platform.Discord, err.Error())
	}

	id := "discord_" + strconv.FormatInt(w.opts.now().UnixMilli(), 10)
	logger.Debug("webhook post succeeded", "post_id", id)
	return Result{Success: true, Platform: platform.Discord, PostID: id}
}

func (w *Webhook) send(ctx context.Context, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encoding webhook payload")
	}

	ctx, cancel := context.WithTimeout(ctx, w.opts.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return transportError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := w.opts.client.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	logging.FromContext(ctx).Log(ctx, logging.LevelTrace, "webhook response",
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Newf("Discord API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// transportError strips the request URL from client errors so the webhook
// token never ends up in a Result.
func transportError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.New("request timed out")
	}
	return err
}
