package model

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackmsg/pkg/domain"
)

const (
	FallbackCustomMessage = "Custom Message"
	PretextCustomMessage  = "Custom Message:"
	FallbackBacklogItem   = "Backlog Item Message"
)

// SlackMessage holds the display options and content of one notification.
type SlackMessage struct {
	Color         string // good, warning, danger, or #hex
	IconEmoji     string // normalized to :emoji: when emitted
	IconURL       string
	UserName      string
	Channel       string
	LinkNames     bool
	Message       string
	CustomMessage string
	BacklogItems  []string
}

// SlackPayload is the JSON body accepted by chat.postMessage and incoming webhooks.
// See https://api.slack.com/methods/chat.postMessage
type SlackPayload struct {
	Channel     string       `json:"channel"`
	Text        string       `json:"text"`
	LinkNames   bool         `json:"link_names"`
	UserName    string       `json:"username,omitempty"`
	IconURL     string       `json:"icon_url,omitempty"`
	IconEmoji   *string      `json:"icon_emoji,omitempty"` // set whenever the message has an icon emoji
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Attachment represents a Slack message attachment
type Attachment struct {
	Fallback string            `json:"fallback"`
	Text     string            `json:"text"`
	Pretext  string            `json:"pretext,omitempty"`
	Color    string            `json:"color,omitempty"`
	Fields   []AttachmentField `json:"fields,omitempty"`
}

// AttachmentField represents a field in Slack attachment
type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// Payload maps the message to the webhook schema. channel, text and
// link_names are set unconditionally, even when empty.
func (m *SlackMessage) Payload() *SlackPayload {
	payload := &SlackPayload{
		Channel:   m.Channel,
		Text:      m.Message,
		LinkNames: m.LinkNames,
		UserName:  m.UserName,
		IconURL:   m.IconURL,
	}

	if m.IconEmoji != "" {
		emoji := NormalizeEmoji(m.IconEmoji)
		payload.IconEmoji = &emoji
	}

	var attachments []Attachment
	if m.CustomMessage != "" {
		attachments = append(attachments, Attachment{
			Color:    m.Color,
			Text:     m.CustomMessage,
			Fallback: FallbackCustomMessage,
			Pretext:  PretextCustomMessage,
		})
	}

	for _, item := range m.BacklogItems {
		if item == "" {
			continue
		}
		attachments = append(attachments, Attachment{
			Color:    m.Color,
			Text:     item,
			Fallback: FallbackBacklogItem,
		})
	}

	if len(attachments) > 0 {
		payload.Attachments = attachments
	}

	return payload
}

// JSON serializes the payload of the message
func (m *SlackMessage) JSON() (string, error) {
	return m.Payload().JSON()
}

// JSON serializes the payload. Slack link markup such as
// <https://example.com|label> is kept as is, so HTML escaping is disabled.
func (p *SlackPayload) JSON() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(p); err != nil {
		return "", domain.ErrPayloadEncoding.Wrap(err,
			goerr.V("channel", p.Channel),
		)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// NormalizeEmoji trims s and wraps it in colons, e.g. "smile" -> ":smile:".
// An empty or blank input yields "".
func NormalizeEmoji(s string) string {
	emoji := strings.TrimSpace(s)

	if emoji != "" && !strings.HasPrefix(emoji, ":") {
		emoji = ":" + emoji
	}
	if emoji != "" && !strings.HasSuffix(emoji, ":") {
		emoji = emoji + ":"
	}

	return emoji
}
