package model

import (
	"os"
)

// Config represents the application configuration
type Config struct {
	Slack SlackConfig `yaml:"slack"`
}

// SlackConfig holds the display options applied to every message
type SlackConfig struct {
	Channel       string `yaml:"channel"`
	Color         string `yaml:"color,omitempty"`      // good, warning, danger, or #hex
	IconEmoji     string `yaml:"icon_emoji,omitempty"` // smile or :smile:
	IconURL       string `yaml:"icon_url,omitempty"`
	UserName      string `yaml:"username,omitempty"`
	LinkNames     bool   `yaml:"link_names,omitempty"`
	CustomMessage string `yaml:"custom_message,omitempty"`
}

// ExpandEnv replaces $VAR and ${VAR} in the destination and identity
// fields. Message text such as custom_message is left as written.
func (c *SlackConfig) ExpandEnv() {
	for _, p := range []*string{
		&c.Channel,
		&c.IconURL,
		&c.UserName,
	} {
		*p = os.ExpandEnv(*p)
	}
}

// ToSlackMessage combines the display options with message content
func (c SlackConfig) ToSlackMessage(message string, backlog []string) *SlackMessage {
	return &SlackMessage{
		Color:         c.Color,
		IconEmoji:     c.IconEmoji,
		IconURL:       c.IconURL,
		UserName:      c.UserName,
		Channel:       c.Channel,
		LinkNames:     c.LinkNames,
		Message:       message,
		CustomMessage: c.CustomMessage,
		BacklogItems:  backlog,
	}
}
