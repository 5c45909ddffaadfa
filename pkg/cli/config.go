package cli

import (
	"github.com/m-mizutani/slackmsg/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

const (
	flagConfig        = "config"
	flagMessage       = "message"
	flagChannel       = "channel"
	flagColor         = "color"
	flagIconEmoji     = "icon-emoji"
	flagIconURL       = "icon-url"
	flagUserName      = "username"
	flagLinkNames     = "link-names"
	flagCustomMessage = "custom-message"
	flagBacklog       = "backlog"
	flagBacklogFile   = "backlog-file"
	flagPretty        = "pretty"
	flagOutput        = "output"
)

type Config struct {
	ConfigPath  string
	Message     string
	Backlog     []string
	BacklogFile string
	Pretty      bool
	Output      string

	// Slack holds display options given by flags. Only fields listed in
	// Overrides replace values from the config file.
	Slack     model.SlackConfig
	Overrides map[string]bool
}

func NewConfig() *Config {
	return &Config{
		Overrides: map[string]bool{},
	}
}

// NewConfigFromCommand reads flag values from cmd
func NewConfigFromCommand(cmd *cli.Command) *Config {
	config := NewConfig()
	config.ConfigPath = cmd.String(flagConfig)
	config.Message = cmd.String(flagMessage)
	config.Backlog = cmd.StringSlice(flagBacklog)
	config.BacklogFile = cmd.String(flagBacklogFile)
	config.Pretty = cmd.Bool(flagPretty)
	config.Output = cmd.String(flagOutput)

	config.Slack = model.SlackConfig{
		Channel:       cmd.String(flagChannel),
		Color:         cmd.String(flagColor),
		IconEmoji:     cmd.String(flagIconEmoji),
		IconURL:       cmd.String(flagIconURL),
		UserName:      cmd.String(flagUserName),
		LinkNames:     cmd.Bool(flagLinkNames),
		CustomMessage: cmd.String(flagCustomMessage),
	}

	for _, name := range []string{
		flagChannel, flagColor, flagIconEmoji, flagIconURL,
		flagUserName, flagLinkNames, flagCustomMessage,
	} {
		if cmd.IsSet(name) {
			config.Overrides[name] = true
		}
	}

	return config
}

// MergeSlackConfig applies flag overrides on top of base
func (c *Config) MergeSlackConfig(base model.SlackConfig) model.SlackConfig {
	merged := base
	if c.Overrides[flagChannel] {
		merged.Channel = c.Slack.Channel
	}
	if c.Overrides[flagColor] {
		merged.Color = c.Slack.Color
	}
	if c.Overrides[flagIconEmoji] {
		merged.IconEmoji = c.Slack.IconEmoji
	}
	if c.Overrides[flagIconURL] {
		merged.IconURL = c.Slack.IconURL
	}
	if c.Overrides[flagUserName] {
		merged.UserName = c.Slack.UserName
	}
	if c.Overrides[flagLinkNames] {
		merged.LinkNames = c.Slack.LinkNames
	}
	if c.Overrides[flagCustomMessage] {
		merged.CustomMessage = c.Slack.CustomMessage
	}
	return merged
}

func DefineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "Path to config file (default: ./.slackmsg.yml, then ~/.config/slackmsg/config.yml)",
			Local:   true,
		},
		&cli.StringFlag{
			Name:    flagMessage,
			Aliases: []string{"m"},
			Usage:   "Primary message text (required)",
			Local:   true,
		},
		&cli.StringFlag{
			Name:  flagChannel,
			Usage: "Destination channel",
			Local: true,
		},
		&cli.StringFlag{
			Name:  flagColor,
			Usage: "Attachment color: good, warning, danger, or #hex",
			Local: true,
		},
		&cli.StringFlag{
			Name:  flagIconEmoji,
			Usage: "Bot icon emoji, with or without colons",
			Local: true,
		},
		&cli.StringFlag{
			Name:  flagIconURL,
			Usage: "Bot icon image URL",
			Local: true,
		},
		&cli.StringFlag{
			Name:  flagUserName,
			Usage: "Bot user name",
			Local: true,
		},
		&cli.BoolFlag{
			Name:  flagLinkNames,
			Usage: "Link @user and #channel names",
			Local: true,
		},
		&cli.StringFlag{
			Name:  flagCustomMessage,
			Usage: "Custom message attached with a 'Custom Message:' pretext",
			Local: true,
		},
		&cli.StringSliceFlag{
			Name:  flagBacklog,
			Usage: "Backlog item message (repeatable)",
		},
		&cli.StringFlag{
			Name:  flagBacklogFile,
			Usage: "Read backlog item messages from file, one per line ('-' for stdin)",
			Local: true,
		},
		&cli.BoolFlag{
			Name:  flagPretty,
			Usage: "Indent JSON output",
			Local: true,
		},
		&cli.StringFlag{
			Name:    flagOutput,
			Aliases: []string{"o"},
			Usage:   "Write payload to file instead of stdout",
			Local:   true,
		},
	}
}
