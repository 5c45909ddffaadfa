package cli

import (
	"github.com/urfave/cli/v3"
)

func NewCommand() *cli.Command {
	flags := append(DefineFlags(),
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
			Value: false,
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose logging",
			Value: false,
		},
	)

	return &cli.Command{
		Name:    "slackmsg",
		Usage:   "Build Slack webhook payloads from alert data",
		Version: "0.1.0",
		Description: `slackmsg builds a chat.postMessage / incoming webhook payload and prints it as JSON.

Display options are read from .slackmsg.yml in the current directory or
~/.config/slackmsg/config.yml, and can be overridden with flags.
Use --backlog (repeatable) or --backlog-file to attach backlog item messages.`,
		Flags:  flags,
		Action: RunBuild,
		Commands: []*cli.Command{
			NewConfigCommand(),
		},

		// backlog items are free text and may contain commas
		DisableSliceFlagSeparator: true,
	}
}
