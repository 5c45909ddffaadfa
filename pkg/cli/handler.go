package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackmsg/pkg/domain"
	"github.com/m-mizutani/slackmsg/pkg/domain/interfaces"
	"github.com/m-mizutani/slackmsg/pkg/domain/model"
	"github.com/m-mizutani/slackmsg/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func newLogger(cmd *cli.Command) *slog.Logger {
	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func RunBuild(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd)
	ctx = ctxlog.With(ctx, logger)

	config := NewConfigFromCommand(cmd)
	if config.Message == "" {
		return goerr.Wrap(domain.ErrInvalidInput, "--message is required")
	}

	slackConfig, err := loadSlackConfig(ctx, usecase.NewConfigService(), config.ConfigPath)
	if err != nil {
		return err
	}

	backlog, err := collectBacklog(config, cmd.Root().Reader)
	if err != nil {
		return err
	}

	msg := config.MergeSlackConfig(*slackConfig).ToSlackMessage(config.Message, backlog)
	payload, err := usecase.NewPayloadBuilder().Build(ctx, msg)
	if err != nil {
		return err
	}

	if config.Pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(payload), "", "  "); err != nil {
			return goerr.Wrap(err, "failed to indent payload")
		}
		payload = buf.String()
	}

	if config.Output == "" {
		_, err := fmt.Fprintln(cmd.Root().Writer, payload)
		return err
	}

	if err := os.WriteFile(config.Output, []byte(payload+"\n"), 0600); err != nil {
		return goerr.Wrap(err, "failed to write payload", goerr.V("path", config.Output))
	}

	logger.Info("Payload written",
		slog.String("path", config.Output),
		slog.String("channel", msg.Channel),
	)
	color.New(color.FgGreen).Fprintf(cmd.Root().ErrWriter, "✅ Payload for %s written to %s (%d bytes)\n",
		displayChannel(msg.Channel), config.Output, len(payload)+1)

	return nil
}

// loadSlackConfig loads display options from path. Without a path, the
// current directory is searched first and the default path is used as fallback.
func loadSlackConfig(ctx context.Context, service interfaces.ConfigService, path string) (*model.SlackConfig, error) {
	logger := ctxlog.From(ctx)

	if path != "" {
		cfg, err := service.Load(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded config", slog.String("path", path))
		return &cfg.Slack, nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return nil, domain.ErrConfiguration.Wrap(err)
	}

	cfg, found, err := service.LoadFromDirectory(currentDir)
	if err != nil {
		return nil, err
	}
	if found != "" {
		logger.Debug("Loaded config", slog.String("path", found))
		return &cfg.Slack, nil
	}

	cfg, err = service.LoadDefault()
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded default config", slog.String("path", service.GetDefaultPath()))
	return &cfg.Slack, nil
}

// collectBacklog returns --backlog values followed by the lines of --backlog-file
func collectBacklog(config *Config, stdin io.Reader) ([]string, error) {
	backlog := append([]string{}, config.Backlog...)
	if config.BacklogFile == "" {
		return backlog, nil
	}

	r := stdin
	if config.BacklogFile != "-" {
		f, err := os.Open(config.BacklogFile) // #nosec G304 - path is given by the user
		if err != nil {
			return nil, goerr.Wrap(err, "failed to open backlog file", goerr.V("path", config.BacklogFile))
		}
		defer f.Close()
		r = f
	}

	items, err := usecase.ReadBacklog(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read backlog file", goerr.V("path", config.BacklogFile))
	}

	return append(backlog, items...), nil
}

func displayChannel(channel string) string {
	if channel == "" {
		return "(default channel)"
	}
	return channel
}
