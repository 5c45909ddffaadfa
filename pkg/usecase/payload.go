package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/slackmsg/pkg/domain/interfaces"
	"github.com/m-mizutani/slackmsg/pkg/domain/model"
)

type payloadBuilder struct{}

// NewPayloadBuilder creates a new PayloadBuilder instance
func NewPayloadBuilder() interfaces.PayloadBuilder {
	return &payloadBuilder{}
}

// Build serializes msg into a Slack webhook payload
func (b *payloadBuilder) Build(ctx context.Context, msg *model.SlackMessage) (string, error) {
	logger := ctxlog.From(ctx)

	if msg == nil {
		return "", goerr.New("slack message is nil")
	}

	payload := msg.Payload()
	s, err := payload.JSON()
	if err != nil {
		logger.Error("Failed to build slack payload",
			slog.String("channel", msg.Channel),
			slog.String("error", err.Error()),
		)
		return "", goerr.Wrap(err, "failed to build slack payload")
	}

	logger.Debug("Built slack payload",
		slog.String("channel", msg.Channel),
		slog.Int("attachments", len(payload.Attachments)),
		slog.String("payload", s),
	)

	return s, nil
}
