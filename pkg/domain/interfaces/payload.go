package interfaces

import (
	"context"

	"github.com/m-mizutani/slackmsg/pkg/domain/model"
)

type PayloadBuilder interface {
	Build(ctx context.Context, msg *model.SlackMessage) (string, error)
}
