package interfaces

import (
	"context"

	"github.com/m-mizutani/komainu/pkg/domain/model/message"
)

type MessageUseCases interface {
	RenderMessage(ctx context.Context, msg *message.Message) (*message.Rendered, error)
	ListRenders(ctx context.Context, limit int) ([]*message.Rendered, error)
}
