package interfaces

import (
	"context"

	"github.com/m-mizutani/komainu/pkg/domain/model/message"
)

// RenderLogRepository records rendered messages for later retrieval. It is
// a display history, not a credential store; nothing auth-related is kept
// here.
type RenderLogRepository interface {
	PutRender(ctx context.Context, rendered *message.Rendered) error
	ListRenders(ctx context.Context, limit int) ([]*message.Rendered, error)
}
