package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/domain/model/message"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
	"github.com/m-mizutani/komainu/pkg/service/format"
	"github.com/m-mizutani/komainu/pkg/utils/async"
)

// RenderMessage verifies the session through the guard (when one is
// configured) and converts the message content into a block tree. The
// render is appended to the history log asynchronously; history failures
// never fail the render.
func (uc *UseCases) RenderMessage(ctx context.Context, msg *message.Message) (*message.Rendered, error) {
	if msg == nil {
		return nil, goerr.Wrap(apperr.ErrInvalidMessage, "message is nil")
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	if uc.guard != nil {
		if err := uc.guard.EnsureAuth(ctx, uc.guardOpts...); err != nil {
			return nil, err
		}
	}

	rendered := &message.Rendered{
		Message:    *msg,
		Blocks:     format.Format(msg.Content),
		RenderedAt: time.Now(),
	}

	if uc.renderLog != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			if err := uc.renderLog.PutRender(ctx, rendered); err != nil {
				return goerr.Wrap(err, "failed to record render history",
					goerr.V("message_id", msg.ID),
				)
			}
			return nil
		})
	}

	return rendered, nil
}

// FormatContent converts raw content into a block tree without consulting
// the guard or recording history
func (uc *UseCases) FormatContent(content string) []message.Block {
	return format.Format(content)
}

// ListRenders returns the most recent renders, newest first
func (uc *UseCases) ListRenders(ctx context.Context, limit int) ([]*message.Rendered, error) {
	if uc.renderLog == nil {
		return nil, nil
	}
	renders, err := uc.renderLog.ListRenders(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list render history", goerr.V("limit", limit))
	}
	return renders, nil
}
