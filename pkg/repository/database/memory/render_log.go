package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/domain/interfaces"
	"github.com/m-mizutani/komainu/pkg/domain/model/message"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
)

type renderLogRepository struct {
	mu      sync.RWMutex
	renders []*message.Rendered
}

// NewRenderLogRepository creates a new in-memory render log repository
func NewRenderLogRepository() interfaces.RenderLogRepository {
	return &renderLogRepository{}
}

func (r *renderLogRepository) PutRender(ctx context.Context, rendered *message.Rendered) error {
	if rendered == nil {
		return goerr.New("rendered message is nil")
	}
	if !rendered.ID.IsValid() {
		return goerr.Wrap(apperr.ErrInvalidMessage, "invalid rendered message ID",
			goerr.V("message_id", rendered.ID),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.renders = append(r.renders, rendered)
	return nil
}

func (r *renderLogRepository) ListRenders(ctx context.Context, limit int) ([]*message.Rendered, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.renders) {
		limit = len(r.renders)
	}

	// Newest first
	out := make([]*message.Rendered, 0, limit)
	for i := len(r.renders) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.renders[i])
	}
	return out, nil
}
