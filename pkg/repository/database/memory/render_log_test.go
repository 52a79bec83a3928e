package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/komainu/pkg/domain/model/message"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
	"github.com/m-mizutani/komainu/pkg/repository/database/memory"
	"github.com/m-mizutani/komainu/pkg/service/format"
)

func newRendered(ctx context.Context, content string) *message.Rendered {
	msg := message.New(ctx, message.RoleAssistant, content)
	return &message.Rendered{
		Message:    *msg,
		Blocks:     format.Format(content),
		RenderedAt: time.Now(),
	}
}

func TestRenderLogRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("put and list newest first", func(t *testing.T) {
		repo := memory.NewRenderLogRepository()
		first := newRendered(ctx, "first")
		second := newRendered(ctx, "second")
		third := newRendered(ctx, "third")
		gt.NoError(t, repo.PutRender(ctx, first))
		gt.NoError(t, repo.PutRender(ctx, second))
		gt.NoError(t, repo.PutRender(ctx, third))

		renders, err := repo.ListRenders(ctx, 0)
		gt.NoError(t, err)
		gt.Equal(t, len(renders), 3)
		gt.Equal(t, renders[0].ID, third.ID)
		gt.Equal(t, renders[1].ID, second.ID)
		gt.Equal(t, renders[2].ID, first.ID)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		repo := memory.NewRenderLogRepository()
		for i := 0; i < 5; i++ {
			gt.NoError(t, repo.PutRender(ctx, newRendered(ctx, "msg")))
		}

		renders, err := repo.ListRenders(ctx, 2)
		gt.NoError(t, err)
		gt.Equal(t, len(renders), 2)
	})

	t.Run("empty repository", func(t *testing.T) {
		repo := memory.NewRenderLogRepository()
		renders, err := repo.ListRenders(ctx, 10)
		gt.NoError(t, err)
		gt.Equal(t, len(renders), 0)
	})

	t.Run("nil render is rejected", func(t *testing.T) {
		repo := memory.NewRenderLogRepository()
		gt.Error(t, repo.PutRender(ctx, nil))
	})

	t.Run("invalid message ID is rejected", func(t *testing.T) {
		repo := memory.NewRenderLogRepository()
		rendered := newRendered(ctx, "msg")
		rendered.ID = "not-a-uuid"

		err := repo.PutRender(ctx, rendered)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, apperr.ErrTagValidation))
	})
}
