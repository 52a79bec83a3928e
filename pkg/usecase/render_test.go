package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/komainu/pkg/adapters/memory"
	"github.com/m-mizutani/komainu/pkg/domain/model/auth"
	"github.com/m-mizutani/komainu/pkg/domain/model/message"
	"github.com/m-mizutani/komainu/pkg/domain/types/apperr"
	dbmemory "github.com/m-mizutani/komainu/pkg/repository/database/memory"
	"github.com/m-mizutani/komainu/pkg/service/guard"
	"github.com/m-mizutani/komainu/pkg/usecase"
	"github.com/m-mizutani/komainu/pkg/utils/async"
)

func TestRenderMessage(t *testing.T) {
	ctx := async.WithSyncMode(context.Background())

	t.Run("renders and records history", func(t *testing.T) {
		repo := dbmemory.NewRenderLogRepository()
		uc := usecase.New(usecase.WithRenderLog(repo))

		msg := message.New(ctx, message.RoleAssistant, "hello **world**")
		rendered, err := uc.RenderMessage(ctx, msg)
		gt.NoError(t, err)
		gt.Equal(t, rendered.ID, msg.ID)
		gt.Equal(t, len(rendered.Blocks), 1)
		gt.Equal(t, rendered.Blocks[0].Type, message.BlockParagraph)

		renders, err := uc.ListRenders(ctx, 0)
		gt.NoError(t, err)
		gt.Equal(t, len(renders), 1)
		gt.Equal(t, renders[0].ID, msg.ID)
	})

	t.Run("guard failure blocks the render", func(t *testing.T) {
		sdk := memory.NewSDKClient()
		sdk.SetError(goerr.New("session expired"))
		g := guard.New(sdk)

		repo := dbmemory.NewRenderLogRepository()
		uc := usecase.New(
			usecase.WithGuard(g, guard.WithPopup(false)),
			usecase.WithRenderLog(repo),
		)

		msg := message.New(ctx, message.RoleUser, "hello")
		_, err := uc.RenderMessage(ctx, msg)
		gt.Error(t, err)
		gt.Equal(t, apperr.KindOf(err), apperr.KindAuthFailed)

		// Nothing recorded for a refused render
		renders, listErr := uc.ListRenders(ctx, 0)
		gt.NoError(t, listErr)
		gt.Equal(t, len(renders), 0)
	})

	t.Run("valid session renders through the guard", func(t *testing.T) {
		sdk := memory.NewSDKClient()
		sdk.SetIdentity(&auth.Identity{UserName: "mizutani"})
		g := guard.New(sdk)

		uc := usecase.New(usecase.WithGuard(g))
		rendered, err := uc.RenderMessage(ctx, message.New(ctx, message.RoleUser, "ok"))
		gt.NoError(t, err)
		gt.Equal(t, rendered.Blocks[0].Spans[0].Text, "ok")
	})

	t.Run("nil message is rejected", func(t *testing.T) {
		uc := usecase.New()
		_, err := uc.RenderMessage(ctx, nil)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, apperr.ErrTagValidation))
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		uc := usecase.New()
		msg := message.New(ctx, message.Role("robot"), "hello")
		_, err := uc.RenderMessage(ctx, msg)
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, apperr.ErrTagValidation))
	})
}

func TestListRenders(t *testing.T) {
	ctx := async.WithSyncMode(context.Background())

	t.Run("without repository returns empty", func(t *testing.T) {
		uc := usecase.New()
		renders, err := uc.ListRenders(ctx, 10)
		gt.NoError(t, err)
		gt.Equal(t, len(renders), 0)
	})

	t.Run("limit applies newest first", func(t *testing.T) {
		uc := usecase.New(usecase.WithRenderLog(dbmemory.NewRenderLogRepository()))
		var last *message.Rendered
		for _, content := range []string{"a", "b", "c"} {
			rendered, err := uc.RenderMessage(ctx, message.New(ctx, message.RoleAssistant, content))
			gt.NoError(t, err)
			last = rendered
		}

		renders, err := uc.ListRenders(ctx, 2)
		gt.NoError(t, err)
		gt.Equal(t, len(renders), 2)
		gt.Equal(t, renders[0].ID, last.ID)
	})
}
