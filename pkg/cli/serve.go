package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/cli/config"
	server "github.com/m-mizutani/komainu/pkg/controller/http"
	"github.com/m-mizutani/komainu/pkg/repository/database/memory"
	"github.com/m-mizutani/komainu/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr       string
		configPath string
		authCfg    config.Auth
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Sources:     cli.EnvVars("KOMAINU_ADDR"),
			Usage:       "Listen address (default: 127.0.0.1:8080)",
			Value:       "127.0.0.1:8080",
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Sources:     cli.EnvVars("KOMAINU_CONFIG"),
			Usage:       "Optional YAML config file; its values override flags",
			Destination: &configPath,
		},
	}
	flags = append(flags, authCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the message rendering server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)

			if configPath != "" {
				fileCfg, err := config.LoadServerFile(configPath)
				if err != nil {
					return err
				}
				if fileCfg.Addr != "" {
					addr = fileCfg.Addr
				}
				authCfg.ApplyFile(fileCfg)
				logger.Info("loaded config file", "path", configPath)
			}

			logger.Info("starting server",
				"addr", addr,
				"auth", authCfg,
			)

			verifier, err := authCfg.Verifier()
			if err != nil {
				return goerr.Wrap(err, "failed to configure session verifier")
			}

			uc := usecase.New(
				usecase.WithRenderLog(memory.NewRenderLogRepository()),
			)

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(server.WithMessageUseCases(uc), server.WithAuthVerifier(verifier)),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				ctxlog.From(ctx).Info("server started", "addr", addr)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				ctxlog.From(ctx).Info("shutting down server...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		},
	}
}
