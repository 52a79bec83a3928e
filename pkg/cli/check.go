package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/adapters/browser"
	"github.com/m-mizutani/komainu/pkg/cli/config"
	"github.com/m-mizutani/komainu/pkg/service/guard"
	"github.com/urfave/cli/v3"
)

func cmdCheck() *cli.Command {
	var (
		sdkCfg     config.SDK
		authCfg    config.Auth
		currentURL string
		configPath string
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "return-to",
			Sources:     cli.EnvVars("KOMAINU_RETURN_TO"),
			Usage:       "Page address appended (URL-encoded) to the login URL",
			Destination: &currentURL,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Sources:     cli.EnvVars("KOMAINU_CONFIG"),
			Usage:       "Optional YAML config file; its values override flags",
			Destination: &configPath,
		},
	}
	flags = append(flags, sdkCfg.Flags()...)
	flags = append(flags, authCfg.Flags()...)

	return &cli.Command{
		Name:  "check",
		Usage: "Verify the session against the configured SDK, opening the login page if needed",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := ctxlog.From(ctx)

			if configPath != "" {
				fileCfg, err := config.LoadServerFile(configPath)
				if err != nil {
					return err
				}
				authCfg.ApplyFile(fileCfg)
				logger.Info("loaded config file", "path", configPath)
			}

			logger.Info("checking session", "sdk", sdkCfg, "auth", authCfg)

			sdk, err := sdkCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure SDK client")
			}

			g := guard.New(sdk, guard.WithWindowOpener(browser.NewOpener()))

			opts := append(authCfg.GuardOptions(), guard.WithCurrentURL(currentURL))
			if err := g.EnsureAuth(ctx, opts...); err != nil {
				return err
			}

			logger.Info("session is authenticated")
			return nil
		},
	}
}
