package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/komainu/pkg/service/format"
	"github.com/m-mizutani/komainu/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdFormat() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Aliases:   []string{"f"},
		Usage:     "Format model output text into a block tree (reads a file or stdin)",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var raw []byte
			var err error

			if path := cmd.Args().First(); path != "" {
				raw, err = os.ReadFile(path)
				if err != nil {
					return goerr.Wrap(err, "failed to read input file", goerr.V("path", path))
				}
			} else {
				raw, err = io.ReadAll(os.Stdin)
				if err != nil {
					return goerr.Wrap(err, "failed to read stdin")
				}
			}

			blocks := format.Format(string(raw))
			out, err := json.MarshalIndent(blocks, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode block tree")
			}

			safe.Write(ctx, os.Stdout, append(out, '\n'))
			return nil
		},
	}
}
