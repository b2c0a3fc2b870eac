package cmds

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/release"
)

func UpdateCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:         "update",
		Usage:        "check whether a newer release is available",
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			var opts []release.Option
			if env.GitHubAPI != "" {
				opts = append(opts, release.WithBaseURL(env.GitHubAPI))
			}

			checker, err := release.NewChecker(env.httpClient(), env.Config.ReleaseRepo, opts...)
			if err != nil {
				return fail(err)
			}

			res, err := checker.Check(ctx.Context, env.Version)
			if err != nil {
				return fail(err)
			}

			fmt.Fprintf(ctx.App.Writer, "latest release: %s; current version: %s\n", res.Latest, res.Current)
			if res.UpdateAvailable {
				fmt.Fprintln(ctx.App.Writer, "A newer version is available.")
			}
			return nil
		},
	}
}
