package cmds

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/ini.v1"
)

func ConfigCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:         "config",
		Usage:        "print the resolved configuration",
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			file := ini.Empty()
			if err := ini.ReflectFrom(file, env.Config); err != nil {
				return fail(err)
			}

			if src := env.Config.Source(); src != "" {
				fmt.Fprintf(ctx.App.Writer, "; loaded from %s\n", src)
			}

			if _, err := file.WriteTo(ctx.App.Writer); err != nil {
				return fail(err)
			}
			return nil
		},
	}
}
