package cmds

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
)

func ListCmd(env *Env) *cli.Command {
	var current timeValue

	return &cli.Command{
		Name:  "list",
		Usage: "list today's appointments still to come",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "include appointments that already passed",
			},
			currentTimeFlag(&current),
			&cli.IntFlag{
				Name:    "expire-in",
				Aliases: []string{"e"},
				Usage:   "only appointments due in the next `MINUTES`",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			if ctx.Bool("all") && ctx.IsSet("expire-in") {
				return usage("error: --all can not be used with --expire-in")
			}
			if ctx.Int("expire-in") < 0 {
				return usage("error: --expire-in must not be negative")
			}

			list, err := env.openToday(current.or(env.now()))
			if err != nil {
				return fail(err)
			}

			if list.IsEmpty() {
				fmt.Fprintln(ctx.App.Writer, "There are no appointments added for today.")
				return nil
			}

			if !ctx.Bool("all") {
				if ctx.IsSet("expire-in") {
					list.Filter(appointment.ByReferenceAndExpireWindow(ctx.Int("expire-in")))
				} else {
					list.Filter(appointment.ByReferenceTime())
				}

				if list.IsEmpty() {
					fmt.Fprintln(ctx.App.Writer, "No appointments found.")
					return nil
				}
			}

			env.printDisplay(ctx.App.Writer, list.Display())
			return nil
		},
	}
}
