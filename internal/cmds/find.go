package cmds

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
	"github.com/rprtr258/todayiwill/internal/config"
)

func FindCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:         "find",
		Usage:        "search appointment descriptions of every day",
		ArgsUsage:    "QUERY",
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			args := ctx.Args().Slice()
			if len(args) != 1 {
				return usage("error: exactly one search query expected")
			}

			query := strings.ToLower(args[0])

			days, err := env.Config.Days().Days()
			if err != nil {
				return fail(err)
			}

			found := 0
			for _, day := range days {
				list, err := env.openDay(day, appointment.Min)
				if err != nil {
					return fail(err)
				}

				matches := lo.Filter(list.Items(), func(item appointment.Appointment, _ int) bool {
					return strings.Contains(strings.ToLower(item.Description), query)
				})
				for _, item := range matches {
					fmt.Fprintf(ctx.App.Writer, "%s %s\n", config.FormatDate(day), item.Display(appointment.Min))
				}
				found += len(matches)
			}

			if found == 0 {
				fmt.Fprintln(ctx.App.Writer, "No appointments found.")
			}
			return nil
		},
	}
}
