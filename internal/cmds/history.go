package cmds

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
	"github.com/rprtr258/todayiwill/internal/config"
)

func takeWhile[T any](p func(T) bool, xs []T) []T {
	for i, x := range xs {
		if !p(x) {
			return xs[:i]
		}
	}
	return xs
}

func HistoryCmd(env *Env) *cli.Command {
	var date, until dateValue

	return &cli.Command{
		Name:  "history",
		Usage: "show the appointments of a past day, or list the stored days",
		Flags: []cli.Flag{
			dateFlag(&date, "day to show, dd/mm/yyyy", false),
			&cli.GenericFlag{
				Name:  "until",
				Usage: "when listing days, stop at this day, dd/mm/yyyy",
				Value: &until,
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			if date.set {
				return showDay(ctx, env, date.day)
			}

			days, err := env.Config.Days().Days()
			if err != nil {
				return fail(err)
			}

			if until.set {
				last := until.day.AddDate(0, 0, 1)
				days = takeWhile(func(day time.Time) bool { return day.Before(last) }, days)
			}

			if len(days) == 0 {
				fmt.Fprintln(ctx.App.Writer, "There are no appointments stored yet.")
				return nil
			}

			for _, day := range days {
				list, err := env.openDay(day, appointment.Max)
				if err != nil {
					return fail(err)
				}

				fmt.Fprintf(ctx.App.Writer, "%s: %d appointments\n", config.FormatDate(day), list.Len())
			}
			return nil
		},
	}
}

// showDay prints a day's appointments as they were, without marking any
// of them as past
func showDay(ctx *cli.Context, env *Env, day time.Time) error {
	list, err := env.openDay(day, appointment.Min)
	if err != nil {
		return fail(err)
	}

	if list.IsEmpty() {
		fmt.Fprintln(ctx.App.Writer, "There were no appointments added in this day.")
		return nil
	}

	fmt.Fprintln(ctx.App.Writer, list.Render())
	return nil
}
