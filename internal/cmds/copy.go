package cmds

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
	"github.com/rprtr258/todayiwill/internal/config"
)

func CopyCmd(env *Env) *cli.Command {
	var from dateValue

	return &cli.Command{
		Name:  "copy",
		Usage: "copy the appointments of another day into today",
		Flags: []cli.Flag{
			&cli.GenericFlag{
				Name:     "from",
				Usage:    "day to copy from, dd/mm/yyyy",
				Value:    &from,
				Required: true,
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			list, err := env.openToday(appointment.FromClock(env.now()))
			if err != nil {
				return fail(err)
			}

			err = list.CopyFrom(env.Config.Days().PathFor(from.day))
			switch {
			case errors.Is(err, appointment.ErrNotEmpty):
				return fail(errors.New("there are appointments already added for today"))
			case errors.Is(err, appointment.ErrSourceMissing):
				return fail(fmt.Errorf("there were no appointments added in %s", config.FormatDate(from.day)))
			case err != nil:
				return fail(err)
			}

			fmt.Fprintf(ctx.App.Writer, "%d appointments copied successfully.\n", list.Len())
			return nil
		},
	}
}
