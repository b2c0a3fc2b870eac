package cmds

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
)

func RemoveCmd(env *Env) *cli.Command {
	var at, current timeValue

	return &cli.Command{
		Name:  "remove",
		Usage: "remove an appointment still to come",
		Flags: []cli.Flag{
			&cli.GenericFlag{
				Name:     "time",
				Aliases:  []string{"t"},
				Usage:    "time of the appointment, HH:MM",
				Value:    &at,
				Required: true,
			},
			currentTimeFlag(&current),
		},
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			list, err := env.openToday(current.or(env.now()))
			if err != nil {
				return fail(err)
			}

			if err := list.Remove(at.t); err != nil {
				if errors.Is(err, appointment.ErrAlreadyPast) {
					return fail(fmt.Errorf("appointment at %s already passed and can not be removed", at.t))
				}
				return fail(err)
			}

			fmt.Fprintln(ctx.App.Writer, "Appointment removed successfully.")
			return nil
		},
	}
}
