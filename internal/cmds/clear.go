package cmds

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
)

func ClearCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:         "clear",
		Usage:        "remove every appointment of today",
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			list, err := env.openToday(appointment.FromClock(env.now()))
			if err != nil {
				return fail(err)
			}

			if err := list.Clear(); err != nil {
				return fail(fmt.Errorf("an error occurred when clearing the appointments: %w", err))
			}

			fmt.Fprintln(ctx.App.Writer, "Appointments cleared successfully.")
			return nil
		},
	}
}
