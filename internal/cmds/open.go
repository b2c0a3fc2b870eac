package cmds

import (
	"errors"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"
)

func OpenCmd(env *Env) *cli.Command {
	var date dateValue

	return &cli.Command{
		Name:         "open",
		Usage:        "open a day's appointments file with the configured opener",
		Flags:        []cli.Flag{dateFlag(&date, "day to open, dd/mm/yyyy (default: today)", false)},
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			path := env.Config.Days().PathFor(date.or(env.now()))

			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				return fail(errors.New("there were no appointments added in this day"))
			} else if err != nil {
				return fail(err)
			}

			if err := Open(ctx.Context, env.Config.Opener, path); err != nil {
				return fail(err)
			}
			return nil
		},
	}
}
