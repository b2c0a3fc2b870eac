package cmds

import (
	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
	"github.com/rprtr258/todayiwill/internal/export"
)

func ExportCmd(env *Env) *cli.Command {
	var date dateValue

	return &cli.Command{
		Name:  "export",
		Usage: "write a day's appointments to stdout as yaml or ics",
		Flags: []cli.Flag{
			dateFlag(&date, "day to export, dd/mm/yyyy (default: today)", false),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "yaml or ics",
				Value:   "yaml",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			now := env.now()
			day := date.or(now)

			list, err := env.openDay(day, appointment.Min)
			if err != nil {
				return fail(err)
			}

			switch format := ctx.String("format"); format {
			case "yaml":
				err = export.YAML(ctx.App.Writer, day, list.Items())
			case "ics":
				err = export.ICS(ctx.App.Writer, day, list.Items(), now)
			default:
				return usage("error: unknown format %q, expected yaml or ics", format)
			}
			if err != nil {
				return fail(err)
			}
			return nil
		},
	}
}
