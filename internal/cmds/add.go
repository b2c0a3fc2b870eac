package cmds

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
)

var errPastTime = errors.New("given time already passed")

func AddCmd(env *Env) *cli.Command {
	var at, current timeValue

	return &cli.Command{
		Name:  "add",
		Usage: "add an appointment for today",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "appointment description",
			},
			&cli.GenericFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "appointment time, HH:MM",
				Value:   &at,
			},
			currentTimeFlag(&current),
			&cli.BoolFlag{
				Name:  "stdin",
				Usage: `read "HH:MM description" lines from standard input`,
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			var items []appointment.Appointment
			if ctx.Bool("stdin") {
				if ctx.IsSet("description") || ctx.IsSet("time") {
					return usage("error: --stdin can not be used with --description or --time")
				}

				parsed, err := readAppointments(env.stdin())
				if err != nil {
					return usage("error: %v", err)
				}
				items = parsed
			} else {
				missing := lo.Filter([]string{"description", "time"}, func(name string, _ int) bool {
					return !ctx.IsSet(name)
				})
				if len(missing) > 0 {
					return usage("error: the following required arguments were not provided: --%s",
						strings.Join(missing, ", --"))
				}

				items = []appointment.Appointment{appointment.New(ctx.String("description"), at.t)}
			}

			for _, item := range items {
				if err := appointment.CheckDescription(item.Description); err != nil {
					return usage("error: invalid value %q: %v", item.Description, err)
				}
			}

			ref := current.or(env.now())
			if lo.ContainsBy(items, func(item appointment.Appointment) bool { return item.IsAtOrBefore(ref) }) {
				return fail(errPastTime)
			}

			list, err := env.openToday(ref)
			if err != nil {
				return fail(err)
			}

			for _, item := range items {
				if err := list.Add(item); err != nil {
					return fail(err)
				}
			}

			if len(items) == 1 {
				fmt.Fprintln(ctx.App.Writer, "Appointment added successfully.")
			} else {
				fmt.Fprintf(ctx.App.Writer, "%d appointments added successfully.\n", len(items))
			}
			return nil
		},
	}
}

// readAppointments parses every non-blank line of r. One bad line rejects
// the whole input.
func readAppointments(r io.Reader) ([]appointment.Appointment, error) {
	var items []appointment.Appointment

	buf := bufio.NewScanner(r)
	for buf.Scan() {
		line := strings.TrimRight(buf.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		item, err := appointment.Parse(line)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", line, err)
		}

		items = append(items, item)
	}
	if err := buf.Err(); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, errors.New("no appointments read from standard input")
	}
	return items, nil
}
