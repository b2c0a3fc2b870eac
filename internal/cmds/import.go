package cmds

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/mdimport"
)

func ImportCmd(env *Env) *cli.Command {
	var current timeValue

	return &cli.Command{
		Name:         "import",
		Usage:        `add the "HH:MM description" list items of a markdown file to today`,
		ArgsUsage:    "FILE.md",
		Flags:        []cli.Flag{currentTimeFlag(&current)},
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			if ctx.NArg() != 1 {
				return usage("error: exactly one markdown file expected")
			}

			source, err := os.ReadFile(ctx.Args().First())
			if err != nil {
				return fail(err)
			}

			items, rejected, err := mdimport.Parse(source)
			if err != nil {
				return fail(err)
			}
			for _, r := range rejected {
				fmt.Fprintf(ctx.App.ErrWriter, "skipped %q: %v\n", r.Text, r.Err)
			}

			ref := current.or(env.now())
			list, err := env.openToday(ref)
			if err != nil {
				return fail(err)
			}

			added := 0
			for _, item := range items {
				if item.IsAtOrBefore(ref) {
					fmt.Fprintf(ctx.App.ErrWriter, "skipped %q: %v\n", item.String(), errPastTime)
					continue
				}

				if err := list.Add(item); err != nil {
					return fail(err)
				}
				added++
			}

			fmt.Fprintf(ctx.App.Writer, "%d appointments imported.\n", added)
			return nil
		},
	}
}
