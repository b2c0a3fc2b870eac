package cmds

import (
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
	"github.com/rprtr258/todayiwill/internal/rofi"
)

// RofiCmd is meant to be run as a rofi script mode:
//
//	rofi -show todayiwill -modes "todayiwill:todayiwill rofi"
//
// Choosing an appointment removes it, typing "HH:MM description" adds one.
func RofiCmd(env *Env) *cli.Command {
	return &cli.Command{
		Name:         "rofi",
		Usage:        "rofi script mode for today's appointments",
		OnUsageError: onUsageError,
		Action: func(ctx *cli.Context) error {
			w := ctx.App.Writer
			ref := appointment.FromClock(env.now())

			list, err := env.openToday(ref)
			if err != nil {
				return fail(err)
			}

			var selectErr error
			if !rofi.IsFirstOpen() && ctx.NArg() > 0 {
				selectErr = rofiSelect(list, ref, strings.Join(ctx.Args().Slice(), " "))
			}

			upcoming := list.Filter(appointment.ByReferenceTime())

			rofi.SetPrompt(w, "today")
			switch {
			case selectErr != nil:
				rofi.SetMessage(w, sentence(selectErr.Error()))
			case upcoming.IsEmpty():
				rofi.SetMessage(w, "No upcoming appointments.")
			}
			for _, item := range upcoming.Items() {
				rofi.YieldItemWithInfo(w, item.Display(ref).String(), item.Time.String())
			}
			return nil
		},
	}
}

func rofiSelect(list *appointment.List, ref appointment.Time, entry string) error {
	if info := rofi.GetInfo(); info != "" && !rofi.IsCustomEntry() {
		t, err := appointment.ParseTime(info)
		if err != nil {
			return err
		}
		return list.Remove(t)
	}

	item, err := appointment.Parse(entry)
	if err != nil {
		return err
	}
	if item.IsAtOrBefore(ref) {
		return errPastTime
	}
	return list.Add(item)
}
