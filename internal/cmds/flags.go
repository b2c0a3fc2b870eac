package cmds

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
	"github.com/rprtr258/todayiwill/internal/config"
)

// timeValue is a cli.Generic holding an "HH:MM" flag
type timeValue struct {
	t   appointment.Time
	set bool
}

var _ cli.Generic = (*timeValue)(nil)

func (v *timeValue) Set(s string) error {
	t, err := appointment.ParseTime(s)
	if err != nil {
		return err
	}

	v.t, v.set = t, true
	return nil
}

func (v *timeValue) String() string {
	if v == nil || !v.set {
		return ""
	}
	return v.t.String()
}

// or returns the flag value, or the time of day of now when not given
func (v *timeValue) or(now time.Time) appointment.Time {
	if v.set {
		return v.t
	}
	return appointment.FromClock(now)
}

// dateValue is a cli.Generic holding a "dd/mm/yyyy" flag
type dateValue struct {
	day time.Time
	set bool
}

var _ cli.Generic = (*dateValue)(nil)

func (v *dateValue) Set(s string) error {
	day, err := config.ParseDate(s)
	if err != nil {
		return err
	}

	v.day, v.set = day, true
	return nil
}

func (v *dateValue) String() string {
	if v == nil || !v.set {
		return ""
	}
	return config.FormatDate(v.day)
}

func (v *dateValue) or(now time.Time) time.Time {
	if v.set {
		return v.day
	}
	return now
}

func currentTimeFlag(v *timeValue) cli.Flag {
	return &cli.GenericFlag{
		Name:    "current-time",
		Aliases: []string{"c"},
		Usage:   "reference time of day, HH:MM (default: now)",
		Value:   v,
	}
}

func dateFlag(v *dateValue, usage string, required bool) cli.Flag {
	return &cli.GenericFlag{
		Name:     "date",
		Usage:    usage,
		Value:    v,
		Required: required,
	}
}
