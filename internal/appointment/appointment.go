// Package appointment holds the appointment value types and the per-day
// appointment list that keeps a sorted in-memory copy in sync with its file.
package appointment

import (
	"fmt"
	"strings"
)

const timeFieldLen = len("HH:MM")

// Appointment is one line of a day file: "HH:MM description"
type Appointment struct {
	Time        Time   `yaml:"time"`
	Description string `yaml:"description"`
}

// DisplayText is a rendered appointment. Struck marks past appointments,
// it is up to the printer how (and whether) to show it.
type DisplayText struct {
	Text   string
	Struck bool
}

func (d DisplayText) String() string {
	return d.Text
}

func New(description string, t Time) Appointment {
	return Appointment{Time: t, Description: description}
}

// Parse reads "HH:MM description". The description may be empty but the
// separating space is required.
func Parse(line string) (Appointment, error) {
	if len(line) <= timeFieldLen || line[timeFieldLen] != ' ' {
		return Appointment{}, ErrMalformedTime
	}

	t, err := ParseTime(line[:timeFieldLen])
	if err != nil {
		return Appointment{}, err
	}

	return New(line[timeFieldLen+1:], t), nil
}

// CheckDescription rejects descriptions that would not fit on one line of
// a day file.
func CheckDescription(description string) error {
	if strings.ContainsAny(description, "\r\n") {
		return ErrMultiline
	}
	return nil
}

func (a Appointment) IsAtOrBefore(ref Time) bool {
	return a.Time.IsAtOrBefore(ref)
}

func (a Appointment) String() string {
	return fmt.Sprintf("%s %s", a.Time, a.Description)
}

func (a Appointment) Display(ref Time) DisplayText {
	return DisplayText{
		Text:   fmt.Sprintf("[%s] %s", a.Time, a.Description),
		Struck: a.IsAtOrBefore(ref),
	}
}
