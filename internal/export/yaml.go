// Package export writes a day of appointments in formats other tools read.
package export

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/rprtr258/todayiwill/internal/appointment"
	"github.com/rprtr258/todayiwill/internal/config"
)

// Day is the YAML document for one day
type Day struct {
	Date         string                    `yaml:"date"`
	Appointments []appointment.Appointment `yaml:"appointments"`
}

func YAML(w io.Writer, day time.Time, items []appointment.Appointment) error {
	doc := Day{
		Date:         config.FormatDate(day),
		Appointments: items,
	}
	if doc.Appointments == nil {
		doc.Appointments = []appointment.Appointment{}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed encoding yaml: %w", err)
	}

	_, err = w.Write(out)
	return err
}
