package export

import (
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/rprtr258/todayiwill/internal/appointment"
)

const productID = "-//todayiwill//appointments//EN"

// uidNamespace scopes the name-based event UIDs
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/vncsmyrnk/todayiwill"))

// ICS writes one VEVENT per appointment. Appointments have no duration, so
// events start and end at the same instant. UIDs are derived from the day
// and the appointment line, so exporting twice yields the same events.
func ICS(w io.Writer, day time.Time, items []appointment.Appointment, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, item := range items {
		at := item.Time.On(day)

		event := cal.AddEvent(EventUID(day, item))
		event.SetDtStampTime(stamp)
		event.SetStartAt(at)
		event.SetEndAt(at)
		event.SetSummary(item.Description)
	}

	_, err := io.WriteString(w, cal.Serialize())
	return err
}

func EventUID(day time.Time, item appointment.Appointment) string {
	name := day.Format("20060102") + " " + item.String()
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@todayiwill"
}
