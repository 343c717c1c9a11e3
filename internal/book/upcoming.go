package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

const hoursPerDay = 24

// Upcoming describes a birthday falling inside the report window.
type Upcoming struct {
	Name Name

	// Birthday is the stored date of birth.
	Birthday Birthday

	// Occurrence is the next anniversary on or after today.
	Occurrence time.Time

	// Congratulate is Occurrence moved off the weekend onto the following Monday.
	Congratulate time.Time

	// DaysAway is the distance from today to Occurrence; today is 0.
	DaysAway int
}

// UpcomingBirthdays returns the contacts whose next birthday falls within
// UpcomingWindowDays of today, inclusive, in insertion order.
func (b *AddressBook) UpcomingBirthdays(today time.Time) []Upcoming {
	var out []Upcoming
	for _, r := range b.Records() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}
		next, days := NextOccurrence(today, bday.Date())
		if days < 0 || days > config.UpcomingWindowDays {
			continue
		}
		out = append(out, Upcoming{
			Name:         r.Name(),
			Birthday:     bday,
			Occurrence:   next,
			Congratulate: ShiftWeekend(next),
			DaysAway:     days,
		})
	}
	return out
}

// UpcomingReport renders UpcomingBirthdays as "Name: <name> - DR: <date>" lines.
func (b *AddressBook) UpcomingReport(today time.Time) string {
	upcoming := b.UpcomingBirthdays(today)
	lines := make([]string, len(upcoming))
	for i, u := range upcoming {
		lines[i] = fmt.Sprintf(config.FormatUpcomingLine, u.Name, u.Congratulate.Format(config.DateFormatBirthday))
	}
	return strings.Join(lines, "\n")
}

// NextOccurrence returns the first anniversary of birthDate on or after the
// calendar day of now, and how many days away it is.
// Dates are compared in UTC so DST transitions cannot skew the day count.
// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
func NextOccurrence(now, birthDate time.Time) (time.Time, int) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	candidate := time.Date(today.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	}

	return candidate, int(candidate.Sub(today).Hours()) / hoursPerDay
}

// ShiftWeekend moves a Saturday or Sunday to the following Monday.
func ShiftWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDate(0, 0, config.SaturdayShiftDays)
	case time.Sunday:
		return d.AddDate(0, 0, config.SundayShiftDays)
	default:
		return d
	}
}
