package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// Generator renders the address book birthdays as an iCalendar feed.
type Generator struct {
	Clock book.Clock

	// FormatSummary allows the caller to inject localized event titles.
	// age is 0 when the event is the birth itself.
	FormatSummary func(name string, age int) string
}

// GenerateCalendar builds an iCalendar document with one all-day event per
// contact birthday for the previous, current and next year.
// It returns the encoded calendar and the number of events it holds.
func (g *Generator) GenerateCalendar(b *book.AddressBook) ([]byte, int, error) {
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ProdID)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	for _, r := range b.Records() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}
		for _, e := range g.createEvents(r.Name().String(), bday.Date(), now) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	events := len(cal.Children)
	defer func() {
		slog.Info(config.MsgGenSuccess,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyEvents, events,
		)
	}()

	// An empty VCALENDAR is rejected by the encoder; clients expect a valid document.
	if events == 0 {
		return []byte(config.StubVCalendar), 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), events, nil
}

// createEvents generates events for CurrentYear-1, CurrentYear and CurrentYear+1,
// never before the birth year.
func (g *Generator) createEvents(name string, birthDate, now time.Time) []*ical.Event {
	currentYear := now.Year()
	uidBase := contactUID(name, birthDate)

	var events []*ical.Event
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < birthDate.Year() {
			continue
		}
		age := y - birthDate.Year()

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))
		event.Props.SetText(config.PropSummary, g.summary(name, age))

		// time.Date normalizes Feb 29 to Mar 1 in non-leap years.
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC))
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

func (g *Generator) summary(name string, age int) string {
	if g.FormatSummary != nil {
		return g.FormatSummary(name, age)
	}
	if age > 0 {
		return fmt.Sprintf(config.FallbackSummaryAge, name, age)
	}
	return fmt.Sprintf(config.FallbackSummary, name)
}
