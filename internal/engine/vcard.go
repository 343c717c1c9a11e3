package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// nameSeparator replaces whitespace in imported names so every contact stays
// addressable by a single command-line token.
const nameSeparator = "_"

// ImportStats summarizes a vCard import.
type ImportStats struct {
	Cards     int // cards decoded
	Contacts  int // cards merged into the book
	Skipped   int // cards, phones or dates rejected
	Birthdays int // birthdays set
}

// ExportVCard writes one vCard 4.0 per record, in book order.
// It returns the number of cards written.
func ExportVCard(w io.Writer, b *book.AddressBook) (int, error) {
	enc := vcard.NewEncoder(w)
	count := 0

	for _, r := range b.Records() {
		name := r.Name().String()
		card := make(vcard.Card)
		card.SetValue(vcard.FieldFormattedName, name)

		var birthDate time.Time
		if bday, ok := r.Birthday(); ok {
			birthDate = bday.Date()
			card.SetValue(vcard.FieldBirthday, birthDate.Format(config.DateFormatFullBasic))
		}
		card.SetValue(vcard.FieldUID, contactUID(name, birthDate))

		for _, p := range r.Phones() {
			card.AddValue(vcard.FieldTelephone, p.String())
		}

		vcard.ToV4(card)
		if err := enc.Encode(card); err != nil {
			return count, fmt.Errorf("%s %q: %w", config.ErrVCardEncode, name, err)
		}
		count++
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyCount, count,
	)
	return count, nil
}

// ImportVCard merges the cards read from r into b.
// It only fails when r itself cannot be read. Phones are appended to
// existing contacts and birthdays overwrite stored ones. Malformed cards,
// invalid phones and year-less or unparsable birthdays are skipped.
func ImportVCard(r io.Reader, b *book.AddressBook) (ImportStats, error) {
	var stats ImportStats
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	src := &trackingReader{r: r}
	decoder := vcard.NewDecoder(src)
	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if src.err != nil {
			return stats, fmt.Errorf("%s: %w", config.ErrVCardParse, src.err)
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			stats.Skipped++
			continue
		}
		stats.Cards++

		name := cardName(card)
		merged := false

		for _, tel := range card.Values(vcard.FieldTelephone) {
			tel = strings.TrimPrefix(tel, "tel:")
			if err := b.AddContact(name, tel); err != nil {
				log.Warn(config.MsgSkippedPhone, config.LogKeyName, name, config.LogKeyValue, tel)
				stats.Skipped++
				continue
			}
			merged = true
		}

		if raw := card.Value(vcard.FieldBirthday); raw != "" {
			if birthDate, err := parseDate(raw); err != nil {
				log.Debug(config.MsgSkippedDate, config.LogKeyName, name, config.LogKeyValue, raw)
				stats.Skipped++
			} else if err := b.AddBirthday(name, book.BirthdayFromDate(birthDate).String()); err != nil {
				stats.Skipped++
			} else {
				stats.Birthdays++
				merged = true
			}
		}

		if merged {
			stats.Contacts++
		}
	}

	log.Info(config.MsgImportDone,
		config.LogKeyCount, stats.Contacts,
		config.LogKeySkipped, stats.Skipped,
	)
	return stats, nil
}

// cardName picks FN, then the structured N, then a fallback.
func cardName(card vcard.Card) string {
	name := card.PreferredValue(vcard.FieldFormattedName)
	if name == "" {
		if n := card.Name(); n != nil {
			name = strings.Join(strings.Fields(n.GivenName+" "+n.FamilyName), " ")
		}
	}
	if name = strings.Join(strings.Fields(name), nameSeparator); name == "" {
		return config.FallbackName
	}
	return name
}

// parseDate handles the vCard date formats that carry a year.
// Year-less forms such as --MM-DD cannot be stored as a birthday.
func parseDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		time.RFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}

// trackingReader remembers the first read failure so that I/O errors can be
// told apart from malformed cards.
type trackingReader struct {
	r   io.Reader
	err error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && t.err == nil {
		t.err = err
	}
	return n, err
}
