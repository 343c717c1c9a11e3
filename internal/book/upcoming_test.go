package book_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// bookWithBirthdays builds a book from name/date pairs.
func bookWithBirthdays(t *testing.T, pairs ...string) *book.AddressBook {
	t.Helper()
	b := book.New()
	for i := 0; i < len(pairs); i += 2 {
		require.NoError(t, b.AddBirthday(pairs[i], pairs[i+1]))
	}
	return b
}

func TestUpcomingReport_Window(t *testing.T) {
	// Monday, June 10th 2024.
	today := time.Date(2024, 6, 10, 15, 30, 0, 0, time.Local)

	tests := []struct {
		name     string
		birthday string
		want     string
	}{
		{"Today", "10.06.1990", "Name: X - DR: 10.06.2024"},
		{"Wednesday two days out", "12.06.1990", "Name: X - DR: 12.06.2024"},
		{"Saturday shifts to Monday", "15.06.1990", "Name: X - DR: 17.06.2024"},
		{"Sunday shifts to Monday", "16.06.1985", "Name: X - DR: 17.06.2024"},
		{"Seven days out is included", "17.06.2000", "Name: X - DR: 17.06.2024"},
		{"Eight days out is excluded", "18.06.2000", ""},
		{"Nine days out is excluded", "19.06.2000", ""},
		{"Yesterday is excluded", "09.06.2000", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bookWithBirthdays(t, "X", tt.birthday)
			assert.Equal(t, tt.want, b.UpcomingReport(today))
		})
	}
}

func TestUpcomingReport_YearBoundary(t *testing.T) {
	// Saturday, December 28th 2024. Jan 4th is 7 days out and a Saturday,
	// Jan 5th is 8 days out.
	today := date(2024, 12, 28)
	b := bookWithBirthdays(t,
		"Sunday", "29.12.1980",
		"NewYear", "02.01.1990",
		"Saturday", "04.01.1970",
		"Late", "05.01.1970",
	)

	assert.Equal(t,
		"Name: Sunday - DR: 30.12.2024\n"+
			"Name: NewYear - DR: 02.01.2025\n"+
			"Name: Saturday - DR: 06.01.2025",
		b.UpcomingReport(today))
}

func TestUpcomingBirthdays_SkipsRecordsWithoutBirthday(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddContact("NoBirthday", "1234567890"))
	require.NoError(t, b.AddBirthday("John", "12.06.1990"))

	upcoming := b.UpcomingBirthdays(date(2024, 6, 10))
	require.Len(t, upcoming, 1)
	assert.Equal(t, "John", upcoming[0].Name.String())
	assert.Equal(t, 2, upcoming[0].DaysAway)
	assert.Equal(t, date(2024, 6, 12), upcoming[0].Occurrence)
	assert.Equal(t, "12.06.1990", upcoming[0].Birthday.String())
}

func TestUpcomingReport_Empty(t *testing.T) {
	assert.Empty(t, book.New().UpcomingReport(date(2024, 6, 10)))
}

func TestNextOccurrence(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		birth    time.Time
		wantDate time.Time
		wantDays int
	}{
		{"Later this year", date(2025, 6, 15), date(1990, 12, 31), date(2025, 12, 31), 199},
		{"Already passed", date(2025, 6, 15), date(1990, 1, 1), date(2026, 1, 1), 200},
		{"Today", time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC), date(1990, 6, 15), date(2025, 6, 15), 0},
		{"Leapling in non-leap year", date(2025, 2, 25), date(2000, 2, 29), date(2025, 3, 1), 4},
		{"Leapling in leap year", date(2024, 1, 1), date(2000, 2, 29), date(2024, 2, 29), 59},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, days := book.NextOccurrence(tt.now, tt.birth)
			assert.Equal(t, tt.wantDate, next)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestShiftWeekend(t *testing.T) {
	assert.Equal(t, date(2024, 6, 17), book.ShiftWeekend(date(2024, 6, 15)), "Saturday")
	assert.Equal(t, date(2024, 6, 17), book.ShiftWeekend(date(2024, 6, 16)), "Sunday")
	assert.Equal(t, date(2024, 6, 14), book.ShiftWeekend(date(2024, 6, 14)), "Friday stays")
}

func TestFixedClock(t *testing.T) {
	at := date(2024, 6, 10)
	assert.Equal(t, at, book.FixedClock(at).Now())
}
