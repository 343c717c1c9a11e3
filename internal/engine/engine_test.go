package engine_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
)

func fixedGenerator(now time.Time) *engine.Generator {
	return &engine.Generator{Clock: book.FixedClock(now)}
}

func TestGenerateCalendar_YearRange(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddBirthday("Range", "31.12.1990"))
	require.NoError(t, b.AddContact("NoBirthday", "1234567890"))

	ics, events, err := fixedGenerator(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).GenerateCalendar(b)
	require.NoError(t, err)

	icsStr := string(ics)
	assert.Equal(t, 3, events)
	assert.Contains(t, icsStr, "BEGIN:VCALENDAR")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20241231", "Should include previous year")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20251231", "Should include current year")
	assert.Contains(t, icsStr, "DTSTART;VALUE=DATE:20261231", "Should include next year")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Range (35)")
	assert.Equal(t, 3, strings.Count(icsStr, "BEGIN:VEVENT"))
	assert.NotContains(t, icsStr, "NoBirthday")
}

func TestGenerateCalendar_BabyBornThisYear(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddBirthday("Baby", "01.05.2025"))

	gen := fixedGenerator(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	gen.FormatSummary = func(name string, age int) string {
		if age == 0 {
			return fmt.Sprintf("Birthday: %s (Birth)", name)
		}
		return fmt.Sprintf("Birthday: %s (%d)", name, age)
	}

	ics, events, err := gen.GenerateCalendar(b)
	require.NoError(t, err)

	icsStr := string(ics)
	assert.Equal(t, 2, events)
	assert.NotContains(t, icsStr, "DTSTART;VALUE=DATE:20240501", "Should NOT generate event before birth")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Baby (Birth)")
	assert.Contains(t, icsStr, "SUMMARY:Birthday: Baby (1)")
}

func TestGenerateCalendar_StableUIDs(t *testing.T) {
	b := book.New()
	require.NoError(t, b.AddBirthday("John", "15.06.1990"))
	gen := fixedGenerator(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	first, _, err := gen.GenerateCalendar(b)
	require.NoError(t, err)
	second, _, err := gen.GenerateCalendar(b)
	require.NoError(t, err)

	assert.Equal(t, first, second, "Same input and clock must render identical feeds")
	assert.Contains(t, string(first), "-2025@"+config.ICalDomain)
}

func TestGenerateCalendar_Empty(t *testing.T) {
	ics, events, err := fixedGenerator(time.Now()).GenerateCalendar(book.New())
	require.NoError(t, err)
	assert.Zero(t, events)
	assert.Equal(t, config.StubVCalendar, string(ics))
}
