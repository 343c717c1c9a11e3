package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/locale"
)

type saverMock struct {
	mock.Mock
}

func (m *saverMock) Save(b *book.AddressBook) error {
	return m.Called(b).Error(0)
}

type calendarMock struct {
	mock.Mock
}

func (m *calendarMock) GenerateCalendar(b *book.AddressBook) ([]byte, int, error) {
	args := m.Called(b)
	data, _ := args.Get(0).([]byte)
	return data, args.Int(1), args.Error(2)
}

func newInternalSession() (*Session, *saverMock) {
	store := new(saverMock)
	at := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	return NewSession(book.New(), store, book.FixedClock(at), locale.New("en")), store
}

// withCommand registers a handler for the duration of the test.
func withCommand(t *testing.T, name string, h handlerFunc) {
	t.Helper()
	prev, had := commands[name]
	commands[name] = h
	t.Cleanup(func() {
		if had {
			commands[name] = prev
		} else {
			delete(commands, name)
		}
	})
}

func TestExecute_UnknownFailureIsReturned(t *testing.T) {
	boom := errors.New("boom")
	withCommand(t, "explode", func(*Session, []string) (string, error) {
		return "ignored", boom
	})

	s, store := newInternalSession()

	reply, quit, err := s.Execute("explode now")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), config.ErrUnexpected)
	assert.Empty(t, reply)
	assert.False(t, quit)
	store.AssertNotCalled(t, "Save", mock.Anything)
}

func TestRun_StopsOnUnknownFailure(t *testing.T) {
	boom := errors.New("boom")
	withCommand(t, "explode", func(*Session, []string) (string, error) {
		return "", boom
	})

	s, store := newInternalSession()

	var out bytes.Buffer
	err := s.Run(strings.NewReader("explode\nhello\n"), &out)
	require.ErrorIs(t, err, boom)
	assert.NotContains(t, out.String(), "How can I help you?", "Nothing runs after the failure")
	store.AssertNotCalled(t, "Save", mock.Anything)
}

func TestExecute_CalendarFailureIsRecoverable(t *testing.T) {
	s, _ := newInternalSession()
	gen := new(calendarMock)
	gen.On("GenerateCalendar", s.Book).Return(nil, 0, errors.New("encoder broke")).Once()
	s.Calendar = gen

	reply, quit, err := s.Execute("export-ics " + filepath.Join(t.TempDir(), "birthdays.ics"))
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, reply, "File error:")
	assert.Contains(t, reply, "encoder broke")
	gen.AssertExpectations(t)
}
