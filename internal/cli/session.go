package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/locale"
	"github.com/tartampluch/go-contacts/internal/storage"
)

// Saver persists the whole address book.
type Saver interface {
	Save(b *book.AddressBook) error
}

// CalendarGenerator renders the birthday feed written by export-ics.
type CalendarGenerator interface {
	GenerateCalendar(b *book.AddressBook) ([]byte, int, error)
}

// Session is one interactive run over an address book.
type Session struct {
	Book     *book.AddressBook
	Store    Saver
	Clock    book.Clock
	T        *locale.Translator
	Calendar CalendarGenerator
}

// NewSession wires a session. The calendar generator shares the session clock
// and translator.
func NewSession(b *book.AddressBook, store Saver, clock book.Clock, t *locale.Translator) *Session {
	return &Session{
		Book:  b,
		Store: store,
		Clock: clock,
		T:     t,
		Calendar: &engine.Generator{
			Clock:         clock,
			FormatSummary: t.EventSummary,
		},
	}
}

// Run reads commands from in until close/exit or end of input, writing one
// reply per command to out. It returns an error only for failures that are
// not a user mistake, such as an unreadable input stream.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	if err := s.println(out, s.T.Msg(config.TKeyWelcome)); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(out, s.T.Msg(config.TKeyPrompt)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			// End of input behaves like exit, but there is nobody left to retry a failed save.
			reply, saveErr := s.closeBook()
			if err := s.println(out, "\n"+reply); err != nil {
				return err
			}
			if saveErr != nil {
				return fmt.Errorf("%s: %w", config.MsgSaveFailed, saveErr)
			}
			return nil
		}

		reply, quit, err := s.Execute(scanner.Text())
		if err != nil {
			return err
		}
		if reply != "" {
			if err := s.println(out, reply); err != nil {
				return err
			}
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single input line. quit reports that the loop should stop.
// Arity, not-found, validation and storage failures become user-facing
// replies; any other failure is returned as err.
func (s *Session) Execute(line string) (reply string, quit bool, err error) {
	cmd, args := ParseInput(line)
	if cmd == "" {
		return "", false, nil
	}

	log := slog.With(
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, cmd,
	)
	log.Debug(config.MsgCommand, config.LogKeyArgs, len(args))

	if cmd == config.CmdClose || cmd == config.CmdExit {
		reply, err = s.closeBook()
		return reply, err == nil, nil
	}

	handler, ok := commands[cmd]
	if !ok {
		return s.T.Msg(config.TKeyInvalidCommand), false, nil
	}

	reply, err = handler(s, args)
	if err == nil {
		return reply, false, nil
	}

	msg, known := s.translateError(err)
	if !known {
		return "", false, fmt.Errorf("%s %q: %w", config.ErrUnexpected, cmd, err)
	}
	log.Debug(config.MsgCommandFailed, config.LogKeyError, err)
	return msg, false, nil
}

// translateError maps the declared failure kinds to their fixed messages.
func (s *Session) translateError(err error) (string, bool) {
	switch {
	case errors.Is(err, book.ErrArity):
		return s.T.Msg(config.TKeyErrArity), true
	case errors.Is(err, book.ErrNotFound):
		return s.T.Msg(config.TKeyErrNotFound), true
	case errors.Is(err, book.ErrValidation):
		return s.T.Msg(config.TKeyErrValidation), true
	case errors.Is(err, storage.ErrStorage):
		return s.T.Msgf(config.TKeyErrStorage, map[string]any{"Error": err.Error()}), true
	default:
		return "", false
	}
}

// closeBook saves the book and returns the farewell reply, or the failure
// reply together with the save error. Callers keep the session open on error
// so the user can fix the cause and retry.
func (s *Session) closeBook() (string, error) {
	if err := s.Store.Save(s.Book); err != nil {
		slog.Error(config.MsgSaveFailed,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyError, err,
		)
		return s.T.Msgf(config.TKeyErrSave, map[string]any{"Error": err.Error()}), err
	}
	return s.T.Msg(config.TKeyGoodbye), nil
}

func (s *Session) println(out io.Writer, msg string) error {
	if _, err := fmt.Fprintln(out, msg); err != nil {
		return fmt.Errorf("%s: %w", config.ErrWriteOutput, err)
	}
	return nil
}
