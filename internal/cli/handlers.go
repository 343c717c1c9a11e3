package cli

import (
	"fmt"
	"io"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/engine"
	"github.com/tartampluch/go-contacts/internal/storage"
)

// handlerFunc runs one command against the session and returns the reply.
type handlerFunc func(s *Session, args []string) (string, error)

// commands maps command names to handlers. close and exit are handled by
// the session itself because they end the loop.
var commands = map[string]handlerFunc{
	config.CmdHello:        handleHello,
	config.CmdHelp:         handleHelp,
	config.CmdAdd:          handleAdd,
	config.CmdChange:       handleChange,
	config.CmdPhone:        handleShow,
	config.CmdAll:          handleAll,
	config.CmdDelete:       handleDelete,
	config.CmdRemovePhone:  handleRemovePhone,
	config.CmdAddBirthday:  handleAddBirthday,
	config.CmdShowBirthday: handleShow,
	config.CmdBirthdays:    handleBirthdays,
	config.CmdExportVCard:  handleExportVCard,
	config.CmdImportVCard:  handleImportVCard,
	config.CmdExportICal:   handleExportICal,
}

// requireArgs fails with book.ErrArity when fewer than n arguments are given.
// Extra arguments are ignored.
func requireArgs(args []string, n int) error {
	if len(args) < n {
		return fmt.Errorf("%w: want %d, got %d", book.ErrArity, n, len(args))
	}
	return nil
}

// findRecord looks name up, failing with book.ErrNotFound.
func (s *Session) findRecord(name string) (*book.Record, error) {
	r, ok := s.Book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", book.ErrNotFound, name)
	}
	return r, nil
}

func handleHello(s *Session, _ []string) (string, error) {
	return s.T.Msg(config.TKeyHello), nil
}

func handleHelp(s *Session, _ []string) (string, error) {
	return s.T.Msg(config.TKeyHelp), nil
}

// add <name> <phone>
func handleAdd(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	if err := s.Book.AddContact(args[0], args[1]); err != nil {
		return "", err
	}
	return s.T.Msg(config.TKeyContactAdded), nil
}

// change <name> <old phone> <new phone>
func handleChange(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 3); err != nil {
		return "", err
	}
	r, err := s.findRecord(args[0])
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return s.T.Msg(config.TKeyContactChanged), nil
}

// phone <name> and show-birthday <name> both print the whole record.
func handleShow(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	r, err := s.findRecord(args[0])
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func handleAll(s *Session, _ []string) (string, error) {
	if s.Book.Len() == 0 {
		return s.T.Msg(config.TKeyNoContacts), nil
	}
	return s.Book.String(), nil
}

// delete <name>
func handleDelete(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	if _, err := s.findRecord(args[0]); err != nil {
		return "", err
	}
	s.Book.Delete(args[0])
	return s.T.Msg(config.TKeyContactDeleted), nil
}

// remove-phone <name> <phone>; an unknown phone is a no-op.
func handleRemovePhone(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	r, err := s.findRecord(args[0])
	if err != nil {
		return "", err
	}
	r.RemovePhone(args[1])
	return s.T.Msg(config.TKeyPhoneRemoved), nil
}

// add-birthday <name> <DD.MM.YYYY>
func handleAddBirthday(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 2); err != nil {
		return "", err
	}
	if err := s.Book.AddBirthday(args[0], args[1]); err != nil {
		return "", err
	}
	return s.T.Msg(config.TKeyBirthdayAdded), nil
}

func handleBirthdays(s *Session, _ []string) (string, error) {
	report := s.Book.UpcomingReport(s.Clock.Now())
	if report == "" {
		return s.T.Msg(config.TKeyNoUpcoming), nil
	}
	return report, nil
}

// export-vcf <path>
func handleExportVCard(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	path := args[0]

	count := 0
	err := storage.WriteFileAtomic(path, func(w io.Writer) error {
		var err error
		count, err = engine.ExportVCard(w, s.Book)
		return err
	})
	if err != nil {
		return "", err
	}
	return s.T.Msgf(config.TKeyExported, map[string]any{"Count": count, "Path": path}), nil
}

// import-vcf <path>
func handleImportVCard(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	path := args[0]

	f, err := storage.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	stats, err := engine.ImportVCard(f, s.Book)
	if err != nil {
		return "", fmt.Errorf("%w: %w", storage.ErrStorage, err)
	}
	return s.T.Msgf(config.TKeyImported, map[string]any{
		"Count":   stats.Contacts,
		"Skipped": stats.Skipped,
		"Path":    path,
	}), nil
}

// export-ics <path>
func handleExportICal(s *Session, args []string) (string, error) {
	if err := requireArgs(args, 1); err != nil {
		return "", err
	}
	path := args[0]

	data, _, err := s.Calendar.GenerateCalendar(s.Book)
	if err != nil {
		return "", fmt.Errorf("%w: %w", storage.ErrStorage, err)
	}
	err = storage.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return "", err
	}
	return s.T.Msgf(config.TKeyCalendarSaved, map[string]any{"Path": path}), nil
}
