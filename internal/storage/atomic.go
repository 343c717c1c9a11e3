package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tartampluch/go-contacts/internal/config"
)

// ErrStorage marks a failure reading or writing a file.
var ErrStorage = errors.New("storage failure")

// WriteFileAtomic streams write into path+".tmp" and renames it over path once
// everything has been flushed, so an interrupted write never truncates path.
func WriteFileAtomic(path string, write func(io.Writer) error) (err error) {
	tmp := path + config.TempFileSuffix

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// Open opens path for reading, classifying failures as ErrStorage.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return f, nil
}
