package book

import "errors"

// Error kinds reported by the address book. Concrete errors wrap one of these
// so callers can classify a failure with errors.Is.
var (
	// ErrValidation marks a malformed name, phone or birthday.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an operation addressed to a name absent from the book.
	ErrNotFound = errors.New("contact not found")

	// ErrArity marks a command invoked with too few arguments.
	ErrArity = errors.New("not enough arguments")
)
