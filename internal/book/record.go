package book

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record holds everything stored about one contact.
// The name is fixed at construction; phones keep insertion order.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the record's identity.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// Birthday returns the stored birthday, if any.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it. Duplicates are kept.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone deletes the first phone equal to raw and reports whether one was found.
func (r *Record) RemovePhone(raw string) bool {
	i := r.indexOf(raw)
	if i < 0 {
		return false
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return true
}

// EditPhone replaces the first phone equal to oldRaw with newRaw.
// newRaw is validated even when oldRaw is absent; an absent oldRaw is a no-op.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	if i := r.indexOf(oldRaw); i >= 0 {
		r.phones[i] = p
	}
	return nil
}

// FindPhone returns the first phone equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	i := r.indexOf(raw)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday validates raw and sets it as the birthday, replacing any previous one.
func (r *Record) AddBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

func (r *Record) indexOf(raw string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == raw })
}

func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	birthday := config.EmptyBirthdayMarker
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf(config.FormatRecord, r.name, strings.Join(phones, config.PhoneSeparator), birthday)
}
