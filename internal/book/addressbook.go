package book

import (
	"slices"
	"strings"
)

// AddressBook maps contact names to records.
// It remembers insertion order, which drives listing and report order.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. A record already stored under that name
// is replaced in place, keeping its position.
func (b *AddressBook) AddRecord(r *Record) {
	key := r.name.String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name, if any.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(k string) bool { return k == name })
}

// Len returns the number of records.
func (b *AddressBook) Len() int {
	return len(b.order)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, k := range b.order {
		out = append(out, b.records[k])
	}
	return out
}

// AddContact adds phone to the record named name, creating the record first
// when needed. A rejected phone never leaves a new empty record behind.
func (b *AddressBook) AddContact(name, phone string) error {
	return b.upsert(name, func(r *Record) error { return r.AddPhone(phone) })
}

// AddBirthday sets the birthday of the record named name, creating the record
// first when needed.
func (b *AddressBook) AddBirthday(name, date string) error {
	return b.upsert(name, func(r *Record) error { return r.AddBirthday(date) })
}

func (b *AddressBook) upsert(name string, mutate func(*Record) error) error {
	if r, ok := b.Find(name); ok {
		return mutate(r)
	}
	r, err := NewRecord(name)
	if err != nil {
		return err
	}
	if err := mutate(r); err != nil {
		return err
	}
	b.AddRecord(r)
	return nil
}

// String lists every record, one per line.
func (b *AddressBook) String() string {
	lines := make([]string, 0, len(b.order))
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
