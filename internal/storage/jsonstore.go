package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"time"

	"github.com/tartampluch/go-contacts/internal/book"
	"github.com/tartampluch/go-contacts/internal/config"
)

// JSONStore persists an address book as a versioned JSON snapshot.
type JSONStore struct {
	Path string

	// Now stamps saved snapshots. Defaults to time.Now.
	Now func() time.Time
}

// NewJSONStore returns a store for the file at path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{Path: path, Now: time.Now}
}

// Load reads the address book. A missing file yields an empty book.
func (s *JSONStore) Load() (*book.AddressBook, error) {
	log := slog.With(
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
	)

	f, err := Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(config.MsgBookMissing)
		return book.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSnapshotRead, err)
	}
	defer func() { _ = f.Close() }()

	b, err := Decode(f)
	if err != nil {
		return nil, err
	}

	log.Info(config.MsgBookLoaded, config.LogKeyCount, b.Len())
	return b, nil
}

// Save writes the whole address book, replacing the previous file atomically.
func (s *JSONStore) Save(b *book.AddressBook) error {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	snap := ToSnapshot(b)
	snap.Meta.Timestamp = now().UTC()

	err := WriteFileAtomic(s.Path, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrSnapshotWrite, err)
	}

	slog.Info(config.MsgBookSaved,
		config.LogKeyComponent, config.CompStorage,
		config.LogKeyFile, s.Path,
		config.LogKeyCount, b.Len(),
	)
	return nil
}

// Decode reads a snapshot from r and rebuilds the address book from it.
// Stored values go through the same validation as user input.
func Decode(r io.Reader) (*book.AddressBook, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", config.ErrSnapshotDecode, ErrStorage, err)
	}
	return FromSnapshot(snap)
}

// ToSnapshot converts the book to its on-disk form, preserving order.
func ToSnapshot(b *book.AddressBook) Snapshot {
	snap := Snapshot{
		Meta: Meta{
			Storage: config.SnapshotStorage,
			Version: config.SnapshotVersion,
		},
		Records: make([]PersistRecord, 0, b.Len()),
	}
	for _, r := range b.Records() {
		pr := PersistRecord{
			Name:   r.Name().String(),
			Phones: make([]string, 0, len(r.Phones())),
		}
		for _, p := range r.Phones() {
			pr.Phones = append(pr.Phones, p.String())
		}
		if bday, ok := r.Birthday(); ok {
			pr.Birthday = bday.String()
		}
		snap.Records = append(snap.Records, pr)
	}
	return snap
}

// FromSnapshot rebuilds an address book, rejecting unknown versions and
// invalid records.
func FromSnapshot(snap Snapshot) (*book.AddressBook, error) {
	if snap.Meta.Version != config.SnapshotVersion {
		return nil, fmt.Errorf("%s %d: %w", config.ErrSnapshotVersion, snap.Meta.Version, ErrStorage)
	}

	b := book.New()
	for _, pr := range snap.Records {
		r, err := pr.toRecord()
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", config.ErrSnapshotRecord, ErrStorage, err)
		}
		b.AddRecord(r)
	}
	return b, nil
}

func (pr PersistRecord) toRecord() (*book.Record, error) {
	r, err := book.NewRecord(pr.Name)
	if err != nil {
		return nil, err
	}
	for _, p := range pr.Phones {
		if err := r.AddPhone(p); err != nil {
			return nil, err
		}
	}
	if pr.Birthday != "" {
		if err := r.AddBirthday(pr.Birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}
