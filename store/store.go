package store

import (
	"os"

	"github.com/cockroachdb/pebble"

	"github.com/solquad/token-ledger/errors"
	"github.com/solquad/token-ledger/ledger"
)

var defaultWriteOptions = pebble.Sync

// Store persists ledger state per ledger identity in a pebble database.
type Store struct {
	db     *pebble.DB
	prefix []byte
}

// Open opens or creates the store in the given directory.
func Open(directory string) (*Store, error) {
	if directory == "" {
		return nil, errors.InvalidInput(errors.PhaseStore, "missing store directory")
	}

	if err := os.MkdirAll(directory, 0777); err != nil {
		return nil, errors.IO("create store directory", err)
	}

	db, err := pebble.Open(directory, &pebble.Options{})
	if err != nil {
		return nil, errors.IO("open store", err)
	}

	return &Store{
		db:     db,
		prefix: []byte("ledger:"),
	}, nil
}

// Load reads the state for the given ledger identity. A ledger that has
// never been saved loads as an empty, uninitialized state.
func (s *Store) Load(ledgerID string) (*ledger.State, error) {
	value, closer, err := s.db.Get(s.makeKey(ledgerID))
	if err == pebble.ErrNotFound {
		return ledger.NewState(), nil
	} else if err != nil {
		return nil, errors.IO("load ledger "+ledgerID, err)
	}
	defer closer.Close()

	// value is only valid until closer.Close; DecodeState copies what it keeps.
	state, err := DecodeState(value)
	if err != nil {
		return nil, err
	}

	return state, nil
}

// Save writes the state for the given ledger identity, replacing any
// prior record.
func (s *Store) Save(ledgerID string, state *ledger.State) error {
	err := s.db.Set(s.makeKey(ledgerID), EncodeState(state), defaultWriteOptions)
	if err != nil {
		return errors.IO("save ledger "+ledgerID, err)
	}
	return nil
}

// Delete removes the record for the given ledger identity.
// Deleting an absent ledger is not an error.
func (s *Store) Delete(ledgerID string) error {
	err := s.db.Delete(s.makeKey(ledgerID), defaultWriteOptions)
	if err != nil {
		return errors.IO("delete ledger "+ledgerID, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return errors.IO("close store", err)
	}
	return nil
}

func (s *Store) makeKey(ledgerID string) []byte {
	return append(append([]byte{}, s.prefix...), ledgerID...)
}
