package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// stateKey is the single namespaced key holding the persisted state.
const stateKey = "root"

// BadgerPersister stores the auth slice in a local BadgerDB directory.
type BadgerPersister struct {
	db *badger.DB
}

// NewBadgerPersister opens (or creates) the badger directory at path.
func NewBadgerPersister(path string) (*BadgerPersister, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // silence the default logger

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger: %w", err)
	}
	return &BadgerPersister{db: db}, nil
}

func (p *BadgerPersister) Close() error {
	return p.db.Close()
}

// Load reads the stored state. Missing key, undecodable payload, or a schema
// version other than SchemaVersion all yield (nil, nil): the client starts
// anonymous rather than failing to boot over stale local data.
func (p *BadgerPersister) Load(ctx context.Context) (*State, error) {
	var raw []byte
	err := p.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(stateKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte(nil), val...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, nil
	}
	if state.Version != SchemaVersion {
		return nil, nil
	}
	return &state, nil
}

// Save replaces the stored state wholesale, stamping the current schema version.
func (p *BadgerPersister) Save(ctx context.Context, state *State) error {
	s := *state
	s.Version = SchemaVersion

	data, err := json.Marshal(&s)
	if err != nil {
		return err
	}
	return p.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(stateKey), data)
	})
}

var _ Persister = (*BadgerPersister)(nil)
