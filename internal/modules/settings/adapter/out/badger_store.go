package out

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
)

// BadgerStore persists settings in an embedded BadgerDB at dir. The
// connection is opened once at construction and injected everywhere it is
// needed; there is no ambient singleton.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(_ context.Context, storageKey string) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(storageKey))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get setting %s: %w", storageKey, err)
	}
	return value, true, nil
}

func (s *BadgerStore) Set(_ context.Context, storageKey string, value []byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(storageKey), value)
	})
	if err != nil {
		return fmt.Errorf("set setting %s: %w", storageKey, err)
	}
	return nil
}

func (s *BadgerStore) ClearAll(_ context.Context) error {
	if err := s.db.DropAll(); err != nil {
		return fmt.Errorf("clear settings: %w", err)
	}
	return nil
}

func (s *BadgerStore) ExportAll(_ context.Context) (map[string][]byte, error) {
	out := map[string][]byte{}
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out[string(item.KeyCopy(nil))] = value
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export settings: %w", err)
	}
	return out, nil
}

func (s *BadgerStore) ImportAll(_ context.Context, values map[string][]byte) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for key, value := range values {
			if err := txn.Set([]byte(key), value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import settings: %w", err)
	}
	return nil
}

// Close releases the underlying database. Only bootstrap and tests hold the
// concrete type.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
