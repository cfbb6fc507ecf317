package kvdb

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"
)

type pebbleBackend struct {
	db *pebble.DB
}

func openPebble(dir string, logger *zap.Logger) (*pebbleBackend, error) {
	db, err := pebble.Open(dir, &pebble.Options{Logger: logger.Named("pebble").Sugar()})
	if err != nil {
		return nil, err
	}
	return &pebbleBackend{db: db}, nil
}

func (b *pebbleBackend) get(key []byte) ([]byte, error) {
	val, closer, err := b.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return bytes.Clone(val), nil
}

func (b *pebbleBackend) apply(sets []entry, deletes [][]byte) error {
	batch := b.db.NewBatch()
	defer batch.Close()
	for _, e := range sets {
		if err := batch.Set(e.key, e.value, nil); err != nil {
			return err
		}
	}
	for _, key := range deletes {
		if err := batch.Delete(key, nil); err != nil {
			return err
		}
	}
	return batch.Commit(pebble.Sync)
}

func (b *pebbleBackend) scan(prefix []byte, fn func(key []byte) error) error {
	it, err := b.db.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixEnd(prefix),
	})
	if err != nil {
		return err
	}
	for it.First(); it.Valid(); it.Next() {
		if err := fn(it.Key()); err != nil {
			it.Close()
			return err
		}
	}
	return it.Close()
}

func (b *pebbleBackend) close() error {
	return b.db.Close()
}
