package kvdb

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// badgerLogger zap 을 badger.Logger 로 맞춤
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Warnf(format, args...)
}

type badgerBackend struct {
	db *badger.DB
}

func openBadger(dir string, logger *zap.Logger) (*badgerBackend, error) {
	opts := badger.DefaultOptions(dir).
		WithLogger(badgerLogger{logger.Named("badger").Sugar()})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &badgerBackend{db: db}, nil
}

func (b *badgerBackend) get(key []byte) ([]byte, error) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	return out, err
}

func (b *badgerBackend) apply(sets []entry, deletes [][]byte) error {
	wb := b.db.NewWriteBatch()
	for _, e := range sets {
		if err := wb.Set(e.key, e.value); err != nil {
			wb.Cancel()
			return err
		}
	}
	for _, key := range deletes {
		if err := wb.Delete(key); err != nil {
			wb.Cancel()
			return err
		}
	}
	return wb.Flush()
}

func (b *badgerBackend) scan(prefix []byte, fn func(key []byte) error) error {
	return b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := fn(it.Item().Key()); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *badgerBackend) close() error {
	return b.db.Close()
}
