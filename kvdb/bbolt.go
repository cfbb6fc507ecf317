package kvdb

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const (
	bboltDBFile = "bbolt.db"
	bucketName  = "sequences"
)

type bboltBackend struct {
	db *bbolt.DB
}

func openBbolt(dir string) (*bboltBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(filepath.Join(dir, bboltDBFile), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &bboltBackend{db: db}, nil
}

func (b *bboltBackend) get(key []byte) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get(key)
		if v == nil {
			return ErrNotFound
		}
		// 트랜잭션 밖에서 쓰려면 복사 필요
		out = bytes.Clone(v)
		return nil
	})
	return out, err
}

func (b *bboltBackend) apply(sets []entry, deletes [][]byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		for _, e := range sets {
			if err := bucket.Put(e.key, e.value); err != nil {
				return err
			}
		}
		for _, key := range deletes {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *bboltBackend) scan(prefix []byte, fn func(key []byte) error) error {
	return b.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket([]byte(bucketName)).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			if err := fn(k); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *bboltBackend) close() error {
	return b.db.Close()
}
