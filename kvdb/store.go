// Package kvdb 는 이름 붙은 int64 시퀀스를 임베디드 KV 엔진(bbolt, BadgerDB, PebbleDB)에 저장한다.
package kvdb

import (
	"bytes"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	BackendBbolt  = "bbolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"

	// ChunkSize 키 하나에 담는 원소 수
	ChunkSize = 64 * 1024

	DefaultExpectedNames = 1024
	falsePositiveRate    = 0.01
)

var (
	ErrNotFound       = errors.New("sequence not found")
	ErrEmptyName      = errors.New("empty sequence name")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// Backends 지원하는 백엔드 이름
func Backends() []string {
	return []string{BackendBbolt, BackendBadger, BackendPebble}
}

// entry 배치에 쓸 키/값
type entry struct {
	key, value []byte
}

// backend KV 엔진별 최소 연산. get 은 키가 없으면 ErrNotFound.
type backend interface {
	get(key []byte) ([]byte, error)
	apply(sets []entry, deletes [][]byte) error
	scan(prefix []byte, fn func(key []byte) error) error
	close() error
}

// Options Open 옵션
type Options struct {
	Logger        *zap.Logger
	ExpectedNames uint64
}

// Store 시퀀스 저장소. 여러 고루틴에서 동시에 사용하지 않음.
type Store struct {
	kind    string
	backend backend
	filter  *BloomFilter
	logger  *zap.Logger
}

// Open dir 에 backend 종류의 저장소를 연다
func Open(kind, dir string, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("backend", kind))

	var (
		b   backend
		err error
	)
	switch kind {
	case BackendBbolt:
		b, err = openBbolt(dir)
	case BackendBadger:
		b, err = openBadger(dir, logger)
	case BackendPebble:
		b, err = openPebble(dir, logger)
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", kind)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s store at %s", kind, dir)
	}

	expected := opts.ExpectedNames
	if expected == 0 {
		expected = DefaultExpectedNames
	}
	s := &Store{
		kind:    kind,
		backend: b,
		filter:  NewBloomFilter(expected, falsePositiveRate),
		logger:  logger,
	}

	// 기존 이름으로 필터 채우기
	names, err := s.Names()
	if err != nil {
		b.close()
		return nil, err
	}
	for _, name := range names {
		s.filter.Add([]byte(name))
	}
	setBits, fill, fpr := s.filter.Stats()
	logger.Info("sequence store opened",
		zap.String("dir", dir),
		zap.Int("sequences", len(names)),
		zap.Uint64("filter_items", s.filter.Items()),
		zap.Uint64("filter_bits_set", setBits),
		zap.Float64("filter_fill", fill),
		zap.Float64("filter_fpr", fpr))
	return s, nil
}

// Backend 백엔드 종류
func (s *Store) Backend() string {
	return s.kind
}

// Put name 으로 시퀀스 저장. 기존 시퀀스는 대체됨.
func (s *Store) Put(name string, seq []int64) error {
	if name == "" {
		return ErrEmptyName
	}

	oldChunks := uint64(0)
	if n, err := s.count(name); err == nil {
		oldChunks = numChunks(n)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	n := uint64(len(seq))
	chunks := numChunks(n)
	sets := make([]entry, 0, chunks+1)
	for i := uint64(0); i < chunks; i++ {
		end := min((i+1)*ChunkSize, n)
		sets = append(sets, entry{chunkKey(name, i), encodeChunk(seq[i*ChunkSize : end])})
	}
	sets = append(sets, entry{metaKey(name), encodeCount(n)})

	// 길이가 줄어든 경우 남는 청크 삭제
	var deletes [][]byte
	for i := chunks; i < oldChunks; i++ {
		deletes = append(deletes, chunkKey(name, i))
	}

	if err := s.backend.apply(sets, deletes); err != nil {
		return errors.Wrapf(err, "put %q", name)
	}
	s.filter.Add([]byte(name))
	s.logger.Debug("sequence stored", zap.String("name", name), zap.Uint64("count", n), zap.Uint64("chunks", chunks))
	return nil
}

// Get name 의 시퀀스를 새 슬라이스로 반환
func (s *Store) Get(name string) ([]int64, error) {
	n, err := s.count(name)
	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, n)
	for i := uint64(0); i < numChunks(n); i++ {
		raw, err := s.backend.get(chunkKey(name, i))
		if err != nil {
			return nil, errors.Wrapf(err, "get %q chunk %d", name, i)
		}
		if out, err = decodeChunk(out, raw); err != nil {
			return nil, errors.Wrapf(err, "get %q chunk %d", name, i)
		}
	}
	if uint64(len(out)) != n {
		return nil, errors.Newf("get %q: expected %d values, found %d", name, n, len(out))
	}
	return out, nil
}

// Has name 이 저장돼 있는지 확인
func (s *Store) Has(name string) (bool, error) {
	_, err := s.count(name)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Delete 메타와 모든 청크 삭제
func (s *Store) Delete(name string) error {
	n, err := s.count(name)
	if err != nil {
		return err
	}
	deletes := [][]byte{metaKey(name)}
	for i := uint64(0); i < numChunks(n); i++ {
		deletes = append(deletes, chunkKey(name, i))
	}
	if err := s.backend.apply(nil, deletes); err != nil {
		return errors.Wrapf(err, "delete %q", name)
	}
	s.logger.Debug("sequence deleted", zap.String("name", name))
	return nil
}

// Names 저장된 이름 (키 순서)
func (s *Store) Names() ([]string, error) {
	var names []string
	err := s.backend.scan(metaPrefix, func(key []byte) error {
		names = append(names, string(bytes.TrimPrefix(key, metaPrefix)))
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "list sequences")
	}
	return names, nil
}

func (s *Store) Close() error {
	return errors.Wrapf(s.backend.close(), "close %s store", s.kind)
}

// count 메타 키에서 원소 개수 조회. 필터에 없으면 백엔드를 건드리지 않음.
func (s *Store) count(name string) (uint64, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	if !s.filter.Contains([]byte(name)) {
		return 0, errors.Wrapf(ErrNotFound, "%q", name)
	}
	raw, err := s.backend.get(metaKey(name))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, errors.Wrapf(ErrNotFound, "%q", name)
		}
		return 0, errors.Wrapf(err, "get %q", name)
	}
	return decodeCount(raw)
}
