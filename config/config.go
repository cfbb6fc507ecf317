// Package config 는 TOML 설정 파일을 읽는다.
package config

import (
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"

	"ferricsort/bench"
	"ferricsort/kvdb"
	"ferricsort/logutil"
	"ferricsort/sort"
)

// ErrInvalid 설정 값 검증 실패
var ErrInvalid = errors.New("invalid configuration")

// Config 전체 설정
type Config struct {
	Sort  SortConfig        `toml:"sort"`
	Log   logutil.LogConfig `toml:"log"`
	Store StoreConfig       `toml:"store"`
	Bench bench.Config      `toml:"bench"`
}

// SortConfig 정렬 엔진 선택
type SortConfig struct {
	Engine string `toml:"engine"`
}

// StoreConfig 시퀀스 저장소
type StoreConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
	// bloom filter 예상 시퀀스 개수
	ExpectedNames uint64 `toml:"expected-names"`
}

// Default 기본 설정
func Default() Config {
	return Config{
		Sort: SortConfig{Engine: sort.EngineQuick},
		Log:  logutil.DefaultConfig(),
		Store: StoreConfig{
			Backend:       kvdb.BackendBbolt,
			Path:          "ferricsort-data",
			ExpectedNames: kvdb.DefaultExpectedNames,
		},
		Bench: bench.DefaultConfig(),
	}
}

// Load 기본값 위에 path 의 TOML 을 덮어쓴다. path 가 비어 있으면 기본값.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "decode %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.Wrapf(ErrInvalid, "unknown keys %v in %s", undecoded, path)
	}
	return cfg, cfg.Validate()
}

// Validate 값 검증
func (c *Config) Validate() error {
	if _, err := sort.Lookup(c.Sort.Engine); err != nil {
		return errors.Wrapf(ErrInvalid, "sort.engine: %v", err)
	}
	if !slices.Contains(kvdb.Backends(), c.Store.Backend) {
		return errors.Wrapf(ErrInvalid, "store.backend %q", c.Store.Backend)
	}
	if c.Store.Path == "" {
		return errors.Wrap(ErrInvalid, "store.path is empty")
	}
	if err := c.Bench.Validate(); err != nil {
		return errors.Wrapf(ErrInvalid, "bench: %v", err)
	}
	return nil
}
