package bench

import (
	"github.com/cockroachdb/errors"

	"ferricsort/sort"
)

// Config 벤치마크 설정
type Config struct {
	Sizes      []int    `toml:"sizes"`
	Runs       int      `toml:"runs"`
	Algorithms []string `toml:"algorithms"`
	Patterns   []string `toml:"patterns"`
	// 매 실행마다 파일 저장/읽기를 거친 데이터로 측정
	FileMode  bool   `toml:"file-mode"`
	OutputDir string `toml:"output-dir"`
	Seed      int64  `toml:"seed"`
}

// DefaultConfig 기본 설정
func DefaultConfig() Config {
	return Config{
		Sizes:      []int{5, 100, 1000, 10000},
		Runs:       3,
		Algorithms: []string{sort.EngineStandard, sort.EngineQuick, sort.EngineMerge},
		Patterns:   Patterns(),
		OutputDir:  "results",
		Seed:       42,
	}
}

func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.New("no sizes")
	}
	for _, size := range c.Sizes {
		if size <= 0 {
			return errors.Newf("size %d must be positive", size)
		}
	}
	if c.Runs <= 0 {
		return errors.Newf("runs %d must be positive", c.Runs)
	}
	if len(c.Algorithms) == 0 {
		return errors.New("no algorithms")
	}
	for _, name := range c.Algorithms {
		if _, err := sort.Lookup(name); err != nil {
			return err
		}
	}
	if len(c.Patterns) == 0 {
		return errors.New("no patterns")
	}
	for _, name := range c.Patterns {
		if _, ok := generators[name]; !ok {
			return errors.Wrapf(ErrUnknownPattern, "%q", name)
		}
	}
	if c.OutputDir == "" {
		return errors.New("output dir is empty")
	}
	return nil
}
