package bench

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"ferricsort/seqfile"
	"ferricsort/sort"
)

const (
	StorageMemory = "memory"
	StorageFile   = "file"
)

// Result 벤치마크 결과 한 건
type Result struct {
	Algorithm   string        `json:"algorithm"`
	Pattern     string        `json:"pattern"`
	DataSize    int           `json:"data_size"`
	StorageType string        `json:"storage_type"`
	TestRun     int           `json:"test_run"`
	Duration    time.Duration `json:"duration"`
	MemoryUsage uint64        `json:"memory_usage_bytes"`
	Sorted      bool          `json:"sorted"`
}

// Run 크기 × 패턴 × 알고리즘 × 반복 횟수만큼 순차 실행
func Run(ctx context.Context, cfg Config, logger *zap.Logger) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	storage := StorageMemory
	var tmpDir string
	if cfg.FileMode {
		storage = StorageFile
		dir, err := os.MkdirTemp("", "ferricsort-bench-")
		if err != nil {
			return nil, errors.Wrap(err, "create bench dir")
		}
		tmpDir = dir
		defer os.RemoveAll(tmpDir)
	}

	results := make([]Result, 0, len(cfg.Sizes)*len(cfg.Patterns)*len(cfg.Algorithms)*cfg.Runs)
	for _, size := range cfg.Sizes {
		for _, pattern := range cfg.Patterns {
			data, err := Generate(pattern, size, cfg.Seed)
			if err != nil {
				return nil, err
			}

			var filename string
			if cfg.FileMode {
				filename = filepath.Join(tmpDir, fmt.Sprintf("%s_%d.txt", pattern, size))
				if err := seqfile.WriteInts(filename, data); err != nil {
					return nil, err
				}
			}

			logger.Info("benchmark case",
				zap.Int("size", size),
				zap.String("pattern", pattern),
				zap.String("storage", storage))

			for _, algo := range cfg.Algorithms {
				engine, err := sort.Lookup(algo)
				if err != nil {
					return nil, err
				}
				for run := 1; run <= cfg.Runs; run++ {
					if err := ctx.Err(); err != nil {
						return results, err
					}

					input := data
					if cfg.FileMode {
						// 매번 파일에서 읽기
						f, err := seqfile.Read(filename)
						if err != nil {
							return results, err
						}
						input = f.Content
					}

					result := runCase(engine, input)
					result.Algorithm = algo
					result.Pattern = pattern
					result.StorageType = storage
					result.TestRun = run
					results = append(results, result)

					logger.Debug("benchmark run",
						zap.String("algorithm", algo),
						zap.Int("run", run),
						zap.Duration("duration", result.Duration),
						zap.Uint64("memory", result.MemoryUsage))
					if !result.Sorted {
						logger.Error("engine produced unsorted output",
							zap.String("algorithm", algo),
							zap.String("pattern", pattern),
							zap.Int("size", size))
					}
				}
			}
		}
	}
	return results, nil
}

// runCase 입력의 복사본을 정렬하고 측정
func runCase(engine sort.Engine, data []int64) Result {
	testData := slices.Clone(data)

	stats := startStats()
	engine(testData)
	duration, memUsage := stats.endStats()

	return Result{
		DataSize:    len(data),
		Duration:    duration,
		MemoryUsage: memUsage,
		Sorted:      slices.IsSorted(testData),
	}
}
