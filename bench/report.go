package bench

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
)

const (
	JSONFile     = "benchmark_results.json"
	MarkdownFile = "benchmark_results.md"
)

// groupKey 크기/패턴/저장방식 단위 표
type groupKey struct {
	size    int
	pattern string
	storage string
}

// groupResults 처음 등장한 순서대로 묶음
func groupResults(results []Result) ([]groupKey, map[groupKey][]Result) {
	var keys []groupKey
	groups := make(map[groupKey][]Result)
	for _, r := range results {
		k := groupKey{r.DataSize, r.Pattern, r.StorageType}
		if _, ok := groups[k]; !ok {
			keys = append(keys, k)
		}
		groups[k] = append(groups[k], r)
	}
	return keys, groups
}

// WriteMarkdown dir/benchmark_results.md 에 표로 저장
func WriteMarkdown(dir string, results []Result) (string, error) {
	var builder strings.Builder
	builder.WriteString("# 정렬 알고리즘 벤치마크 결과\n\n")
	builder.WriteString(fmt.Sprintf("실행 시간: %s\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("CPU 코어 수: %d\n", runtime.NumCPU()))
	builder.WriteString(fmt.Sprintf("GOMAXPROCS: %d\n\n", runtime.GOMAXPROCS(0)))

	keys, groups := groupResults(results)
	for _, k := range keys {
		builder.WriteString(fmt.Sprintf("## %s - %s - %s개 데이터\n\n", k.storage, k.pattern, humanize.Comma(int64(k.size))))
		builder.WriteString("| 알고리즘 | 테스트 | 실행시간 | 메모리사용량 | 정렬확인 |\n")
		builder.WriteString("|----------|--------|----------|--------------|----------|\n")
		for _, r := range groups[k] {
			builder.WriteString(fmt.Sprintf("| %s | %d | %v | %s | %t |\n",
				r.Algorithm, r.TestRun, r.Duration, humanize.Bytes(r.MemoryUsage), r.Sorted))
		}
		builder.WriteString("\n")
	}

	// 요약 통계
	builder.WriteString("## 요약 통계\n\n")
	for _, k := range keys {
		builder.WriteString(fmt.Sprintf("### %s - %s - %s개 데이터 평균\n\n", k.storage, k.pattern, humanize.Comma(int64(k.size))))
		builder.WriteString("| 알고리즘 | 평균 실행시간 | 평균 메모리사용량 |\n")
		builder.WriteString("|----------|---------------|-------------------|\n")
		for _, s := range summarize(groups[k]) {
			builder.WriteString(fmt.Sprintf("| %s | %v | %s |\n",
				s.algorithm, s.avgDuration, humanize.Bytes(s.avgMemory)))
		}
		builder.WriteString("\n")
	}

	return writeReport(dir, MarkdownFile, func(w *bufio.Writer) error {
		_, err := w.WriteString(builder.String())
		return err
	})
}

// WriteJSON dir/benchmark_results.json 에 저장
func WriteJSON(dir string, results []Result) (string, error) {
	return writeReport(dir, JSONFile, func(w *bufio.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	})
}

type summary struct {
	algorithm   string
	avgDuration time.Duration
	avgMemory   uint64
}

type total struct {
	duration time.Duration
	memory   uint64
	count    int
}

// summarize 알고리즘별 평균 (등장 순서 유지)
func summarize(results []Result) []summary {
	var order []string
	totals := make(map[string]*total)
	for _, r := range results {
		t, ok := totals[r.Algorithm]
		if !ok {
			order = append(order, r.Algorithm)
			t = &total{}
			totals[r.Algorithm] = t
		}
		t.duration += r.Duration
		t.memory += r.MemoryUsage
		t.count++
	}

	out := make([]summary, 0, len(order))
	for _, algo := range order {
		t := totals[algo]
		out = append(out, summary{
			algorithm:   algo,
			avgDuration: t.duration / time.Duration(t.count),
			avgMemory:   t.memory / uint64(t.count),
		})
	}
	return out
}

func writeReport(dir, name string, write func(w *bufio.Writer) error) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "create %s", path)
	}

	writer := bufio.NewWriterSize(file, 32*1024)
	if err := write(writer); err != nil {
		file.Close()
		return "", errors.Wrapf(err, "write %s", path)
	}
	if err := writer.Flush(); err != nil {
		file.Close()
		return "", errors.Wrapf(err, "flush %s", path)
	}
	if err := file.Close(); err != nil {
		return "", errors.Wrapf(err, "close %s", path)
	}
	return path, nil
}
