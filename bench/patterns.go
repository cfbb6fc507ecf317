// Package bench 는 정렬 엔진 벤치마크를 실행하고 결과를 기록한다.
package bench

import (
	"math/rand"

	"github.com/cockroachdb/errors"
)

const (
	PatternRandom          = "random"
	PatternInverselySorted = "inversely_sorted"
	PatternFewUnique       = "few_unique"
	PatternRepeating       = "repeating_patterns"
)

// ErrUnknownPattern 등록되지 않은 데이터 패턴
var ErrUnknownPattern = errors.New("unknown data pattern")

// Generator size 개의 테스트 데이터를 생성
type Generator func(r *rand.Rand, size int) []int64

var generators = map[string]Generator{
	PatternRandom:          randomData,
	PatternInverselySorted: inverselySorted,
	PatternFewUnique:       fewUniqueElements,
	PatternRepeating:       repeatingPatterns,
}

// Patterns 패턴 이름 (고정 순서)
func Patterns() []string {
	return []string{PatternRandom, PatternInverselySorted, PatternFewUnique, PatternRepeating}
}

// Generate 고정 시드로 재현 가능한 데이터 생성
func Generate(pattern string, size int, seed int64) ([]int64, error) {
	gen, ok := generators[pattern]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "%q", pattern)
	}
	return gen(rand.New(rand.NewSource(seed)), size), nil
}

// randomData [0, 10000) 균등 분포
func randomData(r *rand.Rand, size int) []int64 {
	data := make([]int64, size)
	for i := range size {
		data[i] = r.Int63n(10000)
	}
	return data
}

// inverselySorted n-1 부터 0 까지 역순
func inverselySorted(_ *rand.Rand, size int) []int64 {
	data := make([]int64, size)
	for i := range size {
		data[i] = int64(size - 1 - i)
	}
	return data
}

// fewUniqueElements 서로 다른 값 5개만 사용
func fewUniqueElements(r *rand.Rand, size int) []int64 {
	data := make([]int64, size)
	for i := range size {
		data[i] = r.Int63n(5)
	}
	return data
}

// repeatingPatterns 1..5 반복, 5의 배수 길이로 자름
func repeatingPatterns(_ *rand.Rand, size int) []int64 {
	pattern := [...]int64{1, 2, 3, 4, 5}
	n := size / len(pattern) * len(pattern)
	data := make([]int64, n)
	for i := range n {
		data[i] = pattern[i%len(pattern)]
	}
	return data
}
