package sort

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// Engine 시퀀스를 제자리에서 정렬하는 함수
type Engine func([]int64)

const (
	EngineQuick    = "quick"
	EngineMerge    = "merge"
	EngineStandard = "standard"
)

// ErrUnknownEngine 등록되지 않은 엔진 이름
var ErrUnknownEngine = errors.New("unknown sort engine")

var engines = map[string]Engine{
	EngineQuick:    QuickSort,
	EngineMerge:    MergeSort,
	EngineStandard: slices.Sort[[]int64],
}

// Lookup 이름으로 엔진 조회
func Lookup(name string) (Engine, error) {
	e, ok := engines[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", name)
	}
	return e, nil
}

// Names 등록된 엔진 이름 (정렬됨)
func Names() []string {
	names := make([]string, 0, len(engines))
	for name := range engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sorted 입력을 복제해 QuickSort 로 정렬한 새 슬라이스를 반환. 원본은 그대로.
func Sorted(arr []int64) []int64 {
	return SortedWith(arr, QuickSort)
}

// SortedWith 지정한 엔진으로 정렬한 복제본 반환
func SortedWith(arr []int64, engine Engine) []int64 {
	out := slices.Clone(arr)
	engine(out)
	return out
}
