package sort

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	result := make([]int64, 6)
	merge([]int64{1, 3, 5}, []int64{2, 4, 6}, result)
	require.Equal(t, []int64{1, 2, 3, 4, 5, 6}, result)

	result = make([]int64, 5)
	merge([]int64{1, 2, 3, 4}, []int64{0}, result)
	require.Equal(t, []int64{0, 1, 2, 3, 4}, result)

	result = make([]int64, 3)
	merge(nil, []int64{7, 8, 9}, result)
	require.Equal(t, []int64{7, 8, 9}, result)
}

func TestMergeFuncPrefersLeftOnTies(t *testing.T) {
	left := []tagged{{1, 0}, {2, 1}}
	right := []tagged{{1, 2}, {2, 3}}
	result := make([]tagged, 4)
	mergeFunc(left, right, result, compareKey)
	require.Equal(t, []tagged{{1, 0}, {1, 2}, {2, 1}, {2, 3}}, result)
}

func TestMergeSortSkipsMergeOnOrderedHalves(t *testing.T) {
	arr := make([]int64, 40)
	for i := range arr {
		arr[i] = int64(i)
	}
	// 정렬된 입력은 병합 없이 끝나야 하므로 버퍼는 한 번도 쓰이지 않음
	buf := make([]int64, len(arr))
	mergeSortHelper(arr, buf)
	require.True(t, isSorted(arr))
	require.Equal(t, make([]int64, len(arr)), buf)
}

func TestMergeSortUsesSharedBuffer(t *testing.T) {
	arr := make([]int64, 64)
	for i := range arr {
		arr[i] = int64(len(arr) - i)
	}
	buf := make([]int64, len(arr))
	mergeSortHelper(arr, buf)
	require.True(t, isSorted(arr))
	// 최상위 병합 결과가 버퍼에 남아 있음
	require.Equal(t, arr, buf)
}

func TestInsertionSort(t *testing.T) {
	tests := []struct {
		in, want []int64
	}{
		{nil, nil},
		{[]int64{1}, []int64{1}},
		{[]int64{2, 1}, []int64{1, 2}},
		{[]int64{3, 1, 2, 3, 1}, []int64{1, 1, 2, 3, 3}},
		{[]int64{5, 4, 3, 2, 1, 0, -1}, []int64{-1, 0, 1, 2, 3, 4, 5}},
	}
	for _, tt := range tests {
		insertionSort(tt.in)
		require.Equal(t, tt.want, tt.in)
	}
}

func TestInsertionSortFuncStable(t *testing.T) {
	arr := []tagged{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {0, 4}}
	insertionSortFunc(arr, compareKey)
	require.Equal(t, []tagged{{0, 4}, {1, 1}, {1, 3}, {2, 0}, {2, 2}}, arr)
}
