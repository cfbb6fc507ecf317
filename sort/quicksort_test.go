package sort

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMedianOfThree(t *testing.T) {
	tests := []struct {
		name string
		arr  []int64
		want int64
	}{
		{"middle between", []int64{1, 2, 3}, 2},
		{"middle between desc", []int64{3, 2, 1}, 2},
		{"last between", []int64{1, 3, 2}, 2},
		{"last between desc", []int64{3, 1, 2}, 2},
		{"first between", []int64{2, 1, 3}, 2},
		{"all equal", []int64{4, 4, 4}, 4},
		// 엄격한 중간값이 없으면 첫 번째 값
		{"first ties middle", []int64{5, 5, 1}, 5},
		{"first ties last", []int64{5, 9, 5}, 5},
		{"middle ties last", []int64{1, 7, 7}, 1},
		{"longer range", []int64{10, 0, 0, 30, 0, 0, 20}, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, medianOfThree(tt.arr))
		})
	}
}

func TestPartitionSplit(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := Threshold + 1 + r.Intn(200)
		arr := randomData(r, n, int64(1+r.Intn(20)))

		pivot := medianOfThree(arr)
		p := partition(arr, 0, n-1, pivot)

		// 두 구간 모두 비어있지 않음
		require.Greater(t, p, 0)
		require.Less(t, p, n)
		for _, v := range arr[:p] {
			require.LessOrEqual(t, v, pivot)
		}
		for _, v := range arr[p:] {
			require.GreaterOrEqual(t, v, pivot)
		}
	}
}

func TestPartitionSubRange(t *testing.T) {
	arr := []int64{100, 100, 9, 3, 7, 1, 8, 2, 6, 4, 5, 0, -100, -100}
	left, right := 2, 11
	pivot := medianOfThree(arr[left : right+1])
	p := partition(arr, left, right, pivot)

	require.Greater(t, p, left)
	require.LessOrEqual(t, p, right)
	for _, v := range arr[left:p] {
		require.LessOrEqual(t, v, pivot)
	}
	for _, v := range arr[p : right+1] {
		require.GreaterOrEqual(t, v, pivot)
	}
	// 구간 밖은 건드리지 않음
	require.Equal(t, []int64{100, 100}, arr[:left])
	require.Equal(t, []int64{-100, -100}, arr[right+1:])
}

func TestQuickSortSubRangeOnly(t *testing.T) {
	arr := make([]int64, 40)
	for i := range arr {
		arr[i] = int64(40 - i)
	}
	quickSortHelper(arr, 10, 29)

	require.True(t, isSorted(arr[10:30]))
	for i := 0; i < 10; i++ {
		require.Equal(t, int64(40-i), arr[i])
		require.Equal(t, int64(10-i), arr[30+i])
	}
}
