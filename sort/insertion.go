// Package sort 는 int64 시퀀스용 하이브리드 퀵소트/머지소트 엔진을 제공한다.
// 두 엔진 모두 Threshold 이하 구간에서는 삽입정렬로 넘어간다.
package sort

// Threshold 이 크기 이하의 구간은 삽입정렬로 처리
const Threshold = 15

// insertionSort 인접 교환 방식의 삽입정렬 (안정 정렬)
func insertionSort(arr []int64) {
	for i := 1; i < len(arr); i++ {
		for j := i; j > 0 && arr[j] < arr[j-1]; j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}
}

func insertionSortFunc[E any](arr []E, cmp func(a, b E) int) {
	for i := 1; i < len(arr); i++ {
		for j := i; j > 0 && cmp(arr[j], arr[j-1]) < 0; j-- {
			arr[j], arr[j-1] = arr[j-1], arr[j]
		}
	}
}
