package sort

// MergeSort 공유 버퍼 기반 하이브리드 탑다운 머지소트 (제자리 결과, 안정)
func MergeSort(arr []int64) {
	// 버퍼는 최상위 호출에서 한 번만 할당
	buf := make([]int64, len(arr))
	mergeSortHelper(arr, buf)
}

func mergeSortHelper(arr, buf []int64) {
	n := len(arr)
	if n <= 1 {
		return
	}

	// 작은 배열은 삽입정렬 사용
	if n <= Threshold {
		insertionSort(arr)
		return
	}

	mid := n / 2
	mergeSortHelper(arr[:mid], buf)
	mergeSortHelper(arr[mid:], buf)

	// 이미 정렬된 상태면 병합 생략
	if arr[mid-1] <= arr[mid] {
		return
	}

	merge(arr[:mid], arr[mid:], buf[:n])
	copy(arr, buf[:n])
}

// merge 두 정렬된 구간을 result 로 병합. 같은 값이면 왼쪽 우선.
func merge(left, right, result []int64) {
	i, j, k := 0, 0, 0

	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			result[k] = left[i]
			i++
		} else {
			result[k] = right[j]
			j++
		}
		k++
	}

	// 남은 요소 복사
	k += copy(result[k:], left[i:])
	copy(result[k:], right[j:])
}

// MergeSortFunc MergeSort 와 같은 알고리즘을 비교 함수로 수행 (안정)
func MergeSortFunc[E any](arr []E, cmp func(a, b E) int) {
	buf := make([]E, len(arr))
	mergeSortHelperFunc(arr, buf, cmp)
}

func mergeSortHelperFunc[E any](arr, buf []E, cmp func(a, b E) int) {
	n := len(arr)
	if n <= 1 {
		return
	}
	if n <= Threshold {
		insertionSortFunc(arr, cmp)
		return
	}

	mid := n / 2
	mergeSortHelperFunc(arr[:mid], buf, cmp)
	mergeSortHelperFunc(arr[mid:], buf, cmp)

	if cmp(arr[mid-1], arr[mid]) <= 0 {
		return
	}

	mergeFunc(arr[:mid], arr[mid:], buf[:n], cmp)
	copy(arr, buf[:n])
}

func mergeFunc[E any](left, right, result []E, cmp func(a, b E) int) {
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			result[k] = left[i]
			i++
		} else {
			result[k] = right[j]
			j++
		}
		k++
	}
	k += copy(result[k:], left[i:])
	copy(result[k:], right[j:])
}
