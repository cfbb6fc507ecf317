package sort

// QuickSort 중앙값 피벗 + 호어 분할 기반 하이브리드 퀵소트 (제자리, 불안정)
func QuickSort(arr []int64) {
	if len(arr) == 0 {
		return
	}
	quickSortHelper(arr, 0, len(arr)-1)
}

func quickSortHelper(arr []int64, left, right int) {
	// 작은 구간은 삽입정렬
	if right-left+1 <= Threshold {
		insertionSort(arr[left : right+1])
		return
	}

	pivot := medianOfThree(arr[left : right+1])
	p := partition(arr, left, right, pivot)

	// p == 0 이면 왼쪽 구간이 없음
	if p > 0 {
		quickSortHelper(arr, left, p-1)
	}
	quickSortHelper(arr, p, right)
}

// medianOfThree 첫/중간/마지막 값 중 중앙값을 반환.
// 엄격히 사이에 있는 값이 없으면 첫 번째 값.
func medianOfThree(arr []int64) int64 {
	first := arr[0]
	middle := arr[len(arr)/2]
	last := arr[len(arr)-1]

	med := first
	if middle < first && middle > last || middle > first && middle < last {
		med = middle
	} else if last < first && last > middle || last > first && last < middle {
		med = last
	}
	return med
}

// partition 양끝에서 가운데로 좁혀오는 호어 분할.
// 반환값 i 에 대해 arr[left:i] <= pivot <= arr[i:right+1].
func partition(arr []int64, left, right int, pivot int64) int {
	i, j := left, right
	for i <= j {
		for arr[i] < pivot {
			i++
		}
		for arr[j] > pivot {
			if j == 0 {
				break
			}
			j--
		}
		if i <= j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			if j == 0 {
				break
			}
			j--
		}
	}
	return i
}

// QuickSortFunc QuickSort 와 같은 알고리즘을 비교 함수로 수행
func QuickSortFunc[E any](arr []E, cmp func(a, b E) int) {
	if len(arr) == 0 {
		return
	}
	quickSortHelperFunc(arr, 0, len(arr)-1, cmp)
}

func quickSortHelperFunc[E any](arr []E, left, right int, cmp func(a, b E) int) {
	if right-left+1 <= Threshold {
		insertionSortFunc(arr[left:right+1], cmp)
		return
	}

	pivot := medianOfThreeFunc(arr[left:right+1], cmp)
	p := partitionFunc(arr, left, right, pivot, cmp)

	if p > 0 {
		quickSortHelperFunc(arr, left, p-1, cmp)
	}
	quickSortHelperFunc(arr, p, right, cmp)
}

func medianOfThreeFunc[E any](arr []E, cmp func(a, b E) int) E {
	first := arr[0]
	middle := arr[len(arr)/2]
	last := arr[len(arr)-1]

	mf, ml := cmp(middle, first), cmp(middle, last)
	lf, lm := cmp(last, first), cmp(last, middle)

	med := first
	if mf < 0 && ml > 0 || mf > 0 && ml < 0 {
		med = middle
	} else if lf < 0 && lm > 0 || lf > 0 && lm < 0 {
		med = last
	}
	return med
}

func partitionFunc[E any](arr []E, left, right int, pivot E, cmp func(a, b E) int) int {
	i, j := left, right
	for i <= j {
		for cmp(arr[i], pivot) < 0 {
			i++
		}
		for cmp(arr[j], pivot) > 0 {
			if j == 0 {
				break
			}
			j--
		}
		if i <= j {
			arr[i], arr[j] = arr[j], arr[i]
			i++
			if j == 0 {
				break
			}
			j--
		}
	}
	return i
}
