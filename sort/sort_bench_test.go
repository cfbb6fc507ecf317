package sort

import (
	"math/rand"
	"slices"
	"testing"
)

func generateRandom(n int) []int64 {
	return randomData(rand.New(rand.NewSource(42)), n, 10000)
}

func generateInverse(n int) []int64 {
	data := make([]int64, n)
	for i := range data {
		data[i] = int64(n - 1 - i)
	}
	return data
}

func generateFewUnique(n int) []int64 {
	return randomData(rand.New(rand.NewSource(42)), n, 5)
}

func benchmarkEngine(b *testing.B, engine Engine, ref []int64) {
	work := make([]int64, len(ref))
	b.SetBytes(int64(len(ref) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, ref)
		engine(work)
	}
}

func BenchmarkQuickSort_Random_1000(b *testing.B)   { benchmarkEngine(b, QuickSort, generateRandom(1000)) }
func BenchmarkQuickSort_Random_100000(b *testing.B) { benchmarkEngine(b, QuickSort, generateRandom(100000)) }
func BenchmarkQuickSort_Inverse_100000(b *testing.B) {
	benchmarkEngine(b, QuickSort, generateInverse(100000))
}
func BenchmarkQuickSort_FewUnique_100000(b *testing.B) {
	benchmarkEngine(b, QuickSort, generateFewUnique(100000))
}

func BenchmarkMergeSort_Random_1000(b *testing.B)   { benchmarkEngine(b, MergeSort, generateRandom(1000)) }
func BenchmarkMergeSort_Random_100000(b *testing.B) { benchmarkEngine(b, MergeSort, generateRandom(100000)) }
func BenchmarkMergeSort_Inverse_100000(b *testing.B) {
	benchmarkEngine(b, MergeSort, generateInverse(100000))
}
func BenchmarkMergeSort_FewUnique_100000(b *testing.B) {
	benchmarkEngine(b, MergeSort, generateFewUnique(100000))
}

// 표준 라이브러리 기준선
func BenchmarkStdSort_Random_100000(b *testing.B) {
	benchmarkEngine(b, slices.Sort[[]int64], generateRandom(100000))
}
