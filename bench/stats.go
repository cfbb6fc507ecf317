package bench

import (
	"runtime"
	"time"
)

// systemStats 한 번의 측정 구간
type systemStats struct {
	startTime time.Time
	startMem  runtime.MemStats
}

// startStats 측정 시작. GC 를 먼저 돌려 이전 할당의 영향을 줄임.
func startStats() *systemStats {
	runtime.GC()

	s := &systemStats{}
	runtime.ReadMemStats(&s.startMem)
	s.startTime = time.Now()
	return s
}

// endStats 경과 시간과 구간 내 누적 할당 바이트
func (s *systemStats) endStats() (time.Duration, uint64) {
	duration := time.Since(s.startTime)

	var endMem runtime.MemStats
	runtime.ReadMemStats(&endMem)
	return duration, endMem.TotalAlloc - s.startMem.TotalAlloc
}
