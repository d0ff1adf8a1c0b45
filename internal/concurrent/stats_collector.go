package concurrent

import (
	"sync"
	"sync/atomic"
	"time"
)

// Stats denetim kuyruğunun anlık sayaçları. Submitted kuyruğa kabul edilen,
// Rejected dolu kuyruk yüzünden düşen kayıttır; Completed + Failed işçilerin
// sonuçlandırdığı toplamı verir.
type Stats struct {
	Submitted    int64
	Completed    int64
	Failed       int64
	Rejected     int64
	AvgWriteTime time.Duration
}

type StatsCollector struct {
	submitted int64
	completed int64
	failed    int64
	rejected  int64

	mutex          sync.RWMutex
	totalWriteTime int64
	writeCount     int64
}

func NewStatsCollector() *StatsCollector {
	return &StatsCollector{}
}

func (sc *StatsCollector) IncrementSubmitted() {
	atomic.AddInt64(&sc.submitted, 1)
}

func (sc *StatsCollector) IncrementCompleted() {
	atomic.AddInt64(&sc.completed, 1)
}

func (sc *StatsCollector) IncrementFailed() {
	atomic.AddInt64(&sc.failed, 1)
}

func (sc *StatsCollector) IncrementRejected() {
	atomic.AddInt64(&sc.rejected, 1)
}

// RecordWriteDuration başarılı bir denetim yazımının süresini toplar;
// ortalama GetStats çağrısında hesaplanır.
func (sc *StatsCollector) RecordWriteDuration(d time.Duration) {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	sc.totalWriteTime += d.Nanoseconds()
	sc.writeCount++
}

func (sc *StatsCollector) GetStats() Stats {
	sc.mutex.RLock()
	defer sc.mutex.RUnlock()

	stats := Stats{
		Submitted: atomic.LoadInt64(&sc.submitted),
		Completed: atomic.LoadInt64(&sc.completed),
		Failed:    atomic.LoadInt64(&sc.failed),
		Rejected:  atomic.LoadInt64(&sc.rejected),
	}

	if sc.writeCount > 0 {
		stats.AvgWriteTime = time.Duration(sc.totalWriteTime / sc.writeCount)
	}

	return stats
}
