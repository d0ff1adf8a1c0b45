package concurrent

import (
	"context"
	"sync"
	"time"

	"shopflow/internal/domain"
	"shopflow/pkg/logger"
	"shopflow/pkg/metrics"
)

type AuditProcessor = func(entry *domain.AuditLog) error

type WorkerPool struct {
	numWorkers     int
	jobQueue       chan *domain.AuditLog
	processor      AuditProcessor
	wg             sync.WaitGroup
	ctx            context.Context
	cancel         context.CancelFunc
	logger         logger.Logger
	started        bool
	mutex          sync.Mutex
	statsCollector *StatsCollector
}

func NewWorkerPool(numWorkers int, queueSize int, processor AuditProcessor, logger logger.Logger) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())

	return &WorkerPool{
		numWorkers:     numWorkers,
		jobQueue:       make(chan *domain.AuditLog, queueSize),
		processor:      processor,
		ctx:            ctx,
		cancel:         cancel,
		logger:         logger,
		started:        false,
		statsCollector: NewStatsCollector(),
	}
}

func (wp *WorkerPool) Start() {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if wp.started {
		return
	}

	wp.logger.Info("Denetim işçi havuzu başlatılıyor", map[string]interface{}{
		"num_workers": wp.numWorkers,
		"queue_size":  cap(wp.jobQueue),
	})

	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		workerID := i
		go func() {
			defer wp.wg.Done()
			wp.worker(workerID)
		}()
	}

	wp.started = true
}

func (wp *WorkerPool) Stop() {
	wp.mutex.Lock()
	if !wp.started {
		wp.mutex.Unlock()
		return
	}
	wp.started = false
	wp.mutex.Unlock()

	wp.logger.Info("Denetim işçi havuzu durduruluyor", map[string]interface{}{})
	close(wp.jobQueue)
	wp.wg.Wait()
	wp.cancel()
}

// Submit kaydı bloklamadan kuyruğa ekler; kuyruk doluysa kayıt düşer.
// Denetim izi yardımcı bir kayıttır, alan operasyonlarını asla bekletmez.
// Kilit gönderme boyunca tutulur; Stop kuyruğu ancak started bayrağını
// indirdikten sonra kapatabildiği için kapalı kanala gönderim olmaz.
func (wp *WorkerPool) Submit(entry *domain.AuditLog) bool {
	wp.mutex.Lock()
	defer wp.mutex.Unlock()

	if !wp.started {
		return false
	}

	select {
	case wp.jobQueue <- entry:
		wp.statsCollector.IncrementSubmitted()
		metrics.AuditQueueSize.Set(float64(len(wp.jobQueue)))
		return true
	default:
		wp.statsCollector.IncrementRejected()
		metrics.AuditDropped.Inc()
		wp.logger.Warn("Denetim kuyruğu dolu, kayıt atıldı", map[string]interface{}{
			"entity_type": entry.EntityType,
			"entity_id":   entry.EntityID,
		})
		return false
	}
}

func (wp *WorkerPool) worker(id int) {
	for {
		select {
		case <-wp.ctx.Done():
			return
		case entry, ok := <-wp.jobQueue:
			if !ok {
				return
			}

			startTime := time.Now()
			err := wp.processor(entry)
			writeTime := time.Since(startTime)

			metrics.AuditQueueSize.Set(float64(len(wp.jobQueue)))

			if err != nil {
				wp.statsCollector.IncrementFailed()
				wp.logger.Error("Denetim kaydı işlenemedi", map[string]interface{}{
					"worker_id":   id,
					"entity_type": entry.EntityType,
					"entity_id":   entry.EntityID,
					"error":       err.Error(),
				})
			} else {
				wp.statsCollector.IncrementCompleted()
				wp.statsCollector.RecordWriteDuration(writeTime)
			}
		}
	}
}

func (wp *WorkerPool) GetStats() Stats {
	return wp.statsCollector.GetStats()
}

func (wp *WorkerPool) QueueLength() int {
	return len(wp.jobQueue)
}

func (wp *WorkerPool) QueueCapacity() int {
	return cap(wp.jobQueue)
}
