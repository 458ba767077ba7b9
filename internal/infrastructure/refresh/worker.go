package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/amm-ar03/Point-of-Sale-System/pkg/jitter"
	"github.com/amm-ar03/Point-of-Sale-System/pkg/logger"
)

// Refresher — то, что воркер периодически обновляет (снапшот каталога).
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Worker фоном обновляет снапшот каталога с заданным интервалом.
// Интервал слегка джиттерится, чтобы парк терминалов не опрашивал
// бэкенд синхронными волнами. Сбой обновления логируется; терминал
// продолжает работать на предыдущем снапшоте.
type Worker struct {
	refresher Refresher
	interval  time.Duration
	logger    logger.Logger
	stop      chan struct{}
	wg        sync.WaitGroup
}

func NewWorker(refresher Refresher, interval time.Duration, logger logger.Logger) *Worker {
	return &Worker{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		stop:      make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.run(ctx)
	}()
}

func (w *Worker) Stop() {
	close(w.stop)
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	const refreshTimeout = 30 * time.Second

	for {
		timer := time.NewTimer(jitter.Duration(w.interval, jitter.DefaultJitter))

		select {
		case <-timer.C:
		case <-w.stop:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			w.logger.Infof("catalog refresh worker stopped by context cancellation")
			return
		}

		refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
		if err := w.refresher.Refresh(refreshCtx); err != nil {
			w.logger.Warnf("periodic catalog refresh failed: %v", err)
		}
		cancel()
	}
}
