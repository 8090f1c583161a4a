package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-blog/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Start launches every worker and returns at once. The channel receives one
// Result per worker and is closed after the last one.
func (w *Workers) Start(ctx context.Context) <-chan Result {
	results := make(chan Result, len(w.workers))

	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			w.logger.Debug().Str("worker", worker.Name()).Msg("worker started")

			err := worker.Run(ctx)
			if err != nil {
				w.logger.Err(err).Str("worker", worker.Name()).Msg("worker failed")
			} else {
				w.logger.Debug().Str("worker", worker.Name()).Msg("worker finished")
			}

			results <- Result{Worker: worker.Name(), Err: err}
		})
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
