package workers

import "context"

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// StartAll starts every worker in registration order.
func (w *Workers) StartAll(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// StopAll stops every worker in reverse registration order.
func (w *Workers) StopAll() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
